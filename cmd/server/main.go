package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	categoryhttp "github.com/minimarket/admin-api/internal/category/delivery/http"
	categorydomain "github.com/minimarket/admin-api/internal/category/domain"
	categoryrepo "github.com/minimarket/admin-api/internal/category/repository"
	"github.com/minimarket/admin-api/internal/config"
	customerhttp "github.com/minimarket/admin-api/internal/customer/delivery/http"
	customerdomain "github.com/minimarket/admin-api/internal/customer/domain"
	customerrepo "github.com/minimarket/admin-api/internal/customer/repository"
	dashboardhttp "github.com/minimarket/admin-api/internal/dashboard/delivery/http"
	"github.com/minimarket/admin-api/internal/middleware"
	producthttp "github.com/minimarket/admin-api/internal/product/delivery/http"
	productdomain "github.com/minimarket/admin-api/internal/product/domain"
	productrepo "github.com/minimarket/admin-api/internal/product/repository"
	purchasehttp "github.com/minimarket/admin-api/internal/purchase/delivery/http"
	purchasedomain "github.com/minimarket/admin-api/internal/purchase/domain"
	purchaserepo "github.com/minimarket/admin-api/internal/purchase/repository"
	purchasecommand "github.com/minimarket/admin-api/internal/purchase/usecase/command"
	purchasequery "github.com/minimarket/admin-api/internal/purchase/usecase/query"
	carthttp "github.com/minimarket/admin-api/internal/shoppingcart/delivery/http"
	cartdomain "github.com/minimarket/admin-api/internal/shoppingcart/domain"
	cartrepo "github.com/minimarket/admin-api/internal/shoppingcart/repository"
	supplierhttp "github.com/minimarket/admin-api/internal/supplier/delivery/http"
	supplierdomain "github.com/minimarket/admin-api/internal/supplier/domain"
	supplierrepo "github.com/minimarket/admin-api/internal/supplier/repository"
	userhttp "github.com/minimarket/admin-api/internal/user/delivery/http"
	userdomain "github.com/minimarket/admin-api/internal/user/domain"
	userrepo "github.com/minimarket/admin-api/internal/user/repository"
	"github.com/minimarket/admin-api/kafka"
	"github.com/minimarket/admin-api/pkg/database"
	"github.com/minimarket/admin-api/pkg/logger"
	"github.com/minimarket/admin-api/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting admin API")

	// Tracing
	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Database
	db, err := database.NewGormConnection(cfg.Database())
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Only the full entity structs are migrated; the reduced view
	// structs share these tables and must not shape the schema.
	if err := db.AutoMigrate(
		&userdomain.User{},
		&categorydomain.Category{},
		&supplierdomain.Supplier{},
		&customerdomain.Customer{},
		&productdomain.Product{},
		&cartdomain.ShoppingCart{},
		&purchasedomain.Purchase{},
		&purchasedomain.PurchaseDetail{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Redis cache (optional)
	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := cache.Ping(context.Background()).Err(); err != nil {
			logger.Logger.Warn().Err(err).Msg("Redis unavailable, dashboard cache disabled")
			cache = nil
		}
	}

	// Kafka publisher (optional)
	var publisher *kafka.Publisher
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaBrokers[0] != "" {
		publisher, err = kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unavailable, events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Repositories
	categoryRepo := categoryrepo.NewGormCategoryRepository(db)
	supplierRepo := supplierrepo.NewGormSupplierRepository(db)
	customerRepo := customerrepo.NewGormCustomerRepository(db)
	productRepo := productrepo.NewGormProductRepository(db)
	userRepo := userrepo.NewGormUserRepository(db)
	cartRepo := cartrepo.NewGormShoppingCartRepository(db)
	purchaseRepo := purchaserepo.NewGormPurchaseRepository(db)

	reg := prometheus.DefaultRegisterer

	// Handlers
	categoryHandler := categoryhttp.NewCategoryHandler(categoryRepo, reg)
	supplierHandler := supplierhttp.NewSupplierHandler(supplierRepo, reg)
	customerHandler := customerhttp.NewCustomerHandler(customerRepo, reg)
	productHandler := producthttp.NewProductHandler(productRepo, cfg.UploadDir, reg)
	userHandler := userhttp.NewUserHandler(userRepo, reg)
	cartHandler := carthttp.NewCartHandler(cartRepo, reg)

	purchaseHandler := purchasehttp.NewPurchaseHandler(
		purchasecommand.NewCreatePurchaseHandler(purchaseRepo, productRepo, customerRepo, userRepo, publisher),
		purchasecommand.NewAnnulPurchaseHandler(purchaseRepo, publisher),
		purchasequery.NewGetPurchaseHandler(purchaseRepo),
		purchasequery.NewListPurchasesHandler(purchaseRepo),
		purchasequery.NewGetReceiptHandler(purchaseRepo),
		reg,
	)

	dashboardHandler := dashboardhttp.NewDashboardHandler(purchaseRepo, productRepo, customerRepo, cache, reg)

	// Router
	router := mux.NewRouter()
	categoryHandler.RegisterRoutes(router)
	supplierHandler.RegisterRoutes(router)
	customerHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	purchaseHandler.RegisterRoutes(router)
	dashboardHandler.RegisterRoutes(router)

	// Static product images
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := sqlDB.Ping(); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := otelhttp.NewHandler(
		c.Handler(middleware.Logging(router)),
		"admin-api",
	)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	customerdomain "github.com/minimarket/admin-api/internal/customer/domain"
	"github.com/minimarket/admin-api/internal/dashboard"
	"github.com/minimarket/admin-api/internal/middleware"
	productdomain "github.com/minimarket/admin-api/internal/product/domain"
	purchasedomain "github.com/minimarket/admin-api/internal/purchase/domain"
	"github.com/minimarket/admin-api/pkg/logger"
)

const (
	cacheKey = "dashboard:summary"
	cacheTTL = 60 * time.Second
)

// DashboardHandler serves the aggregated dashboard summary. Results
// are cached in Redis for a short window; a nil client disables the
// cache.
type DashboardHandler struct {
	purchases purchasedomain.PurchaseRepository
	products  productdomain.ProductRepository
	customers customerdomain.CustomerRepository
	cache     *redis.Client

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	cacheHits      *prometheus.CounterVec
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	purchases purchasedomain.PurchaseRepository,
	products productdomain.ProductRepository,
	customers customerdomain.CustomerRepository,
	cache *redis.Client,
	reg prometheus.Registerer,
) *DashboardHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_requests_total",
			Help: "Total number of dashboard requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_request_duration_seconds",
			Help:    "Duration of dashboard requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	cacheHits := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_cache_total",
			Help: "Dashboard cache lookups by result",
		},
		[]string{"result"},
	)

	reg.MustRegister(requestCounter, requestLatency, cacheHits)

	return &DashboardHandler{
		purchases:      purchases,
		products:       products,
		customers:      customers,
		cache:          cache,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		cacheHits:      cacheHits,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *DashboardHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/dashboard", h.metricsMiddleware("/dashboard", middleware.Auth(h.GetSummary))).Methods("GET")
}

// GetSummary handles GET /dashboard
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			h.cacheHits.WithLabelValues("hit").Inc()
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
		h.cacheHits.WithLabelValues("miss").Inc()
	}

	purchases, err := h.purchases.FindAll()
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Msg("Failed to load purchases for dashboard")
		respondError(w, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	products, err := h.products.FindAll()
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Msg("Failed to load products for dashboard")
		respondError(w, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	customers, err := h.customers.FindAll()
	if err != nil {
		logger.WithContext(ctx).Error().Err(err).Msg("Failed to load customers for dashboard")
		respondError(w, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	summary := dashboard.BuildSummary(purchases, products, customers, time.Now())

	payload, err := json.Marshal(summary)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, cacheKey, payload, cacheTTL).Err(); err != nil {
			logger.WithContext(ctx).Warn().Err(err).Msg("Failed to cache dashboard summary")
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

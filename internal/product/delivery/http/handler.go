package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/minimarket/admin-api/internal/middleware"
	"github.com/minimarket/admin-api/internal/product/domain"
	"github.com/minimarket/admin-api/internal/product/usecase/command"
	"github.com/minimarket/admin-api/internal/product/usecase/query"
	"github.com/minimarket/admin-api/pkg/logger"
)

const maxUploadSize = 10 << 20

// ProductHandler handles HTTP requests for products using CQRS pattern.
// Product creation and image upload arrive as multipart forms so the
// image file can ride along with the fields.
type ProductHandler struct {
	createHandler      *command.CreateProductHandler
	updateHandler      *command.UpdateProductHandler
	deactivateHandler  *command.DeactivateProductHandler
	updateImageHandler *command.UpdateImageHandler

	getHandler  *query.GetProductHandler
	listHandler *query.ListProductsHandler

	uploadDir string

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewProductHandler creates a new product handler
func NewProductHandler(repo domain.ProductRepository, uploadDir string, reg prometheus.Registerer) *ProductHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_requests_total",
			Help: "Total number of product requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "product_request_duration_seconds",
			Help:    "Duration of product requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	reg.MustRegister(requestCounter, requestLatency)

	return &ProductHandler{
		createHandler:      command.NewCreateProductHandler(repo),
		updateHandler:      command.NewUpdateProductHandler(repo),
		deactivateHandler:  command.NewDeactivateProductHandler(repo),
		updateImageHandler: command.NewUpdateImageHandler(repo),
		getHandler:         query.NewGetProductHandler(repo),
		listHandler:        query.NewListProductsHandler(repo),
		uploadDir:          uploadDir,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
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

func (h *ProductHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the product routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/products", h.metricsMiddleware("/products", middleware.Auth(h.ListProducts))).Methods("GET")
	router.HandleFunc("/products/{id}", h.metricsMiddleware("/products/{id}", middleware.Auth(h.GetProduct))).Methods("GET")
	router.HandleFunc("/products/create", h.metricsMiddleware("/products/create", middleware.Auth(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/products/{id}", h.metricsMiddleware("/products/{id}", middleware.Auth(h.UpdateProduct))).Methods("PATCH")
	router.HandleFunc("/products/{id}/upload-image", h.metricsMiddleware("/products/{id}/upload-image", middleware.Auth(h.UploadImage))).Methods("PATCH")
	router.HandleFunc("/products/{id}", h.metricsMiddleware("/products/{id}", middleware.Auth(h.DeactivateProduct))).Methods("DELETE")
}

// CreateProduct handles POST /products/create (multipart form)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid price")
		return
	}

	stock, err := strconv.Atoi(r.FormValue("stock"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid stock")
		return
	}

	cmd := command.CreateProductCommand{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		Stock:       stock,
		CategoryID:  parseOptionalID(r.FormValue("categoryId")),
		SupplierID:  parseOptionalID(r.FormValue("supplierId")),
	}

	if _, _, err := r.FormFile("image"); err == nil {
		imageURL, err := h.saveImage(r)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to store product image")
			respondError(w, http.StatusInternalServerError, "Failed to store image")
			return
		}
		cmd.ImageURL = &imageURL
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create product")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.listHandler.Handle(query.ListProductsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list products")
		respondError(w, http.StatusInternalServerError, "Failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// UpdateProduct handles PATCH /products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Stock       *int     `json:"stock"`
		CategoryID  *uint    `json:"categoryId"`
		SupplierID  *uint    `json:"supplierId"`
		IsActive    *bool    `json:"isActive"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.updateHandler.Handle(command.UpdateProductCommand{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		SupplierID:  req.SupplierID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update product")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// UploadImage handles PATCH /products/{id}/upload-image (multipart form)
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	imageURL, err := h.saveImage(r)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to store product image")
		respondError(w, http.StatusBadRequest, "Image file is required")
		return
	}

	product, err := h.updateImageHandler.Handle(command.UpdateImageCommand{
		ID:       id,
		ImageURL: imageURL,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update product image")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// DeactivateProduct handles DELETE /products/{id}
func (h *ProductHandler) DeactivateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.deactivateHandler.Handle(command.DeactivateProductCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to deactivate product")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Product deactivated"})
}

// saveImage stores the uploaded "image" part under a random name and
// returns the URL it will be served from.
func (h *ProductHandler) saveImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", fmt.Errorf("image file is required: %w", err)
	}
	defer file.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.New().String() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return "/uploads/" + name, nil
}

func parseOptionalID(s string) *uint {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v == 0 {
		return nil
	}
	id := uint(v)
	return &id
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

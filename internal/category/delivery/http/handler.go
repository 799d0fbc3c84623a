package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/minimarket/admin-api/internal/category/domain"
	"github.com/minimarket/admin-api/internal/category/usecase/command"
	"github.com/minimarket/admin-api/internal/category/usecase/query"
	"github.com/minimarket/admin-api/internal/middleware"
	"github.com/minimarket/admin-api/pkg/logger"
)

// CategoryHandler handles HTTP requests for categories using CQRS pattern
type CategoryHandler struct {
	createHandler     *command.CreateCategoryHandler
	updateHandler     *command.UpdateCategoryHandler
	deactivateHandler *command.DeactivateCategoryHandler

	getHandler  *query.GetCategoryHandler
	listHandler *query.ListCategoriesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(repo domain.CategoryRepository, reg prometheus.Registerer) *CategoryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "category_requests_total",
			Help: "Total number of category requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "category_request_duration_seconds",
			Help:    "Duration of category requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	reg.MustRegister(requestCounter, requestLatency)

	return &CategoryHandler{
		createHandler:     command.NewCreateCategoryHandler(repo),
		updateHandler:     command.NewUpdateCategoryHandler(repo),
		deactivateHandler: command.NewDeactivateCategoryHandler(repo),
		getHandler:        query.NewGetCategoryHandler(repo),
		listHandler:       query.NewListCategoriesHandler(repo),
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
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

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CategoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the category routes
func (h *CategoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/categories", h.metricsMiddleware("/categories", middleware.Auth(h.ListCategories))).Methods("GET")
	router.HandleFunc("/categories/{id}", h.metricsMiddleware("/categories/{id}", middleware.Auth(h.GetCategory))).Methods("GET")
	router.HandleFunc("/categories", h.metricsMiddleware("/categories", middleware.Auth(h.CreateCategory))).Methods("POST")
	router.HandleFunc("/categories/{id}", h.metricsMiddleware("/categories/{id}", middleware.Auth(h.UpdateCategory))).Methods("PATCH")
	router.HandleFunc("/categories/{id}", h.metricsMiddleware("/categories/{id}", middleware.Auth(h.DeactivateCategory))).Methods("DELETE")
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.createHandler.Handle(command.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create category")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, category)
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listHandler.Handle(query.ListCategoriesQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list categories")
		respondError(w, http.StatusInternalServerError, "Failed to list categories")
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

// GetCategory handles GET /categories/{id}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := h.getHandler.Handle(query.GetCategoryQuery{ID: id})
	if err != nil {
		respondError(w, http.StatusNotFound, "Category not found")
		return
	}

	respondJSON(w, http.StatusOK, category)
}

// UpdateCategory handles PATCH /categories/{id}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"isActive"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.updateHandler.Handle(command.UpdateCategoryCommand{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update category")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, category)
}

// DeactivateCategory handles DELETE /categories/{id}
func (h *CategoryHandler) DeactivateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.deactivateHandler.Handle(command.DeactivateCategoryCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to deactivate category")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Category deactivated"})
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

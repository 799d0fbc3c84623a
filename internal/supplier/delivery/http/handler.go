package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/minimarket/admin-api/internal/middleware"
	"github.com/minimarket/admin-api/internal/supplier/domain"
	"github.com/minimarket/admin-api/internal/supplier/usecase/command"
	"github.com/minimarket/admin-api/internal/supplier/usecase/query"
	"github.com/minimarket/admin-api/pkg/logger"
)

// SupplierHandler handles HTTP requests for suppliers using CQRS pattern
type SupplierHandler struct {
	createHandler     *command.CreateSupplierHandler
	updateHandler     *command.UpdateSupplierHandler
	deactivateHandler *command.DeactivateSupplierHandler

	getHandler  *query.GetSupplierHandler
	listHandler *query.ListSuppliersHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(repo domain.SupplierRepository, reg prometheus.Registerer) *SupplierHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supplier_requests_total",
			Help: "Total number of supplier requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "supplier_request_duration_seconds",
			Help:    "Duration of supplier requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	reg.MustRegister(requestCounter, requestLatency)

	return &SupplierHandler{
		createHandler:     command.NewCreateSupplierHandler(repo),
		updateHandler:     command.NewUpdateSupplierHandler(repo),
		deactivateHandler: command.NewDeactivateSupplierHandler(repo),
		getHandler:        query.NewGetSupplierHandler(repo),
		listHandler:       query.NewListSuppliersHandler(repo),
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

func (h *SupplierHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the supplier routes
func (h *SupplierHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/suppliers", h.metricsMiddleware("/suppliers", middleware.Auth(h.ListSuppliers))).Methods("GET")
	router.HandleFunc("/suppliers/{id}", h.metricsMiddleware("/suppliers/{id}", middleware.Auth(h.GetSupplier))).Methods("GET")
	router.HandleFunc("/suppliers", h.metricsMiddleware("/suppliers", middleware.Auth(h.CreateSupplier))).Methods("POST")
	router.HandleFunc("/suppliers/{id}", h.metricsMiddleware("/suppliers/{id}", middleware.Auth(h.UpdateSupplier))).Methods("PATCH")
	router.HandleFunc("/suppliers/{id}", h.metricsMiddleware("/suppliers/{id}", middleware.Auth(h.DeactivateSupplier))).Methods("DELETE")
}

// CreateSupplier handles POST /suppliers
func (h *SupplierHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompanyName string `json:"companyName"`
		ContactName string `json:"contactName"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	supplier, err := h.createHandler.Handle(command.CreateSupplierCommand{
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create supplier")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, supplier)
}

// ListSuppliers handles GET /suppliers
func (h *SupplierHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.listHandler.Handle(query.ListSuppliersQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list suppliers")
		respondError(w, http.StatusInternalServerError, "Failed to list suppliers")
		return
	}

	respondJSON(w, http.StatusOK, suppliers)
}

// GetSupplier handles GET /suppliers/{id}
func (h *SupplierHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid supplier ID")
		return
	}

	supplier, err := h.getHandler.Handle(query.GetSupplierQuery{ID: id})
	if err != nil {
		respondError(w, http.StatusNotFound, "Supplier not found")
		return
	}

	respondJSON(w, http.StatusOK, supplier)
}

// UpdateSupplier handles PATCH /suppliers/{id}
func (h *SupplierHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid supplier ID")
		return
	}

	var req struct {
		CompanyName *string `json:"companyName"`
		ContactName *string `json:"contactName"`
		Phone       *string `json:"phone"`
		Email       *string `json:"email"`
		IsActive    *bool   `json:"isActive"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	supplier, err := h.updateHandler.Handle(command.UpdateSupplierCommand{
		ID:          id,
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		IsActive:    req.IsActive,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update supplier")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, supplier)
}

// DeactivateSupplier handles DELETE /suppliers/{id}
func (h *SupplierHandler) DeactivateSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid supplier ID")
		return
	}

	if err := h.deactivateHandler.Handle(command.DeactivateSupplierCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to deactivate supplier")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Supplier deactivated"})
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

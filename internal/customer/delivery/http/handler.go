package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/minimarket/admin-api/internal/customer/domain"
	"github.com/minimarket/admin-api/internal/customer/usecase/command"
	"github.com/minimarket/admin-api/internal/customer/usecase/query"
	"github.com/minimarket/admin-api/internal/middleware"
	"github.com/minimarket/admin-api/pkg/logger"
)

// CustomerHandler handles HTTP requests for customers using CQRS pattern
type CustomerHandler struct {
	createHandler     *command.CreateCustomerHandler
	updateHandler     *command.UpdateCustomerHandler
	deactivateHandler *command.DeactivateCustomerHandler

	getHandler  *query.GetCustomerHandler
	listHandler *query.ListCustomersHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(repo domain.CustomerRepository, reg prometheus.Registerer) *CustomerHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "customer_requests_total",
			Help: "Total number of customer requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "customer_request_duration_seconds",
			Help:    "Duration of customer requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	reg.MustRegister(requestCounter, requestLatency)

	return &CustomerHandler{
		createHandler:     command.NewCreateCustomerHandler(repo),
		updateHandler:     command.NewUpdateCustomerHandler(repo),
		deactivateHandler: command.NewDeactivateCustomerHandler(repo),
		getHandler:        query.NewGetCustomerHandler(repo),
		listHandler:       query.NewListCustomersHandler(repo),
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

func (h *CustomerHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the customer routes
func (h *CustomerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/customers", h.metricsMiddleware("/customers", middleware.Auth(h.ListCustomers))).Methods("GET")
	router.HandleFunc("/customers/{id}", h.metricsMiddleware("/customers/{id}", middleware.Auth(h.GetCustomer))).Methods("GET")
	router.HandleFunc("/customers", h.metricsMiddleware("/customers", middleware.Auth(h.CreateCustomer))).Methods("POST")
	router.HandleFunc("/customers/{id}", h.metricsMiddleware("/customers/{id}", middleware.Auth(h.UpdateCustomer))).Methods("PATCH")
	router.HandleFunc("/customers/{id}", h.metricsMiddleware("/customers/{id}", middleware.Auth(h.DeactivateCustomer))).Methods("DELETE")
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.createHandler.Handle(command.CreateCustomerCommand{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create customer")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, customer)
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.listHandler.Handle(query.ListCustomersQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list customers")
		respondError(w, http.StatusInternalServerError, "Failed to list customers")
		return
	}

	respondJSON(w, http.StatusOK, customers)
}

// GetCustomer handles GET /customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	customer, err := h.getHandler.Handle(query.GetCustomerQuery{ID: id})
	if err != nil {
		respondError(w, http.StatusNotFound, "Customer not found")
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// UpdateCustomer handles PATCH /customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var req struct {
		FullName *string `json:"fullName"`
		Email    *string `json:"email"`
		Phone    *string `json:"phone"`
		IsActive *bool   `json:"isActive"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	customer, err := h.updateHandler.Handle(command.UpdateCustomerCommand{
		ID:       id,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update customer")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// DeactivateCustomer handles DELETE /customers/{id}
func (h *CustomerHandler) DeactivateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	if err := h.deactivateHandler.Handle(command.DeactivateCustomerCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to deactivate customer")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Customer deactivated"})
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

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/minimarket/admin-api/internal/middleware"
	"github.com/minimarket/admin-api/internal/shoppingcart/domain"
	"github.com/minimarket/admin-api/internal/shoppingcart/usecase/command"
	"github.com/minimarket/admin-api/internal/shoppingcart/usecase/query"
	"github.com/minimarket/admin-api/pkg/logger"
)

// CartHandler handles HTTP requests for shopping cart reservations
type CartHandler struct {
	createHandler     *command.CreateCartItemHandler
	updateHandler     *command.UpdateCartItemHandler
	deactivateHandler *command.DeactivateCartItemHandler

	listHandler *query.ListCartItemsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCartHandler creates a new shopping cart handler
func NewCartHandler(repo domain.ShoppingCartRepository, reg prometheus.Registerer) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopping_cart_requests_total",
			Help: "Total number of shopping cart requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shopping_cart_request_duration_seconds",
			Help:    "Duration of shopping cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	reg.MustRegister(requestCounter, requestLatency)

	return &CartHandler{
		createHandler:     command.NewCreateCartItemHandler(repo),
		updateHandler:     command.NewUpdateCartItemHandler(repo),
		deactivateHandler: command.NewDeactivateCartItemHandler(repo),
		listHandler:       query.NewListCartItemsHandler(repo),
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

func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the shopping cart routes
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/shopping-cart", h.metricsMiddleware("/shopping-cart", middleware.Auth(h.ListCartItems))).Methods("GET")
	router.HandleFunc("/shopping-cart", h.metricsMiddleware("/shopping-cart", middleware.Auth(h.CreateCartItem))).Methods("POST")
	router.HandleFunc("/shopping-cart/{id}", h.metricsMiddleware("/shopping-cart/{id}", middleware.Auth(h.UpdateCartItem))).Methods("PATCH")
	router.HandleFunc("/shopping-cart/{id}", h.metricsMiddleware("/shopping-cart/{id}", middleware.Auth(h.DeactivateCartItem))).Methods("DELETE")
}

// CreateCartItem handles POST /shopping-cart
func (h *CartHandler) CreateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID  uint `json:"productId"`
		CustomerID uint `json:"customerId"`
		Quantity   int  `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.createHandler.Handle(command.CreateCartItemCommand{
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create cart item")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// ListCartItems handles GET /shopping-cart
func (h *CartHandler) ListCartItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.listHandler.Handle(query.ListCartItemsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list cart items")
		respondError(w, http.StatusInternalServerError, "Failed to list cart items")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// UpdateCartItem handles PATCH /shopping-cart/{id}
func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	var req struct {
		ProductID  *uint `json:"productId"`
		CustomerID *uint `json:"customerId"`
		Quantity   *int  `json:"quantity"`
		IsActive   *bool `json:"isActive"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.updateHandler.Handle(command.UpdateCartItemCommand{
		ID:         id,
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
		Quantity:   req.Quantity,
		IsActive:   req.IsActive,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update cart item")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// DeactivateCartItem handles DELETE /shopping-cart/{id}
func (h *CartHandler) DeactivateCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	if err := h.deactivateHandler.Handle(command.DeactivateCartItemCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to deactivate cart item")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Cart item removed"})
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

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/minimarket/admin-api/internal/middleware"
	"github.com/minimarket/admin-api/internal/purchase/domain"
	"github.com/minimarket/admin-api/internal/purchase/usecase/command"
	"github.com/minimarket/admin-api/internal/purchase/usecase/query"
	"github.com/minimarket/admin-api/pkg/logger"
)

// PurchaseHandler handles HTTP requests for purchases using CQRS pattern
type PurchaseHandler struct {
	createHandler *command.CreatePurchaseHandler
	annulHandler  *command.AnnulPurchaseHandler

	getHandler     *query.GetPurchaseHandler
	listHandler    *query.ListPurchasesHandler
	receiptHandler *query.GetReceiptHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	salesTotal     prometheus.Counter
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(
	createHandler *command.CreatePurchaseHandler,
	annulHandler *command.AnnulPurchaseHandler,
	getHandler *query.GetPurchaseHandler,
	listHandler *query.ListPurchasesHandler,
	receiptHandler *query.GetReceiptHandler,
	reg prometheus.Registerer,
) *PurchaseHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "purchase_requests_total",
			Help: "Total number of purchase requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "purchase_request_duration_seconds",
			Help:    "Duration of purchase requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	salesTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_amount_total",
			Help: "Accumulated amount of registered sales",
		},
	)

	reg.MustRegister(requestCounter, requestLatency, salesTotal)

	return &PurchaseHandler{
		createHandler:  createHandler,
		annulHandler:   annulHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
		receiptHandler: receiptHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		salesTotal:     salesTotal,
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

func (h *PurchaseHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the purchase routes
func (h *PurchaseHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/purchases", h.metricsMiddleware("/purchases", middleware.Auth(h.ListPurchases))).Methods("GET")
	router.HandleFunc("/purchases/{id}", h.metricsMiddleware("/purchases/{id}", middleware.Auth(h.GetPurchase))).Methods("GET")
	router.HandleFunc("/purchases/{id}/receipt", h.metricsMiddleware("/purchases/{id}/receipt", middleware.Auth(h.GetReceipt))).Methods("GET")
	router.HandleFunc("/purchases", h.metricsMiddleware("/purchases", middleware.Auth(h.CreatePurchase))).Methods("POST")
	router.HandleFunc("/purchases/{id}", h.metricsMiddleware("/purchases/{id}", middleware.Auth(h.AnnulPurchase))).Methods("DELETE")
}

// CreatePurchase handles POST /purchases
func (h *PurchaseHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var input domain.CreatePurchaseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	purchase, err := h.createHandler.Handle(r.Context(), command.CreatePurchaseCommand{Input: input})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to create purchase")
		respondError(w, purchaseErrorStatus(err), err.Error())
		return
	}

	h.salesTotal.Add(purchase.Total)

	respondJSON(w, http.StatusCreated, purchase)
}

// ListPurchases handles GET /purchases
func (h *PurchaseHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.listHandler.Handle(query.ListPurchasesQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list purchases")
		respondError(w, http.StatusInternalServerError, "Failed to list purchases")
		return
	}

	respondJSON(w, http.StatusOK, purchases)
}

// GetPurchase handles GET /purchases/{id}
func (h *PurchaseHandler) GetPurchase(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid purchase ID")
		return
	}

	purchase, err := h.getHandler.Handle(query.GetPurchaseQuery{ID: id})
	if err != nil {
		respondError(w, http.StatusNotFound, "Purchase not found")
		return
	}

	respondJSON(w, http.StatusOK, purchase)
}

// GetReceipt handles GET /purchases/{id}/receipt
func (h *PurchaseHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid purchase ID")
		return
	}

	receipt, err := h.receiptHandler.Handle(query.GetReceiptQuery{PurchaseID: id})
	if err != nil {
		respondError(w, http.StatusNotFound, "Purchase not found")
		return
	}

	respondJSON(w, http.StatusOK, receipt)
}

// AnnulPurchase handles DELETE /purchases/{id}
func (h *PurchaseHandler) AnnulPurchase(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid purchase ID")
		return
	}

	if _, err := h.annulHandler.Handle(r.Context(), command.AnnulPurchaseCommand{ID: id}); err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to annul purchase")
		respondError(w, purchaseErrorStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Purchase annulled"})
}

// purchaseErrorStatus maps domain errors onto HTTP status codes
func purchaseErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrPurchaseNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrAlreadyAnnulled),
		errors.Is(err, domain.ErrProductNotSellable):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
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

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/minimarket/admin-api/internal/middleware"
	"github.com/minimarket/admin-api/internal/user/domain"
	"github.com/minimarket/admin-api/internal/user/usecase/command"
	"github.com/minimarket/admin-api/internal/user/usecase/query"
	"github.com/minimarket/admin-api/pkg/logger"
)

// UserHandler handles HTTP requests for users and authentication.
// Everything except login is restricted to admins.
type UserHandler struct {
	createHandler     *command.CreateUserHandler
	updateHandler     *command.UpdateUserHandler
	deactivateHandler *command.DeactivateUserHandler
	loginHandler      *command.LoginUserHandler

	listHandler *query.ListUsersHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	loginAttempts  *prometheus.CounterVec
}

// NewUserHandler creates a new user handler
func NewUserHandler(repo domain.UserRepository, reg prometheus.Registerer) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_requests_total",
			Help: "Total number of user requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "user_request_duration_seconds",
			Help:    "Duration of user requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	loginAttempts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"},
	)

	reg.MustRegister(requestCounter, requestLatency, loginAttempts)

	return &UserHandler{
		createHandler:     command.NewCreateUserHandler(repo),
		updateHandler:     command.NewUpdateUserHandler(repo),
		deactivateHandler: command.NewDeactivateUserHandler(repo),
		loginHandler:      command.NewLoginUserHandler(repo),
		listHandler:       query.NewListUsersHandler(repo),
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
		loginAttempts:     loginAttempts,
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

func (h *UserHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the user and auth routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/login", h.metricsMiddleware("/auth/login", h.Login)).Methods("POST")

	router.HandleFunc("/users", h.metricsMiddleware("/users", middleware.Admin(h.ListUsers))).Methods("GET")
	router.HandleFunc("/users", h.metricsMiddleware("/users", middleware.Admin(h.CreateUser))).Methods("POST")
	router.HandleFunc("/users/{id}", h.metricsMiddleware("/users/{id}", middleware.Admin(h.UpdateUser))).Methods("PATCH")
	router.HandleFunc("/users/{id}", h.metricsMiddleware("/users/{id}", middleware.Admin(h.DeactivateUser))).Methods("DELETE")
}

// Login handles POST /auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.loginHandler.Handle(command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.loginAttempts.WithLabelValues("failure").Inc()
		logger.Logger.Warn().Str("email", req.Email).Msg("Login failed")
		respondJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"ok":      false,
			"status":  http.StatusUnauthorized,
			"message": err.Error(),
		})
		return
	}

	h.loginAttempts.WithLabelValues("success").Inc()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"status":  http.StatusOK,
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.createHandler.Handle(command.CreateUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create user")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.listHandler.Handle(query.ListUsersQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list users")
		respondError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// UpdateUser handles PATCH /users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Role     *string `json:"role"`
		IsActive *bool   `json:"isActive"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.updateHandler.Handle(command.UpdateUserCommand{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update user")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// DeactivateUser handles DELETE /users/{id}
func (h *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.deactivateHandler.Handle(command.DeactivateUserCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to deactivate user")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "User deactivated"})
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

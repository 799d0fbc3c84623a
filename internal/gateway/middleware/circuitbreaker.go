package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/minimarket/admin-api/pkg/logger"
)

const (
	failureThreshold = 5
	openDuration     = 30 * time.Second
)

// CircuitBreaker stops forwarding to an upstream that keeps failing,
// giving it a window to recover instead of piling on requests.
type CircuitBreaker struct {
	mu       sync.Mutex
	failures int
	openedAt time.Time
}

// NewCircuitBreaker creates a closed circuit breaker.
func NewCircuitBreaker() *CircuitBreaker {
	return &CircuitBreaker{}
}

// Middleware returns the circuit breaker middleware
func (cb *CircuitBreaker) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cb.isOpen() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Admin API temporarily unavailable",
			})
		}

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil || status == fiber.StatusBadGateway || status == fiber.StatusGatewayTimeout {
			cb.recordFailure()
		} else {
			cb.recordSuccess()
		}

		return err
	}
}

func (cb *CircuitBreaker) isOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.openedAt.IsZero() {
		return false
	}
	if time.Since(cb.openedAt) > openDuration {
		// Half-open: let the next request probe the upstream
		cb.openedAt = time.Time{}
		cb.failures = failureThreshold - 1
		return false
	}
	return true
}

func (cb *CircuitBreaker) recordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures++
	if cb.failures >= failureThreshold && cb.openedAt.IsZero() {
		cb.openedAt = time.Now()
		logger.Logger.Warn().
			Int("failures", cb.failures).
			Dur("open_for", openDuration).
			Msg("Circuit breaker opened")
	}
}

func (cb *CircuitBreaker) recordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures = 0
	cb.openedAt = time.Time{}
}

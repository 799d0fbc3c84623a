package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBreakerApp(upstreamStatus *int) *fiber.App {
	app := fiber.New()
	app.Use(NewCircuitBreaker().Middleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(*upstreamStatus)
	})
	return app
}

func TestCircuitBreaker_StaysClosedOnSuccess(t *testing.T) {
	status := fiber.StatusOK
	app := newBreakerApp(&status)

	for i := 0; i < 10; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	status := fiber.StatusBadGateway
	app := newBreakerApp(&status)

	for i := 0; i < failureThreshold; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	}

	// Threshold reached: requests are rejected without hitting the upstream
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	status := fiber.StatusBadGateway
	app := newBreakerApp(&status)

	for i := 0; i < failureThreshold-1; i++ {
		_, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
	}

	status = fiber.StatusOK
	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	// The earlier failures no longer count toward the threshold
	status = fiber.StatusBadGateway
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestCircuitBreaker_HalfOpenAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker()
	for i := 0; i < failureThreshold; i++ {
		cb.recordFailure()
	}
	require.True(t, cb.isOpen())

	// Simulate the open window elapsing
	cb.mu.Lock()
	cb.openedAt = cb.openedAt.Add(-openDuration * 2)
	cb.mu.Unlock()

	assert.False(t, cb.isOpen())

	// A single probe failure re-opens the breaker immediately
	cb.recordFailure()
	assert.True(t, cb.isOpen())
}

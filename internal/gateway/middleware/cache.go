package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/minimarket/admin-api/pkg/logger"
)

// Read responses change whenever a sale or edit lands, so the cache
// window stays short.
const cacheTTL = 30 * time.Second

// Cache caches successful GET responses in Redis. The token is part
// of the key so users never see each other's responses.
func Cache(redisClient *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redisClient == nil || c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := cacheKey(c)
		ctx := context.Background()

		if cached, err := redisClient.Get(ctx, key).Bytes(); err == nil && len(cached) > 0 {
			c.Set("X-Cache", "HIT")
			c.Set("Content-Type", "application/json")
			return c.Send(cached)
		}

		err := c.Next()

		if c.Response().StatusCode() == fiber.StatusOK {
			body := c.Response().Body()
			if setErr := redisClient.Set(ctx, key, body, cacheTTL).Err(); setErr != nil {
				logger.Logger.Warn().
					Err(setErr).
					Str("path", c.Path()).
					Msg("Failed to cache response")
			} else {
				c.Set("X-Cache", "MISS")
			}
		}

		return err
	}
}

func cacheKey(c *fiber.Ctx) string {
	raw := fmt.Sprintf("%s:%s:%s",
		c.Path(),
		string(c.Request().URI().QueryString()),
		c.Get("Authorization"),
	)
	hash := sha256.Sum256([]byte(raw))
	return "gateway:cache:" + hex.EncodeToString(hash[:])
}

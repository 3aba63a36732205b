// Package auth provides the API key gate for the Fiber app.
package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Config holds configuration for the auth middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables the gate.
	ApiKey string
}

// New returns a middleware that rejects requests without the configured
// API key. The key is accepted from the X-Api-Key header or the api_key
// query parameter.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}

		key := c.Get("X-Api-Key")
		if key == "" {
			key = c.Query("api_key")
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		return c.Next()
	}
}

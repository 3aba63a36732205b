package auth_test

import (
	"net/http/httptest"
	"testing"

	"payment-reconciler/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		header     string
		query      string
		wantStatus int
	}{
		{"No key configured passes", "", "", "", fiber.StatusOK},
		{"Valid header key", "secret", "secret", "", fiber.StatusOK},
		{"Valid query key", "secret", "", "secret", fiber.StatusOK},
		{"Missing key rejected", "secret", "", "", fiber.StatusUnauthorized},
		{"Wrong key rejected", "secret", "nope", "", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(tt.apiKey)

			target := "/"
			if tt.query != "" {
				target = "/?api_key=" + tt.query
			}
			req := httptest.NewRequest("GET", target, nil)
			if tt.header != "" {
				req.Header.Set("X-Api-Key", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

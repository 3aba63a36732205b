// Package rayid provides request correlation IDs for the Fiber app.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header the ray ID is read from and echoed back on.
const HeaderName = "X-Ray-ID"

// New returns a middleware that ensures every request carries a ray ID.
// An incoming ID is honored so upstream callers can correlate; otherwise
// a fresh UUID is assigned.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}

package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request id.
const HeaderName = "X-Request-ID"

// New returns a middleware that assigns every request a unique id.
// The id is stored in c.Locals("request_id") for log correlation and echoed
// in the response header. An incoming X-Request-ID is preserved.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("request_id", rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}

package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the request's RayID.
const HeaderName = "X-Ray-Id"

// New creates a middleware that assigns a RayID to every request.
// An incoming RayID header is honored so upstream proxies can correlate,
// otherwise a fresh UUID is generated. The id is stored in Locals under
// "ray_id" and echoed on the response.
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

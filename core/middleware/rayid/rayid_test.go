package rayid_test

import (
	"net/http/httptest"
	"testing"

	"common-games/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		rid, _ := c.Locals("ray_id").(string)
		return c.SendString(rid)
	})
	return app
}

func TestRayID(t *testing.T) {
	t.Run("Generated When Absent", func(t *testing.T) {
		app := setupApp()

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))
	})

	t.Run("Incoming Id Is Honored", func(t *testing.T) {
		app := setupApp()

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.HeaderName, "upstream-ray-id")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "upstream-ray-id", resp.Header.Get(rayid.HeaderName))
	})
}

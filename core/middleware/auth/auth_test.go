package auth_test

import (
	"net/http/httptest"
	"testing"

	"common-games/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuth(t *testing.T) {
	t.Run("Valid Key", func(t *testing.T) {
		app := setupApp("secret")

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(auth.HeaderName, "secret")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Wrong Key", func(t *testing.T) {
		app := setupApp("secret")

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(auth.HeaderName, "wrong")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Missing Key", func(t *testing.T) {
		app := setupApp("secret")

		req := httptest.NewRequest("GET", "/", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("Auth Disabled", func(t *testing.T) {
		app := setupApp("")

		req := httptest.NewRequest("GET", "/", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}

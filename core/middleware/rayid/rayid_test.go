package rayid

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Generates an id when absent", func(t *testing.T) {
		app := fiber.New()
		app.Use(New())
		var local string
		app.Get("/", func(c *fiber.Ctx) error {
			local, _ = c.Locals("ray_id").(string)
			return nil
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, local)
		assert.Equal(t, local, resp.Header.Get(Header))
	})

	t.Run("Honors an incoming id", func(t *testing.T) {
		app := fiber.New()
		app.Use(New())
		app.Get("/", func(c *fiber.Ctx) error { return nil })

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(Header, "upstream-123")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "upstream-123", resp.Header.Get(Header))
	})
}

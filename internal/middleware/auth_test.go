package middleware

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"chirp/internal/models"
	"chirp/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRequired(t *testing.T) {
	codec := session.NewCodec(false, "test-secret")

	app := fiber.New()
	app.Get("/protected", SessionRequired(codec), func(c *fiber.Ctx) error {
		profile := SessionProfile(c)
		return c.SendString(fmt.Sprintf("%d:%s", profile.ID, profile.Name))
	})

	t.Run("No Cookie", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
	})

	t.Run("Invalid Cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "garbage"})

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
	})

	t.Run("Valid Cookie", func(t *testing.T) {
		value, err := codec.Encode(models.Profile{ID: 5, Name: "Alice", Email: "a@x.com"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: value})

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "5:Alice", string(body))
	})
}

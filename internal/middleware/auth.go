package middleware

import (
	"chirp/internal/models"
	"chirp/internal/session"

	"github.com/gofiber/fiber/v2"
)

// SessionRequired enforces a valid session cookie for protected pages.
// Requests without one are redirected to the login page rather than given an
// error page. On success the session profile is stored in Locals for
// handlers and the logging context.
func SessionRequired(codec *session.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile := codec.Read(c)
		if profile == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		c.Locals("userID", profile.ID)
		c.Locals("profile", *profile)
		return c.Next()
	}
}

// SessionProfile returns the profile placed in Locals by SessionRequired.
func SessionProfile(c *fiber.Ctx) models.Profile {
	profile, _ := c.Locals("profile").(models.Profile)
	return profile
}

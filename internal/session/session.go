// Package session implements the signed session cookie carrying the
// authenticated user's public profile.
package session

import (
	"time"

	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/securecookie"
)

// CookieName is the name of the session cookie.
const CookieName = "auth_session"

// MaxAge is the session lifetime: 24 hours from issuance or until explicit
// destroy.
const MaxAge = 24 * time.Hour

// Codec encodes and decodes the session cookie value. The payload is
// integrity-protected with an HMAC keyed by the server-side secret; a value
// that was not produced by Encode decodes to "no session", never to an error
// the user sees.
type Codec struct {
	codecs []securecookie.Codec
	secure bool
}

// NewCodec builds a codec from one or more secrets. Multiple secrets form a
// rotation chain: the first signs new cookies, the rest still verify old
// ones. The application currently configures exactly one.
func NewCodec(secure bool, secrets ...string) *Codec {
	codecs := make([]securecookie.Codec, 0, len(secrets))
	for _, s := range secrets {
		sc := securecookie.New([]byte(s), nil)
		sc.MaxAge(int(MaxAge.Seconds()))
		codecs = append(codecs, sc)
	}
	return &Codec{codecs: codecs, secure: secure}
}

// Encode serializes a profile into a signed cookie value.
func (c *Codec) Encode(profile models.Profile) (string, error) {
	return securecookie.EncodeMulti(CookieName, profile, c.codecs...)
}

// Decode parses a cookie value back into a profile. Tampered, expired or
// otherwise undecodable values yield nil.
func (c *Codec) Decode(value string) *models.Profile {
	if value == "" {
		return nil
	}
	var profile models.Profile
	if err := securecookie.DecodeMulti(CookieName, value, &profile, c.codecs...); err != nil {
		return nil
	}
	return &profile
}

// Issue writes a session cookie for the given profile onto the response.
func (c *Codec) Issue(ctx *fiber.Ctx, profile models.Profile) error {
	value, err := c.Encode(profile)
	if err != nil {
		return err
	}
	ctx.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(MaxAge.Seconds()),
		Expires:  time.Now().Add(MaxAge),
		HTTPOnly: true,
		Secure:   c.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// Read returns the profile carried by the request's session cookie, or nil
// when there is no valid session.
func (c *Codec) Read(ctx *fiber.Ctx) *models.Profile {
	return c.Decode(ctx.Cookies(CookieName))
}

// Destroy expires the session cookie.
func (c *Codec) Destroy(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   c.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

package server

import (
	"errors"
	"strings"

	"chirp/internal/middleware"
	"chirp/internal/models"
	"chirp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SignupPage handles GET /signup. Logged-in users are sent home.
func (s *Server) SignupPage(c *fiber.Ctx) error {
	if s.sessions.Read(c) != nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Render("signup", fiber.Map{
		"Title":  "Sign up",
		"Errors": fiber.Map{},
		"Form":   fiber.Map{"name": "", "email": ""},
	})
}

// Signup handles POST /signup: validate the form, register the account, log
// the new user in and send them home. Validation failures and a taken email
// re-render the form with inline messages.
func (s *Server) Signup(c *fiber.Ctx) error {
	if s.sessions.Read(c) != nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	renderForm := func(status int, formError string, fieldErrors fiber.Map) error {
		return c.Status(status).Render("signup", fiber.Map{
			"Title":     "Sign up",
			"FormError": formError,
			"Errors":    fieldErrors,
			"Form":      fiber.Map{"name": name, "email": email},
		})
	}

	if err := service.ValidateSignup(name, email, password); err != nil {
		return renderForm(fiber.StatusBadRequest, "", fiber.Map{models.ErrorField(err): err.Error()})
	}

	profile, err := s.authService.Register(c.UserContext(), name, email, password)
	if err != nil {
		if models.ErrorCode(err) == models.CodeEmailTaken {
			return renderForm(fiber.StatusConflict, err.Error(), fiber.Map{})
		}
		middleware.Logger.ErrorContext(c.UserContext(), "signup failed", "error", err.Error())
		return renderForm(fiber.StatusInternalServerError, "Something went wrong. Please try again.", fiber.Map{})
	}

	if err := s.sessions.Issue(c, *profile); err != nil {
		return models.NewInternalError(err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// LoginPage handles GET /login. Logged-in users are sent home.
func (s *Server) LoginPage(c *fiber.Ctx) error {
	if s.sessions.Read(c) != nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Render("login", fiber.Map{
		"Title":  "Log in",
		"Errors": fiber.Map{},
		"Form":   fiber.Map{"email": ""},
	})
}

// Login handles POST /login. Invalid credentials become a form-level message
// with deliberately generic wording; they are never a server fault.
func (s *Server) Login(c *fiber.Ctx) error {
	if s.sessions.Read(c) != nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	renderForm := func(status int, formError string, fieldErrors fiber.Map) error {
		return c.Status(status).Render("login", fiber.Map{
			"Title":     "Log in",
			"FormError": formError,
			"Errors":    fieldErrors,
			"Form":      fiber.Map{"email": email},
		})
	}

	if err := service.ValidateLogin(email, password); err != nil {
		return renderForm(fiber.StatusBadRequest, "", fiber.Map{models.ErrorField(err): err.Error()})
	}

	profile, err := s.authService.Authenticate(c.UserContext(), email, password)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeInvalidCredentials {
			return renderForm(fiber.StatusUnauthorized, appErr.Message, fiber.Map{})
		}
		middleware.Logger.ErrorContext(c.UserContext(), "login failed", "error", err.Error())
		return renderForm(fiber.StatusInternalServerError, "Something went wrong. Please try again.", fiber.Map{})
	}

	if err := s.sessions.Issue(c, *profile); err != nil {
		return models.NewInternalError(err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// HomePage handles GET /: greets the session user and links to the feed and
// the name-edit page.
func (s *Server) HomePage(c *fiber.Ctx) error {
	profile := middleware.SessionProfile(c)
	return c.Render("home", fiber.Map{
		"Title": "Home",
		"User":  profile,
	})
}

// Logout handles POST /: destroy the session cookie and return to the login
// page.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.sessions.Destroy(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

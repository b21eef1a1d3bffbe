package server

import (
	"strconv"
	"strings"

	"chirp/internal/middleware"
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// EditPage handles GET /:id/edit. Only the session's own id may be edited;
// an unknown id is a 404, someone else's id is a silent redirect home.
func (s *Server) EditPage(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return fiber.ErrNotFound
	}

	user, err := s.userService.GetUser(c.UserContext(), uint(id))
	if err != nil {
		if models.ErrorCode(err) == models.CodeNotFound {
			return fiber.ErrNotFound
		}
		return fiber.ErrInternalServerError
	}

	if middleware.SessionProfile(c).ID != user.ID {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	return c.Render("edit", fiber.Map{
		"Title":  "Edit name",
		"ID":     user.ID,
		"Name":   user.Name,
		"Errors": fiber.Map{},
	})
}

// Edit handles POST /:id/edit: rename the user, refresh the session cookie
// so the new name shows up immediately, and go home.
func (s *Server) Edit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return fiber.ErrNotFound
	}

	profile := middleware.SessionProfile(c)
	if profile.ID != uint(id) {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	name := strings.TrimSpace(c.FormValue("name"))

	user, err := s.userService.Rename(c.UserContext(), uint(id), name)
	if err != nil {
		switch models.ErrorCode(err) {
		case models.CodeValidation:
			return c.Status(fiber.StatusBadRequest).Render("edit", fiber.Map{
				"Title":  "Edit name",
				"ID":     uint(id),
				"Name":   name,
				"Errors": fiber.Map{models.ErrorField(err): err.Error()},
			})
		case models.CodeNotFound:
			return fiber.ErrNotFound
		default:
			middleware.Logger.ErrorContext(c.UserContext(), "rename failed", "error", err.Error())
			return fiber.ErrInternalServerError
		}
	}

	// The session payload carries the name; re-issue so this session sees
	// the rename without logging in again.
	if err := s.sessions.Issue(c, user.Profile()); err != nil {
		return models.NewInternalError(err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

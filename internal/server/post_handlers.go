package server

import (
	"strconv"

	"chirp/internal/middleware"
	"chirp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FeedPage handles GET /post: the ten most recent posts with author, like
// count and the viewer's liked flag, plus the create-post form.
func (s *Server) FeedPage(c *fiber.Ctx) error {
	profile := middleware.SessionProfile(c)

	posts, err := s.postService.ListRecent(c.UserContext(), profile.ID)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "feed load failed", "error", err.Error())
		return fiber.ErrInternalServerError
	}

	return c.Render("post", fiber.Map{
		"Title":  "Posts",
		"User":   profile,
		"Posts":  posts,
		"Errors": fiber.Map{},
		"Form":   fiber.Map{"content": ""},
	})
}

// PostAction handles POST /post. The form carries a hidden "intent" field
// that selects between creating a post and toggling a like.
func (s *Server) PostAction(c *fiber.Ctx) error {
	switch c.FormValue("intent") {
	case "createPost":
		return s.createPost(c)
	case "likePost":
		return s.likePost(c)
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unknown intent")
	}
}

func (s *Server) createPost(c *fiber.Ctx) error {
	profile := middleware.SessionProfile(c)
	content := c.FormValue("content")

	if _, err := s.postService.CreatePost(c.UserContext(), profile.ID, content); err != nil {
		if models.ErrorCode(err) == models.CodeValidation {
			return s.renderFeedWithError(c, fiber.StatusBadRequest, err, content)
		}
		middleware.Logger.ErrorContext(c.UserContext(), "create post failed", "error", err.Error())
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/post", fiber.StatusSeeOther)
}

func (s *Server) likePost(c *fiber.Ctx) error {
	profile := middleware.SessionProfile(c)

	postID, err := strconv.ParseUint(c.FormValue("postId"), 10, 32)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "postId must be numeric")
	}

	if _, err := s.postService.ToggleLike(c.UserContext(), profile.ID, uint(postID)); err != nil {
		if models.ErrorCode(err) == models.CodeNotFound {
			return fiber.ErrNotFound
		}
		middleware.Logger.ErrorContext(c.UserContext(), "toggle like failed", "error", err.Error())
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/post", fiber.StatusSeeOther)
}

// renderFeedWithError re-renders the feed page with an inline message next
// to the create-post form, keeping the submitted content.
func (s *Server) renderFeedWithError(c *fiber.Ctx, status int, formErr error, content string) error {
	profile := middleware.SessionProfile(c)

	posts, err := s.postService.ListRecent(c.UserContext(), profile.ID)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "feed load failed", "error", err.Error())
		return fiber.ErrInternalServerError
	}

	return c.Status(status).Render("post", fiber.Map{
		"Title":  "Posts",
		"User":   profile,
		"Posts":  posts,
		"Errors": fiber.Map{models.ErrorField(formErr): formErr.Error()},
		"Form":   fiber.Map{"content": content},
	})
}

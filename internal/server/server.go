// Package server wires configuration, storage, services and HTTP handlers
// together and registers the page routes.
package server

import (
	"fmt"

	"chirp/internal/config"
	"chirp/internal/database"
	"chirp/internal/middleware"
	"chirp/internal/repository"
	"chirp/internal/service"
	"chirp/internal/session"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	sessions       *session.Codec
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	authService    *service.AuthService
	postService    *service.PostService
	userService    *service.UserService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db), nil
}

// NewServerWithDeps creates a Server using an already-initialized database
// handle. Use this in tests.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) *Server {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	return &Server{
		config:         cfg,
		db:             db,
		sessions:       session.NewCodec(cfg.IsProduction(), cfg.SessionSecret),
		promMiddleware: fiberprometheus.New("chirp"),
		userRepo:       userRepo,
		postRepo:       postRepo,
		authService:    service.NewAuthService(userRepo),
		postService:    service.NewPostService(postRepo),
		userService:    service.NewUserService(userRepo),
	}
}

// Sessions exposes the session codec for the composition root and tests.
func (s *Server) Sessions() *session.Codec {
	return s.sessions
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID into logs
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())
}

// SetupRoutes registers the page routes.
func (s *Server) SetupRoutes(app *fiber.App) {
	authed := middleware.SessionRequired(s.sessions)

	app.Get("/", authed, s.HomePage)
	app.Post("/", authed, s.Logout)

	app.Get("/signup", s.SignupPage)
	app.Post("/signup", s.Signup)
	app.Get("/login", s.LoginPage)
	app.Post("/login", s.Login)

	app.Get("/post", authed, s.FeedPage)
	app.Post("/post", authed, s.PostAction)

	app.Get("/:id/edit", authed, s.EditPage)
	app.Post("/:id/edit", authed, s.Edit)
}

// Shutdown releases server-held resources.
func (s *Server) Shutdown() error {
	if s.db != nil {
		return database.Close(s.db)
	}
	return nil
}

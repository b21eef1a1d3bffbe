// Package service holds the application's business logic between the HTTP
// handlers and the repositories.
package service

import (
	"context"
	"log/slog"

	"chirp/internal/middleware"
	"chirp/internal/models"
	"chirp/internal/observability"
	"chirp/internal/repository"
	"chirp/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt cost factor, fixed at account creation time.
const hashCost = 10

// AuthService verifies credentials and registers new accounts. It is the
// only component that ever sees a password or its hash.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new account and returns its public profile. A taken
// email fails with EMAIL_TAKEN before any hash work is done; no row is
// created on failure.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.Profile, error) {
	// The form layer validates first; re-check defensively.
	if name == "" || email == "" || password == "" {
		return nil, models.NewValidationError("", "name, email and password are required")
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewEmailTakenError()
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	observability.SignupsTotal.Inc()
	middleware.Logger.InfoContext(ctx, "user registered", slog.Uint64("id", uint64(user.ID)))

	profile := user.Profile()
	return &profile, nil
}

// Authenticate checks an email/password pair and returns the matching
// user's public profile. A missing user and a wrong password collapse into
// the same generic failure so the response never reveals which part was
// wrong.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.Profile, error) {
	if email == "" || password == "" {
		return nil, models.NewInvalidCredentialsError()
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		observability.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, models.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		observability.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, models.NewInvalidCredentialsError()
	}

	observability.LoginsTotal.WithLabelValues("success").Inc()

	profile := user.Profile()
	return &profile, nil
}

// ValidateSignup runs the form-level checks for the signup form and returns
// the first failure as a field-level validation error.
func ValidateSignup(name, email, password string) error {
	if err := validation.ValidateName(name); err != nil {
		return models.NewValidationError("name", err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return models.NewValidationError("email", err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return models.NewValidationError("password", err.Error())
	}
	return nil
}

// ValidateLogin runs the form-level checks for the login form.
func ValidateLogin(email, password string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return models.NewValidationError("email", err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return models.NewValidationError("password", err.Error())
	}
	return nil
}

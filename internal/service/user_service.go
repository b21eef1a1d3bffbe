package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/repository"
	"chirp/internal/validation"
)

// UserService handles profile reads and the display-name edit path.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUser returns the user with the given id, or NOT_FOUND.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Rename updates a user's display name. The name is the only mutable user
// field; callers enforce that users rename only themselves.
func (s *UserService) Rename(ctx context.Context, id uint, name string) (*models.User, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, models.NewValidationError("name", err.Error())
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

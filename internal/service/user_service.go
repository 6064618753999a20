package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/l3blonde/grip-and-grin/internal/domain"
	"github.com/l3blonde/grip-and-grin/internal/logger"
	"github.com/l3blonde/grip-and-grin/internal/repository"
	"github.com/l3blonde/grip-and-grin/internal/validator"
)

// UserService handles profile reads and edits plus the admin user
// listing.
type UserService struct {
	users     repository.UserRepository
	validator *validator.Validator
}

// NewUserService creates a new UserService.
func NewUserService(users repository.UserRepository, v *validator.Validator) *UserService {
	return &UserService{users: users, validator: v}
}

// UpdateProfileInput carries a profile edit. Role, active flag, and
// password hash are not editable here and carry over from the stored
// account.
type UpdateProfileInput struct {
	UserID   int64
	Username string
	Email    string
}

// GetProfile returns the account with the given id or ErrNotFound.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// UpdateProfile changes the account's username and email. Both must be
// unique across other accounts; collisions with the account itself are
// allowed so re-submitting an unchanged profile succeeds.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*domain.User, error) {
	existing, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if err := s.validator.ValidateProfile(username, email); err != nil {
		return nil, err
	}

	byUsername, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if byUsername != nil && byUsername.ID != in.UserID {
		return nil, domain.NewValidationError("username", "username already exists")
	}

	byEmail, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if byEmail != nil && byEmail.ID != in.UserID {
		return nil, domain.NewValidationError("email", "email already exists")
	}

	updated := *existing
	updated.Username = username
	updated.Email = email

	saved, err := s.users.Save(ctx, updated)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	logger.InfoContext(ctx, "profile updated",
		slog.Int64("user_id", saved.ID),
		slog.String("username", saved.Username))
	return saved, nil
}

// ListUsers returns every account for the admin panel, oldest first.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

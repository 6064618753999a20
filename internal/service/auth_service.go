package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/l3blonde/grip-and-grin/internal/domain"
	"github.com/l3blonde/grip-and-grin/internal/logger"
	"github.com/l3blonde/grip-and-grin/internal/repository"
	"github.com/l3blonde/grip-and-grin/internal/validator"
)

// ErrInvalidCredentials is returned for any authentication failure that
// should not reveal whether the account exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles account registration and credential checks.
type AuthService struct {
	users     repository.UserRepository
	validator *validator.Validator
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, v *validator.Validator) *AuthService {
	return &AuthService{users: users, validator: v}
}

// Register creates a new active account with the default user role.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := s.validator.ValidateRegistration(username, email, password); err != nil {
		return nil, err
	}

	emailTaken, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if emailTaken {
		return nil, domain.NewValidationError("email", "email already exists")
	}

	usernameTaken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if usernameTaken {
		return nil, domain.NewValidationError("username", "username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Active:       true,
		CreatedAt:    time.Now(),
	}

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	logger.InfoContext(ctx, "user registered",
		slog.Int64("user_id", saved.ID),
		slog.String("username", saved.Username))
	return saved, nil
}

// Authenticate verifies credentials by email or username. Deactivated
// accounts are rejected with a distinct error; lookup and password
// failures both surface as ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, emailOrUsername, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, emailOrUsername)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		user, err = s.users.FindByUsername(ctx, emailOrUsername)
		if err != nil {
			return nil, fmt.Errorf("find user: %w", err)
		}
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Active {
		return nil, domain.NewValidationError("account", "account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/l3blonde/grip-and-grin/internal/domain"
	"github.com/l3blonde/grip-and-grin/internal/mocks"
	"github.com/l3blonde/grip-and-grin/internal/service"
	"github.com/l3blonde/grip-and-grin/internal/validator"
)

func newUserService(t *testing.T) (*service.UserService, *mocks.MockUserRepository) {
	users := mocks.NewMockUserRepository(t)
	return service.NewUserService(users, validator.NewValidator()), users
}

func storedAccount() *domain.User {
	return &domain.User{
		ID:           7,
		Username:     "angler",
		Email:        "angler@example.com",
		PasswordHash: "$2a$04$hash",
		Role:         domain.RoleEditor,
		Active:       true,
		CreatedAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the account", func(t *testing.T) {
		svc, users := newUserService(t)

		users.EXPECT().FindByID(mock.Anything, int64(7)).Return(storedAccount(), nil)

		user, err := svc.GetProfile(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "angler", user.Username)
	})

	t.Run("missing account returns ErrNotFound", func(t *testing.T) {
		svc, users := newUserService(t)

		users.EXPECT().FindByID(mock.Anything, int64(7)).Return(nil, nil)

		_, err := svc.GetProfile(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("changes username and email, keeping the rest", func(t *testing.T) {
		svc, users := newUserService(t)

		users.EXPECT().FindByID(mock.Anything, int64(7)).Return(storedAccount(), nil)
		users.EXPECT().FindByUsername(mock.Anything, "riverjack").Return(nil, nil)
		users.EXPECT().FindByEmail(mock.Anything, "jack@example.com").Return(nil, nil)

		var saved domain.User
		users.EXPECT().
			Save(mock.Anything, mock.AnythingOfType("domain.User")).
			RunAndReturn(func(_ context.Context, u domain.User) (*domain.User, error) {
				saved = u
				return &u, nil
			})

		user, err := svc.UpdateProfile(ctx, service.UpdateProfileInput{
			UserID:   7,
			Username: "  riverjack  ",
			Email:    "jack@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "riverjack", user.Username)
		assert.Equal(t, "jack@example.com", user.Email)

		// Everything not on the edit form carries over untouched.
		assert.Equal(t, domain.RoleEditor, saved.Role)
		assert.Equal(t, "$2a$04$hash", saved.PasswordHash)
		assert.True(t, saved.Active)
	})

	t.Run("resubmitting the unchanged profile succeeds", func(t *testing.T) {
		svc, users := newUserService(t)

		account := storedAccount()
		users.EXPECT().FindByID(mock.Anything, int64(7)).Return(account, nil)
		users.EXPECT().FindByUsername(mock.Anything, "angler").Return(account, nil)
		users.EXPECT().FindByEmail(mock.Anything, "angler@example.com").Return(account, nil)
		users.EXPECT().
			Save(mock.Anything, mock.AnythingOfType("domain.User")).
			RunAndReturn(func(_ context.Context, u domain.User) (*domain.User, error) {
				return &u, nil
			})

		_, err := svc.UpdateProfile(ctx, service.UpdateProfileInput{
			UserID:   7,
			Username: "angler",
			Email:    "angler@example.com",
		})
		assert.NoError(t, err)
	})

	t.Run("username owned by another account is rejected", func(t *testing.T) {
		svc, users := newUserService(t)

		users.EXPECT().FindByID(mock.Anything, int64(7)).Return(storedAccount(), nil)
		users.EXPECT().FindByUsername(mock.Anything, "riverjack").
			Return(&domain.User{ID: 99, Username: "riverjack"}, nil)

		_, err := svc.UpdateProfile(ctx, service.UpdateProfileInput{
			UserID:   7,
			Username: "riverjack",
			Email:    "angler@example.com",
		})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Contains(t, err.Error(), "username already exists")
	})

	t.Run("email owned by another account is rejected", func(t *testing.T) {
		svc, users := newUserService(t)

		users.EXPECT().FindByID(mock.Anything, int64(7)).Return(storedAccount(), nil)
		users.EXPECT().FindByUsername(mock.Anything, "angler").Return(storedAccount(), nil)
		users.EXPECT().FindByEmail(mock.Anything, "jack@example.com").
			Return(&domain.User{ID: 99, Email: "jack@example.com"}, nil)

		_, err := svc.UpdateProfile(ctx, service.UpdateProfileInput{
			UserID:   7,
			Username: "angler",
			Email:    "jack@example.com",
		})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Contains(t, err.Error(), "email already exists")
	})

	t.Run("invalid input is rejected before uniqueness lookups", func(t *testing.T) {
		svc, users := newUserService(t)

		users.EXPECT().FindByID(mock.Anything, int64(7)).Return(storedAccount(), nil)

		_, err := svc.UpdateProfile(ctx, service.UpdateProfileInput{
			UserID:   7,
			Username: "ab",
			Email:    "angler@example.com",
		})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("missing account returns ErrNotFound", func(t *testing.T) {
		svc, users := newUserService(t)

		users.EXPECT().FindByID(mock.Anything, int64(7)).Return(nil, nil)

		_, err := svc.UpdateProfile(ctx, service.UpdateProfileInput{
			UserID:   7,
			Username: "angler",
			Email:    "angler@example.com",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()

	svc, users := newUserService(t)
	users.EXPECT().FindAll(mock.Anything).Return([]domain.User{
		{ID: 1, Username: "admin", Role: domain.RoleAdmin},
		{ID: 2, Username: "angler", Role: domain.RoleUser},
	}, nil)

	list, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "admin", list[0].Username)
}

package repository

import (
	"context"

	"github.com/l3blonde/grip-and-grin/internal/domain"
)

// ArticleRepository defines persistence for article aggregates.
// Lookups return (nil, nil) when no row matches. Save inserts when the
// article carries the unsaved sentinel id (0) and updates otherwise,
// returning the persisted value with its id populated.
type ArticleRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Article, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Article, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Save(ctx context.Context, article domain.Article) (*domain.Article, error)
	Delete(ctx context.Context, id int64) error

	ListPublished(ctx context.Context, limit, offset int) ([]domain.Article, error)
	CountPublished(ctx context.Context) (int, error)
	ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]domain.Article, error)
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
	Search(ctx context.Context, query string, limit, offset int) ([]domain.Article, error)
	CountSearch(ctx context.Context, query string) (int, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Article, error)
	CountAll(ctx context.Context) (int, error)
}

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
}

// UserRepository defines methods for user data access. Save follows the
// same sentinel-id convention as ArticleRepository.Save.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Save(ctx context.Context, user domain.User) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

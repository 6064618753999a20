package service

import (
	"context"

	"github.com/l3blonde/grip-and-grin/internal/domain"
	"github.com/l3blonde/grip-and-grin/internal/images"
)

// ImagePipeline produces and removes stored featured-image variants.
// Implemented by images.Pipeline; abstracted here so lifecycle tests
// can run without a filesystem.
type ImagePipeline interface {
	Process(upload images.Upload, altText string) (*domain.Image, error)
	Delete(img domain.Image) error
}

// ArticleServiceInterface defines the article use cases.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// Create runs the create-article use case and returns the persisted
	// article with its id populated.
	Create(ctx context.Context, in CreateArticleInput) (*domain.Article, error)
	// Update runs the update-article use case against an existing article.
	Update(ctx context.Context, in UpdateArticleInput) (*domain.Article, error)
	// Delete removes an article and its featured-image files.
	Delete(ctx context.Context, id int64) error
	// GetBySlug returns a publicly visible article.
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	// ListPublished returns one page of the public feed.
	ListPublished(ctx context.Context, page int) (*ArticlePage, error)
	// Search returns one page of visible articles matching the query.
	Search(ctx context.Context, query string, page int) (*ArticlePage, error)
	// ListByCategory returns one page of visible articles in a category.
	ListByCategory(ctx context.Context, categorySlug string, page int) (*CategoryPage, error)
	// ListAll returns one page of articles in any status for the admin panel.
	ListAll(ctx context.Context, page int) (*ArticlePage, error)
	// ListCategories returns every category.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// AuthServiceInterface defines the account use cases.
// Used for dependency injection and mocking in tests.
type AuthServiceInterface interface {
	// Register creates a new account with the default user role.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Authenticate verifies credentials by email or username.
	Authenticate(ctx context.Context, emailOrUsername, password string) (*domain.User, error)
}

// UserServiceInterface defines the profile and user-administration use
// cases. Used for dependency injection and mocking in tests.
type UserServiceInterface interface {
	// GetProfile returns the account with the given id.
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
	// UpdateProfile changes the account's username and email.
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*domain.User, error)
	// ListUsers returns every account for the admin panel.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// ArticlePage is one page of an article listing plus pagination
// metadata.
type ArticlePage struct {
	Articles    []domain.Article
	CurrentPage int
	TotalPages  int
	TotalCount  int
}

// HasNext reports whether a later page exists.
func (p *ArticlePage) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

// HasPrevious reports whether an earlier page exists.
func (p *ArticlePage) HasPrevious() bool {
	return p.CurrentPage > 1
}

// CategoryPage is an ArticlePage scoped to one category.
type CategoryPage struct {
	ArticlePage
	Category *domain.Category
}

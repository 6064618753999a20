package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/l3blonde/grip-and-grin/internal/domain"
	"github.com/l3blonde/grip-and-grin/internal/images"
	"github.com/l3blonde/grip-and-grin/internal/logger"
	"github.com/l3blonde/grip-and-grin/internal/metrics"
	"github.com/l3blonde/grip-and-grin/internal/repository"
	"github.com/l3blonde/grip-and-grin/internal/slug"
	"github.com/l3blonde/grip-and-grin/internal/validator"
)

// ArticleService orchestrates the article lifecycle: field validation,
// slug generation, status transitions, image processing, and
// persistence dispatch.
type ArticleService struct {
	articles   repository.ArticleRepository
	categories repository.CategoryRepository
	pipeline   ImagePipeline
	validator  *validator.Validator
	pageSize   int
}

// NewArticleService creates a new ArticleService.
func NewArticleService(
	articles repository.ArticleRepository,
	categories repository.CategoryRepository,
	pipeline ImagePipeline,
	v *validator.Validator,
	pageSize int,
) *ArticleService {
	return &ArticleService{
		articles:   articles,
		categories: categories,
		pipeline:   pipeline,
		validator:  v,
		pageSize:   pageSize,
	}
}

// CreateArticleInput carries everything needed to create an article.
// Image is nil when no file was uploaded.
type CreateArticleInput struct {
	Title      string
	Content    string
	Excerpt    string
	AuthorID   int64
	CategoryID int64
	Status     string
	Image      *images.Upload
	ImageAlt   string
}

// UpdateArticleInput carries everything needed to update an article.
// RemoveImage deletes the current featured image; a new upload replaces
// whatever image remains after that.
type UpdateArticleInput struct {
	ID          int64
	Title       string
	Content     string
	Excerpt     string
	CategoryID  int64
	Status      string
	Image       *images.Upload
	ImageAlt    string
	RemoveImage bool
}

// Create validates the input, derives the slug and publish instant,
// processes any uploaded image, and persists a new article.
func (s *ArticleService) Create(ctx context.Context, in CreateArticleInput) (*domain.Article, error) {
	a, err := s.create(ctx, in)
	if err != nil {
		metrics.ObserveArticleOperation("create", resultLabel(err))
		return nil, err
	}
	metrics.ObserveArticleOperation("create", "success")
	logger.InfoContext(ctx, "article created",
		slog.Int64("article_id", a.ID),
		slog.String("slug", a.Slug),
		slog.String("status", a.Status.String()))
	return a, nil
}

func (s *ArticleService) create(ctx context.Context, in CreateArticleInput) (*domain.Article, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	excerpt := strings.TrimSpace(in.Excerpt)

	if err := s.validator.ValidateArticle(validator.ArticleInput{
		Title:   title,
		Content: content,
		Excerpt: excerpt,
	}); err != nil {
		return nil, err
	}

	articleSlug, err := s.uniqueSlug(ctx, title, 0)
	if err != nil {
		return nil, err
	}

	featured, err := s.processUpload(in.Image, in.ImageAlt, title)
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	article := domain.NewArticle(title, articleSlug, content, excerpt, in.AuthorID, in.CategoryID, status, time.Now())
	if featured != nil {
		article = article.WithImage(*featured)
	}

	saved, err := s.articles.Save(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("save article: %w", err)
	}
	return saved, nil
}

// Update validates the input, regenerates the slug only when the title
// changed, resolves image removal/replacement, derives the publish
// instant from the stored article, and persists the rebuilt value.
// Unchanged fields (author, creation time) carry over from the stored
// article.
func (s *ArticleService) Update(ctx context.Context, in UpdateArticleInput) (*domain.Article, error) {
	a, err := s.update(ctx, in)
	if err != nil {
		metrics.ObserveArticleOperation("update", resultLabel(err))
		return nil, err
	}
	metrics.ObserveArticleOperation("update", "success")
	logger.InfoContext(ctx, "article updated",
		slog.Int64("article_id", a.ID),
		slog.String("slug", a.Slug),
		slog.String("status", a.Status.String()))
	return a, nil
}

func (s *ArticleService) update(ctx context.Context, in UpdateArticleInput) (*domain.Article, error) {
	existing, err := s.articles.FindByID(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	excerpt := strings.TrimSpace(in.Excerpt)

	if err := s.validator.ValidateArticle(validator.ArticleInput{
		Title:   title,
		Content: content,
		Excerpt: excerpt,
	}); err != nil {
		return nil, err
	}

	// Slug stays stable across non-title edits so published URLs
	// survive content fixes.
	articleSlug := existing.Slug
	if title != existing.Title {
		articleSlug, err = s.uniqueSlug(ctx, title, existing.ID)
		if err != nil {
			return nil, err
		}
	}

	featured := existing.FeaturedImage
	if in.RemoveImage && featured != nil {
		if err := s.pipeline.Delete(*featured); err != nil {
			return nil, fmt.Errorf("delete image: %w", err)
		}
		featured = nil
	}
	if in.Image != nil {
		// Process the replacement before deleting anything so a
		// rejected upload leaves the current image intact.
		replacement, err := s.processUpload(in.Image, in.ImageAlt, title)
		if err != nil {
			return nil, err
		}
		if featured != nil {
			if err := s.pipeline.Delete(*featured); err != nil {
				return nil, fmt.Errorf("delete image: %w", err)
			}
		}
		featured = replacement
	}

	status, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Title = title
	updated.Slug = articleSlug
	updated.Content = content
	updated.Excerpt = excerpt
	updated.CategoryID = in.CategoryID
	updated = updated.WithStatus(status, time.Now())
	if featured != nil {
		updated = updated.WithImage(*featured)
	} else {
		updated = updated.WithoutImage()
	}

	saved, err := s.articles.Save(ctx, updated)
	if err != nil {
		return nil, fmt.Errorf("save article: %w", err)
	}
	return saved, nil
}

// Delete removes the article's featured-image files and then the
// article itself.
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	existing, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find article: %w", err)
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	if existing.FeaturedImage != nil {
		if err := s.pipeline.Delete(*existing.FeaturedImage); err != nil {
			return fmt.Errorf("delete image: %w", err)
		}
	}

	if err := s.articles.Delete(ctx, id); err != nil {
		metrics.ObserveArticleOperation("delete", "error")
		return err
	}
	metrics.ObserveArticleOperation("delete", "success")
	logger.InfoContext(ctx, "article deleted", slog.Int64("article_id", id))
	return nil
}

// GetBySlug returns a publicly visible article or ErrNotFound.
func (s *ArticleService) GetBySlug(ctx context.Context, articleSlug string) (*domain.Article, error) {
	a, err := s.articles.FindPublishedBySlug(ctx, articleSlug)
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

// ListPublished returns one page of the public feed, newest first.
func (s *ArticleService) ListPublished(ctx context.Context, page int) (*ArticlePage, error) {
	return s.page(ctx, page,
		func(ctx context.Context, limit, offset int) ([]domain.Article, error) {
			return s.articles.ListPublished(ctx, limit, offset)
		},
		s.articles.CountPublished,
	)
}

// Search returns one page of visible articles matching the query. An
// empty query yields an empty page without touching the repository.
func (s *ArticleService) Search(ctx context.Context, query string, page int) (*ArticlePage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &ArticlePage{CurrentPage: 1}, nil
	}
	return s.page(ctx, page,
		func(ctx context.Context, limit, offset int) ([]domain.Article, error) {
			return s.articles.Search(ctx, query, limit, offset)
		},
		func(ctx context.Context) (int, error) {
			return s.articles.CountSearch(ctx, query)
		},
	)
}

// ListByCategory returns one page of visible articles in the category
// with the given slug, or ErrNotFound for an unknown category.
func (s *ArticleService) ListByCategory(ctx context.Context, categorySlug string, page int) (*CategoryPage, error) {
	category, err := s.categories.FindBySlug(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	articlePage, err := s.page(ctx, page,
		func(ctx context.Context, limit, offset int) ([]domain.Article, error) {
			return s.articles.ListByCategory(ctx, category.ID, limit, offset)
		},
		func(ctx context.Context) (int, error) {
			return s.articles.CountByCategory(ctx, category.ID)
		},
	)
	if err != nil {
		return nil, err
	}
	return &CategoryPage{ArticlePage: *articlePage, Category: category}, nil
}

// ListAll returns one page of articles in any status for the admin
// panel.
func (s *ArticleService) ListAll(ctx context.Context, page int) (*ArticlePage, error) {
	return s.page(ctx, page, s.articles.ListAll, s.articles.CountAll)
}

// ListCategories returns every category.
func (s *ArticleService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.FindAll(ctx)
}

// uniqueSlug derives a slug from the title and disambiguates with the
// current unix timestamp when a different article already owns it. Two
// collisions within the same second are not resolved here; the unique
// index on the slug column turns that race into a save error.
func (s *ArticleService) uniqueSlug(ctx context.Context, title string, editingID int64) (string, error) {
	candidate := slug.Make(title)
	existing, err := s.articles.FindBySlug(ctx, candidate)
	if err != nil {
		return "", fmt.Errorf("check slug: %w", err)
	}
	if existing != nil && existing.ID != editingID {
		candidate = fmt.Sprintf("%s-%d", candidate, time.Now().Unix())
	}
	return candidate, nil
}

// processUpload runs the image pipeline for an upload, defaulting the
// alt text to the article title. Uploads carrying a receive error are
// rejected by the pipeline's validation.
func (s *ArticleService) processUpload(upload *images.Upload, altText, title string) (*domain.Image, error) {
	if upload == nil {
		return nil, nil
	}
	if altText == "" {
		altText = title
	}
	return s.pipeline.Process(*upload, altText)
}

func (s *ArticleService) page(
	ctx context.Context,
	page int,
	list func(ctx context.Context, limit, offset int) ([]domain.Article, error),
	count func(ctx context.Context) (int, error),
) (*ArticlePage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * s.pageSize

	articles, err := list(ctx, s.pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	total, err := count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	totalPages := (total + s.pageSize - 1) / s.pageSize
	return &ArticlePage{
		Articles:    articles,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
	}, nil
}

func resultLabel(err error) string {
	if domain.IsValidation(err) {
		return "rejected"
	}
	return "error"
}

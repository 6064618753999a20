package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/l3blonde/grip-and-grin/internal/domain"
)

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

const articleColumns = `
	id, title, slug, content, excerpt, author_id, category_id, status,
	published_at, first_published_at, created_at,
	image_original, image_thumbnail, image_medium, image_full,
	image_alt, image_width, image_height`

// visibleCondition is the single public-visibility rule: published
// status and a publish instant that is not in the future.
const visibleCondition = `status = 'published' AND published_at IS NOT NULL AND published_at <= NOW()`

// FindByID returns the article with the given id, or (nil, nil).
func (r *PostgresArticleRepository) FindByID(ctx context.Context, id int64) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	return scanArticle(row)
}

// FindBySlug returns the article with the given slug regardless of
// status, or (nil, nil). Used for slug-collision checks and admin.
func (r *PostgresArticleRepository) FindBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug)
	return scanArticle(row)
}

// FindPublishedBySlug returns the publicly visible article with the
// given slug, or (nil, nil).
func (r *PostgresArticleRepository) FindPublishedBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE slug = $1 AND `+visibleCondition, slug)
	return scanArticle(row)
}

// Save persists the article: insert when it carries the unsaved
// sentinel id, update otherwise. A slug collision with the unique index
// surfaces as a validation error rather than a raw constraint failure.
func (r *PostgresArticleRepository) Save(ctx context.Context, a domain.Article) (*domain.Article, error) {
	if a.IsNew() {
		return r.insert(ctx, a)
	}
	return r.update(ctx, a)
}

func (r *PostgresArticleRepository) insert(ctx context.Context, a domain.Article) (*domain.Article, error) {
	img := imageColumns(a.FeaturedImage)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO articles (
			title, slug, content, excerpt, author_id, category_id, status,
			published_at, first_published_at, created_at,
			image_original, image_thumbnail, image_medium, image_full,
			image_alt, image_width, image_height
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`,
		a.Title, a.Slug, a.Content, a.Excerpt, a.AuthorID, a.CategoryID, a.Status.String(),
		a.PublishedAt, a.FirstPublishedAt, a.CreatedAt,
		img.original, img.thumbnail, img.medium, img.full, img.alt, img.width, img.height,
	).Scan(&a.ID)
	if err != nil {
		return nil, wrapSlugConflict(err, "insert article")
	}
	return &a, nil
}

func (r *PostgresArticleRepository) update(ctx context.Context, a domain.Article) (*domain.Article, error) {
	img := imageColumns(a.FeaturedImage)
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles SET
			title = $1, slug = $2, content = $3, excerpt = $4, category_id = $5,
			status = $6, published_at = $7, first_published_at = $8,
			image_original = $9, image_thumbnail = $10, image_medium = $11,
			image_full = $12, image_alt = $13, image_width = $14, image_height = $15
		WHERE id = $16`,
		a.Title, a.Slug, a.Content, a.Excerpt, a.CategoryID,
		a.Status.String(), a.PublishedAt, a.FirstPublishedAt,
		img.original, img.thumbnail, img.medium, img.full, img.alt, img.width, img.height,
		a.ID,
	)
	if err != nil {
		return nil, wrapSlugConflict(err, "update article")
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

// Delete removes the article row. Returns ErrNotFound when no row had
// the given id.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListPublished returns one page of publicly visible articles, newest
// publish instant first.
func (r *PostgresArticleRepository) ListPublished(ctx context.Context, limit, offset int) ([]domain.Article, error) {
	return r.list(ctx, `
		SELECT `+articleColumns+` FROM articles
		WHERE `+visibleCondition+`
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
}

// CountPublished counts publicly visible articles.
func (r *PostgresArticleRepository) CountPublished(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM articles WHERE `+visibleCondition)
}

// ListByCategory returns one page of visible articles in a category.
func (r *PostgresArticleRepository) ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]domain.Article, error) {
	return r.list(ctx, `
		SELECT `+articleColumns+` FROM articles
		WHERE category_id = $1 AND `+visibleCondition+`
		ORDER BY published_at DESC
		LIMIT $2 OFFSET $3`, categoryID, limit, offset)
}

// CountByCategory counts visible articles in a category.
func (r *PostgresArticleRepository) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM articles WHERE category_id = $1 AND `+visibleCondition, categoryID)
}

// Search returns one page of visible articles whose title, excerpt, or
// content contains the query as a substring, case-insensitively.
func (r *PostgresArticleRepository) Search(ctx context.Context, query string, limit, offset int) ([]domain.Article, error) {
	pattern := "%" + query + "%"
	return r.list(ctx, `
		SELECT `+articleColumns+` FROM articles
		WHERE (title ILIKE $1 OR excerpt ILIKE $1 OR content ILIKE $1) AND `+visibleCondition+`
		ORDER BY published_at DESC
		LIMIT $2 OFFSET $3`, pattern, limit, offset)
}

// CountSearch counts visible articles matching the query.
func (r *PostgresArticleRepository) CountSearch(ctx context.Context, query string) (int, error) {
	pattern := "%" + query + "%"
	return r.count(ctx, `
		SELECT COUNT(*) FROM articles
		WHERE (title ILIKE $1 OR excerpt ILIKE $1 OR content ILIKE $1) AND `+visibleCondition, pattern)
}

// ListAll returns one page of articles in any status for the admin
// panel, newest first.
func (r *PostgresArticleRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Article, error) {
	return r.list(ctx, `
		SELECT `+articleColumns+` FROM articles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
}

// CountAll counts all articles in any status.
func (r *PostgresArticleRepository) CountAll(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM articles`)
}

func (r *PostgresArticleRepository) list(ctx context.Context, query string, args ...any) ([]domain.Article, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	return articles, rows.Err()
}

func (r *PostgresArticleRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

// nullableImage holds the flattened image columns for scanning and
// binding; all pointers are nil when the article has no featured image.
type nullableImage struct {
	original  *string
	thumbnail *string
	medium    *string
	full      *string
	alt       *string
	width     *int32
	height    *int32
}

func imageColumns(img *domain.Image) nullableImage {
	if img == nil {
		return nullableImage{}
	}
	w, h := int32(img.Width), int32(img.Height)
	return nullableImage{
		original:  &img.OriginalPath,
		thumbnail: &img.ThumbnailPath,
		medium:    &img.MediumPath,
		full:      &img.FullPath,
		alt:       &img.AltText,
		width:     &w,
		height:    &h,
	}
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var (
		a      domain.Article
		status string
		img    nullableImage
	)
	err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Content, &a.Excerpt, &a.AuthorID, &a.CategoryID, &status,
		&a.PublishedAt, &a.FirstPublishedAt, &a.CreatedAt,
		&img.original, &img.thumbnail, &img.medium, &img.full,
		&img.alt, &img.width, &img.height,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan article: %w", err)
	}

	a.Status = domain.Status(status)
	if img.original != nil {
		a.FeaturedImage = &domain.Image{
			OriginalPath:  *img.original,
			ThumbnailPath: derefString(img.thumbnail),
			MediumPath:    derefString(img.medium),
			FullPath:      derefString(img.full),
			AltText:       derefString(img.alt),
			Width:         int(derefInt32(img.width)),
			Height:        int(derefInt32(img.height)),
		}
	}
	return &a, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt32(n *int32) int32 {
	if n == nil {
		return 0
	}
	return *n
}

// wrapSlugConflict converts a unique-constraint violation on the slug
// index into a validation error the caller can surface; everything else
// is wrapped as-is.
func wrapSlugConflict(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "articles_slug_key" {
		return domain.NewValidationError("slug", "an article with this slug already exists")
	}
	return fmt.Errorf("%s: %w", op, err)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/l3blonde/grip-and-grin/internal/domain"
)

// PostgresCategoryRepository implements CategoryRepository using PostgreSQL.
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository.
func NewPostgresCategoryRepository(pool *pgxpool.Pool) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{pool: pool}
}

// FindAll returns every category ordered by name.
func (r *PostgresCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, slug, description FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// FindBySlug returns the category with the given slug, or (nil, nil).
func (r *PostgresCategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.findOne(ctx, `SELECT id, name, slug, description FROM categories WHERE slug = $1`, slug)
}

// FindByID returns the category with the given id, or (nil, nil).
func (r *PostgresCategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.findOne(ctx, `SELECT id, name, slug, description FROM categories WHERE id = $1`, id)
}

func (r *PostgresCategoryRepository) findOne(ctx context.Context, query string, arg any) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, query, arg).Scan(&c.ID, &c.Name, &c.Slug, &c.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan category: %w", err)
	}
	return &c, nil
}

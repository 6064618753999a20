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

// PostgresUserRepository implements UserRepository using PostgreSQL.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository.
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, role, is_active, created_at`

// FindByID returns the user with the given id, or (nil, nil).
func (r *PostgresUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByEmail returns the user with the given email, or (nil, nil).
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// FindByUsername returns the user with the given username, or (nil, nil).
func (r *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// FindAll returns every user ordered by creation time.
func (r *PostgresUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var role string
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role, &u.Active, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = domain.Role(role)
		users = append(users, u)
	}
	return users, rows.Err()
}

// Save persists the user: insert when it carries the unsaved sentinel
// id, update otherwise.
func (r *PostgresUserRepository) Save(ctx context.Context, u domain.User) (*domain.User, error) {
	if u.ID == 0 {
		err := r.pool.QueryRow(ctx, `
			INSERT INTO users (username, email, password_hash, role, is_active, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			u.Username, u.Email, u.PasswordHash, u.Role.String(), u.Active, u.CreatedAt,
		).Scan(&u.ID)
		if err != nil {
			return nil, wrapUserConflict(err)
		}
		return &u, nil
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET username = $1, email = $2, password_hash = $3, role = $4, is_active = $5
		WHERE id = $6`,
		u.Username, u.Email, u.PasswordHash, u.Role.String(), u.Active, u.ID,
	)
	if err != nil {
		return nil, wrapUserConflict(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

// EmailExists reports whether a user with the given email exists.
func (r *PostgresUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

// UsernameExists reports whether a user with the given username exists.
func (r *PostgresUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
}

func (r *PostgresUserRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user existence: %w", err)
	}
	return exists, nil
}

func (r *PostgresUserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	var role string
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role, &u.Active, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Role = domain.Role(role)
	return &u, nil
}

// wrapUserConflict converts unique-constraint violations on email or
// username into validation errors.
func wrapUserConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return domain.NewValidationError("email", "email already exists")
		case "users_username_key":
			return domain.NewValidationError("username", "username already exists")
		}
	}
	return fmt.Errorf("save user: %w", err)
}

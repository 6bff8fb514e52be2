// internal/adapters/db/user_repository.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

// userRepository implements ports.UserRepository
type userRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *Database, logger *slog.Logger) ports.UserRepository {
	return &userRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "users")),
	}
}

// FindIDByEmail resolves an email to a user id.
func (r *userRepository) FindIDByEmail(ctx context.Context, email string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ports.ErrNotFound
		}
		return 0, fmt.Errorf("failed to resolve email: %w", err)
	}
	return id, nil
}

// FindByID retrieves a user by id.
func (r *userRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, business_name, forename, surname, contact_number,
			created_at, updated_at
		FROM users WHERE id = $1`

	user := &domain.User{}
	var businessName, forename, surname, contactNumber sql.NullString

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.PasswordHash,
		&businessName, &forename, &surname, &contactNumber,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.BusinessName = businessName.String
	user.Forename = forename.String
	user.Surname = surname.String
	user.ContactNumber = contactNumber.String

	return user, nil
}

// Create inserts a new user and assigns its id.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (email, password_hash, business_name, forename, surname, contact_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.db.QueryRow(ctx, query,
		user.Email, user.PasswordHash,
		nullIfEmpty(user.BusinessName), nullIfEmpty(user.Forename),
		nullIfEmpty(user.Surname), nullIfEmpty(user.ContactNumber),
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.InfoContext(ctx, "user created", slog.Int64("id", user.ID))

	return nil
}

// UpdatePasswordHash overwrites the stored hash for an existing user.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, hash)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}

	r.logger.InfoContext(ctx, "password hash updated", slog.Int64("id", id))

	return nil
}

// internal/adapters/db/contact_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

// contactRepository implements ports.ContactRepository
type contactRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewContactRepository creates a new contact message repository
func NewContactRepository(db *Database, logger *slog.Logger) ports.ContactRepository {
	return &contactRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "contact")),
	}
}

// Save inserts a contact message.
func (r *contactRepository) Save(ctx context.Context, msg *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, msg.Name, msg.Email, msg.Message).
		Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}

	r.logger.DebugContext(ctx, "contact message saved", slog.Int64("id", msg.ID))

	return nil
}

// DeleteOlderThan purges messages older than the cutoff. Used by the
// cleanup worker only.
func (r *contactRepository) DeleteOlderThan(ctx context.Context, cutoffDays int) (int64, error) {
	query := `DELETE FROM contact_messages WHERE created_at < now() - ($1 || ' days')::interval`

	tag, err := r.db.Exec(ctx, query, cutoffDays)
	if err != nil {
		return 0, fmt.Errorf("failed to purge contact messages: %w", err)
	}

	return tag.RowsAffected(), nil
}

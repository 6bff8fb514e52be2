// internal/core/ports/accounts.go
package ports

import (
	"context"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
)

// UserRepository defines the persistence port for principals.
type UserRepository interface {
	// FindIDByEmail returns ErrNotFound when no user has the email.
	FindIDByEmail(ctx context.Context, email string) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}

// AccountService is the principal directory: it resolves emails to
// stable ids, stores salted password hashes and verifies credentials.
// Raw passwords are hashed before storage and never compared in clear.
type AccountService interface {
	ResolveID(ctx context.Context, email string) (int64, error)
	// SetPassword upserts: an existing email gets its hash replaced in
	// place, a new email creates the principal with the given profile.
	// Both paths return the resulting id.
	SetPassword(ctx context.Context, email, rawPassword string, profile domain.User) (int64, error)
	// Verify fails closed: unknown id or hash mismatch is false, nil.
	Verify(ctx context.Context, id int64, rawPassword string) (bool, error)
}

// ContactRepository persists contact messages. Write-only from the
// core's perspective; the cleanup worker is the only deleter.
type ContactRepository interface {
	Save(ctx context.Context, msg *domain.ContactMessage) error
	DeleteOlderThan(ctx context.Context, cutoffDays int) (int64, error)
}

// ContactService accepts contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, msg *domain.ContactMessage) error
}

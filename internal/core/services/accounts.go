// internal/core/services/accounts.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

// AccountService is the principal directory. Passwords are hashed with
// bcrypt before storage and never compared in clear; verification
// fails closed.
type AccountService struct {
	repo   ports.UserRepository
	cost   int
	logger *slog.Logger
}

var _ ports.AccountService = (*AccountService)(nil)

// NewAccountService creates a new account service. cost is the bcrypt
// work factor; values below the library minimum fall back to the
// default.
func NewAccountService(repo ports.UserRepository, cost int, logger *slog.Logger) *AccountService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &AccountService{
		repo:   repo,
		cost:   cost,
		logger: logger.With(slog.String("service", "accounts")),
	}
}

// ResolveID maps an email to its stable principal id.
func (s *AccountService) ResolveID(ctx context.Context, email string) (int64, error) {
	email = normalizeEmail(email)
	if email == "" {
		return 0, fmt.Errorf("email is required")
	}

	id, err := s.repo.FindIDByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return 0, ports.ErrNotFound
		}
		return 0, fmt.Errorf("failed to resolve principal: %w", err)
	}
	return id, nil
}

// SetPassword upserts a principal's credentials: an existing email gets
// its hash replaced in place, a new email creates the principal with
// the given profile. Both paths return the resulting id.
func (s *AccountService) SetPassword(ctx context.Context, email, rawPassword string, profile domain.User) (int64, error) {
	email = normalizeEmail(email)
	profile.Email = email

	if err := profile.Validate(); err != nil {
		return 0, fmt.Errorf("validation failed: %w", err)
	}
	if rawPassword == "" {
		return 0, fmt.Errorf("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), s.cost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.repo.FindIDByEmail(ctx, email)
	switch {
	case err == nil:
		if err := s.repo.UpdatePasswordHash(ctx, id, string(hash)); err != nil {
			return 0, fmt.Errorf("failed to update password: %w", err)
		}
		s.logger.InfoContext(ctx, "password updated", slog.Int64("user_id", id))
		return id, nil

	case errors.Is(err, ports.ErrNotFound):
		profile.PasswordHash = string(hash)
		if err := s.repo.Create(ctx, &profile); err != nil {
			return 0, fmt.Errorf("failed to create principal: %w", err)
		}
		s.logger.InfoContext(ctx, "principal created", slog.Int64("user_id", profile.ID))
		return profile.ID, nil

	default:
		return 0, fmt.Errorf("failed to look up principal: %w", err)
	}
}

// Verify checks a raw password against the stored hash for id. Unknown
// ids and mismatches both come back as false with no error; only
// infrastructure failures surface.
func (s *AccountService) Verify(ctx context.Context, id int64, rawPassword string) (bool, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load principal: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(rawPassword)); err != nil {
		return false, nil
	}
	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

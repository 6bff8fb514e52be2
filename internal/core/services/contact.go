// internal/core/services/contact.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

// ContactService accepts contact-form submissions from anonymous
// visitors. Messages are append-only from the request path; the
// cleanup worker purges old rows.
type ContactService struct {
	repo   ports.ContactRepository
	logger *slog.Logger
}

var _ ports.ContactService = (*ContactService)(nil)

// NewContactService creates a new contact service
func NewContactService(repo ports.ContactRepository, logger *slog.Logger) *ContactService {
	return &ContactService{
		repo:   repo,
		logger: logger.With(slog.String("service", "contact")),
	}
}

// Submit validates and stores one contact message.
func (s *ContactService) Submit(ctx context.Context, msg *domain.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Save(ctx, msg); err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}

	s.logger.InfoContext(ctx, "contact message received",
		slog.Int64("message_id", msg.ID),
		slog.String("email", msg.Email))

	return nil
}

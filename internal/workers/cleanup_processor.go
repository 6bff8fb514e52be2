// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/freshsaver/freshsaver-be/internal/core/ports"
	"github.com/freshsaver/freshsaver-be/internal/pkg/config"
)

// CleanupProcessor handles cleanup tasks
type CleanupProcessor struct {
	contacts ports.ContactRepository
	config   *config.Config
	logger   *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(contacts ports.ContactRepository, config *config.Config, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		contacts: contacts,
		config:   config,
		logger:   logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupMailbox removes contact submissions older than the configured
// retention window.
func (p *CleanupProcessor) CleanupMailbox(ctx context.Context, t *asynq.Task) error {
	retention := p.config.Worker.ContactRetentionDays
	p.logger.InfoContext(ctx, "cleaning up contact mailbox",
		slog.Int("retention_days", retention))

	deleted, err := p.contacts.DeleteOlderThan(ctx, retention)
	if err != nil {
		return fmt.Errorf("failed to cleanup contact messages: %w", err)
	}

	p.logger.InfoContext(ctx, "contact mailbox cleaned up",
		slog.Int64("rows_deleted", deleted))

	return nil
}

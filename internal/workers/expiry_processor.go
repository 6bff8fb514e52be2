// internal/workers/expiry_processor.go
package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

const (
	TypeExpirySweep    = "inventory:expiry_sweep"
	TypeMailboxCleanup = "contact:cleanup_mailbox"
)

// ExpiryProcessor flips stale available items to expired in the
// background so the read paths never have to write.
type ExpiryProcessor struct {
	repo   ports.InventoryRepository
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewExpiryProcessor creates a new expiry sweep processor
func NewExpiryProcessor(repo ports.InventoryRepository, cache ports.CacheRepository, logger *slog.Logger) *ExpiryProcessor {
	return &ExpiryProcessor{
		repo:   repo,
		cache:  cache,
		logger: logger.With(slog.String("processor", "expiry_sweep")),
	}
}

// SweepExpired marks every available item whose expiry date has passed
// as expired, then drops the cached catalog and dashboard views so the
// next read reflects the change.
func (p *ExpiryProcessor) SweepExpired(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	rows, err := p.repo.MarkExpired(ctx, time.Now())
	if err != nil {
		return err
	}

	if rows == 0 {
		p.logger.DebugContext(ctx, "expiry sweep found nothing to do")
		return nil
	}

	// Cache invalidation is best effort; entries age out on their own.
	// A sweep can touch any owner, so every dashboard key goes.
	if err := p.cache.DeletePattern(ctx, ports.BuildKey(ports.PrefixCatalog, "*")); err != nil {
		p.logger.WarnContext(ctx, "failed to invalidate catalog cache",
			slog.String("error", err.Error()))
	}
	if err := p.cache.DeletePattern(ctx, ports.BuildKey(ports.PrefixDashboard, "*")); err != nil {
		p.logger.WarnContext(ctx, "failed to invalidate dashboard caches",
			slog.String("error", err.Error()))
	}

	p.logger.InfoContext(ctx, "expiry sweep complete",
		slog.Int64("items_expired", rows),
		slog.Duration("took", time.Since(start)))

	return nil
}

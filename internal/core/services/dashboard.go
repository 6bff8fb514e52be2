// internal/core/services/dashboard.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

// dashboardCacheTTL is short: the dashboard is the owner's working
// surface and every write already invalidates their keys, so the TTL
// only bounds staleness across processes.
const dashboardCacheTTL = time.Minute

// DashboardService assembles the owner dashboard from three
// independent reads: the summary counts, the soonest-expiring page and
// the category facet. The reads run concurrently and the dashboard is
// all-or-nothing: any failed read fails the whole aggregate.
type DashboardService struct {
	repo   ports.InventoryRepository
	cache  ports.CacheRepository
	logger *slog.Logger
}

var _ ports.DashboardService = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(repo ports.InventoryRepository, cache ports.CacheRepository, logger *slog.Logger) *DashboardService {
	return &DashboardService{
		repo:   repo,
		cache:  cache,
		logger: logger.With(slog.String("service", "dashboard")),
	}
}

// Overview builds the dashboard for one owner. The criteria narrow the
// item list only; the summary always covers all of the owner's rows.
// The unfiltered view is cached under the owner's key space; write
// paths and the expiry sweep invalidate it by prefix.
func (s *DashboardService) Overview(ctx context.Context, ownerID int64, criteria ports.ItemCriteria) (*ports.DashboardData, error) {
	now := timeNow()

	if s.cache != nil && criteria == (ports.ItemCriteria{}) {
		key := ports.BuildKey(ports.PrefixDashboard,
			strconv.FormatInt(ownerID, 10), "overview", now.Format("2006-01-02"))

		var cached ports.DashboardData
		err := s.cache.GetOrSet(ctx, key, &cached, func() (interface{}, error) {
			return s.assemble(ctx, ownerID, criteria, now)
		}, dashboardCacheTTL)
		if err == nil {
			return &cached, nil
		}

		// Degrade to a direct read when the cache is unreachable.
		s.logger.WarnContext(ctx, "dashboard cache unavailable", "err", err)
	}

	return s.assemble(ctx, ownerID, criteria, now)
}

func (s *DashboardService) assemble(ctx context.Context, ownerID int64, criteria ports.ItemCriteria, now time.Time) (*ports.DashboardData, error) {
	var (
		summary    *ports.OwnerSummary
		items      []domain.InventoryItem
		categories []string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		summary, err = s.repo.SummarizeOwner(gctx, ownerID, now)
		if err != nil {
			return fmt.Errorf("summary: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		items, err = s.repo.FindByOwner(gctx, ownerID, criteria, ports.DashboardItemLimit)
		if err != nil {
			return fmt.Errorf("items: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		categories, err = s.repo.OwnerCategories(gctx, ownerID)
		if err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	s.logger.DebugContext(ctx, "dashboard assembled",
		slog.Int64("owner_id", ownerID),
		slog.Int("items", len(items)),
		slog.Int64("total", summary.TotalItems))

	return &ports.DashboardData{
		Summary:    *summary,
		Items:      domain.NewItemViews(items, now),
		Categories: categories,
		Filters:    criteria,
		Timestamp:  now,
	}, nil
}

// Export returns the owner's complete inventory with derived fields,
// unfiltered and uncapped, for the download endpoints.
func (s *DashboardService) Export(ctx context.Context, ownerID int64) ([]domain.ItemView, error) {
	items, err := s.repo.FindByOwner(ctx, ownerID, ports.ItemCriteria{}, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory for export: %w", err)
	}

	s.logger.InfoContext(ctx, "exporting inventory",
		slog.Int64("owner_id", ownerID),
		slog.Int("items", len(items)))

	return domain.NewItemViews(items, timeNow()), nil
}

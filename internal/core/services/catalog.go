// internal/core/services/catalog.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

// catalogCacheTTL keeps public listings fresh enough while absorbing
// browse traffic. Visibility depends on the calendar date, so cache
// keys carry the date and a stale entry can never outlive midnight.
const catalogCacheTTL = 5 * time.Minute

// CatalogService is the consumer-facing read surface: the deals
// listing and the product detail with recommendations. It only ever
// serves items that are available and not past their expiry date; a
// stale stored status never makes an out-of-date item visible.
type CatalogService struct {
	repo   ports.InventoryRepository
	cache  ports.CacheRepository
	group  singleflight.Group
	logger *slog.Logger
}

var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service
func NewCatalogService(repo ports.InventoryRepository, cache ports.CacheRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		cache:  cache,
		logger: logger.With(slog.String("service", "catalog")),
	}
}

// Browse returns the visible catalog narrowed by criteria, plus the
// category facet over all visible items. Unfiltered browses are cached;
// concurrent misses for the same key collapse into a single load.
func (s *CatalogService) Browse(ctx context.Context, criteria ports.ItemCriteria) (*ports.CatalogData, error) {
	now := timeNow()

	if s.cache != nil && criteria == (ports.ItemCriteria{}) {
		key := ports.BuildKey(ports.PrefixCatalog, "browse", now.Format("2006-01-02"))

		var data ports.CatalogData
		v, err, _ := s.group.Do(key, func() (interface{}, error) {
			var cached ports.CatalogData
			err := s.cache.GetOrSet(ctx, key, &cached, func() (interface{}, error) {
				return s.loadCatalog(ctx, criteria, now)
			}, catalogCacheTTL)
			if err != nil {
				return nil, err
			}
			return &cached, nil
		})
		if err == nil {
			data = *v.(*ports.CatalogData)
			return &data, nil
		}

		// Degrade to a direct read when the cache is unreachable.
		s.logger.WarnContext(ctx, "catalog cache unavailable", "err", err)
	}

	return s.loadCatalog(ctx, criteria, now)
}

func (s *CatalogService) loadCatalog(ctx context.Context, criteria ports.ItemCriteria, now time.Time) (*ports.CatalogData, error) {
	items, err := s.repo.FindVisible(ctx, criteria, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	categories, err := s.repo.VisibleCategories(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog categories: %w", err)
	}

	return &ports.CatalogData{
		Items:      domain.NewItemViews(items, now),
		Categories: categories,
		Filters:    criteria,
	}, nil
}

// Detail returns one visible item with its recommendations: up to four
// other visible items from the same category, or the three
// soonest-expiring visible items when the category yields nothing.
// Hidden and unknown ids are indistinguishable to the caller.
func (s *CatalogService) Detail(ctx context.Context, id int64) (*ports.ProductDetail, error) {
	now := timeNow()

	item, err := s.repo.FindVisibleByID(ctx, id, now)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	recommended, err := s.recommend(ctx, item, now)
	if err != nil {
		return nil, err
	}

	return &ports.ProductDetail{
		Item:        domain.NewItemView(*item, now),
		Recommended: domain.NewItemViews(recommended, now),
	}, nil
}

func (s *CatalogService) recommend(ctx context.Context, item *domain.InventoryItem, now time.Time) ([]domain.InventoryItem, error) {
	if item.Category != "" {
		same, err := s.repo.FindVisibleByCategory(ctx, item.Category, item.ID, now, ports.RecommendationLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to load recommendations: %w", err)
		}
		if len(same) > 0 {
			return same, nil
		}
	}

	fallback, err := s.repo.FindSoonestExpiring(ctx, item.ID, now, ports.FallbackRecommendLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load fallback recommendations: %w", err)
	}
	return fallback, nil
}

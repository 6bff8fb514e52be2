// internal/core/services/inventory.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

// InventoryService handles owner-scoped inventory business logic.
// Every operation takes the acting owner's id explicitly and acts only
// on rows that owner holds; another owner's row surfaces as
// ErrForbidden, which handlers report exactly like an absent row.
type InventoryService struct {
	repo   ports.InventoryRepository
	cache  ports.CacheRepository
	logger *slog.Logger
}

// Statically assert that *InventoryService implements the InventoryService port.
var _ ports.InventoryService = (*InventoryService)(nil)

// NewInventoryService creates a new inventory service
func NewInventoryService(repo ports.InventoryRepository, cache ports.CacheRepository, logger *slog.Logger) *InventoryService {
	return &InventoryService{
		repo:   repo,
		cache:  cache,
		logger: logger.With(slog.String("service", "inventory")),
	}
}

// Create validates and stores a new item for ownerID. The stored row
// always carries ownerID regardless of what the payload claims.
func (s *InventoryService) Create(ctx context.Context, ownerID int64, item *domain.InventoryItem) (int64, error) {
	item.OwnerID = ownerID

	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ports.ErrValidation, err)
	}
	item.PrepareForStorage()

	if err := s.repo.Save(ctx, item); err != nil {
		return 0, fmt.Errorf("failed to save item: %w", err)
	}

	s.invalidateReadCaches(ctx, ownerID)

	s.logger.InfoContext(ctx, "created inventory item",
		slog.Int64("item_id", item.ID),
		slog.Int64("owner_id", ownerID),
		slog.String("product_name", item.ProductName))

	return item.ID, nil
}

// Get returns one of the owner's items with derived fields.
func (s *InventoryService) Get(ctx context.Context, ownerID, id int64) (*domain.ItemView, error) {
	item, err := s.findOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	view := domain.NewItemView(*item, timeNow())
	return &view, nil
}

// Update replaces the mutable fields of one of the owner's items.
// Identity fields survive the write: id, owner and creation time come
// from the stored row, not the payload.
func (s *InventoryService) Update(ctx context.Context, ownerID, id int64, item *domain.InventoryItem) error {
	existing, err := s.findOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	item.ID = existing.ID
	item.OwnerID = existing.OwnerID
	item.CreatedAt = existing.CreatedAt

	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ports.ErrValidation, err)
	}
	item.PrepareForStorage()

	if err := s.repo.Update(ctx, item); err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	s.invalidateReadCaches(ctx, ownerID)

	s.logger.InfoContext(ctx, "updated inventory item",
		slog.Int64("item_id", id),
		slog.Int64("owner_id", ownerID))

	return nil
}

// Delete removes one of the owner's items. Deleting an absent id
// succeeds without effect; someone else's row comes back ErrForbidden
// so the handler can answer the same way it does for a missing one.
func (s *InventoryService) Delete(ctx context.Context, ownerID, id int64) error {
	if _, err := s.findOwned(ctx, ownerID, id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.invalidateReadCaches(ctx, ownerID)

	s.logger.InfoContext(ctx, "deleted inventory item",
		slog.Int64("item_id", id),
		slog.Int64("owner_id", ownerID))

	return nil
}

// findOwned loads an item and enforces ownership. A row held by a
// different owner comes back as ErrForbidden; handlers translate it to
// the same 404 as ErrNotFound so responses cannot leak which ids exist.
func (s *InventoryService) findOwned(ctx context.Context, ownerID, id int64) (*domain.InventoryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	if item.OwnerID != ownerID {
		return nil, ports.ErrForbidden
	}

	return item, nil
}

// invalidateReadCaches drops cached catalog and dashboard responses
// after a write. Cache failures are logged, never surfaced: the row is
// already committed.
func (s *InventoryService) invalidateReadCaches(ctx context.Context, ownerID int64) {
	if s.cache == nil {
		return
	}

	if err := s.cache.DeletePattern(ctx, ports.BuildKey(ports.PrefixCatalog, "*")); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate catalog cache", "err", err)
	}
	if err := s.cache.DeletePattern(ctx, ports.BuildKey(ports.PrefixDashboard, strconv.FormatInt(ownerID, 10), "*")); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate dashboard cache", "err", err)
	}
}

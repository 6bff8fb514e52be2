// internal/core/ports/inventory_repository.go
package ports

import (
	"context"
	"time"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
)

// ItemCriteria carries the optional, user-supplied filter criteria.
// Blank fields (after trimming) contribute no clause; the repository
// combines present criteria conjunctively with its base predicate and
// always renders them as query parameters, never as SQL text.
type ItemCriteria struct {
	Search   string `json:"search,omitempty"`
	Status   string `json:"status,omitempty"`
	Category string `json:"category,omitempty"`
}

// OwnerSummary holds the per-owner dashboard counts. The summary is
// always computed over all of the owner's rows, never the filtered set.
type OwnerSummary struct {
	TotalItems     int64 `json:"total_items"`
	AvailableItems int64 `json:"available_items"`
	ReservedItems  int64 `json:"reserved_items"`
	ClaimedItems   int64 `json:"claimed_items"`
	ExpiredItems   int64 `json:"expired_items"`
	ExpiringSoon   int64 `json:"expiring_soon"`
}

// Result-set caps. The owner dashboard list is a fixed single page;
// the public catalog is uncapped.
const (
	DashboardItemLimit     = 20
	RecommendationLimit    = 4
	FallbackRecommendLimit = 3
)

// InventoryRepository defines the persistence port for inventory.
// Implemented by the database adapter. Lookups that match nothing
// return ErrNotFound.
type InventoryRepository interface {
	Save(ctx context.Context, item *domain.InventoryItem) error
	Update(ctx context.Context, item *domain.InventoryItem) error
	FindByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
	// Delete is idempotent: removing an absent id is not an error.
	Delete(ctx context.Context, id int64) error

	// Owner-scoped reads for the dashboard.
	FindByOwner(ctx context.Context, ownerID int64, criteria ItemCriteria, limit uint64) ([]domain.InventoryItem, error)
	SummarizeOwner(ctx context.Context, ownerID int64, today time.Time) (*OwnerSummary, error)
	OwnerCategories(ctx context.Context, ownerID int64) ([]string, error)

	// Public-catalog reads, restricted to available items whose expiry
	// date is today or later regardless of stored status.
	FindVisible(ctx context.Context, criteria ItemCriteria, today time.Time) ([]domain.InventoryItem, error)
	FindVisibleByID(ctx context.Context, id int64, today time.Time) (*domain.InventoryItem, error)
	VisibleCategories(ctx context.Context, today time.Time) ([]string, error)
	FindVisibleByCategory(ctx context.Context, category string, excludeID int64, today time.Time, limit uint64) ([]domain.InventoryItem, error)
	FindSoonestExpiring(ctx context.Context, excludeID int64, today time.Time, limit uint64) ([]domain.InventoryItem, error)

	// MarkExpired flips stale available rows to expired; used by the
	// background sweep, never by request paths.
	MarkExpired(ctx context.Context, today time.Time) (int64, error)
}

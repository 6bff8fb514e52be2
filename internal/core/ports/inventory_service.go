// internal/core/ports/inventory_service.go
package ports

import (
	"context"
	"time"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
)

// InventoryService defines the owner-scoped application service port
// for inventory. Every operation takes the acting principal's id
// explicitly; the service never reads ambient state.
type InventoryService interface {
	Create(ctx context.Context, ownerID int64, item *domain.InventoryItem) (int64, error)
	Get(ctx context.Context, ownerID, id int64) (*domain.ItemView, error)
	Update(ctx context.Context, ownerID, id int64, item *domain.InventoryItem) error
	Delete(ctx context.Context, ownerID, id int64) error
}

// DashboardData is the joined result of the three concurrent dashboard
// reads for one owner.
type DashboardData struct {
	Summary    OwnerSummary      `json:"summary"`
	Items      []domain.ItemView `json:"items"`
	Categories []string          `json:"categories"`
	Filters    ItemCriteria      `json:"filters"`
	Timestamp  time.Time         `json:"timestamp"`
}

// DashboardService aggregates the owner dashboard.
type DashboardService interface {
	Overview(ctx context.Context, ownerID int64, criteria ItemCriteria) (*DashboardData, error)
	// Export returns the owner's complete inventory with derived
	// fields, unfiltered and uncapped.
	Export(ctx context.Context, ownerID int64) ([]domain.ItemView, error)
}

// CatalogData is the public catalog listing plus its category facet.
type CatalogData struct {
	Items      []domain.ItemView `json:"items"`
	Categories []string          `json:"categories"`
	Filters    ItemCriteria      `json:"filters"`
}

// ProductDetail is a single visible item with its recommendations.
type ProductDetail struct {
	Item        domain.ItemView   `json:"item"`
	Recommended []domain.ItemView `json:"recommended"`
}

// CatalogService is the consumer-facing read surface.
type CatalogService interface {
	Browse(ctx context.Context, criteria ItemCriteria) (*CatalogData, error)
	Detail(ctx context.Context, id int64) (*ProductDetail, error)
}

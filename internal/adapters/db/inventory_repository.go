// internal/adapters/db/inventory_repository.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

// inventoryRepository implements ports.InventoryRepository
type inventoryRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *Database, logger *slog.Logger) ports.InventoryRepository {
	return &inventoryRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "inventory")),
	}
}

// Save creates a new inventory item and assigns its id. The owner id
// is written here and never touched again by Update.
func (r *inventoryRepository) Save(ctx context.Context, item *domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (
			product_name, category, location, expiry_date,
			quantity, original_price, discount_percent, status,
			owner_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		item.ProductName, nullIfEmpty(item.Category), item.Location, asDate(item.ExpiryDate),
		item.Quantity, item.OriginalPrice, item.DiscountPercent, item.Status,
		item.OwnerID, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to save inventory item: %w", err)
	}

	r.logger.DebugContext(ctx, "inventory item saved",
		slog.Int64("id", item.ID),
		slog.Int64("owner_id", item.OwnerID))

	return nil
}

// Update overwrites the mutable fields of an existing item. The id and
// owner_id columns are deliberately absent from the SET list.
func (r *inventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	query := `
		UPDATE inventory_items SET
			product_name = $2, category = $3, location = $4, expiry_date = $5,
			quantity = $6, original_price = $7, discount_percent = $8, status = $9,
			updated_at = $10
		WHERE id = $1`

	item.UpdatedAt = time.Now()

	tag, err := r.db.Exec(ctx, query,
		item.ID,
		item.ProductName, nullIfEmpty(item.Category), item.Location, asDate(item.ExpiryDate),
		item.Quantity, item.OriginalPrice, item.DiscountPercent, item.Status,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}

	r.logger.DebugContext(ctx, "inventory item updated", slog.Int64("id", item.ID))

	return nil
}

// FindByID retrieves an inventory item by id, unscoped. Callers on the
// owner-scoped surface are responsible for the ownership check.
func (r *inventoryRepository) FindByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	qb := selectItems().Where(squirrel.Eq{"id": id})

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	item, err := scanItem(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}

	return item, nil
}

// Delete removes an item. Idempotent: deleting an absent id succeeds.
func (r *inventoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	r.logger.InfoContext(ctx, "inventory item deleted",
		slog.Int64("id", id),
		slog.Int64("rows", tag.RowsAffected()))

	return nil
}

// FindByOwner returns one owner's items matching the criteria, capped
// and sorted soonest-expiring first.
func (r *inventoryRepository) FindByOwner(ctx context.Context, ownerID int64, criteria ports.ItemCriteria, limit uint64) ([]domain.InventoryItem, error) {
	qb := applyCriteria(selectItems().Where(ownerScope(ownerID)), criteria)
	if limit > 0 {
		qb = qb.Limit(limit)
	}
	return r.queryItems(ctx, qb)
}

// SummarizeOwner computes the dashboard summary over all of the
// owner's rows in a single statement, so the per-status counts and the
// total always come from the same snapshot.
func (r *inventoryRepository) SummarizeOwner(ctx context.Context, ownerID int64, today time.Time) (*ports.OwnerSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'available'),
			COUNT(*) FILTER (WHERE status = 'reserved'),
			COUNT(*) FILTER (WHERE status = 'claimed'),
			COUNT(*) FILTER (WHERE status = 'expired'),
			COUNT(*) FILTER (WHERE status = 'available' AND expiry_date <= $2::date + $3)
		FROM inventory_items
		WHERE owner_id = $1`

	summary := &ports.OwnerSummary{}
	err := r.db.QueryRow(ctx, query, ownerID, asDate(today), domain.ExpiringSoonDays).Scan(
		&summary.TotalItems,
		&summary.AvailableItems,
		&summary.ReservedItems,
		&summary.ClaimedItems,
		&summary.ExpiredItems,
		&summary.ExpiringSoon,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize inventory: %w", err)
	}

	return summary, nil
}

// OwnerCategories returns the distinct categories one owner has used.
func (r *inventoryRepository) OwnerCategories(ctx context.Context, ownerID int64) ([]string, error) {
	query := `
		SELECT DISTINCT category FROM inventory_items
		WHERE owner_id = $1 AND category IS NOT NULL
		ORDER BY category`

	return r.queryCategories(ctx, query, ownerID)
}

// FindVisible returns all publicly visible items matching the
// criteria, across owners, uncapped.
func (r *inventoryRepository) FindVisible(ctx context.Context, criteria ports.ItemCriteria, today time.Time) ([]domain.InventoryItem, error) {
	qb := applyCriteria(selectItems().Where(visibleScope(today)), criteria)
	return r.queryItems(ctx, qb)
}

// FindVisibleByID retrieves one item under the public visibility
// predicate; a stale 'available' row past its date is not found.
func (r *inventoryRepository) FindVisibleByID(ctx context.Context, id int64, today time.Time) (*domain.InventoryItem, error) {
	qb := selectItems().Where(visibleScope(today)).Where(squirrel.Eq{"id": id})

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	item, err := scanItem(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find visible item: %w", err)
	}

	return item, nil
}

// VisibleCategories returns the category facet for the public catalog.
func (r *inventoryRepository) VisibleCategories(ctx context.Context, today time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT category FROM inventory_items
		WHERE status = 'available' AND expiry_date >= $1 AND category IS NOT NULL
		ORDER BY category`

	return r.queryCategories(ctx, query, asDate(today))
}

// FindVisibleByCategory returns visible items sharing a category,
// excluding the item they are recommended for.
func (r *inventoryRepository) FindVisibleByCategory(ctx context.Context, category string, excludeID int64, today time.Time, limit uint64) ([]domain.InventoryItem, error) {
	qb := selectItems().
		Where(visibleScope(today)).
		Where(squirrel.Eq{"category": category}).
		Where(squirrel.NotEq{"id": excludeID}).
		Limit(limit)
	return r.queryItems(ctx, qb)
}

// FindSoonestExpiring returns the visible items closest to expiry
// store-wide, excluding one id. Recommendation fallback.
func (r *inventoryRepository) FindSoonestExpiring(ctx context.Context, excludeID int64, today time.Time, limit uint64) ([]domain.InventoryItem, error) {
	qb := selectItems().
		Where(visibleScope(today)).
		Where(squirrel.NotEq{"id": excludeID}).
		Limit(limit)
	return r.queryItems(ctx, qb)
}

// MarkExpired flips available rows past their expiry date to expired.
func (r *inventoryRepository) MarkExpired(ctx context.Context, today time.Time) (int64, error) {
	query := `
		UPDATE inventory_items
		SET status = 'expired', updated_at = now()
		WHERE status = 'available' AND expiry_date < $1`

	tag, err := r.db.Exec(ctx, query, asDate(today))
	if err != nil {
		return 0, fmt.Errorf("failed to mark expired items: %w", err)
	}

	if tag.RowsAffected() > 0 {
		r.logger.InfoContext(ctx, "stale items marked expired",
			slog.Int64("rows", tag.RowsAffected()))
	}

	return tag.RowsAffected(), nil
}

// queryItems executes a compiled select and scans all rows.
func (r *inventoryRepository) queryItems(ctx context.Context, qb squirrel.SelectBuilder) ([]domain.InventoryItem, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

func (r *inventoryRepository) queryCategories(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return categories, nil
}

// scanItem scans one row in itemColumns order.
func scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{}
	var category sql.NullString

	err := row.Scan(
		&item.ID, &item.ProductName, &category, &item.Location,
		&item.ExpiryDate, &item.Quantity, &item.OriginalPrice, &item.DiscountPercent,
		&item.Status, &item.OwnerID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Category = category.String

	return item, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

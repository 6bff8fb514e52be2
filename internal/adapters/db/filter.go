// internal/adapters/db/filter.go
package db

import (
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/freshsaver/freshsaver-be/internal/core/ports"
)

// itemColumns is the canonical select list for inventory_items.
var itemColumns = []string{
	"id", "product_name", "category", "location",
	"expiry_date", "quantity", "original_price", "discount_percent",
	"status", "owner_id", "created_at", "updated_at",
}

// selectItems starts a parameterized select over inventory_items with
// the standard ordering: soonest-expiring first, id as tie-break.
func selectItems() squirrel.SelectBuilder {
	return squirrel.Select(itemColumns...).
		From("inventory_items").
		PlaceholderFormat(squirrel.Dollar).
		OrderBy("expiry_date ASC", "id ASC")
}

// ownerScope is the always-on predicate for owner-scoped reads.
func ownerScope(ownerID int64) squirrel.Sqlizer {
	return squirrel.Eq{"owner_id": ownerID}
}

// visibleScope is the always-on predicate for the public catalog:
// available and not yet past the expiry date, whatever the stored
// status history says.
func visibleScope(today time.Time) squirrel.Sqlizer {
	return squirrel.And{
		squirrel.Eq{"status": "available"},
		squirrel.GtOrEq{"expiry_date": asDate(today)},
	}
}

// applyCriteria compiles the optional criteria into conjunctive,
// parameterized clauses. A criterion that is empty after trimming
// contributes nothing, so blank criteria leave the base predicate
// unchanged. Free-text search matches product name or location as a
// case-insensitive substring.
func applyCriteria(qb squirrel.SelectBuilder, c ports.ItemCriteria) squirrel.SelectBuilder {
	if search := strings.TrimSpace(c.Search); search != "" {
		pattern := "%" + search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"product_name": pattern},
			squirrel.ILike{"location": pattern},
		})
	}
	if status := strings.TrimSpace(c.Status); status != "" {
		qb = qb.Where(squirrel.Eq{"status": status})
	}
	if category := strings.TrimSpace(c.Category); category != "" {
		qb = qb.Where(squirrel.Eq{"category": category})
	}
	return qb
}

// asDate renders a timestamp as the DATE parameter the schema compares
// expiry_date against.
func asDate(t time.Time) string {
	return t.Format("2006-01-02")
}

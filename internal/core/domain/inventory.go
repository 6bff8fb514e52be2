// internal/core/domain/inventory.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus represents the lifecycle status of an inventory item
type ItemStatus string

// Status constants
const (
	StatusAvailable ItemStatus = "available"
	StatusReserved  ItemStatus = "reserved"
	StatusClaimed   ItemStatus = "claimed"
	StatusExpired   ItemStatus = "expired"
)

// ExpiringSoonDays is the window, in days, within which an available
// item counts as expiring soon.
const ExpiringSoonDays = 3

var validStatuses = map[ItemStatus]bool{
	StatusAvailable: true,
	StatusReserved:  true,
	StatusClaimed:   true,
	StatusExpired:   true,
}

// ValidStatus reports whether s is a known item status.
func ValidStatus(s ItemStatus) bool {
	return validStatuses[s]
}

// InventoryItem represents a single perishable inventory record.
// OwnerID is set once at creation and never changes.
type InventoryItem struct {
	ID              int64           `json:"id"`
	ProductName     string          `json:"product_name"`
	Category        string          `json:"category,omitempty"`
	Location        string          `json:"location"`
	ExpiryDate      time.Time       `json:"expiry_date"`
	Quantity        int             `json:"quantity"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Status          ItemStatus      `json:"status"`
	OwnerID         int64           `json:"owner_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

var hundred = decimal.NewFromInt(100)

// Validate performs domain validation on the inventory item.
// Out-of-range discounts and negative amounts are rejected here rather
// than at an upstream layer so that no caller can persist them.
func (i *InventoryItem) Validate() error {
	if i.ProductName == "" {
		return fmt.Errorf("product_name is required")
	}
	if i.Location == "" {
		return fmt.Errorf("location is required")
	}
	if i.ExpiryDate.IsZero() {
		return fmt.Errorf("expiry_date is required")
	}
	if i.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	if i.OriginalPrice.IsNegative() {
		return fmt.Errorf("original_price cannot be negative")
	}
	if i.DiscountPercent.IsNegative() || i.DiscountPercent.GreaterThan(hundred) {
		return fmt.Errorf("discount_percent must be between 0 and 100")
	}
	if i.Status == "" {
		i.Status = StatusAvailable
	}
	if !ValidStatus(i.Status) {
		return fmt.Errorf("unknown status: %s", i.Status)
	}
	return nil
}

// PrepareForStorage fills defaults before the item is persisted.
func (i *InventoryItem) PrepareForStorage() {
	if i.Status == "" {
		i.Status = StatusAvailable
	}

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	i.UpdatedAt = now
}

// DiscountedPrice computes original_price * (1 - discount_percent/100)
// rounded half-up to two decimal places. Never stored.
func (i *InventoryItem) DiscountedPrice() decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(i.DiscountPercent.Div(hundred))
	return i.OriginalPrice.Mul(factor).Round(2)
}

// DaysToExpiry returns the whole number of calendar days between today
// and the expiry date. Negative for items already past their date.
func (i *InventoryItem) DaysToExpiry(today time.Time) int {
	return int(dateOnly(i.ExpiryDate).Sub(dateOnly(today)).Hours() / 24)
}

// IsExpiringSoon reports whether the item is available and within the
// expiring-soon window.
func (i *InventoryItem) IsExpiringSoon(today time.Time) bool {
	return i.Status == StatusAvailable && i.DaysToExpiry(today) <= ExpiringSoonDays
}

// PubliclyVisible reports whether the item may appear on the public
// catalog: available and not yet past its expiry date. A stale stored
// status never makes an out-of-date item visible.
func (i *InventoryItem) PubliclyVisible(today time.Time) bool {
	return i.Status == StatusAvailable && !dateOnly(i.ExpiryDate).Before(dateOnly(today))
}

// ItemView is an inventory item together with its derived fields.
// Every read path goes through NewItemView so that dashboard, catalog
// and detail responses agree on derived values.
type ItemView struct {
	InventoryItem
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	DaysToExpiry    int             `json:"days_to_expiry"`
	ExpiringSoon    bool            `json:"expiring_soon"`
}

// NewItemView derives the computed fields for one item as of today.
func NewItemView(item InventoryItem, today time.Time) ItemView {
	return ItemView{
		InventoryItem:   item,
		DiscountedPrice: item.DiscountedPrice(),
		DaysToExpiry:    item.DaysToExpiry(today),
		ExpiringSoon:    item.IsExpiringSoon(today),
	}
}

// NewItemViews derives computed fields for a slice of items.
func NewItemViews(items []InventoryItem, today time.Time) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, NewItemView(item, today))
	}
	return views
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshsaver/freshsaver-be/internal/core/domain"
)

var benchmarkProducts = []struct {
	name     string
	category string
	location string
	price    float64
}{
	{"Greek Yogurt 4-Pack", "dairy", "Aisle 3, Shelf B", 6.99},
	{"Sourdough Boule", "bakery", "Bakery Counter", 4.50},
	{"Organic Baby Spinach", "produce", "Produce Wall", 3.25},
	{"Chicken Thighs Family Pack", "meat", "Meat Case 2", 9.80},
	{"Smoked Turkey Breast", "deli", "Deli Counter", 7.40},
	{"Whole Milk Gallon", "dairy", "Aisle 3, Shelf A", 3.89},
	{"Cinnamon Raisin Bagels", "bakery", "Bakery Counter", 5.10},
	{"Strawberries 1lb", "produce", "Produce Wall", 4.99},
	{"Ground Beef 80/20", "meat", "Meat Case 1", 6.50},
	{"Rotisserie Chicken", "deli", "Hot Case", 8.99},
}

// benchmarkItem builds a deterministic inventory fixture for seeding and
// create benchmarks. Expiry dates rotate through a 14-day window so the
// expiring-soon derivation sees both sides of the threshold.
func benchmarkItem(ownerID int64, i int) *domain.InventoryItem {
	p := benchmarkProducts[i%len(benchmarkProducts)]
	return &domain.InventoryItem{
		ProductName:     fmt.Sprintf("%s #%d", p.name, i),
		Category:        p.category,
		Location:        p.location,
		ExpiryDate:      time.Now().AddDate(0, 0, 1+i%14),
		Quantity:        1 + i%12,
		OriginalPrice:   decimal.NewFromFloat(p.price),
		DiscountPercent: decimal.NewFromInt(int64(5 * (i % 10))),
		Status:          domain.StatusAvailable,
		OwnerID:         ownerID,
	}
}

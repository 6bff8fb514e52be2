//go:build integration
// +build integration

package db_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/freshsaver/freshsaver-be/internal/adapters/db"
	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
	"github.com/freshsaver/freshsaver-be/test/helpers"
)

type InventoryRepositorySuite struct {
	suite.Suite
	testDB  *helpers.TestDB
	repo    ports.InventoryRepository
	ctx     context.Context
	ownerID int64
	otherID int64
}

func (s *InventoryRepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.repo = db.NewInventoryRepository(s.testDB.Database, helpers.TestLogger())
	s.ctx = context.Background()
}

func (s *InventoryRepositorySuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.ownerID = helpers.SeedTestUser(s.T(), s.testDB.PgxPool, "corner-store@example.com")
	s.otherID = helpers.SeedTestUser(s.T(), s.testDB.PgxPool, "rival-store@example.com")
}

func (s *InventoryRepositorySuite) newItem(overrides ...func(*domain.InventoryItem)) *domain.InventoryItem {
	item := helpers.CreateTestInventoryItem(overrides...)
	if item.OwnerID == 1 {
		item.OwnerID = s.ownerID
	}
	return item
}

func (s *InventoryRepositorySuite) TestSave() {
	item := s.newItem()

	err := s.repo.Save(s.ctx, item)
	s.NoError(err)
	s.NotZero(item.ID)

	saved, err := s.repo.FindByID(s.ctx, item.ID)
	s.NoError(err)
	helpers.CompareInventoryItems(s.T(), item, saved)
}

func (s *InventoryRepositorySuite) TestUpdate() {
	item := s.newItem()
	s.NoError(s.repo.Save(s.ctx, item))

	item.ProductName = "Greek Yogurt 2-Pack"
	item.Quantity = 4
	item.DiscountPercent = decimal.NewFromFloat(55)
	item.Status = domain.StatusReserved

	err := s.repo.Update(s.ctx, item)
	s.NoError(err)

	updated, err := s.repo.FindByID(s.ctx, item.ID)
	s.NoError(err)
	s.Equal("Greek Yogurt 2-Pack", updated.ProductName)
	s.Equal(4, updated.Quantity)
	s.True(decimal.NewFromFloat(55).Equal(updated.DiscountPercent))
	s.Equal(domain.StatusReserved, updated.Status)
	s.Equal(s.ownerID, updated.OwnerID)
}

func (s *InventoryRepositorySuite) TestUpdate_AbsentRow() {
	item := s.newItem()
	item.ID = 99999

	err := s.repo.Update(s.ctx, item)
	s.ErrorIs(err, ports.ErrNotFound)
}

func (s *InventoryRepositorySuite) TestFindByID_Absent() {
	_, err := s.repo.FindByID(s.ctx, 99999)
	s.ErrorIs(err, ports.ErrNotFound)
}

func (s *InventoryRepositorySuite) TestDelete() {
	item := s.newItem()
	s.NoError(s.repo.Save(s.ctx, item))

	s.NoError(s.repo.Delete(s.ctx, item.ID))

	_, err := s.repo.FindByID(s.ctx, item.ID)
	s.ErrorIs(err, ports.ErrNotFound)

	// Deleting again is a no-op, not an error
	s.NoError(s.repo.Delete(s.ctx, item.ID))
}

func (s *InventoryRepositorySuite) TestFindByOwner_Isolation() {
	for i := 0; i < 3; i++ {
		item := s.newItem(func(it *domain.InventoryItem) {
			it.ProductName = fmt.Sprintf("Mine %d", i)
		})
		s.NoError(s.repo.Save(s.ctx, item))
	}
	foreign := s.newItem(func(it *domain.InventoryItem) {
		it.ProductName = "Not Mine"
		it.OwnerID = s.otherID
	})
	s.NoError(s.repo.Save(s.ctx, foreign))

	items, err := s.repo.FindByOwner(s.ctx, s.ownerID, ports.ItemCriteria{}, 0)
	s.NoError(err)
	s.Len(items, 3)
	for _, item := range items {
		s.Equal(s.ownerID, item.OwnerID)
	}
}

func (s *InventoryRepositorySuite) TestFindByOwner_CriteriaAndOrdering() {
	fixtures := []struct {
		name     string
		category string
		location string
		days     int
		status   domain.ItemStatus
	}{
		{"Sourdough Loaf", "bakery", "Front Counter", 1, domain.StatusAvailable},
		{"Rye Loaf", "bakery", "Front Counter", 4, domain.StatusReserved},
		{"Whole Milk 2L", "dairy", "Fridge 1", 2, domain.StatusAvailable},
	}
	for _, f := range fixtures {
		item := s.newItem(func(it *domain.InventoryItem) {
			it.ProductName = f.name
			it.Category = f.category
			it.Location = f.location
			it.ExpiryDate = time.Now().AddDate(0, 0, f.days)
			it.Status = f.status
		})
		s.NoError(s.repo.Save(s.ctx, item))
	}

	s.Run("category_filter", func() {
		items, err := s.repo.FindByOwner(s.ctx, s.ownerID, ports.ItemCriteria{Category: "bakery"}, 0)
		s.NoError(err)
		s.Len(items, 2)
	})

	s.Run("status_filter", func() {
		items, err := s.repo.FindByOwner(s.ctx, s.ownerID, ports.ItemCriteria{Status: "reserved"}, 0)
		s.NoError(err)
		s.Len(items, 1)
		s.Equal("Rye Loaf", items[0].ProductName)
	})

	s.Run("search_matches_name_and_location", func() {
		items, err := s.repo.FindByOwner(s.ctx, s.ownerID, ports.ItemCriteria{Search: "loaf"}, 0)
		s.NoError(err)
		s.Len(items, 2)

		items, err = s.repo.FindByOwner(s.ctx, s.ownerID, ports.ItemCriteria{Search: "fridge"}, 0)
		s.NoError(err)
		s.Len(items, 1)
		s.Equal("Whole Milk 2L", items[0].ProductName)
	})

	s.Run("soonest_expiring_first", func() {
		items, err := s.repo.FindByOwner(s.ctx, s.ownerID, ports.ItemCriteria{}, 0)
		s.NoError(err)
		s.Len(items, 3)
		s.Equal("Sourdough Loaf", items[0].ProductName)
		s.Equal("Whole Milk 2L", items[1].ProductName)
		s.Equal("Rye Loaf", items[2].ProductName)
	})

	s.Run("limit_caps_rows", func() {
		items, err := s.repo.FindByOwner(s.ctx, s.ownerID, ports.ItemCriteria{}, 2)
		s.NoError(err)
		s.Len(items, 2)
	})
}

func (s *InventoryRepositorySuite) TestSummarizeOwner() {
	fixtures := []struct {
		status domain.ItemStatus
		days   int
	}{
		{domain.StatusAvailable, 1},
		{domain.StatusAvailable, 2},
		{domain.StatusAvailable, 10},
		{domain.StatusReserved, 2},
		{domain.StatusClaimed, 5},
		{domain.StatusExpired, -3},
	}
	for i, f := range fixtures {
		item := s.newItem(func(it *domain.InventoryItem) {
			it.ProductName = fmt.Sprintf("Item %d", i)
			it.Status = f.status
			it.ExpiryDate = time.Now().AddDate(0, 0, f.days)
		})
		s.NoError(s.repo.Save(s.ctx, item))
	}

	// Another owner's rows never leak into the summary
	foreign := s.newItem(func(it *domain.InventoryItem) {
		it.OwnerID = s.otherID
	})
	s.NoError(s.repo.Save(s.ctx, foreign))

	summary, err := s.repo.SummarizeOwner(s.ctx, s.ownerID, time.Now())
	s.NoError(err)
	s.Equal(int64(6), summary.TotalItems)
	s.Equal(int64(3), summary.AvailableItems)
	s.Equal(int64(1), summary.ReservedItems)
	s.Equal(int64(1), summary.ClaimedItems)
	s.Equal(int64(1), summary.ExpiredItems)
	// Only available items inside the window count as expiring soon
	s.Equal(int64(2), summary.ExpiringSoon)
}

func (s *InventoryRepositorySuite) TestOwnerCategories() {
	for _, category := range []string{"dairy", "bakery", "dairy", ""} {
		item := s.newItem(func(it *domain.InventoryItem) {
			it.Category = category
		})
		s.NoError(s.repo.Save(s.ctx, item))
	}

	categories, err := s.repo.OwnerCategories(s.ctx, s.ownerID)
	s.NoError(err)
	s.Equal([]string{"bakery", "dairy"}, categories)
}

func (s *InventoryRepositorySuite) TestFindVisible() {
	fixtures := []struct {
		name   string
		status domain.ItemStatus
		days   int
		owner  int64
	}{
		{"Visible Mine", domain.StatusAvailable, 2, 0},
		{"Visible Theirs", domain.StatusAvailable, 5, 1},
		{"Reserved", domain.StatusReserved, 2, 0},
		{"Stale Available", domain.StatusAvailable, -1, 0},
		{"Marked Expired", domain.StatusExpired, 3, 0},
	}
	for _, f := range fixtures {
		owner := s.ownerID
		if f.owner == 1 {
			owner = s.otherID
		}
		item := s.newItem(func(it *domain.InventoryItem) {
			it.ProductName = f.name
			it.Status = f.status
			it.ExpiryDate = time.Now().AddDate(0, 0, f.days)
			it.OwnerID = owner
		})
		s.NoError(s.repo.Save(s.ctx, item))
	}

	items, err := s.repo.FindVisible(s.ctx, ports.ItemCriteria{}, time.Now())
	s.NoError(err)
	s.Len(items, 2)
	names := []string{items[0].ProductName, items[1].ProductName}
	s.Contains(names, "Visible Mine")
	s.Contains(names, "Visible Theirs")
}

func (s *InventoryRepositorySuite) TestFindVisibleByID() {
	visible := s.newItem()
	s.NoError(s.repo.Save(s.ctx, visible))

	hidden := s.newItem(func(it *domain.InventoryItem) {
		it.Status = domain.StatusClaimed
	})
	s.NoError(s.repo.Save(s.ctx, hidden))

	stale := s.newItem(func(it *domain.InventoryItem) {
		it.ExpiryDate = time.Now().AddDate(0, 0, -2)
	})
	s.NoError(s.repo.Save(s.ctx, stale))

	found, err := s.repo.FindVisibleByID(s.ctx, visible.ID, time.Now())
	s.NoError(err)
	s.Equal(visible.ID, found.ID)

	_, err = s.repo.FindVisibleByID(s.ctx, hidden.ID, time.Now())
	s.ErrorIs(err, ports.ErrNotFound)

	_, err = s.repo.FindVisibleByID(s.ctx, stale.ID, time.Now())
	s.ErrorIs(err, ports.ErrNotFound)

	_, err = s.repo.FindVisibleByID(s.ctx, 99999, time.Now())
	s.ErrorIs(err, ports.ErrNotFound)
}

func (s *InventoryRepositorySuite) TestFindVisibleByCategory() {
	anchor := s.newItem(func(it *domain.InventoryItem) {
		it.ProductName = "Anchor"
		it.Category = "dairy"
	})
	s.NoError(s.repo.Save(s.ctx, anchor))

	for i := 0; i < 3; i++ {
		item := s.newItem(func(it *domain.InventoryItem) {
			it.ProductName = fmt.Sprintf("Dairy %d", i)
			it.Category = "dairy"
			it.ExpiryDate = time.Now().AddDate(0, 0, i+1)
		})
		s.NoError(s.repo.Save(s.ctx, item))
	}
	other := s.newItem(func(it *domain.InventoryItem) {
		it.ProductName = "Bread"
		it.Category = "bakery"
	})
	s.NoError(s.repo.Save(s.ctx, other))

	items, err := s.repo.FindVisibleByCategory(s.ctx, "dairy", anchor.ID, time.Now(), 2)
	s.NoError(err)
	s.Len(items, 2)
	for _, item := range items {
		s.NotEqual(anchor.ID, item.ID)
		s.Equal("dairy", item.Category)
	}
}

func (s *InventoryRepositorySuite) TestFindSoonestExpiring() {
	anchor := s.newItem(func(it *domain.InventoryItem) {
		it.ProductName = "Anchor"
		it.ExpiryDate = time.Now().AddDate(0, 0, 1)
	})
	s.NoError(s.repo.Save(s.ctx, anchor))

	for i := 0; i < 4; i++ {
		item := s.newItem(func(it *domain.InventoryItem) {
			it.ProductName = fmt.Sprintf("Deal %d", i)
			it.ExpiryDate = time.Now().AddDate(0, 0, i+2)
		})
		s.NoError(s.repo.Save(s.ctx, item))
	}

	items, err := s.repo.FindSoonestExpiring(s.ctx, anchor.ID, time.Now(), 3)
	s.NoError(err)
	s.Len(items, 3)
	s.Equal("Deal 0", items[0].ProductName)
	for _, item := range items {
		s.NotEqual(anchor.ID, item.ID)
	}
}

func (s *InventoryRepositorySuite) TestMarkExpired() {
	stale := s.newItem(func(it *domain.InventoryItem) {
		it.ProductName = "Stale"
		it.ExpiryDate = time.Now().AddDate(0, 0, -2)
	})
	s.NoError(s.repo.Save(s.ctx, stale))

	fresh := s.newItem(func(it *domain.InventoryItem) {
		it.ProductName = "Fresh"
		it.ExpiryDate = time.Now().AddDate(0, 0, 2)
	})
	s.NoError(s.repo.Save(s.ctx, fresh))

	// Already-claimed rows are left alone even when stale
	claimed := s.newItem(func(it *domain.InventoryItem) {
		it.ProductName = "Claimed"
		it.Status = domain.StatusClaimed
		it.ExpiryDate = time.Now().AddDate(0, 0, -5)
	})
	s.NoError(s.repo.Save(s.ctx, claimed))

	rows, err := s.repo.MarkExpired(s.ctx, time.Now())
	s.NoError(err)
	s.Equal(int64(1), rows)

	swept, err := s.repo.FindByID(s.ctx, stale.ID)
	s.NoError(err)
	s.Equal(domain.StatusExpired, swept.Status)

	kept, err := s.repo.FindByID(s.ctx, fresh.ID)
	s.NoError(err)
	s.Equal(domain.StatusAvailable, kept.Status)

	untouched, err := s.repo.FindByID(s.ctx, claimed.ID)
	s.NoError(err)
	s.Equal(domain.StatusClaimed, untouched.Status)

	// A second sweep finds nothing
	rows, err = s.repo.MarkExpired(s.ctx, time.Now())
	s.NoError(err)
	s.Zero(rows)
}

func (s *InventoryRepositorySuite) TestConcurrentSaves() {
	done := make(chan error, 10)

	for i := 0; i < 10; i++ {
		go func(idx int) {
			item := s.newItem(func(it *domain.InventoryItem) {
				it.ProductName = fmt.Sprintf("Concurrent Item %d", idx)
			})
			done <- s.repo.Save(context.Background(), item)
		}(i)
	}

	for i := 0; i < 10; i++ {
		s.NoError(<-done)
	}

	items, err := s.repo.FindByOwner(s.ctx, s.ownerID, ports.ItemCriteria{}, 0)
	s.NoError(err)
	s.Len(items, 10)
}

func TestInventoryRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(InventoryRepositorySuite))
}

package benchmarks

import (
	"context"
	"testing"
	"time"

	"github.com/freshsaver/freshsaver-be/internal/adapters/db"
	redis_a "github.com/freshsaver/freshsaver-be/internal/adapters/redis_adapter"
	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/core/ports"
	"github.com/freshsaver/freshsaver-be/internal/core/services"
	"github.com/freshsaver/freshsaver-be/test/helpers"
)

func BenchmarkInventoryOperations(b *testing.B) {
	// Setup
	testDB := helpers.SetupTestDB(&testing.T{})
	defer testDB.Database.Close()

	testRedis := helpers.SetupTestRedis(&testing.T{})

	repo := db.NewInventoryRepository(testDB.Database, helpers.TestLogger())
	cache := redis_a.NewCache(testRedis.Client, time.Minute, helpers.TestLogger())
	service := services.NewInventoryService(repo, cache, helpers.TestLogger())
	ctx := context.Background()

	ownerID := helpers.SeedTestUser(&testing.T{}, testDB.PgxPool, "bench-store@example.com")

	b.Run("Create", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = service.Create(ctx, ownerID, benchmarkItem(ownerID, i))
		}
	})

	// Pre-create items for read benchmarks
	var itemIDs []int64
	for i := 0; i < 100; i++ {
		id, err := service.Create(ctx, ownerID, benchmarkItem(ownerID, i))
		if err != nil {
			b.Fatalf("seeding read benchmarks: %v", err)
		}
		itemIDs = append(itemIDs, id)
	}

	b.Run("Read", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			id := itemIDs[i%len(itemIDs)]
			_, _ = service.Get(ctx, ownerID, id)
		}
	})

	b.Run("List", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = repo.FindByOwner(ctx, ownerID, ports.ItemCriteria{}, 50)
		}
	})

	b.Run("Search", func(b *testing.B) {
		criteria := ports.ItemCriteria{Search: "yogurt", Category: "dairy"}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = repo.FindByOwner(ctx, ownerID, criteria, 50)
		}
	})

	b.Run("Summary", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = repo.SummarizeOwner(ctx, ownerID, time.Now())
		}
	})

	b.Run("Catalog", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = repo.FindVisible(ctx, ports.ItemCriteria{}, time.Now())
		}
	})
}

func BenchmarkItemDerivation(b *testing.B) {
	items := make([]domain.InventoryItem, 100)
	for i := range items {
		items[i] = *benchmarkItem(1, i)
	}
	today := time.Now()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = domain.NewItemViews(items, today)
	}
}

func BenchmarkDiscountPricing(b *testing.B) {
	items := make([]*domain.InventoryItem, 20)
	for i := range items {
		items[i] = benchmarkItem(1, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		item := items[i%len(items)]
		_ = item.DiscountedPrice()
	}
}

// Memory allocation benchmarks
func BenchmarkMemoryAllocation(b *testing.B) {
	b.Run("InventoryItem", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = benchmarkItem(1, i)
		}
	})

	b.Run("DashboardData", func(b *testing.B) {
		items := helpers.CreateTestInventoryItems(100)
		views := domain.NewItemViews(items, time.Now())

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = &ports.DashboardData{
				Summary:    ports.OwnerSummary{TotalItems: 100, AvailableItems: 100},
				Items:      views,
				Categories: []string{"bakery", "dairy", "deli", "meat", "produce"},
				Timestamp:  time.Now(),
			}
		}
	})
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedStore is one store account in the fixture file, together with the
// inventory it owns.
type SeedStore struct {
	Email         string     `json:"email"`
	Password      string     `json:"password"`
	BusinessName  string     `json:"business_name"`
	Forename      string     `json:"forename"`
	Surname       string     `json:"surname"`
	ContactNumber string     `json:"contact_number"`
	Items         []SeedItem `json:"items"`
}

// SeedItem is one inventory row. Expiry is expressed as an offset in
// days from the day the seeder runs, so fixtures never go stale; a
// negative offset produces an already-expired item.
type SeedItem struct {
	ProductName     string          `json:"product_name"`
	Category        string          `json:"category"`
	Location        string          `json:"location"`
	ExpiryDays      int             `json:"expiry_days"`
	Quantity        int             `json:"quantity"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Status          string          `json:"status"`
}

// SeedFile is the top-level fixture document.
type SeedFile struct {
	Stores []SeedStore `json:"stores"`
}

// Seeder loads fixture data into the database
type Seeder struct {
	db         *pgxpool.Pool
	logger     *slog.Logger
	bcryptCost int
	dryRun     bool
}

func NewSeeder(db *pgxpool.Pool, bcryptCost int, dryRun bool, logger *slog.Logger) *Seeder {
	return &Seeder{
		db:         db,
		logger:     logger,
		bcryptCost: bcryptCost,
		dryRun:     dryRun,
	}
}

// SeedStore upserts the store account and replaces its inventory.
// Returns the number of items written.
func (s *Seeder) SeedStore(ctx context.Context, store SeedStore) (int, error) {
	if store.Email == "" {
		return 0, fmt.Errorf("store is missing an email")
	}

	if s.dryRun {
		s.logger.Info("dry run, skipping store",
			slog.String("email", store.Email),
			slog.Int("items", len(store.Items)))
		return len(store.Items), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(store.Password), s.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password for %s: %w", store.Email, err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var ownerID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, business_name, forename, surname, contact_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET
			password_hash  = EXCLUDED.password_hash,
			business_name  = EXCLUDED.business_name,
			forename       = EXCLUDED.forename,
			surname        = EXCLUDED.surname,
			contact_number = EXCLUDED.contact_number,
			updated_at     = now()
		RETURNING id`,
		store.Email, string(hash), store.BusinessName,
		store.Forename, store.Surname, store.ContactNumber,
	).Scan(&ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert store %s: %w", store.Email, err)
	}

	// Reseeding replaces the store's inventory wholesale.
	if _, err := tx.Exec(ctx, `DELETE FROM inventory_items WHERE owner_id = $1`, ownerID); err != nil {
		return 0, fmt.Errorf("failed to clear inventory for %s: %w", store.Email, err)
	}

	today := time.Now()
	batch := &pgx.Batch{}
	for _, item := range store.Items {
		status := item.Status
		if status == "" {
			status = "available"
		}
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		expiry := today.AddDate(0, 0, item.ExpiryDays)

		batch.Queue(`
			INSERT INTO inventory_items (
				product_name, category, location, expiry_date, quantity,
				original_price, discount_percent, status, owner_id
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			item.ProductName, item.Category, item.Location, expiry, quantity,
			item.OriginalPrice, item.DiscountPercent, status, ownerID,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range store.Items {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return 0, fmt.Errorf("failed to insert item: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("seeded store",
		slog.String("email", store.Email),
		slog.Int64("owner_id", ownerID),
		slog.Int("items", len(store.Items)))

	return len(store.Items), nil
}

func main() {
	// Parse flags
	var (
		seedFile   = flag.String("file", "./seed_data.json", "JSON fixture file with stores and inventory")
		logLevel   = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		bcryptCost = flag.Int("bcrypt-cost", bcrypt.DefaultCost, "Cost for hashing seeded passwords")
		dryRun     = flag.Bool("dry-run", false, "Preview changes without modifying database")
	)
	flag.Parse()

	// Setup logging
	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(logger)

	// Database connection
	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "freshsaver"),
		getEnv("DB_PASSWORD", "freshsaver_dev_2025"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "freshsaver_inventory"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	var db *pgxpool.Pool
	var err error

	if !*dryRun {
		db, err = pgxpool.New(ctx, dbURL)
		if err != nil {
			logger.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
	}

	// Load fixture file
	data, err := os.ReadFile(*seedFile)
	if err != nil {
		logger.Error("failed to read seed file",
			slog.String("file", *seedFile),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	var fixture SeedFile
	if err := json.Unmarshal(data, &fixture); err != nil {
		logger.Error("failed to parse seed file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if len(fixture.Stores) == 0 {
		logger.Error("seed file contains no stores", slog.String("file", *seedFile))
		os.Exit(1)
	}

	seeder := NewSeeder(db, *bcryptCost, *dryRun, logger)

	totalStores := 0
	totalItems := 0
	var failedStores []string

	for i, store := range fixture.Stores {
		fmt.Printf("PROGRESS: Seeding %d/%d: %s\n", i+1, len(fixture.Stores), store.Email)

		count, err := seeder.SeedStore(ctx, store)
		if err != nil {
			logger.Error("failed to seed store",
				slog.String("email", store.Email),
				slog.String("error", err.Error()))
			failedStores = append(failedStores, store.Email)
			continue
		}

		totalStores++
		totalItems += count
	}

	// Summary
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SEEDING SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Stores Seeded: %d\n", totalStores)
	fmt.Printf("Items Written: %d\n", totalItems)

	if len(failedStores) > 0 {
		fmt.Printf("\nFailed Stores (%d):\n", len(failedStores))
		for _, email := range failedStores {
			fmt.Printf("  - %s\n", email)
		}
	}

	logger.Info("seed operation completed",
		slog.Int("stores_seeded", totalStores),
		slog.Int("items_created", totalItems),
		slog.Int("failed_stores", len(failedStores)))

	if *dryRun {
		fmt.Println("\n[DRY RUN] No changes were made to the database")
	}

	if len(failedStores) > 0 {
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

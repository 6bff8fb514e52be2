package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/freshsaver/freshsaver-be/internal/adapters/db"
	"github.com/freshsaver/freshsaver-be/internal/core/domain"
	"github.com/freshsaver/freshsaver-be/internal/pkg/config"
	"github.com/freshsaver/freshsaver-be/internal/pkg/logger"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// TestStructuredLogger returns the enriched logger used by the request
// logging middleware.
func TestStructuredLogger() *logger.Logger {
	level := "error"
	if testing.Verbose() {
		level = "debug"
	}
	return logger.NewLogger(&logger.LogConfig{
		Level:  level,
		Format: "text",
		Output: "stdout",
	})
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_freshsaver",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_freshsaver",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for database to be ready
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	// Run the embedded migrations
	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_freshsaver",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Security: config.SecurityConfig{
			BcryptCost:        4,
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// Today returns the reference date used when deriving computed item
// fields in tests.
func Today() time.Time {
	return time.Now()
}

// CreateTestInventoryItem creates a test inventory item
func CreateTestInventoryItem(overrides ...func(*domain.InventoryItem)) *domain.InventoryItem {
	item := &domain.InventoryItem{
		ProductName:     "Greek Yogurt 4-Pack",
		Category:        "dairy",
		Location:        "Aisle 3, Shelf B",
		ExpiryDate:      time.Now().AddDate(0, 0, 5),
		Quantity:        12,
		OriginalPrice:   decimal.NewFromFloat(6.99),
		DiscountPercent: decimal.NewFromFloat(30),
		Status:          domain.StatusAvailable,
		OwnerID:         1,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	for _, override := range overrides {
		override(item)
	}

	return item
}

// CreateTestInventoryItems creates multiple test inventory items
func CreateTestInventoryItems(count int) []domain.InventoryItem {
	items := make([]domain.InventoryItem, count)

	categories := []string{"dairy", "bakery", "produce", "meat", "deli"}
	statuses := []domain.ItemStatus{
		domain.StatusAvailable,
		domain.StatusAvailable,
		domain.StatusReserved,
		domain.StatusClaimed,
	}

	for i := 0; i < count; i++ {
		items[i] = *CreateTestInventoryItem(func(item *domain.InventoryItem) {
			item.ProductName = fmt.Sprintf("Test Product %d", i+1)
			item.Category = categories[i%len(categories)]
			item.Status = statuses[i%len(statuses)]
			item.ExpiryDate = time.Now().AddDate(0, 0, i%10)
			item.OriginalPrice = decimal.NewFromFloat(float64(2 + i))
		})
	}

	return items
}

// CompareInventoryItems compares two inventory items for testing
func CompareInventoryItems(t *testing.T, expected, actual *domain.InventoryItem) {
	t.Helper()

	require.Equal(t, expected.ProductName, actual.ProductName)
	require.Equal(t, expected.Category, actual.Category)
	require.Equal(t, expected.Location, actual.Location)
	require.Equal(t, expected.Quantity, actual.Quantity)
	require.Equal(t, expected.Status, actual.Status)
	require.Equal(t, expected.OwnerID, actual.OwnerID)
	require.True(t, expected.OriginalPrice.Equal(actual.OriginalPrice))
	require.True(t, expected.DiscountPercent.Equal(actual.DiscountPercent))
	require.Equal(t, expected.ExpiryDate.Format("2006-01-02"), actual.ExpiryDate.Format("2006-01-02"))
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"contact_messages",
		"inventory_items",
		"users",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}

// SeedTestUser inserts a user row and returns its id. Items reference
// owners by foreign key, so every seeded item needs one of these.
func SeedTestUser(t *testing.T, db *pgxpool.Pool, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id`,
		email, "x",
	).Scan(&id)
	require.NoError(t, err, "Failed to seed test user")

	return id
}

// SeedTestData seeds the database with inventory rows owned by ownerID
func SeedTestData(t *testing.T, db *pgxpool.Pool, ownerID int64, items []domain.InventoryItem) []int64 {
	t.Helper()

	ctx := context.Background()
	ids := make([]int64, 0, len(items))

	for _, item := range items {
		query := `
			INSERT INTO inventory_items (
				product_name, category, location, expiry_date, quantity,
				original_price, discount_percent, status, owner_id
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`

		var category any
		if item.Category != "" {
			category = item.Category
		}

		var id int64
		err := db.QueryRow(ctx, query,
			item.ProductName, category, item.Location, item.ExpiryDate,
			item.Quantity, item.OriginalPrice, item.DiscountPercent,
			item.Status, ownerID,
		).Scan(&id)
		require.NoError(t, err, "Failed to seed test data")
		ids = append(ids, id)
	}

	return ids
}

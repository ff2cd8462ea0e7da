package integration

import (
	"context"
	"testing"
	"time"

	"stockroom/internal/config"
	"stockroom/internal/database"
	"stockroom/internal/model"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	ConnStr   string
}

// SetupTestDB starts a PostgreSQL test container, connects through the
// application's database layer and migrates the schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Skipf("skipping: could not start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		URL:             connStr,
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: 300,
	}

	logger := zerolog.Nop()
	db, err := database.Open(ctx, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		DB:        db,
		ConnStr:   connStr,
	}
}

// SeedInventory inserts a small catalog of categories and items.
func SeedInventory(t *testing.T, db *gorm.DB) (tools, paint model.Category) {
	t.Helper()

	tools = model.Category{Name: "Tools", Description: "Hand tools"}
	paint = model.Category{Name: "Paint", Description: "Coatings and supplies"}
	for _, c := range []*model.Category{&tools, &paint} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("failed to seed category %s: %v", c.Name, err)
		}
	}

	items := []model.Item{
		{Name: "Claw Hammer", Description: "16oz", Price: 12.99, Stock: 24, CategoryID: tools.ID},
		{Name: "Screwdriver Set", Price: 19.50, Stock: 8, CategoryID: tools.ID},
		{Name: "Tape Measure", Price: 7.25, Stock: 0, CategoryID: tools.ID},
		{Name: "Interior Paint 1L", Price: 24.00, Stock: 40, CategoryID: paint.ID},
		{Name: "Paint Roller", Price: 5.75, Stock: 3, CategoryID: paint.ID},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			t.Fatalf("failed to seed item %s: %v", items[i].Name, err)
		}
	}

	return tools, paint
}

// CleanupDB removes all rows from the inventory tables.
func CleanupDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	for _, table := range []string{"items", "categories"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

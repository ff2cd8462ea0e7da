package repository

import (
	"context"
	"testing"

	"stockroom/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the schema migrated.
// The pool is pinned to a single connection because every in-memory SQLite
// connection is its own database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Category{}, &model.Item{}))

	return db
}

// seedCategory inserts a category and returns it with its generated ID.
func seedCategory(t *testing.T, ctx context.Context, repo CategoryRepository, name string) *model.Category {
	t.Helper()

	category := &model.Category{Name: name}
	require.NoError(t, repo.Create(ctx, category))
	require.NotZero(t, category.ID)
	return category
}

// seedItem inserts an item under the given category.
func seedItem(t *testing.T, ctx context.Context, repo ItemRepository, name string, price float64, stock int, categoryID uint) *model.Item {
	t.Helper()

	item := &model.Item{Name: name, Price: price, Stock: stock, CategoryID: categoryID}
	require.NoError(t, repo.Create(ctx, item))
	require.NotZero(t, item.ID)
	return item
}

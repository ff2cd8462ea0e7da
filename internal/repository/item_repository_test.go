package repository

import (
	"context"
	"testing"

	"stockroom/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepository_List_Filtering(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	categoryRepo := NewCategoryRepository(db, logger)
	itemRepo := NewItemRepository(db, logger)

	cat := seedCategory(t, ctx, categoryRepo, "Tools")
	seedItem(t, ctx, itemRepo, "Claw Hammer", 12.99, 10, cat.ID)
	seedItem(t, ctx, itemRepo, "Sledgehammer", 34.00, 2, cat.ID)
	seedItem(t, ctx, itemRepo, "Screwdriver", 5.50, 30, cat.ID)

	tests := []struct {
		name          string
		q             string
		expectedNames []string
	}{
		{
			name:          "Empty query returns all ordered by id",
			q:             "",
			expectedNames: []string{"Claw Hammer", "Sledgehammer", "Screwdriver"},
		},
		{
			name:          "Whitespace-only query returns all",
			q:             "   ",
			expectedNames: []string{"Claw Hammer", "Sledgehammer", "Screwdriver"},
		},
		{
			name:          "Substring match",
			q:             "hammer",
			expectedNames: []string{"Claw Hammer", "Sledgehammer"},
		},
		{
			name:          "Case-insensitive match",
			q:             "HAMMER",
			expectedNames: []string{"Claw Hammer", "Sledgehammer"},
		},
		{
			name:          "Query is trimmed before matching",
			q:             "  screw  ",
			expectedNames: []string{"Screwdriver"},
		},
		{
			name:          "No match",
			q:             "wrench",
			expectedNames: nil,
		},
		{
			name:          "LIKE metacharacters are literal",
			q:             "%",
			expectedNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := itemRepo.List(ctx, tt.q)
			require.NoError(t, err)

			var names []string
			for _, it := range items {
				names = append(names, it.Name)
			}
			assert.Equal(t, tt.expectedNames, names)
		})
	}
}

func TestItemRepository_List_PreloadsCategory(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	categoryRepo := NewCategoryRepository(db, logger)
	itemRepo := NewItemRepository(db, logger)

	cat := seedCategory(t, ctx, categoryRepo, "Hardware")
	seedItem(t, ctx, itemRepo, "Hinge", 2.10, 40, cat.ID)

	items, err := itemRepo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Category)
	assert.Equal(t, "Hardware", items[0].Category.Name)
}

func TestItemRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	categoryRepo := NewCategoryRepository(db, logger)
	itemRepo := NewItemRepository(db, logger)

	cat := seedCategory(t, ctx, categoryRepo, "Paint")
	created := seedItem(t, ctx, itemRepo, "Primer", 18.99, 7, cat.ID)

	t.Run("Existing item", func(t *testing.T) {
		item, err := itemRepo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Primer", item.Name)
		assert.Equal(t, 18.99, item.Price)
		assert.Equal(t, 7, item.Stock)
		require.NotNil(t, item.Category)
		assert.Equal(t, "Paint", item.Category.Name)
	})

	t.Run("Missing item returns nil without error", func(t *testing.T) {
		item, err := itemRepo.GetByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestItemRepository_CreateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	categoryRepo := NewCategoryRepository(db, logger)
	itemRepo := NewItemRepository(db, logger)

	cat := seedCategory(t, ctx, categoryRepo, "Garden")
	item := seedItem(t, ctx, itemRepo, "Trowel", 8.25, 15, cat.ID)

	require.NoError(t, itemRepo.Delete(ctx, item.ID))

	got, err := itemRepo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an absent id is a no-op.
	require.NoError(t, itemRepo.Delete(ctx, item.ID))

	items, err := itemRepo.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemRepository_CountAndStockSum(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	categoryRepo := NewCategoryRepository(db, logger)
	itemRepo := NewItemRepository(db, logger)

	count, err := itemRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	sum, err := itemRepo.StockSum(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)

	cat := seedCategory(t, ctx, categoryRepo, "Stock")
	seedItem(t, ctx, itemRepo, "A", 1.00, 3, cat.ID)
	seedItem(t, ctx, itemRepo, "B", 2.00, 9, cat.ID)

	count, err = itemRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	sum, err = itemRepo.StockSum(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), sum)
}

func TestItemRepository_LowStock(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	categoryRepo := NewCategoryRepository(db, logger)
	itemRepo := NewItemRepository(db, logger)

	cat := seedCategory(t, ctx, categoryRepo, "Mixed")
	for _, tc := range []struct {
		name  string
		stock int
	}{
		{"Empty", 0},
		{"Scarce", 3},
		{"Boundary", 5},
		{"Fine", 6},
		{"Plenty", 20},
	} {
		seedItem(t, ctx, itemRepo, tc.name, 1.00, tc.stock, cat.ID)
	}

	items, err := itemRepo.LowStock(ctx, model.LowStockThreshold, 8)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int{0, 3, 5}, []int{items[0].Stock, items[1].Stock, items[2].Stock})
	assert.Equal(t, "Empty", items[0].Name)
	assert.Equal(t, "Boundary", items[2].Name)
}

func TestItemRepository_LowStock_Limit(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	categoryRepo := NewCategoryRepository(db, logger)
	itemRepo := NewItemRepository(db, logger)

	cat := seedCategory(t, ctx, categoryRepo, "Bulk")
	for i := 0; i < 12; i++ {
		seedItem(t, ctx, itemRepo, "Item", 1.00, i%4, cat.ID)
	}

	items, err := itemRepo.LowStock(ctx, model.LowStockThreshold, 8)
	require.NoError(t, err)
	assert.Len(t, items, 8)
}

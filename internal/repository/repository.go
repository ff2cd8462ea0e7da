package repository

import (
	"context"

	"stockroom/internal/model"
)

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// List retrieves categories whose name contains q, annotated with their
	// item counts, ordered by name. Empty q matches all.
	List(ctx context.Context, q string) ([]model.CategoryWithCount, error)

	// GetByID retrieves a single category with its items preloaded.
	// Returns (nil, nil) when no row matches.
	GetByID(ctx context.Context, id uint) (*model.Category, error)

	// GetAll retrieves every category ordered by name, without items.
	GetAll(ctx context.Context) ([]model.Category, error)

	// Create inserts a new category and backfills its generated ID.
	Create(ctx context.Context, category *model.Category) error

	// Exists reports whether a category with the given ID is present.
	Exists(ctx context.Context, id uint) (bool, error)

	// Count returns the number of categories.
	Count(ctx context.Context) (int64, error)

	// StockTotals returns per-category stock sums, highest first,
	// limited to at most limit rows.
	StockTotals(ctx context.Context, limit int) ([]model.CategoryStock, error)

	// ItemCounts returns per-category item counts ordered by category name.
	ItemCounts(ctx context.Context) ([]model.CategoryItemCount, error)
}

// ItemRepository defines the interface for item data access operations.
type ItemRepository interface {
	// List retrieves items whose name contains q with their category
	// preloaded, ordered by ID. Empty q matches all.
	List(ctx context.Context, q string) ([]model.Item, error)

	// GetByID retrieves a single item with its category preloaded.
	// Returns (nil, nil) when no row matches.
	GetByID(ctx context.Context, id uint) (*model.Item, error)

	// GetAll retrieves every item without preloading, for valuation passes.
	GetAll(ctx context.Context) ([]model.Item, error)

	// Create inserts a new item and backfills its generated ID.
	Create(ctx context.Context, item *model.Item) error

	// Delete removes the item with the given ID. Deleting an absent ID is
	// a no-op, not an error.
	Delete(ctx context.Context, id uint) error

	// Count returns the number of items.
	Count(ctx context.Context) (int64, error)

	// StockSum returns the database-side sum of stock over all items.
	StockSum(ctx context.Context) (int64, error)

	// LowStock retrieves items with stock at or below threshold, ordered
	// ascending by stock, limited to at most limit rows.
	LowStock(ctx context.Context, threshold, limit int) ([]model.Item, error)
}

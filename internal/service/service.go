package service

import (
	"context"

	"stockroom/internal/model"
)

// ItemService defines operations for item management.
type ItemService interface {
	// List retrieves items filtered by an optional free-text name search.
	List(ctx context.Context, q string) ([]model.Item, error)

	// Get retrieves a single item by ID.
	Get(ctx context.Context, id uint) (*model.Item, error)

	// Create validates the submitted form and inserts a new item.
	Create(ctx context.Context, form model.ItemForm) (*model.Item, error)

	// Delete removes an item. The id is the raw form value; parse failures
	// are validation errors, deleting an absent row is not.
	Delete(ctx context.Context, rawID string) error
}

// CategoryService defines operations for category management.
type CategoryService interface {
	// List retrieves categories with item counts, filtered by an optional
	// free-text name search.
	List(ctx context.Context, q string) ([]model.CategoryWithCount, error)

	// Detail retrieves a category with its items and derived summary.
	Detail(ctx context.Context, id uint) (*model.Category, model.CategorySummary, error)

	// GetAll retrieves every category, for form selects.
	GetAll(ctx context.Context) ([]model.Category, error)

	// Create validates the submitted form and inserts a new category.
	Create(ctx context.Context, form model.CategoryForm) (*model.Category, error)
}

// DashboardService computes the aggregate figures for the dashboard page.
type DashboardService interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
}

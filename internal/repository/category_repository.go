package repository

import (
	"context"
	"errors"
	"fmt"

	"stockroom/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// categoryRepository implements the CategoryRepository interface using GORM.
type categoryRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewCategoryRepository creates a new GORM-backed category repository.
func NewCategoryRepository(db *gorm.DB, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		db:     db,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

// List retrieves categories matching the name filter with their item counts.
func (r *categoryRepository) List(ctx context.Context, q string) ([]model.CategoryWithCount, error) {
	var categories []model.CategoryWithCount

	query := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Select("categories.id, categories.name, categories.description, " +
			"(SELECT COUNT(*) FROM items WHERE items.category_id = categories.id) AS item_count")
	err := nameContains(query, q).
		Order("categories.name ASC").
		Scan(&categories).Error
	if err != nil {
		r.logger.Error().Err(err).Str("q", q).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a single category with its items.
func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("items.id ASC")
		}).
		First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debug().Uint("category_id", id).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Uint("category_id", id).Msg("failed to query category")
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &category, nil
}

// GetAll retrieves every category ordered by name.
func (r *categoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// Create inserts a new category.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	if err := r.db.WithContext(ctx).Omit("Items").Create(category).Error; err != nil {
		r.logger.Error().Err(err).Str("name", category.Name).Msg("failed to insert category")
		return fmt.Errorf("failed to insert category: %w", err)
	}

	r.logger.Debug().Uint("category_id", category.ID).Str("name", category.Name).Msg("category created")
	return nil
}

// Exists reports whether a category with the given ID is present.
func (r *categoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		r.logger.Error().Err(err).Uint("category_id", id).Msg("failed to check category existence")
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}

	return count > 0, nil
}

// Count returns the number of categories.
func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).Count(&count).Error
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count categories")
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return count, nil
}

// StockTotals returns per-category stock sums for the dashboard chart,
// highest first. Categories without items contribute a zero bar.
func (r *categoryRepository) StockTotals(ctx context.Context, limit int) ([]model.CategoryStock, error) {
	var totals []model.CategoryStock
	err := r.db.WithContext(ctx).
		Table("categories").
		Select("categories.id AS category_id, categories.name AS name, COALESCE(SUM(items.stock), 0) AS total_stock").
		Joins("LEFT JOIN items ON items.category_id = categories.id").
		Group("categories.id, categories.name").
		Order("total_stock DESC").
		Limit(limit).
		Scan(&totals).Error
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to aggregate stock totals")
		return nil, fmt.Errorf("failed to aggregate stock totals: %w", err)
	}

	return totals, nil
}

// ItemCounts returns per-category item counts for the distribution chart.
func (r *categoryRepository) ItemCounts(ctx context.Context) ([]model.CategoryItemCount, error) {
	var counts []model.CategoryItemCount
	err := r.db.WithContext(ctx).
		Table("categories").
		Select("categories.id AS category_id, categories.name AS name, COUNT(items.id) AS item_count").
		Joins("LEFT JOIN items ON items.category_id = categories.id").
		Group("categories.id, categories.name").
		Order("categories.name ASC").
		Scan(&counts).Error
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to aggregate item counts")
		return nil, fmt.Errorf("failed to aggregate item counts: %w", err)
	}

	return counts, nil
}

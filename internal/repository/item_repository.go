package repository

import (
	"context"
	"errors"
	"fmt"

	"stockroom/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// itemRepository implements the ItemRepository interface using GORM.
type itemRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewItemRepository creates a new GORM-backed item repository.
func NewItemRepository(db *gorm.DB, logger zerolog.Logger) ItemRepository {
	return &itemRepository{
		db:     db,
		logger: logger.With().Str("repository", "item").Logger(),
	}
}

// List retrieves items matching the name filter with categories preloaded.
func (r *itemRepository) List(ctx context.Context, q string) ([]model.Item, error) {
	var items []model.Item

	query := r.db.WithContext(ctx).Preload("Category")
	err := nameContains(query, q).
		Order("items.id ASC").
		Find(&items).Error
	if err != nil {
		r.logger.Error().Err(err).Str("q", q).Msg("failed to list items")
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single item with its category preloaded.
func (r *itemRepository) GetByID(ctx context.Context, id uint) (*model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debug().Uint("item_id", id).Msg("item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Uint("item_id", id).Msg("failed to query item")
		return nil, fmt.Errorf("failed to query item: %w", err)
	}

	return &item, nil
}

// GetAll retrieves every item without preloading.
func (r *itemRepository) GetAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query items")
		return nil, fmt.Errorf("failed to query items: %w", err)
	}

	return items, nil
}

// Create inserts a new item.
func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	if err := r.db.WithContext(ctx).Omit("Category").Create(item).Error; err != nil {
		r.logger.Error().Err(err).Str("name", item.Name).Msg("failed to insert item")
		return fmt.Errorf("failed to insert item: %w", err)
	}

	r.logger.Debug().Uint("item_id", item.ID).Str("name", item.Name).Msg("item created")
	return nil
}

// Delete removes the item with the given ID.
func (r *itemRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	if res.Error != nil {
		r.logger.Error().Err(res.Error).Uint("item_id", id).Msg("failed to delete item")
		return fmt.Errorf("failed to delete item: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		r.logger.Debug().Uint("item_id", id).Msg("delete matched no rows")
	}
	return nil
}

// Count returns the number of items.
func (r *itemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).Count(&count).Error
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count items")
		return 0, fmt.Errorf("failed to count items: %w", err)
	}

	return count, nil
}

// StockSum returns the database-side sum of stock over all items.
func (r *itemRepository) StockSum(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Select("COALESCE(SUM(stock), 0)").
		Scan(&sum).Error
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to sum stock")
		return 0, fmt.Errorf("failed to sum stock: %w", err)
	}

	return sum, nil
}

// LowStock retrieves items at or below the threshold, lowest stock first.
func (r *itemRepository) LowStock(ctx context.Context, threshold, limit int) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("stock <= ?", threshold).
		Order("stock ASC, id ASC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		r.logger.Error().Err(err).Int("threshold", threshold).Msg("failed to query low-stock items")
		return nil, fmt.Errorf("failed to query low-stock items: %w", err)
	}

	return items, nil
}

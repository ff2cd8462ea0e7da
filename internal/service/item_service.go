package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/rs/zerolog"
)

// itemService implements ItemService.
type itemService struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewItemService creates a new item service.
func NewItemService(itemRepo repository.ItemRepository, categoryRepo repository.CategoryRepository, logger zerolog.Logger) ItemService {
	return &itemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "item").Logger(),
	}
}

// List retrieves items filtered by an optional name search.
func (s *itemService) List(ctx context.Context, q string) ([]model.Item, error) {
	items, err := s.itemRepo.List(ctx, q)
	if err != nil {
		s.logger.Error().Err(err).Str("q", q).Msg("failed to list items")
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	s.logger.Debug().Int("count", len(items)).Str("q", q).Msg("retrieved items")
	return items, nil
}

// Get retrieves a single item by ID.
func (s *itemService) Get(ctx context.Context, id uint) (*model.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Uint("item_id", id).Msg("failed to get item")
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if item == nil {
		return nil, model.ErrItemNotFound
	}

	return item, nil
}

// Create validates the form and inserts a new item. Field rules follow the
// creation form contract: name required, price required and parseable,
// stock optional defaulting to zero, category required and existing.
func (s *itemService) Create(ctx context.Context, form model.ItemForm) (*model.Item, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, model.NewValidationError("name", "must not be empty")
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(form.Price), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, model.NewValidationError("price", "must be a number")
	}
	if price < 0 {
		return nil, model.NewValidationError("price", "must not be negative")
	}

	// Unparseable stock falls back to zero rather than failing the form.
	stock := 0
	if raw := strings.TrimSpace(form.Stock); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			stock = parsed
		}
	}
	if stock < 0 {
		return nil, model.NewValidationError("stock", "must not be negative")
	}

	categoryID, err := strconv.ParseUint(strings.TrimSpace(form.CategoryID), 10, 32)
	if err != nil {
		return nil, model.NewValidationError("categoryId", "must be a number")
	}

	exists, err := s.categoryRepo.Exists(ctx, uint(categoryID))
	if err != nil {
		s.logger.Error().Err(err).Uint64("category_id", categoryID).Msg("failed to check category")
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return nil, model.ErrCategoryNotFound
	}

	item := &model.Item{
		Name:        name,
		Description: strings.TrimSpace(form.Description),
		Price:       price,
		Stock:       stock,
		CategoryID:  uint(categoryID),
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create item")
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.logger.Info().
		Uint("item_id", item.ID).
		Str("name", item.Name).
		Uint("category_id", item.CategoryID).
		Msg("item created")

	return item, nil
}

// Delete removes an item by its raw form id.
func (s *itemService) Delete(ctx context.Context, rawID string) error {
	id, err := strconv.ParseUint(strings.TrimSpace(rawID), 10, 32)
	if err != nil {
		return model.NewValidationError("id", "must be a number")
	}

	if err := s.itemRepo.Delete(ctx, uint(id)); err != nil {
		s.logger.Error().Err(err).Uint64("item_id", id).Msg("failed to delete item")
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.logger.Info().Uint64("item_id", id).Msg("item deleted")
	return nil
}

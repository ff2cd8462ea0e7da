package service

import (
	"context"
	"fmt"
	"strings"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/rs/zerolog"
)

// categoryService implements CategoryService.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger zerolog.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "category").Logger(),
	}
}

// List retrieves categories with item counts, filtered by name search.
func (s *categoryService) List(ctx context.Context, q string) ([]model.CategoryWithCount, error) {
	categories, err := s.categoryRepo.List(ctx, q)
	if err != nil {
		s.logger.Error().Err(err).Str("q", q).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	s.logger.Debug().Int("count", len(categories)).Str("q", q).Msg("retrieved categories")
	return categories, nil
}

// Detail retrieves a category with its items and the derived summary.
func (s *categoryService) Detail(ctx context.Context, id uint) (*model.Category, model.CategorySummary, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Uint("category_id", id).Msg("failed to get category")
		return nil, model.CategorySummary{}, fmt.Errorf("failed to get category: %w", err)
	}

	if category == nil {
		return nil, model.CategorySummary{}, model.ErrCategoryNotFound
	}

	return category, model.SummarizeCategory(category.Items), nil
}

// GetAll retrieves every category.
func (s *categoryService) GetAll(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return categories, nil
}

// Create validates the form and inserts a new category.
func (s *categoryService) Create(ctx context.Context, form model.CategoryForm) (*model.Category, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, model.NewValidationError("name", "must not be empty")
	}

	category := &model.Category{
		Name:        name,
		Description: strings.TrimSpace(form.Description),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info().Uint("category_id", category.ID).Str("name", category.Name).Msg("category created")
	return category, nil
}

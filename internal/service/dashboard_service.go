package service

import (
	"context"
	"fmt"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/rs/zerolog"
)

// chartLimit caps the dashboard chart and low-stock list lengths.
const chartLimit = 8

// dashboardService implements DashboardService.
type dashboardService struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(itemRepo repository.ItemRepository, categoryRepo repository.CategoryRepository, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "dashboard").Logger(),
	}
}

// Stats gathers every figure the dashboard renders. Counts and the stock sum
// come from database-side aggregates; the inventory value is accumulated here
// in integer cents over the full item set.
func (s *dashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	itemCount, err := s.itemRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	categoryCount, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	stockSum, err := s.itemRepo.StockSum(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum stock: %w", err)
	}

	items, err := s.itemRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for valuation: %w", err)
	}

	stockByCategory, err := s.categoryRepo.StockTotals(ctx, chartLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stock totals: %w", err)
	}

	distribution, err := s.categoryRepo.ItemCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate item counts: %w", err)
	}

	lowStock, err := s.itemRepo.LowStock(ctx, model.LowStockThreshold, chartLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load low-stock items: %w", err)
	}

	stats := &model.DashboardStats{
		ItemCount:           itemCount,
		CategoryCount:       categoryCount,
		StockSum:            stockSum,
		InventoryValueCents: model.InventoryValueCents(items),
		StockByCategory:     stockByCategory,
		ItemDistribution:    distribution,
		LowStock:            lowStock,
	}

	s.logger.Debug().
		Int64("items", stats.ItemCount).
		Int64("categories", stats.CategoryCount).
		Int64("stock_sum", stats.StockSum).
		Msg("dashboard stats computed")

	return stats, nil
}

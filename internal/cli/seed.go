package cli

import (
	"context"
	"fmt"

	"stockroom/internal/config"
	"stockroom/internal/database"
	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample categories and items for local development",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logger := config.NewLogger(cfg.Logger)
		ctx := context.Background()

		db, err := database.Open(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			return err
		}

		categoryRepo := repository.NewCategoryRepository(db, logger)
		itemRepo := repository.NewItemRepository(db, logger)

		count, err := categoryRepo.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			logger.Info().Int64("categories", count).Msg("database already seeded, nothing to do")
			return nil
		}

		seeded := 0
		for _, s := range sampleData() {
			category := &model.Category{Name: s.name, Description: s.description}
			if err := categoryRepo.Create(ctx, category); err != nil {
				return err
			}
			for _, it := range s.items {
				item := it
				item.CategoryID = category.ID
				if err := itemRepo.Create(ctx, &item); err != nil {
					return err
				}
				seeded++
			}
		}

		logger.Info().Int("items", seeded).Msg("sample data inserted")
		return nil
	},
}

type sampleCategory struct {
	name        string
	description string
	items       []model.Item
}

func sampleData() []sampleCategory {
	return []sampleCategory{
		{
			name:        "Electronics",
			description: "Devices, cables, and accessories",
			items: []model.Item{
				{Name: "Wireless Mouse", Description: "2.4 GHz optical mouse", Price: 24.99, Stock: 42},
				{Name: "USB-C Cable", Description: "1 m braided cable", Price: 9.50, Stock: 120},
				{Name: "Mechanical Keyboard", Description: "Tenkeyless, brown switches", Price: 89.00, Stock: 4},
			},
		},
		{
			name:        "Office Supplies",
			description: "Everyday stationery",
			items: []model.Item{
				{Name: "Notebook A5", Description: "Dotted, 120 pages", Price: 6.20, Stock: 75},
				{Name: "Gel Pen", Description: "0.5 mm black ink", Price: 1.80, Stock: 200},
				{Name: "Stapler", Price: 12.40, Stock: 3},
			},
		},
		{
			name:        "Warehouse",
			description: "Packing and shipping material",
			items: []model.Item{
				{Name: "Packing Tape", Description: "48 mm x 66 m", Price: 3.99, Stock: 58},
				{Name: "Bubble Wrap Roll", Description: "50 cm x 10 m", Price: 14.75, Stock: 0},
			},
		},
	}
}

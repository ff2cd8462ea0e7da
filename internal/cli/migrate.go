package cli

import (
	"context"
	"fmt"

	"stockroom/internal/config"
	"stockroom/internal/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Bring the database schema up to date",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logger := config.NewLogger(cfg.Logger)

		db, err := database.Open(context.Background(), cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		if err := database.Migrate(db); err != nil {
			return err
		}

		logger.Info().Msg("schema migration completed")
		return nil
	},
}

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stockroom/internal/config"
	"stockroom/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the database selected by the URL scheme and applies the
// configured pool settings to the underlying sql.DB.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*gorm.DB, error) {
	db, err := connect(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("backend", backendName(cfg.URL)).
		Int("max_open_conns", cfg.MaxOpenConns).
		Int("max_idle_conns", cfg.MaxIdleConns).
		Msg("database connection established")

	return db, nil
}

// Migrate brings the schema up to date for both entities.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Category{}, &model.Item{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// connect dispatches on the URL scheme. SQL statement logging is left to the
// application logger rather than GORM's own.
func connect(databaseURL string) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return gorm.Open(postgres.Open(databaseURL), gormCfg)
	case strings.HasPrefix(databaseURL, "sqlite://"):
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		return gorm.Open(sqlite.Open(path), gormCfg)
	}
	return nil, fmt.Errorf("unsupported database URL: %s", databaseURL)
}

func backendName(databaseURL string) string {
	if strings.HasPrefix(databaseURL, "sqlite://") {
		return "sqlite"
	}
	return "postgres"
}

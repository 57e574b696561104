package database

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gojobs/board/internal/database/migrations"
	"github.com/gojobs/board/internal/models"
)

// Connect opens the Postgres connection, migrates the gorm-managed entities
// and applies the embedded goose migrations (the contacts table).
//
// TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func Connect(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Job{},
		&models.JobApplication{},
	); err != nil {
		return nil, fmt.Errorf("database: automigrate: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("database: sql handle: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("database: goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("database: migrations: %w", err)
	}
	return nil
}

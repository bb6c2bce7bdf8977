// Package db opens the GORM PostgreSQL connection for the account store.
package db

import (
	"fmt"
	"log/slog"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shop_backend/internal/config"
	"shop_backend/internal/feature/account/domain/entity"
)

// connectTimeout bounds the startup retry loop. The database container often
// comes up a few seconds after the service.
const connectTimeout = 60 * time.Second

// Open connects to PostgreSQL using the given config and, when enabled, runs
// schema migrations. The returned handle is injected into the repositories;
// callers own its lifecycle and close it on shutdown.
func Open(cfg config.DB) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(connectTimeout)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", connectTimeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}

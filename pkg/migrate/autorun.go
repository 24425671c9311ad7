package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/mercado-backend/pkg/config"
	"github.com/angelmondragon/mercado-backend/pkg/db"
	"github.com/angelmondragon/mercado-backend/pkg/logger"
)

// MaybeRunDev applies pending migrations on boot when auto-migrate is
// enabled. Intended for dev environments only; production deploys run
// cmd/migrate explicitly.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if cfg == nil || client == nil {
		return nil
	}
	if !cfg.Flags.AutoMigrate {
		return nil
	}
	if cfg.App.IsProd() {
		if logg != nil {
			logg.Warn(ctx, "auto-migrate requested in production, skipping")
		}
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("get sql db handle: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "running dev auto-migrations")
	}
	return Run(ctx, sqlDB, DefaultDir, "up")
}

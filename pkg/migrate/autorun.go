package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/mobile-inventory/pkg/config"
	"github.com/jhoicas/mobile-inventory/pkg/logger"
)

// MaybeRunDev aplica las migraciones pendientes al arrancar en development con MIGRATE_AUTO_RUN=true.
func MaybeRunDev(ctx context.Context, cfg *config.Config, log *logger.Logger, db *sql.DB) error {
	if !cfg.App.IsDev() || !cfg.Migrate.AutoRun {
		return nil
	}
	log.Info().Str("env", cfg.App.Env).Msg("running goose migrations (dev auto-run)")
	if err := Run(ctx, db, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	log.Info().Msg("goose migrations completed")
	return nil
}

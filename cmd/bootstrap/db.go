package bootstrap

import (
	"context"
	"database/sql"
	"log/slog"

	"go.uber.org/fx"

	"github.com/iliyamo/seat-inventory/internal/config"
	"github.com/iliyamo/seat-inventory/internal/database"
	"github.com/iliyamo/seat-inventory/internal/errs"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the MySQL pool and, unless DB_AUTO_MIGRATE is off, applies
// the schema.  The pool is closed when the app stops.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := database.Open(cfg.DB)
	if err != nil {
		return nil, errs.Wrap(err, "open database")
	}
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(context.Background(), db); err != nil {
			_ = db.Close()
			return nil, errs.Wrap(err, "migrate database")
		}
		logger.Info("database schema applied", "database", cfg.DB.Name)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return db.Close()
		},
	})
	return db, nil
}

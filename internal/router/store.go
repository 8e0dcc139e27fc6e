package router

import (
	"context"
	"database/sql"
	"fmt"

	mem "dogs-api/internal/adapters/storage/memory"
	pg "dogs-api/internal/adapters/storage/postgres"
	"dogs-api/internal/adapters/storage/sqlite"
	"dogs-api/internal/config"
	"dogs-api/internal/domain/dogs"

	"go.uber.org/zap"
)

// OpenStore elige el Store según cfg.StoreDriver y aplica migraciones.
// Para memory devuelve db nil; si no, el caller debe cerrar db.
func OpenStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (dogs.Store, *sql.DB, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		db      *sql.DB
		err     error
		migrate func(context.Context, *sql.DB) ([]string, error)
		build   func(*sql.DB) dogs.Store
	)

	switch cfg.StoreDriver {
	case config.StoreMemory, "":
		log.Info("using in-memory store")
		return mem.NewDogStore(), nil, nil
	case config.StorePostgres:
		db, err = pg.Open(ctx, cfg.PostgresDSN)
		migrate = pg.Migrate
		build = func(db *sql.DB) dogs.Store { return pg.NewDogsStore(db) }
	case config.StoreSQLite:
		db, err = sqlite.Open(ctx, cfg.SQLitePath)
		migrate = sqlite.Migrate
		build = func(db *sql.DB) dogs.Store { return sqlite.NewDogsStore(db) }
	default:
		return nil, nil, fmt.Errorf("%w: unknown store_driver %q", config.ErrInvalidConfig, cfg.StoreDriver)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}

	applied, err := migrate(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate %s store: %w", cfg.StoreDriver, err)
	}

	log.Info("store ready",
		zap.String("driver", cfg.StoreDriver),
		zap.Strings("migrations_applied", applied),
	)
	return build(db), db, nil
}

package database

import (
	"context"
	"fmt"

	"github.com/iliyamo/eventsphere/internal/config"
	"github.com/iliyamo/eventsphere/internal/repository"
)

// OpenStore connects the driver selected by cfg.StoreDriver and prepares
// its schema or indexes.  The memory driver starts empty; callers seed it.
func OpenStore(ctx context.Context, cfg config.Config) (repository.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		db, err := OpenMongo(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return repository.Store{}, err
		}
		if err := EnsureMongoIndexes(ctx, db); err != nil {
			_ = db.Client().Disconnect(context.Background())
			return repository.Store{}, fmt.Errorf("mongo indexes: %w", err)
		}
		return repository.NewMongoStore(db), nil

	case config.DriverMySQL:
		db, err := OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return repository.Store{}, err
		}
		if err := MigrateMySQL(ctx, db); err != nil {
			_ = db.Close()
			return repository.Store{}, fmt.Errorf("mysql migrate: %w", err)
		}
		return repository.NewMySQLStore(db), nil

	case config.DriverMemory, "":
		return repository.NewMemoryStore(), nil
	}
	return repository.Store{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

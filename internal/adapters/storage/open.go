// Package storage elige el repositorio de mascotas según la configuración.
package storage

import (
	"database/sql"
	"fmt"

	mem "pet-registry/internal/adapters/storage/memory"
	"pet-registry/internal/adapters/storage/postgres"
	"pet-registry/internal/adapters/storage/sqlite"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/platform/config"
)

// Open devuelve el repositorio y una función para cerrarlo.
// memory no persiste nada entre ejecuciones.
func Open(cfg config.StorageConfig) (pets.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case "", config.DriverMemory:
		return mem.NewPetRepo(), noop, nil

	case config.DriverPostgres:
		db, err := postgres.Open(cfg.DSN)
		if err != nil {
			return nil, noop, err
		}
		if err := postgres.Migrate(db); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return postgres.NewPetsRepo(db), closer(db), nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return sqlite.NewPetsRepo(db), closer(db), nil

	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func closer(db *sql.DB) func() error {
	return db.Close
}

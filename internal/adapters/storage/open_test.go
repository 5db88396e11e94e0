package storage

import (
	"context"
	"path/filepath"
	"testing"

	"pet-registry/internal/domain/pets"
	"pet-registry/internal/platform/config"
)

func TestOpen_MemoryAndSQLite(t *testing.T) {
	ctx := context.Background()

	for _, cfg := range []config.StorageConfig{
		{Driver: config.DriverMemory},
		{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "pets.db")},
	} {
		repo, closeFn, err := Open(cfg)
		if err != nil {
			t.Fatalf("open %s: %v", cfg.Driver, err)
		}

		svc := pets.NewService(repo)
		if _, err := svc.Add(ctx, pets.Pet{Name: "Milo", Age: "2"}); err != nil {
			t.Fatalf("%s add: %v", cfg.Driver, err)
		}
		items, err := svc.List(ctx)
		if err != nil || len(items) != 1 {
			t.Fatalf("%s list: %+v err=%v", cfg.Driver, items, err)
		}
		if err := closeFn(); err != nil {
			t.Fatalf("%s close: %v", cfg.Driver, err)
		}
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, _, err := Open(config.StorageConfig{Driver: "redis"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"pet-registry/internal/domain/pets"
)

// Requiere una base descartable: PETREGISTRY_TEST_PG_DSN=postgres://...
func openTestDB(t *testing.T) *PetsRepo {
	t.Helper()

	dsn := os.Getenv("PETREGISTRY_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("PETREGISTRY_TEST_PG_DSN not set")
	}

	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := db.Exec(`TRUNCATE pets`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return NewPetsRepo(db)
}

func TestPetsRepo_RoundTripKeepsOrder(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	for _, p := range []pets.Pet{
		{ID: "a", Name: "Fido", Age: "3", CreatedAt: now, UpdatedAt: now},
		{ID: "b", Name: "Rex", Age: "5", Description: "grande", CreatedAt: now, UpdatedAt: now},
	} {
		if err := repo.Insert(ctx, p); err != nil {
			t.Fatalf("insert %s: %v", p.ID, err)
		}
	}

	if err := repo.Replace(ctx, pets.Pet{ID: "a", Name: "Fido", Age: "4", Image: "file:///tmp/f.png", UpdatedAt: now}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := repo.Replace(ctx, pets.Pet{ID: "zz", Name: "x", UpdatedAt: now}); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a" || items[0].Age != "4" || items[0].Image != "file:///tmp/f.png" {
		t.Fatalf("unexpected list: %#v", items)
	}

	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "a"); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

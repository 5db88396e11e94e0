package memory

import (
	"context"
	"errors"
	"testing"

	"pet-registry/internal/domain/pets"
)

func TestPetRepo_OrderReplaceDelete(t *testing.T) {
	repo := NewPetRepo()
	ctx := context.Background()

	for _, p := range []pets.Pet{
		{ID: "a", Name: "Fido"},
		{ID: "b", Name: "Rex"},
		{ID: "c", Name: "Milo"},
	} {
		if err := repo.Insert(ctx, p); err != nil {
			t.Fatalf("Insert %s: %v", p.ID, err)
		}
	}

	if err := repo.Insert(ctx, pets.Pet{ID: "a", Name: "Again"}); err == nil {
		t.Fatalf("expected error inserting existing id")
	}

	if err := repo.Replace(ctx, pets.Pet{ID: "b", Name: "Rexy"}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if err := repo.Replace(ctx, pets.Pet{ID: "zz"}); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// List devuelve copia: mutarla no afecta al repo
	items, _ := repo.List(ctx)
	items[0].Name = "mutated"

	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "a"); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	items, _ = repo.List(ctx)
	if len(items) != 2 || items[0].Name != "Rexy" || items[1].Name != "Milo" {
		t.Fatalf("unexpected state: %#v", items)
	}
}

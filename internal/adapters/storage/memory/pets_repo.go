package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-registry/internal/domain/pets"
)

// petRepo guarda el listado en un slice: el orden del slice es el orden de alta.
type petRepo struct {
	mu    sync.RWMutex
	items []pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		items: make([]pets.Pet, 0),
	}
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *petRepo) Insert(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if r.indexOf(p.ID) >= 0 {
		return errors.New("pet already exists")
	}
	r.items = append(r.items, p)
	return nil
}

func (r *petRepo) Replace(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(p.ID)
	if i < 0 {
		return pets.ErrNotFound
	}
	r.items[i] = p
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return pets.ErrNotFound
	}
	r.items = append(r.items[:i:i], r.items[i+1:]...)
	return nil
}

func (r *petRepo) indexOf(id string) int {
	for i, p := range r.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

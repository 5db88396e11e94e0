// Package remote habla con la API HTTP del registro; la pantalla lo usa
// como store cuando corre contra un servidor.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"pet-registry/internal/domain/pets"
	"pet-registry/internal/platform/httpclient"
)

type PetsClient struct {
	c *httpclient.Client
}

func NewPetsClient(c *httpclient.Client) *PetsClient {
	return &PetsClient{c: c}
}

type petPayload struct {
	Name        string `json:"name"`
	Age         string `json:"age"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type petDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Age         string    `json:"age"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *PetsClient) List(ctx context.Context) ([]pets.Pet, error) {
	return c.Filter(ctx, pets.Criteria{})
}

func (c *PetsClient) Filter(ctx context.Context, cr pets.Criteria) ([]pets.Pet, error) {
	q := url.Values{}
	if cr.Search != "" {
		q.Set("search", cr.Search)
	}
	if cr.Age != "" {
		q.Set("age", cr.Age)
	}
	if cr.Description != "" {
		q.Set("description", cr.Description)
	}

	var out []petDTO
	if _, err := c.c.DoJSON(ctx, http.MethodGet, "/pets", q, nil, &out); err != nil {
		return nil, mapError(err)
	}
	return fromDTOs(out), nil
}

// Search respeta la asimetría del servidor: 204 => ok=false.
func (c *PetsClient) Search(ctx context.Context, keyword string) ([]pets.Pet, bool, error) {
	var out []petDTO
	st, err := c.c.DoJSON(ctx, http.MethodGet, "/pets/search", url.Values{"q": {keyword}}, nil, &out)
	if err != nil {
		return nil, false, mapError(err)
	}
	if st == http.StatusNoContent {
		return nil, false, nil
	}
	return fromDTOs(out), true, nil
}

func (c *PetsClient) Add(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	var out petDTO
	if _, err := c.c.DoJSON(ctx, http.MethodPost, "/pets", nil, toPayload(p), &out); err != nil {
		return pets.Pet{}, mapError(err)
	}
	return out.toPet(), nil
}

func (c *PetsClient) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	if p.ID == "" {
		return pets.Pet{}, pets.ErrNotFound
	}
	var out petDTO
	if _, err := c.c.DoJSON(ctx, http.MethodPut, "/pets/"+url.PathEscape(p.ID), nil, toPayload(p), &out); err != nil {
		return pets.Pet{}, mapError(err)
	}
	return out.toPet(), nil
}

func (c *PetsClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return pets.ErrNotFound
	}
	if _, err := c.c.DoJSON(ctx, http.MethodDelete, "/pets/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return mapError(err)
	}
	return nil
}

// mapError traduce status HTTP a los errores del dominio.
func mapError(err error) error {
	switch httpclient.StatusOf(err) {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %v", pets.ErrInvalidInput, err)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %v", pets.ErrNotFound, err)
	case http.StatusConflict:
		return fmt.Errorf("%w: %v", pets.ErrDuplicateName, err)
	default:
		return err
	}
}

func toPayload(p pets.Pet) petPayload {
	return petPayload{
		Name:        p.Name,
		Age:         p.Age,
		Description: p.Description,
		Image:       p.Image,
	}
}

func (d petDTO) toPet() pets.Pet {
	return pets.Pet{
		ID:          d.ID,
		Name:        d.Name,
		Age:         d.Age,
		Description: d.Description,
		Image:       d.Image,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func fromDTOs(in []petDTO) []pets.Pet {
	out := make([]pets.Pet, 0, len(in))
	for _, d := range in {
		out = append(out, d.toPet())
	}
	return out
}

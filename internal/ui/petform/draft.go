// Package petform es la pantalla de terminal del registro: formulario de
// alta/edición, búsqueda, filtros y listado.
package petform

import (
	"context"

	"pet-registry/internal/domain/pets"
)

// Store es lo que la pantalla necesita del listado. Lo cumplen
// *pets.Service (en proceso) y *remote.PetsClient (contra la API).
type Store interface {
	List(ctx context.Context) ([]pets.Pet, error)
	Add(ctx context.Context, p pets.Pet) (pets.Pet, error)
	Update(ctx context.Context, p pets.Pet) (pets.Pet, error)
	Delete(ctx context.Context, id string) error
}

// Draft es el estado del formulario. EditingID != "" => modo edición.
type Draft struct {
	Name        string
	Age         string
	Description string
	Image       string
	EditingID   string
}

func (d Draft) Editing() bool {
	return d.EditingID != ""
}

func (d Draft) Validate() error {
	return pets.ValidateFields(d.Name, d.Age)
}

// Pet arma el registro a enviar. En alta el ID queda vacío y lo asigna el store.
func (d Draft) Pet() pets.Pet {
	return pets.Pet{
		ID:          d.EditingID,
		Name:        d.Name,
		Age:         d.Age,
		Description: d.Description,
		Image:       d.Image,
	}
}

// BeginEdit carga la mascota en el formulario, incluida la foto.
func BeginEdit(p pets.Pet) Draft {
	return Draft{
		Name:        p.Name,
		Age:         p.Age,
		Description: p.Description,
		Image:       p.Image,
		EditingID:   p.ID,
	}
}

// Submit valida y manda a Update (edición) o Add (alta).
// Si la validación falla no se toca el store.
func Submit(ctx context.Context, store Store, d Draft) (pets.Pet, error) {
	if err := d.Validate(); err != nil {
		return pets.Pet{}, err
	}
	if d.Editing() {
		return store.Update(ctx, d.Pet())
	}
	return store.Add(ctx, d.Pet())
}

package pets

import "context"

// Repository guarda la secuencia ordenada de mascotas.
// Los adapters devuelven ErrNotFound cuando el id no existe.
type Repository interface {
	List(ctx context.Context) ([]Pet, error) // orden de inserción
	Insert(ctx context.Context, p Pet) error // al final
	Replace(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
}

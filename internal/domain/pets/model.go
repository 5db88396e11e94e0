package pets

import "time"

// Pet es el único registro del listado personal.
type Pet struct {
	ID string // inmutable, clave de update/delete

	Name string // único (case-insensitive) solo al insertar
	Age  string // entero positivo codificado como string

	Description string // opcional; "" = sin descripción
	Image       string // URI de la foto elegida, se guarda tal cual

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasDescription indica si la mascota tiene descripción cargada.
func (p Pet) HasDescription() bool {
	return p.Description != ""
}

// Op identifica el tipo de mutación notificada a los observers.
type Op string

const (
	OpAdded   Op = "added"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// Change describe una mutación aplicada al listado.
type Change struct {
	Op    Op
	Pet   Pet
	Count int // largo del listado después del cambio
}

package photos

import "context"

// Selection es la respuesta del picker del host: una URI o una cancelación.
type Selection struct {
	URI       string
	Cancelled bool
}

// Picker pide al host que el usuario elija una sola foto.
type Picker interface {
	PickPhoto(ctx context.Context) (Selection, error)
}

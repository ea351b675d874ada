package birds

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("bird not found")
)

// Repository es el puerto de persistencia. Todas las implementaciones
// usan Bird.ID() como clave.
type Repository interface {
	// Save inserta o reemplaza el registro con el mismo id.
	Save(ctx context.Context, b Bird) error
	GetByID(ctx context.Context, id string) (Bird, error)
	// List devuelve todos los registros ordenados por id.
	List(ctx context.Context) ([]Bird, error)
	Delete(ctx context.Context, id string) error
}

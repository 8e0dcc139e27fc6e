package dogs

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven los Store cuando el id no existe.
var ErrNotFound = errors.New("dog not found")

// Store es el Record Store: persistencia de perros.
// Los adapters (memory, postgres, sqlite) se encargan de su propia concurrencia.
type Store interface {
	FindAll(ctx context.Context) ([]Dog, error)
	FindByID(ctx context.Context, id string) (Dog, error)
	Create(ctx context.Context, in NewDog) (Dog, error)
	Update(ctx context.Context, id string, p Patch) (Dog, error)
	Delete(ctx context.Context, id string) (Dog, error)
}

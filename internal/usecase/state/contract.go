package state

import (
	"context"

	domstate "github.com/kailas-cloud/hbnb/internal/domain/state"
)

// Repository defines the storage contract for states.
type Repository interface {
	Get(ctx context.Context, id string) (domstate.State, error)
	All(ctx context.Context) ([]domstate.State, error)
	Save(ctx context.Context, s domstate.State) error
}

// Deleter removes a state with everything it owns.
type Deleter interface {
	DeleteState(ctx context.Context, id string) error
}

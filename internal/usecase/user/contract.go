package user

import (
	"context"

	domuser "github.com/kailas-cloud/hbnb/internal/domain/user"
)

// Repository defines the storage contract for users.
type Repository interface {
	Get(ctx context.Context, id string) (domuser.User, error)
	All(ctx context.Context) ([]domuser.User, error)
	Save(ctx context.Context, u domuser.User) error
}

// Deleter removes a user with the places and reviews they own.
type Deleter interface {
	DeleteUser(ctx context.Context, id string) error
}

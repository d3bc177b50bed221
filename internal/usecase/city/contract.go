package city

import (
	"context"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
	domcity "github.com/kailas-cloud/hbnb/internal/domain/city"
)

// Repository defines the storage contract for cities.
type Repository interface {
	Get(ctx context.Context, id string) (domcity.City, error)
	GetMany(ctx context.Context, ids []string) ([]domcity.City, error)
	Save(ctx context.Context, c domcity.City) error
}

// StateChecker confirms the owning state exists.
type StateChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Relations links cities to their state.
type Relations interface {
	Link(ctx context.Context, rel domain.Relation, ownerID, memberID string, at time.Time) (bool, error)
	Members(ctx context.Context, rel domain.Relation, ownerID string) ([]string, error)
}

// Deleter removes a city with everything it owns.
type Deleter interface {
	DeleteCity(ctx context.Context, id string) error
}

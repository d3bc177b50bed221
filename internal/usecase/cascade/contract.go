package cascade

import (
	"context"

	"github.com/kailas-cloud/hbnb/internal/domain"
	"github.com/kailas-cloud/hbnb/internal/domain/city"
	"github.com/kailas-cloud/hbnb/internal/domain/place"
	"github.com/kailas-cloud/hbnb/internal/domain/review"
)

// Remover deletes one record of a kind.
type Remover interface {
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// CityReader loads cities for their owning state id.
type CityReader interface {
	Remover
	Get(ctx context.Context, id string) (city.City, error)
}

// PlaceReader loads places for their owning city and user ids.
type PlaceReader interface {
	Remover
	Get(ctx context.Context, id string) (place.Place, error)
}

// ReviewReader loads reviews for their owning place and user ids.
type ReviewReader interface {
	Remover
	Get(ctx context.Context, id string) (review.Review, error)
}

// Relations navigates and edits relation sets.
type Relations interface {
	Unlink(ctx context.Context, rel domain.Relation, ownerID, memberID string) (bool, error)
	Members(ctx context.Context, rel domain.Relation, ownerID string) ([]string, error)
	Drop(ctx context.Context, rel domain.Relation, ownerID string) error
}

package amenity

import (
	"context"

	domamenity "github.com/kailas-cloud/hbnb/internal/domain/amenity"
)

// Repository defines the storage contract for amenities.
type Repository interface {
	Get(ctx context.Context, id string) (domamenity.Amenity, error)
	All(ctx context.Context) ([]domamenity.Amenity, error)
	Save(ctx context.Context, a domamenity.Amenity) error
}

// Deleter removes an amenity and its place links.
type Deleter interface {
	DeleteAmenity(ctx context.Context, id string) error
}

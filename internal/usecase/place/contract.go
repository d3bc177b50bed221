package place

import (
	"context"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
	domamenity "github.com/kailas-cloud/hbnb/internal/domain/amenity"
	domplace "github.com/kailas-cloud/hbnb/internal/domain/place"
)

// Repository defines the storage contract for places.
type Repository interface {
	Get(ctx context.Context, id string) (domplace.Place, error)
	GetMany(ctx context.Context, ids []string) ([]domplace.Place, error)
	Exists(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context, p domplace.Place) error
}

// AmenityReader loads amenities linked to places.
type AmenityReader interface {
	Get(ctx context.Context, id string) (domamenity.Amenity, error)
	GetMany(ctx context.Context, ids []string) ([]domamenity.Amenity, error)
}

// Checker confirms a referenced aggregate exists.
type Checker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Relations navigates and edits relation sets.
type Relations interface {
	Link(ctx context.Context, rel domain.Relation, ownerID, memberID string, at time.Time) (bool, error)
	Unlink(ctx context.Context, rel domain.Relation, ownerID, memberID string) (bool, error)
	Members(ctx context.Context, rel domain.Relation, ownerID string) ([]string, error)
}

// Deleter removes a place with its reviews and amenity links.
type Deleter interface {
	DeletePlace(ctx context.Context, id string) error
}

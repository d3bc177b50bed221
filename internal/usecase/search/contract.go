package search

import (
	"context"

	"github.com/kailas-cloud/hbnb/internal/domain"
	domplace "github.com/kailas-cloud/hbnb/internal/domain/place"
)

// PlaceReader loads places.
type PlaceReader interface {
	All(ctx context.Context) ([]domplace.Place, error)
	GetMany(ctx context.Context, ids []string) ([]domplace.Place, error)
}

// Checker resolves scope ids. Unknown ids are skipped, not errors.
type Checker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// RelationReader navigates state -> city -> place and place -> amenity edges.
type RelationReader interface {
	Members(ctx context.Context, rel domain.Relation, ownerID string) ([]string, error)
}

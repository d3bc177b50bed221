package amenity

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
)

// Amenity is a facility that places can offer (wifi, pool, ...).
type Amenity struct {
	domain.Meta
	name string
}

// New validates and creates an Amenity.
func New(name string, now time.Time) (Amenity, error) {
	if name == "" {
		return Amenity{}, domain.NewMissingField("name")
	}
	return Amenity{Meta: domain.NewMeta(now), name: name}, nil
}

// Reconstruct creates an Amenity without validation (storage hydration).
func Reconstruct(meta domain.Meta, name string) Amenity {
	return Amenity{Meta: meta, name: name}
}

// Name returns the amenity name.
func (a Amenity) Name() string { return a.name }

// Patch lists the mutable attributes of an Amenity.
type Patch struct {
	Name *string `json:"name"`
}

// Apply returns a copy with the patch applied.
func (a Amenity) Apply(p Patch, now time.Time) (Amenity, error) {
	if p.Name != nil {
		if *p.Name == "" {
			return Amenity{}, fmt.Errorf("name must not be empty: %w", domain.ErrInvalidField)
		}
		a.name = *p.Name
	}
	a.Meta = a.Touched(now)
	return a, nil
}

package city

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
)

// City belongs to one State and owns places.
type City struct {
	domain.Meta
	stateID string
	name    string
}

// New validates and creates a City inside the given state.
func New(stateID, name string, now time.Time) (City, error) {
	if stateID == "" {
		return City{}, domain.NewMissingField("state_id")
	}
	if name == "" {
		return City{}, domain.NewMissingField("name")
	}
	return City{Meta: domain.NewMeta(now), stateID: stateID, name: name}, nil
}

// Reconstruct creates a City without validation (storage hydration).
func Reconstruct(meta domain.Meta, stateID, name string) City {
	return City{Meta: meta, stateID: stateID, name: name}
}

// StateID returns the owning state identifier.
func (c City) StateID() string { return c.stateID }

// Name returns the city name.
func (c City) Name() string { return c.name }

// Patch lists the mutable attributes of a City. state_id is fixed at creation.
type Patch struct {
	Name *string `json:"name"`
}

// Apply returns a copy with the patch applied.
func (c City) Apply(p Patch, now time.Time) (City, error) {
	if p.Name != nil {
		if *p.Name == "" {
			return City{}, fmt.Errorf("name must not be empty: %w", domain.ErrInvalidField)
		}
		c.name = *p.Name
	}
	c.Meta = c.Touched(now)
	return c, nil
}

package state

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
)

// State is a top-level region that owns cities.
type State struct {
	domain.Meta
	name string
}

// New validates and creates a State.
func New(name string, now time.Time) (State, error) {
	if name == "" {
		return State{}, domain.NewMissingField("name")
	}
	return State{Meta: domain.NewMeta(now), name: name}, nil
}

// Reconstruct creates a State without validation (storage hydration).
func Reconstruct(meta domain.Meta, name string) State {
	return State{Meta: meta, name: name}
}

// Name returns the state name.
func (s State) Name() string { return s.name }

// Patch lists the mutable attributes of a State. Nil fields are unchanged.
type Patch struct {
	Name *string `json:"name"`
}

// Apply returns a copy with the patch applied.
func (s State) Apply(p Patch, now time.Time) (State, error) {
	if p.Name != nil {
		if *p.Name == "" {
			return State{}, fmt.Errorf("name must not be empty: %w", domain.ErrInvalidField)
		}
		s.name = *p.Name
	}
	s.Meta = s.Touched(now)
	return s, nil
}

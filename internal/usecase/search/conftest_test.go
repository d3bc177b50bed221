package search

import (
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
	domamenity "github.com/kailas-cloud/hbnb/internal/domain/amenity"
	domcity "github.com/kailas-cloud/hbnb/internal/domain/city"
	domstate "github.com/kailas-cloud/hbnb/internal/domain/state"
)

func newAmenity(m domain.Meta, name string) domamenity.Amenity {
	return domamenity.Reconstruct(m, name)
}

func newState(m domain.Meta, name string) domstate.State {
	return domstate.Reconstruct(m, name)
}

func newCity(m domain.Meta, stateID, name string) domcity.City {
	return domcity.Reconstruct(m, stateID, name)
}

func freshState(name string) (domstate.State, error) {
	return domstate.New(name, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

package entity

import (
	"github.com/kailas-cloud/hbnb/internal/domain/amenity"
	"github.com/kailas-cloud/hbnb/internal/domain/city"
	"github.com/kailas-cloud/hbnb/internal/domain/place"
	"github.com/kailas-cloud/hbnb/internal/domain/review"
	"github.com/kailas-cloud/hbnb/internal/domain/state"
	"github.com/kailas-cloud/hbnb/internal/domain/user"
	"github.com/kailas-cloud/hbnb/internal/repository/keyspace"
)

// Set bundles one repository per aggregate kind.
type Set struct {
	States    *Repo[state.State]
	Cities    *Repo[city.City]
	Places    *Repo[place.Place]
	Amenities *Repo[amenity.Amenity]
	Users     *Repo[user.User]
	Reviews   *Repo[review.Review]
}

// NewSet creates repositories for every kind over one store.
func NewSet(s store, keys keyspace.Keyspace) Set {
	return Set{
		States:    New[state.State](s, keys, StateCodec{}),
		Cities:    New[city.City](s, keys, CityCodec{}),
		Places:    New[place.Place](s, keys, PlaceCodec{}),
		Amenities: New[amenity.Amenity](s, keys, AmenityCodec{}),
		Users:     New[user.User](s, keys, UserCodec{}),
		Reviews:   New[review.Review](s, keys, ReviewCodec{}),
	}
}

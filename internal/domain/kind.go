package domain

// Kind names an entity type in the store.
type Kind string

const (
	// KindState is a State entity.
	KindState Kind = "State"
	// KindCity is a City entity.
	KindCity Kind = "City"
	// KindPlace is a Place entity.
	KindPlace Kind = "Place"
	// KindAmenity is an Amenity entity.
	KindAmenity Kind = "Amenity"
	// KindUser is a User entity.
	KindUser Kind = "User"
	// KindReview is a Review entity.
	KindReview Kind = "Review"
)

// Kinds lists every entity kind in stats order.
var Kinds = []Kind{KindAmenity, KindCity, KindPlace, KindReview, KindState, KindUser}

var collections = map[Kind]string{
	KindState:   "states",
	KindCity:    "cities",
	KindPlace:   "places",
	KindAmenity: "amenities",
	KindUser:    "users",
	KindReview:  "reviews",
}

// Collection returns the plural resource name used in URLs and stats.
func (k Kind) Collection() string { return collections[k] }

// Key returns the storage key segment for the kind.
func (k Kind) Key() string {
	switch k {
	case KindState:
		return "state"
	case KindCity:
		return "city"
	case KindPlace:
		return "place"
	case KindAmenity:
		return "amenity"
	case KindUser:
		return "user"
	case KindReview:
		return "review"
	}
	return string(k)
}

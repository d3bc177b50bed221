package domain

// Relation is a navigable one-to-many or many-to-many edge between entities.
type Relation struct {
	Owner  Kind
	Member Kind
	Name   string
}

// Ownership and association edges.
var (
	StateCities    = Relation{Owner: KindState, Member: KindCity, Name: "cities"}
	CityPlaces     = Relation{Owner: KindCity, Member: KindPlace, Name: "places"}
	PlaceReviews   = Relation{Owner: KindPlace, Member: KindReview, Name: "reviews"}
	PlaceAmenities = Relation{Owner: KindPlace, Member: KindAmenity, Name: "amenities"}
	AmenityPlaces  = Relation{Owner: KindAmenity, Member: KindPlace, Name: "places"}
	UserPlaces     = Relation{Owner: KindUser, Member: KindPlace, Name: "places"}
	UserReviews    = Relation{Owner: KindUser, Member: KindReview, Name: "reviews"}
)

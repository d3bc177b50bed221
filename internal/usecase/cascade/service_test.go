package cascade

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/hbnb/internal/db/memory"
	"github.com/kailas-cloud/hbnb/internal/domain"
	"github.com/kailas-cloud/hbnb/internal/domain/amenity"
	"github.com/kailas-cloud/hbnb/internal/domain/city"
	"github.com/kailas-cloud/hbnb/internal/domain/place"
	"github.com/kailas-cloud/hbnb/internal/domain/review"
	"github.com/kailas-cloud/hbnb/internal/domain/state"
	"github.com/kailas-cloud/hbnb/internal/domain/user"
	"github.com/kailas-cloud/hbnb/internal/repository/entity"
	"github.com/kailas-cloud/hbnb/internal/repository/keyspace"
	"github.com/kailas-cloud/hbnb/internal/repository/relation"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	set  entity.Set
	rels *relation.Repo
	svc  *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := memory.NewStore()
	keys := keyspace.New("t:")
	set := entity.NewSet(st, keys)
	rels := relation.New(st, keys)
	return &fixture{
		set:  set,
		rels: rels,
		svc:  New(set.States, set.Cities, set.Places, set.Amenities, set.Users, set.Reviews, rels),
	}
}

func (f *fixture) link(t *testing.T, rel domain.Relation, owner, member string) {
	t.Helper()
	if _, err := f.rels.Link(context.Background(), rel, owner, member, now); err != nil {
		t.Fatal(err)
	}
}

// seed builds state -> city -> place (owned by u1) with a review by u2 and amenity a.
func (f *fixture) seed(t *testing.T) (s state.State, c city.City, p place.Place, r review.Review, a amenity.Amenity, u1, u2 user.User) {
	t.Helper()
	ctx := context.Background()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	var err error
	s, err = state.New("CA", now)
	must(err)
	c, err = city.New(s.ID(), "SF", now)
	must(err)
	u1, err = user.New("owner@x", "hash", "", "", now)
	must(err)
	u2, err = user.New("guest@x", "hash", "", "", now)
	must(err)
	p, err = place.New(place.Draft{CityID: c.ID(), UserID: u1.ID(), Name: "Loft"}, now)
	must(err)
	r, err = review.New(p.ID(), u2.ID(), "nice", now)
	must(err)
	a, err = amenity.New("Wifi", now)
	must(err)

	must(f.set.States.Save(ctx, s))
	must(f.set.Cities.Save(ctx, c))
	must(f.set.Users.Save(ctx, u1))
	must(f.set.Users.Save(ctx, u2))
	must(f.set.Places.Save(ctx, p))
	must(f.set.Reviews.Save(ctx, r))
	must(f.set.Amenities.Save(ctx, a))
	f.link(t, domain.StateCities, s.ID(), c.ID())
	f.link(t, domain.CityPlaces, c.ID(), p.ID())
	f.link(t, domain.UserPlaces, u1.ID(), p.ID())
	f.link(t, domain.PlaceReviews, p.ID(), r.ID())
	f.link(t, domain.UserReviews, u2.ID(), r.ID())
	f.link(t, domain.PlaceAmenities, p.ID(), a.ID())
	f.link(t, domain.AmenityPlaces, a.ID(), p.ID())
	return
}

func count(t *testing.T) func(n int, err error) int {
	return func(n int, err error) int {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return n
	}
}

func TestDeleteState_Cascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s, _, _, _, a, _, u2 := f.seed(t)

	if err := f.svc.DeleteState(ctx, s.ID()); err != nil {
		t.Fatalf("DeleteState() error: %v", err)
	}
	if n := count(t)(f.set.Cities.Count(ctx)); n != 0 {
		t.Errorf("cities left: %d", n)
	}
	if n := count(t)(f.set.Places.Count(ctx)); n != 0 {
		t.Errorf("places left: %d", n)
	}
	if n := count(t)(f.set.Reviews.Count(ctx)); n != 0 {
		t.Errorf("reviews left: %d", n)
	}
	if n := count(t)(f.set.Amenities.Count(ctx)); n != 1 {
		t.Errorf("amenities = %d, want 1", n)
	}
	ids, _ := f.rels.Members(ctx, domain.AmenityPlaces, a.ID())
	if len(ids) != 0 {
		t.Errorf("amenity still linked to %v", ids)
	}
	ids, _ = f.rels.Members(ctx, domain.UserReviews, u2.ID())
	if len(ids) != 0 {
		t.Errorf("user still owns reviews %v", ids)
	}
}

func TestDeleteState_NotFound(t *testing.T) {
	f := newFixture(t)
	err := f.svc.DeleteState(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteUser_RemovesPlacesAndReviews(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, c, _, _, _, u1, u2 := f.seed(t)

	if err := f.svc.DeleteUser(ctx, u1.ID()); err != nil {
		t.Fatalf("DeleteUser() error: %v", err)
	}
	if n := count(t)(f.set.Places.Count(ctx)); n != 0 {
		t.Errorf("places left: %d", n)
	}
	if n := count(t)(f.set.Reviews.Count(ctx)); n != 0 {
		t.Errorf("reviews on deleted place left: %d", n)
	}
	ids, _ := f.rels.Members(ctx, domain.CityPlaces, c.ID())
	if len(ids) != 0 {
		t.Errorf("city still lists %v", ids)
	}
	if ok, _ := f.set.Users.Exists(ctx, u2.ID()); !ok {
		t.Error("unrelated user was removed")
	}
}

func TestDeleteReview_UnlinksBothOwners(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, _, p, r, _, _, u2 := f.seed(t)

	if err := f.svc.DeleteReview(ctx, r.ID()); err != nil {
		t.Fatal(err)
	}
	if ids, _ := f.rels.Members(ctx, domain.PlaceReviews, p.ID()); len(ids) != 0 {
		t.Errorf("place reviews = %v", ids)
	}
	if ids, _ := f.rels.Members(ctx, domain.UserReviews, u2.ID()); len(ids) != 0 {
		t.Errorf("user reviews = %v", ids)
	}
}

func TestDeleteAmenity_UnlinksPlaces(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, _, p, _, a, _, _ := f.seed(t)

	if err := f.svc.DeleteAmenity(ctx, a.ID()); err != nil {
		t.Fatal(err)
	}
	if ids, _ := f.rels.Members(ctx, domain.PlaceAmenities, p.ID()); len(ids) != 0 {
		t.Errorf("place amenities = %v", ids)
	}
	if ok, _ := f.set.Places.Exists(ctx, p.ID()); !ok {
		t.Error("place must survive amenity delete")
	}
}

func TestDeleteCity_ToleratesDanglingMembers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, c, _, _, _, _, _ := f.seed(t)
	f.link(t, domain.CityPlaces, c.ID(), "ghost-place")

	if err := f.svc.DeleteCity(ctx, c.ID()); err != nil {
		t.Fatalf("DeleteCity() error: %v", err)
	}
	if ok, _ := f.set.Cities.Exists(ctx, c.ID()); ok {
		t.Error("city still exists")
	}
}

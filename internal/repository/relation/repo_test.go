package relation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/hbnb/internal/db/memory"
	"github.com/kailas-cloud/hbnb/internal/domain"
	"github.com/kailas-cloud/hbnb/internal/repository/keyspace"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type failingStore struct {
	*memory.Store
	err error
}

func (f failingStore) ZScore(_ context.Context, _, _ string) (float64, bool, error) {
	return 0, false, f.err
}

func TestLink_Idempotent(t *testing.T) {
	ctx := context.Background()
	r := New(memory.NewStore(), keyspace.New("t:"))

	created, err := r.Link(ctx, domain.PlaceAmenities, "p1", "a1", t0)
	if err != nil || !created {
		t.Fatalf("first Link() = %v, %v; want true, nil", created, err)
	}
	created, err = r.Link(ctx, domain.PlaceAmenities, "p1", "a1", t0.Add(time.Hour))
	if err != nil || created {
		t.Fatalf("second Link() = %v, %v; want false, nil", created, err)
	}
	ids, err := r.Members(ctx, domain.PlaceAmenities, "p1")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != "a1" {
		t.Errorf("Members() = %v, want [a1]", ids)
	}
}

func TestMembers_LinkOrder(t *testing.T) {
	ctx := context.Background()
	r := New(memory.NewStore(), keyspace.New("t:"))
	for i, id := range []string{"c3", "c1", "c2"} {
		if _, err := r.Link(ctx, domain.StateCities, "s1", id, t0.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatal(err)
		}
	}
	ids, err := r.Members(ctx, domain.StateCities, "s1")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"c3", "c1", "c2"}
	for i := range want {
		if i >= len(ids) || ids[i] != want[i] {
			t.Fatalf("Members() = %v, want %v", ids, want)
		}
	}
}

func TestUnlink(t *testing.T) {
	ctx := context.Background()
	r := New(memory.NewStore(), keyspace.New("t:"))
	if _, err := r.Link(ctx, domain.UserPlaces, "u1", "p1", t0); err != nil {
		t.Fatal(err)
	}
	removed, err := r.Unlink(ctx, domain.UserPlaces, "u1", "p1")
	if err != nil || !removed {
		t.Fatalf("Unlink() = %v, %v; want true, nil", removed, err)
	}
	removed, err = r.Unlink(ctx, domain.UserPlaces, "u1", "p1")
	if err != nil || removed {
		t.Fatalf("second Unlink() = %v, %v; want false, nil", removed, err)
	}
}

func TestDrop(t *testing.T) {
	ctx := context.Background()
	r := New(memory.NewStore(), keyspace.New("t:"))
	_, _ = r.Link(ctx, domain.CityPlaces, "c1", "p1", t0)
	_, _ = r.Link(ctx, domain.CityPlaces, "c1", "p2", t0)
	if err := r.Drop(ctx, domain.CityPlaces, "c1"); err != nil {
		t.Fatal(err)
	}
	ids, _ := r.Members(ctx, domain.CityPlaces, "c1")
	if len(ids) != 0 {
		t.Errorf("Members() after Drop = %v", ids)
	}
}

func TestRelationsDoNotCollide(t *testing.T) {
	ctx := context.Background()
	r := New(memory.NewStore(), keyspace.New("t:"))
	_, _ = r.Link(ctx, domain.UserPlaces, "x", "p1", t0)
	_, _ = r.Link(ctx, domain.UserReviews, "x", "r1", t0)
	places, _ := r.Members(ctx, domain.UserPlaces, "x")
	reviews, _ := r.Members(ctx, domain.UserReviews, "x")
	if len(places) != 1 || places[0] != "p1" || len(reviews) != 1 || reviews[0] != "r1" {
		t.Errorf("places=%v reviews=%v", places, reviews)
	}
}

func TestLink_StoreError(t *testing.T) {
	boom := errors.New("boom")
	r := New(failingStore{Store: memory.NewStore(), err: boom}, keyspace.New("t:"))
	_, err := r.Link(context.Background(), domain.PlaceAmenities, "p", "a", t0)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

package keyspace

import (
	"testing"

	"github.com/kailas-cloud/hbnb/internal/domain"
)

func TestKeys(t *testing.T) {
	k := New("")
	if got := k.Entity(domain.KindPlace, "p1"); got != "hbnb:place:rec:p1" {
		t.Errorf("Entity = %q", got)
	}
	if got := k.Index(domain.KindAmenity); got != "hbnb:amenity:idx" {
		t.Errorf("Index = %q", got)
	}
	if got := k.Relation(domain.StateCities, "s1"); got != "hbnb:state:rel:cities:s1" {
		t.Errorf("Relation = %q", got)
	}
	if got := New("test:").Relation(domain.AmenityPlaces, "a1"); got != "test:amenity:rel:places:a1" {
		t.Errorf("Relation with prefix = %q", got)
	}
}

func TestKeys_IDsNeverReachOtherFamilies(t *testing.T) {
	k := New("")
	reserved := map[string]bool{}
	for _, key := range []string{
		k.Index(domain.KindState),
		k.Index(domain.KindPlace),
		k.Relation(domain.StateCities, "s1"),
		k.Relation(domain.StateCities, "s1:x"),
		k.Relation(domain.AmenityPlaces, "a1"),
	} {
		reserved[key] = true
	}
	ids := []string{"all", "idx", "", ":idx", "s1:cities", "rel:cities:s1", "../idx"}
	for _, id := range ids {
		for _, kind := range []domain.Kind{domain.KindState, domain.KindPlace, domain.KindAmenity} {
			if key := k.Entity(kind, id); reserved[key] {
				t.Errorf("Entity(%s, %q) = %q collides with an index or relation key", kind, id, key)
			}
		}
	}
}

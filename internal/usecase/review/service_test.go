package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
	domreview "github.com/kailas-cloud/hbnb/internal/domain/review"
)

type mockRepo struct {
	saved []domreview.Review
}

func (m *mockRepo) Get(_ context.Context, id string) (domreview.Review, error) {
	for _, r := range m.saved {
		if r.ID() == id {
			return r, nil
		}
	}
	return domreview.Review{}, domain.ErrNotFound
}

func (m *mockRepo) GetMany(ctx context.Context, ids []string) ([]domreview.Review, error) {
	var out []domreview.Review
	for _, id := range ids {
		if r, err := m.Get(ctx, id); err == nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRepo) Save(_ context.Context, r domreview.Review) error {
	for i := range m.saved {
		if m.saved[i].ID() == r.ID() {
			m.saved[i] = r
			return nil
		}
	}
	m.saved = append(m.saved, r)
	return nil
}

type setChecker map[string]bool

func (s setChecker) Exists(_ context.Context, id string) (bool, error) { return s[id], nil }

type link struct {
	rel           domain.Relation
	owner, member string
}

type mockRels struct {
	links []link
}

func (m *mockRels) Link(_ context.Context, rel domain.Relation, owner, member string, _ time.Time) (bool, error) {
	m.links = append(m.links, link{rel, owner, member})
	return true, nil
}

func (m *mockRels) Members(_ context.Context, rel domain.Relation, owner string) ([]string, error) {
	var out []string
	for _, l := range m.links {
		if l.rel == rel && l.owner == owner {
			out = append(out, l.member)
		}
	}
	return out, nil
}

type noopDeleter struct{}

func (noopDeleter) DeleteReview(_ context.Context, _ string) error { return nil }

func newService() (*Service, *mockRels) {
	rels := &mockRels{}
	svc := New(&mockRepo{}, setChecker{"p1": true}, setChecker{"u1": true}, rels, noopDeleter{})
	return svc, rels
}

func TestCreate_ValidationOrder(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	tests := []struct {
		name              string
		place, user, text string
		wantField         string
		wantNotFound      bool
	}{
		{"unknown place", "px", "", "", "", true},
		{"missing user_id", "p1", "", "", "user_id", false},
		{"unknown user", "p1", "ux", "", "", true},
		{"missing text", "p1", "u1", "", "text", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.place, tt.user, tt.text)
			if tt.wantNotFound {
				if !errors.Is(err, domain.ErrNotFound) {
					t.Fatalf("expected ErrNotFound, got %v", err)
				}
				return
			}
			var mf *domain.MissingFieldError
			if !errors.As(err, &mf) || mf.Field != tt.wantField {
				t.Fatalf("expected Missing %s, got %v", tt.wantField, err)
			}
		})
	}
}

func TestCreate_LinksPlaceAndUser(t *testing.T) {
	svc, rels := newService()
	ctx := context.Background()
	r, err := svc.Create(ctx, "p1", "u1", "great stay")
	if err != nil {
		t.Fatal(err)
	}
	if len(rels.links) != 2 {
		t.Fatalf("links = %+v", rels.links)
	}
	if rels.links[0] != (link{domain.PlaceReviews, "p1", r.ID()}) ||
		rels.links[1] != (link{domain.UserReviews, "u1", r.ID()}) {
		t.Errorf("links = %+v", rels.links)
	}
	list, err := svc.ListByPlace(ctx, "p1")
	if err != nil || len(list) != 1 || list[0].Text() != "great stay" {
		t.Fatalf("ListByPlace() = %v, %v", list, err)
	}
}

func TestListByPlace_Unknown(t *testing.T) {
	svc, _ := newService()
	if _, err := svc.ListByPlace(context.Background(), "px"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

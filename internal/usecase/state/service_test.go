package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/hbnb/internal/domain"
	domstate "github.com/kailas-cloud/hbnb/internal/domain/state"
)

type mockRepo struct {
	getFn  func(ctx context.Context, id string) (domstate.State, error)
	allFn  func(ctx context.Context) ([]domstate.State, error)
	saveFn func(ctx context.Context, s domstate.State) error
}

func (m *mockRepo) Get(ctx context.Context, id string) (domstate.State, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domstate.State{}, domain.ErrNotFound
}

func (m *mockRepo) All(ctx context.Context) ([]domstate.State, error) {
	if m.allFn != nil {
		return m.allFn(ctx)
	}
	return nil, nil
}

func (m *mockRepo) Save(ctx context.Context, s domstate.State) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, s)
	}
	return nil
}

type mockDeleter struct {
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockDeleter) DeleteState(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

var (
	t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
)

func TestCreate_MissingName(t *testing.T) {
	saved := false
	repo := &mockRepo{saveFn: func(_ context.Context, _ domstate.State) error {
		saved = true
		return nil
	}}
	_, err := New(repo, &mockDeleter{}).Create(context.Background(), "")
	var mf *domain.MissingFieldError
	if !errors.As(err, &mf) || mf.Field != "name" {
		t.Fatalf("expected Missing name, got %v", err)
	}
	if saved {
		t.Error("invalid state must not be saved")
	}
}

func TestCreate_Saves(t *testing.T) {
	var saved domstate.State
	repo := &mockRepo{saveFn: func(_ context.Context, s domstate.State) error {
		saved = s
		return nil
	}}
	svc := New(repo, &mockDeleter{}).WithClock(func() time.Time { return t0 })
	st, err := svc.Create(context.Background(), "Nevada")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID() != st.ID() || saved.Name() != "Nevada" {
		t.Errorf("saved %+v, returned %+v", saved, st)
	}
	if !st.CreatedAt().Equal(t0) {
		t.Errorf("CreatedAt = %v, want %v", st.CreatedAt(), t0)
	}
}

func TestUpdate_TouchesUpdatedAt(t *testing.T) {
	orig := domstate.Reconstruct(domain.RestoreMeta("s1", t0, t0), "Old")
	repo := &mockRepo{getFn: func(_ context.Context, _ string) (domstate.State, error) { return orig, nil }}
	svc := New(repo, &mockDeleter{}).WithClock(func() time.Time { return t1 })

	name := "New"
	got, err := svc.Update(context.Background(), "s1", domstate.Patch{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name() != "New" || !got.UpdatedAt().Equal(t1) || !got.CreatedAt().Equal(t0) {
		t.Errorf("unexpected update result: %+v", got)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	name := "x"
	_, err := New(&mockRepo{}, &mockDeleter{}).Update(context.Background(), "nope", domstate.Patch{Name: &name})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_Delegates(t *testing.T) {
	var gotID string
	del := &mockDeleter{deleteFn: func(_ context.Context, id string) error {
		gotID = id
		return domain.ErrNotFound
	}}
	err := New(&mockRepo{}, del).Delete(context.Background(), "s9")
	if gotID != "s9" {
		t.Errorf("deleter got %q", gotID)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

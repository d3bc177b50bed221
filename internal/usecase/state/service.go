// Package state implements State CRUD.
package state

import (
	"context"
	"fmt"
	"time"

	domstate "github.com/kailas-cloud/hbnb/internal/domain/state"
)

// Service handles state CRUD.
type Service struct {
	repo    Repository
	deleter Deleter
	now     func() time.Time
}

// New creates a state service.
func New(repo Repository, deleter Deleter) *Service {
	return &Service{repo: repo, deleter: deleter, now: time.Now}
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// List returns every state in creation order.
func (s *Service) List(ctx context.Context) ([]domstate.State, error) {
	states, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	return states, nil
}

// Get returns a state by id.
func (s *Service) Get(ctx context.Context, id string) (domstate.State, error) {
	st, err := s.repo.Get(ctx, id)
	if err != nil {
		return domstate.State{}, fmt.Errorf("get state: %w", err)
	}
	return st, nil
}

// Create validates and stores a new state.
func (s *Service) Create(ctx context.Context, name string) (domstate.State, error) {
	st, err := domstate.New(name, s.now())
	if err != nil {
		return domstate.State{}, err
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return domstate.State{}, fmt.Errorf("save state: %w", err)
	}
	return st, nil
}

// Update applies a patch to an existing state.
func (s *Service) Update(ctx context.Context, id string, p domstate.Patch) (domstate.State, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return domstate.State{}, err
	}
	updated, err := st.Apply(p, s.now())
	if err != nil {
		return domstate.State{}, err
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		return domstate.State{}, fmt.Errorf("save state: %w", err)
	}
	return updated, nil
}

// Delete removes a state and its cities.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.deleter.DeleteState(ctx, id); err != nil {
		return fmt.Errorf("delete state: %w", err)
	}
	return nil
}

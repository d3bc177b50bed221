// Package user implements User CRUD with bcrypt password hashing.
package user

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kailas-cloud/hbnb/internal/domain"
	domuser "github.com/kailas-cloud/hbnb/internal/domain/user"
)

// CreateInput carries the fields accepted on user creation.
type CreateInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UpdateInput carries the mutable user fields. Nil fields are unchanged.
type UpdateInput struct {
	Password  *string
	FirstName *string
	LastName  *string
}

// Service handles user CRUD.
type Service struct {
	repo     Repository
	deleter  Deleter
	hashCost int
	now      func() time.Time
}

// New creates a user service.
func New(repo Repository, deleter Deleter) *Service {
	return &Service{repo: repo, deleter: deleter, hashCost: bcrypt.DefaultCost, now: time.Now}
}

// WithHashCost sets the bcrypt cost. Values outside bcrypt's range are ignored.
func (s *Service) WithHashCost(cost int) *Service {
	if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		s.hashCost = cost
	}
	return s
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// List returns every user in creation order.
func (s *Service) List(ctx context.Context) ([]domuser.User, error) {
	users, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id string) (domuser.User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return domuser.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Create validates, hashes the password and stores a new user.
// Missing fields are reported in email, password order.
func (s *Service) Create(ctx context.Context, in CreateInput) (domuser.User, error) {
	if in.Email == "" {
		return domuser.User{}, domain.NewMissingField("email")
	}
	if in.Password == "" {
		return domuser.User{}, domain.NewMissingField("password")
	}
	hash, err := domuser.HashPassword(in.Password, s.hashCost)
	if err != nil {
		return domuser.User{}, err
	}
	u, err := domuser.New(in.Email, hash, in.FirstName, in.LastName, s.now())
	if err != nil {
		return domuser.User{}, err
	}
	if err := s.repo.Save(ctx, u); err != nil {
		return domuser.User{}, fmt.Errorf("save user: %w", err)
	}
	return u, nil
}

// Update applies the mutable fields to an existing user.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (domuser.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return domuser.User{}, err
	}
	p := domuser.Patch{FirstName: in.FirstName, LastName: in.LastName}
	if in.Password != nil {
		if *in.Password == "" {
			return domuser.User{}, fmt.Errorf("password must not be empty: %w", domain.ErrInvalidField)
		}
		hash, err := domuser.HashPassword(*in.Password, s.hashCost)
		if err != nil {
			return domuser.User{}, err
		}
		p.PasswordHash = &hash
	}
	updated, err := u.Apply(p, s.now())
	if err != nil {
		return domuser.User{}, err
	}
	if err := s.repo.Save(ctx, updated); err != nil {
		return domuser.User{}, fmt.Errorf("save user: %w", err)
	}
	return updated, nil
}

// Delete removes a user with their places and reviews.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.deleter.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

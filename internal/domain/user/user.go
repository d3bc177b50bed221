package user

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kailas-cloud/hbnb/internal/domain"
)

// User is an account that hosts places and writes reviews.
// Only the bcrypt hash of the password is held.
type User struct {
	domain.Meta
	email        string
	passwordHash string
	firstName    string
	lastName     string
}

// HashPassword derives a bcrypt hash from a plain-text password.
func HashPassword(password string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// New validates and creates a User from an already hashed password.
func New(email, passwordHash, firstName, lastName string, now time.Time) (User, error) {
	if email == "" {
		return User{}, domain.NewMissingField("email")
	}
	if passwordHash == "" {
		return User{}, domain.NewMissingField("password")
	}
	return User{
		Meta:         domain.NewMeta(now),
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
	}, nil
}

// Reconstruct creates a User without validation (storage hydration).
func Reconstruct(meta domain.Meta, email, passwordHash, firstName, lastName string) User {
	return User{Meta: meta, email: email, passwordHash: passwordHash, firstName: firstName, lastName: lastName}
}

// Email returns the login email. It never changes after creation.
func (u User) Email() string { return u.email }

// PasswordHash returns the bcrypt hash.
func (u User) PasswordHash() string { return u.passwordHash }

// FirstName returns the given name.
func (u User) FirstName() string { return u.firstName }

// LastName returns the family name.
func (u User) LastName() string { return u.lastName }

// CheckPassword reports whether password matches the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

// Patch lists the mutable attributes of a User. Email is immutable.
// PasswordHash must already be hashed by the caller.
type Patch struct {
	PasswordHash *string
	FirstName    *string
	LastName     *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.PasswordHash == nil && p.FirstName == nil && p.LastName == nil
}

// Apply returns a copy with the patch applied.
func (u User) Apply(p Patch, now time.Time) (User, error) {
	if p.PasswordHash != nil {
		if *p.PasswordHash == "" {
			return User{}, fmt.Errorf("password must not be empty: %w", domain.ErrInvalidField)
		}
		u.passwordHash = *p.PasswordHash
	}
	if p.FirstName != nil {
		u.firstName = *p.FirstName
	}
	if p.LastName != nil {
		u.lastName = *p.LastName
	}
	u.Meta = u.Touched(now)
	return u, nil
}

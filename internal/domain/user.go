package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// User is the signed in user's identity.  It is replaced wholesale whenever the profile is fetched again.
type User struct {
	ID       string `validate:"required"`
	Name     string `validate:"required"`
	Email    string `validate:"omitempty,email"`
	Avatar   string // Optional, empty means the default avatar is shown
	JoinDate string // Display label, e.g. "January 2024"
}

// UserStatistics holds the read-only activity counters shown on the profile
type UserStatistics struct {
	Watched   int `validate:"gte=0"`
	Favorites int `validate:"gte=0"`
	Reviews   int `validate:"gte=0"`
}

// String renders the counters as watched/favorites/reviews
func (s UserStatistics) String() string {
	return fmt.Sprintf("%d/%d/%d", s.Watched, s.Favorites, s.Reviews)
}

// Profile is the result of the combined identity and statistics fetch
type Profile struct {
	User       User
	Statistics UserStatistics
}

// ErrInvalidProfile is returned when a provider hands back a profile that cannot be displayed
var ErrInvalidProfile = errors.New("invalid profile")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate ensures the identity has the fields the profile screen depends on and every counter is non-negative
func (p *Profile) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: no profile returned", ErrInvalidProfile)
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	return nil
}

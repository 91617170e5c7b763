// Package static serves a fixed profile for running Lumix without a backend.
package static

import (
	"context"

	"github.com/PizzaHomicide/lumix/internal/domain"
)

type ProfileRepository struct {
	user  domain.User
	stats domain.UserStatistics
}

// NewProfileRepository returns a repository that always serves the given identity with zeroed statistics
func NewProfileRepository(user domain.User) domain.ProfileRepository {
	return &ProfileRepository{user: user}
}

func (r *ProfileRepository) GetProfile(ctx context.Context) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		User:       r.user,
		Statistics: r.stats,
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

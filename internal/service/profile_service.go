package service

import (
	"context"
	"sync"

	"github.com/PizzaHomicide/lumix/internal/domain"
	"github.com/PizzaHomicide/lumix/internal/log"
)

type ProfileService struct {
	repo    domain.ProfileRepository
	mu      sync.RWMutex
	profile *domain.Profile // The most recent successful fetch, cleared when a fetch fails
}

func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{
		repo: repo,
	}
}

// GetProfile returns the last loaded profile, or nil if the last load failed or none has happened yet
func (s *ProfileService) GetProfile() *domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// LoadProfile fetches identity and statistics from the repository, replacing any previously loaded profile
func (s *ProfileService) LoadProfile(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.repo.GetProfile(ctx)
	if err == nil {
		err = profile.Validate()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		// A failed fetch must never leave an older identity around to be displayed
		s.profile = nil
		return nil, err
	}

	s.profile = profile
	log.Debug("Profile loaded", "user_id", profile.User.ID, "stats", profile.Statistics.String())
	return profile, nil
}

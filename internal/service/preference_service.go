package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/PizzaHomicide/lumix/internal/domain"
	"github.com/PizzaHomicide/lumix/internal/log"
	"github.com/google/uuid"
)

// ErrStaleRevision is returned by Save when a newer revision has already been written, so the older one is dropped
var ErrStaleRevision = errors.New("a newer preference revision has already been saved")

type PreferenceService struct {
	repo       domain.PreferenceRepository
	defaults   domain.Preferences
	attempts   int
	retryDelay time.Duration

	// Writes are serialised.  lastAttempted is the newest revision a write was attempted for, older revisions are
	// skipped so the stored value can never go backwards.
	mu            sync.Mutex
	lastAttempted uint64
	persisted     domain.Preferences
}

func NewPreferenceService(repo domain.PreferenceRepository, defaults domain.Preferences, attempts int, retryDelay time.Duration) *PreferenceService {
	if attempts < 1 {
		attempts = 1
	}
	return &PreferenceService{
		repo:       repo,
		defaults:   defaults,
		attempts:   attempts,
		retryDelay: retryDelay,
		persisted:  defaults,
	}
}

// Defaults returns the preferences in effect before anything has been loaded
func (s *PreferenceService) Defaults() domain.Preferences {
	return s.defaults
}

// Load returns the saved preferences.  The defaults are returned when nothing is saved, and alongside any error.
func (s *PreferenceService) Load(ctx context.Context) (domain.Preferences, error) {
	saved, err := s.repo.Load(ctx)
	if err != nil {
		return s.defaults, fmt.Errorf("failed to load preferences: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if saved == nil {
		return s.defaults, nil
	}
	// A write that already happened is newer than what was just read
	if s.lastAttempted == 0 {
		s.persisted = *saved
	}
	return *saved, nil
}

// Save writes the full preference set for the given revision, retrying on failure.  It returns the preferences as
// persisted after the attempt, which on failure are the values the caller should roll back to.
func (s *PreferenceService) Save(ctx context.Context, revision uint64, prefs domain.Preferences) (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if revision < s.lastAttempted {
		log.Debug("Skipping stale preference write", "revision", revision, "last_attempted", s.lastAttempted)
		return s.persisted, ErrStaleRevision
	}
	s.lastAttempted = revision

	requestID := uuid.NewString()
	var err error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		if err = s.repo.Save(ctx, prefs); err == nil {
			s.persisted = prefs
			log.Info("Preferences saved", "request_id", requestID, "revision", revision, "attempt", attempt)
			return s.persisted, nil
		}

		log.Warn("Failed to save preferences", "request_id", requestID, "revision", revision, "attempt", attempt, "error", err)
		if attempt == s.attempts {
			break
		}

		select {
		case <-ctx.Done():
			return s.persisted, fmt.Errorf("failed to save preferences: %w", ctx.Err())
		case <-time.After(s.retryDelay):
		}
	}

	return s.persisted, fmt.Errorf("failed to save preferences after %d attempts: %w", s.attempts, err)
}

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/PizzaHomicide/lumix/internal/domain"
)

type fakeProfileRepository struct {
	profile *domain.Profile
	err     error
	calls   int
}

func (f *fakeProfileRepository) GetProfile(ctx context.Context) (*domain.Profile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

type fakePreferenceRepository struct {
	mu       sync.Mutex
	saved    *domain.Preferences
	loadErr  error
	failures int // Number of upcoming Save calls that fail
	saves    []domain.Preferences
}

func (f *fakePreferenceRepository) Load(ctx context.Context) (*domain.Preferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.saved, nil
}

func (f *fakePreferenceRepository) Save(ctx context.Context, prefs domain.Preferences) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, prefs)
	if f.failures > 0 {
		f.failures--
		return errors.New("storage unavailable")
	}
	f.saved = &prefs
	return nil
}

type fakeSessionRepository struct {
	err     error
	cleared bool
}

func (f *fakeSessionRepository) ClearSession(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.cleared = true
	return nil
}

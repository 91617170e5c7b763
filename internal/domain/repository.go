package domain

import "context"

// ProfileRepository provides the signed in user's identity and statistics in a single request
type ProfileRepository interface {
	// GetProfile retrieves the identity and statistics for the current session
	GetProfile(ctx context.Context) (*Profile, error)
}

// PreferenceRepository persists the user's preferences
type PreferenceRepository interface {
	// Load returns the saved preferences, or nil with no error if nothing has been saved yet
	Load(ctx context.Context) (*Preferences, error)

	// Save replaces the saved preferences with the given full set
	Save(ctx context.Context, prefs Preferences) error
}

// SessionRepository ends the current session
type SessionRepository interface {
	// ClearSession removes any stored credentials for the current session
	ClearSession(ctx context.Context) error
}

package domain

import "fmt"

// PreferenceKey names one of the toggleable preferences
type PreferenceKey string

const (
	PreferenceDarkMode         PreferenceKey = "dark_mode"
	PreferenceNotifications    PreferenceKey = "notifications"
	PreferenceAutoplayTrailers PreferenceKey = "autoplay_trailers"
)

// PreferenceKeys lists every preference in display order
var PreferenceKeys = []PreferenceKey{
	PreferenceDarkMode,
	PreferenceNotifications,
	PreferenceAutoplayTrailers,
}

// Preferences are the user's boolean settings.  They are always persisted as a full set.
type Preferences struct {
	DarkMode         bool `yaml:"dark_mode"`
	Notifications    bool `yaml:"notifications"`
	AutoplayTrailers bool `yaml:"autoplay_trailers"`
}

// Get returns the value of a single preference
func (p Preferences) Get(key PreferenceKey) (bool, error) {
	switch key {
	case PreferenceDarkMode:
		return p.DarkMode, nil
	case PreferenceNotifications:
		return p.Notifications, nil
	case PreferenceAutoplayTrailers:
		return p.AutoplayTrailers, nil
	}
	return false, fmt.Errorf("unknown preference: %q", key)
}

// Toggle returns a copy of the preferences with only the given preference flipped
func (p Preferences) Toggle(key PreferenceKey) (Preferences, error) {
	switch key {
	case PreferenceDarkMode:
		p.DarkMode = !p.DarkMode
	case PreferenceNotifications:
		p.Notifications = !p.Notifications
	case PreferenceAutoplayTrailers:
		p.AutoplayTrailers = !p.AutoplayTrailers
	default:
		return p, fmt.Errorf("unknown preference: %q", key)
	}
	return p, nil
}

// Label returns the name a preference is displayed with
func (k PreferenceKey) Label() string {
	switch k {
	case PreferenceDarkMode:
		return "Dark Mode"
	case PreferenceNotifications:
		return "Notifications"
	case PreferenceAutoplayTrailers:
		return "Auto-play Trailers"
	}
	return string(k)
}

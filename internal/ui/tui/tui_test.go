package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/PizzaHomicide/lumix/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Profile: config.ProfileConfig{
			Source:  "static",
			Timeout: time.Second,
			Placeholder: config.IdentityConfig{
				ID:    "user_123",
				Name:  "User",
				Email: "user@example.com",
			},
		},
		Preferences: config.PreferencesConfig{
			FilePath:     filepath.Join(t.TempDir(), "preferences.yaml"),
			SaveAttempts: 2,
		},
	}
}

func TestNewServicesStaticSource(t *testing.T) {
	cfg := testConfig(t)

	services, err := NewServices(cfg)
	require.NoError(t, err)

	profile, err := services.Profiles.LoadProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "User", profile.User.Name)
	assert.Equal(t, "0/0/0", profile.Statistics.String())

	prefs, err := services.Preferences.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.Preferences.DefaultPreferences(), prefs)
}

func TestNewServicesPersistsPreferencesToFile(t *testing.T) {
	cfg := testConfig(t)
	services, err := NewServices(cfg)
	require.NoError(t, err)

	toggled, err := services.Preferences.Defaults().Toggle("notifications")
	require.NoError(t, err)
	_, err = services.Preferences.Save(context.Background(), 1, toggled)
	require.NoError(t, err)

	// A fresh set of services reads what was written
	reopened, err := NewServices(cfg)
	require.NoError(t, err)
	prefs, err := reopened.Preferences.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, toggled, prefs)
}

func TestNewServicesGraphQLSource(t *testing.T) {
	cfg := testConfig(t)
	cfg.Profile.Source = "graphql"

	_, err := NewServices(cfg)
	assert.Error(t, err, "an endpoint is required")

	cfg.Profile.Endpoint = "http://127.0.0.1:0/graphql"
	_, err = NewServices(cfg)
	assert.NoError(t, err)
}

func TestNewServicesUnknownSource(t *testing.T) {
	cfg := testConfig(t)
	cfg.Profile.Source = "carrier-pigeon"

	_, err := NewServices(cfg)
	assert.ErrorContains(t, err, "unknown profile source")
}

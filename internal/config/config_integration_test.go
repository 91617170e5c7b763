package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) string {
	t.Helper()

	tmpConfigPath := filepath.Join(t.TempDir(), "config.yaml")
	setEnv(t, "LUMIX_CONFIG_PATH", tmpConfigPath)

	t.Cleanup(func() {
		cleanupEnvVars(t)
	})

	return tmpConfigPath
}

// TestConfigIntegration tests the config package with actual file operations
// This test uses a temporary directory to avoid interfering with real user configs
func TestConfigIntegration(t *testing.T) {
	// Test loading when no config exists (should create default)
	t.Run("LoadDefaultConfig", func(t *testing.T) {
		tmpConfigPath := setupTestConfig(t)
		config := loadConfig(t)

		// Verify default values
		assert.Equal(t, "static", config.Profile.Source)
		assert.Equal(t, 10*time.Second, config.Profile.Timeout)
		assert.Equal(t, "User", config.Profile.Placeholder.Name)
		assert.Equal(t, "user@example.com", config.Profile.Placeholder.Email)
		assert.Equal(t, 3, config.Preferences.SaveAttempts)
		assert.Equal(t, "info", config.Logging.Level)
		assert.NotEmpty(t, config.Logging.FilePath)
		assert.Equal(t, filepath.Join(filepath.Dir(tmpConfigPath), "preferences.yaml"), config.Preferences.FilePath)

		prefs := config.Preferences.DefaultPreferences()
		assert.True(t, prefs.DarkMode)
		assert.False(t, prefs.Notifications)
		assert.True(t, prefs.AutoplayTrailers)

		// Verify file was created
		if _, err := os.Stat(tmpConfigPath); os.IsNotExist(err) {
			t.Errorf("Config file was not created at %s", tmpConfigPath)
		}

		// Load the file from disk to assert that the 'dynamic' configurations were not saved when the default config was written
		savedConfig, _ := loadFromDisk(tmpConfigPath)
		assert.Empty(t, savedConfig.Logging.FilePath)
		assert.Empty(t, savedConfig.Preferences.FilePath)
	})

	// Test saving and loading custom values
	t.Run("SaveAndLoadConfig", func(t *testing.T) {
		tmpConfigPath := setupTestConfig(t)
		off := false
		customConfig := &Config{
			Auth: AuthConfig{
				Token: "test-token",
			},
			Profile: ProfileConfig{
				Source:   "graphql",
				Endpoint: "https://api.example.com/graphql",
				Placeholder: IdentityConfig{
					Name:  "Ada",
					Email: "ada@example.com",
				},
			},
			Preferences: PreferencesConfig{
				FilePath: "/tmp/prefs.yaml",
				Defaults: PreferenceDefaults{
					DarkMode: &off,
				},
			},
			Logging: LoggingConfig{
				Level:    "error",
				FilePath: "/var/log/lumix.log",
			},
		}

		saveConfig(t, customConfig, tmpConfigPath)
		loadedConfig := loadConfig(t)

		// Verify loaded values match what we saved
		assert.Equal(t, "test-token", loadedConfig.Auth.Token)
		assert.Equal(t, "graphql", loadedConfig.Profile.Source)
		assert.Equal(t, "https://api.example.com/graphql", loadedConfig.Profile.Endpoint)
		assert.Equal(t, "Ada", loadedConfig.Profile.Placeholder.Name)
		assert.Equal(t, "/tmp/prefs.yaml", loadedConfig.Preferences.FilePath)
		assert.Equal(t, "error", loadedConfig.Logging.Level)
		assert.Equal(t, "/var/log/lumix.log", loadedConfig.Logging.FilePath)

		// An explicit false in the file must win over the true default
		prefs := loadedConfig.Preferences.DefaultPreferences()
		assert.False(t, prefs.DarkMode)
		assert.True(t, prefs.AutoplayTrailers)
	})

	// Test invalid YAML handling
	t.Run("InvalidConfig", func(t *testing.T) {
		tmpConfigPath := setupTestConfig(t)
		// Write invalid YAML to the config file
		if err := os.WriteFile(tmpConfigPath, []byte("invalid: yaml: ["), 0600); err != nil {
			t.Fatalf("Failed to write invalid config: %v", err)
		}

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("ValidationFailures", func(t *testing.T) {
		tmpConfigPath := setupTestConfig(t)
		saveConfig(t, &Config{Profile: ProfileConfig{Source: "carrier-pigeon"}}, tmpConfigPath)

		_, err := Load()
		assert.ErrorContains(t, err, "invalid config")

		saveConfig(t, &Config{Profile: ProfileConfig{Source: "graphql"}}, tmpConfigPath)
		_, err = Load()
		assert.ErrorContains(t, err, "profile.endpoint is required")

		saveConfig(t, &Config{Profile: ProfileConfig{Placeholder: IdentityConfig{Email: "not-an-email"}}}, tmpConfigPath)
		_, err = Load()
		assert.ErrorContains(t, err, "invalid config")
	})

	t.Run("EnvironmentVariableOverrides", func(t *testing.T) {
		setupTestConfig(t)

		setEnv(t, "LUMIX_CONFIG_AUTH_TOKEN", "test-token")
		setEnv(t, "LUMIX_CONFIG_PROFILE_SOURCE", "graphql")
		setEnv(t, "LUMIX_CONFIG_PROFILE_ENDPOINT", "http://localhost:8080/graphql")
		setEnv(t, "LUMIX_CONFIG_PROFILE_TIMEOUT", "3s")
		setEnv(t, "LUMIX_CONFIG_PREFERENCES_FILE_PATH", "/prefs.yaml")
		setEnv(t, "LUMIX_CONFIG_PREFERENCES_SAVE_ATTEMPTS", "5")
		setEnv(t, "LUMIX_CONFIG_LOGGING_LEVEL", "warn")
		setEnv(t, "LUMIX_CONFIG_LOGGING_FILE_PATH", "/lumix.log")

		config := loadConfig(t)

		assert.Equal(t, "test-token", config.Auth.Token)
		assert.Equal(t, "graphql", config.Profile.Source)
		assert.Equal(t, "http://localhost:8080/graphql", config.Profile.Endpoint)
		assert.Equal(t, 3*time.Second, config.Profile.Timeout)
		assert.Equal(t, "/prefs.yaml", config.Preferences.FilePath)
		assert.Equal(t, 5, config.Preferences.SaveAttempts)
		assert.Equal(t, "warn", config.Logging.Level)
		assert.Equal(t, "/lumix.log", config.Logging.FilePath)

		// Remove the logging level override, then reload the config.
		// This ensures that the env var overrides were not persisted to disk.
		unsetEnv(t, "LUMIX_CONFIG_LOGGING_LEVEL")

		config = loadConfig(t)

		assert.Equal(t, "info", config.Logging.Level)
	})

	t.Run("InvalidEnvironmentVariable", func(t *testing.T) {
		setupTestConfig(t)
		setEnv(t, "LUMIX_CONFIG_PROFILE_TIMEOUT", "soon")

		_, err := Load()
		assert.ErrorContains(t, err, "LUMIX_CONFIG_PROFILE_TIMEOUT")
	})

	t.Run("ModifyConfig", func(t *testing.T) {
		setupTestConfig(t)
		saveConfigToCurrentPath(t, &Config{Auth: AuthConfig{Token: "abc"}})

		config := loadConfig(t)
		assert.Equal(t, "abc", config.Auth.Token)

		err := UpdateConfig(func(config *Config) {
			config.Auth.Token = ""
		})
		require.NoError(t, err)

		// Reload the config and ensure it has the new value
		config = loadConfig(t)
		assert.Empty(t, config.Auth.Token)
	})
}

func TestEnvVarHelp(t *testing.T) {
	help := EnvVarHelp()
	for _, envVar := range supportedEnvVars {
		assert.Contains(t, help, envVar.name)
	}
}

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	err := os.Setenv(key, value)
	if err != nil {
		t.Fatalf("Failed to set environment variable: %v", err)
	}
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	err := os.Unsetenv(key)
	if err != nil {
		t.Fatalf("Failed to unset environment variable: %v", err)
	}
}

func saveConfig(t *testing.T, config *Config, configPath string) {
	t.Helper()
	if err := save(config, configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}
}

func saveConfigToCurrentPath(t *testing.T, config *Config) {
	t.Helper()
	configPath, err := getConfigPath()
	require.NoError(t, err)
	saveConfig(t, config, configPath)
}

func loadConfig(t *testing.T) *Config {
	t.Helper()
	config, err := Load()
	if err != nil {
		t.Fatalf("Loading of config failed: %v", err)
	}
	return config
}

// Removes any env vars with the LUMIX_CONFIG prefix to ensure test isolation
func cleanupEnvVars(t *testing.T) {
	t.Helper()

	for _, envVar := range os.Environ() {
		if key := strings.Split(envVar, "=")[0]; strings.HasPrefix(key, "LUMIX_CONFIG") {
			unsetEnv(t, key)
		}
	}
}

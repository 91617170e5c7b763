package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"time"

	"dario.cat/mergo"
	"github.com/PizzaHomicide/lumix/internal/domain"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Auth        AuthConfig        `yaml:"auth,omitempty"`
	Profile     ProfileConfig     `yaml:"profile,omitempty"`
	Preferences PreferencesConfig `yaml:"preferences,omitempty"`
	Links       LinksConfig       `yaml:"links,omitempty"`
	Logging     LoggingConfig     `yaml:"logging,omitempty"`
}

// AuthConfig contains authentication settings
type AuthConfig struct {
	Token string `yaml:"token,omitempty"`
}

// ProfileConfig controls where identity and statistics come from
type ProfileConfig struct {
	Source   string        `yaml:"source,omitempty" validate:"oneof=static graphql"` // "static", "graphql"
	Endpoint string        `yaml:"endpoint,omitempty" validate:"omitempty,url"`
	Timeout  time.Duration `yaml:"timeout,omitempty" validate:"gte=0"`
	// Placeholder identity served by the static source
	Placeholder IdentityConfig `yaml:"placeholder,omitempty"`
}

// IdentityConfig is the placeholder identity shown when no backend is configured
type IdentityConfig struct {
	ID       string `yaml:"id,omitempty"`
	Name     string `yaml:"name,omitempty"`
	Email    string `yaml:"email,omitempty" validate:"omitempty,email"`
	Avatar   string `yaml:"avatar,omitempty"`
	JoinDate string `yaml:"join_date,omitempty"`
}

// PreferencesConfig contains preference storage settings and the values used before anything is saved
type PreferencesConfig struct {
	FilePath     string             `yaml:"file_path,omitempty"`
	SaveAttempts int                `yaml:"save_attempts,omitempty" validate:"gte=0,lte=10"`
	RetryDelay   time.Duration      `yaml:"retry_delay,omitempty" validate:"gte=0"`
	Defaults     PreferenceDefaults `yaml:"defaults,omitempty"`
}

// PreferenceDefaults uses pointers so that an explicit false in the config file can override a true default
type PreferenceDefaults struct {
	DarkMode         *bool `yaml:"dark_mode,omitempty"`
	Notifications    *bool `yaml:"notifications,omitempty"`
	AutoplayTrailers *bool `yaml:"autoplay_trailers,omitempty"`
}

// LinksConfig contains the URLs opened by the support entries
type LinksConfig struct {
	PrivacyPolicy  string `yaml:"privacy_policy,omitempty" validate:"omitempty,url"`
	TermsOfService string `yaml:"terms_of_service,omitempty" validate:"omitempty,url"`
}

// LoggingConfig contains log related settings
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	FilePath   string `yaml:"file_path,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups,omitempty" validate:"gte=0"`
}

// DefaultPreferences returns the configured starting preferences.  Unset values fall back to the built-in defaults.
func (p PreferencesConfig) DefaultPreferences() domain.Preferences {
	prefs := domain.Preferences{
		DarkMode:         true,
		Notifications:    false,
		AutoplayTrailers: true,
	}
	if p.Defaults.DarkMode != nil {
		prefs.DarkMode = *p.Defaults.DarkMode
	}
	if p.Defaults.Notifications != nil {
		prefs.Notifications = *p.Defaults.Notifications
	}
	if p.Defaults.AutoplayTrailers != nil {
		prefs.AutoplayTrailers = *p.Defaults.AutoplayTrailers
	}
	return prefs
}

// PlaceholderUser converts the configured placeholder identity into a domain user
func (p ProfileConfig) PlaceholderUser() domain.User {
	return domain.User{
		ID:       p.Placeholder.ID,
		Name:     p.Placeholder.Name,
		Email:    p.Placeholder.Email,
		Avatar:   p.Placeholder.Avatar,
		JoinDate: p.Placeholder.JoinDate,
	}
}

// Load builds a configuration struct from multiple sources using these steps:
// 1. Create a base config with default values
// 2. If no config file exists on disk, save the default config to that location
// 3. Apply 'dynamic' properties.  Dynamic properties are those that are determined at runtime, for example log file location which is different per OS.
// 4. Load & merge the config file, overwriting any defaults with user-specified values
// 5. Apply environment variable overrides
// 6. Validate the result
func Load() (*Config, error) {
	// 1. Start with base defaults
	cfg := createBaseDefaultConfig()

	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("unable to determine config file path: %w", err)
	}

	// 2. If no config file exists on disk, then write a default one
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		// If there is an error saving the default config, then still let the application startup using the defaults.
		_ = save(cfg, configPath)
	}

	// 3. Apply dynamic defaults if necessary
	applyDynamicDefaults(cfg, configPath)

	// 4. Load the config from disk and merge it into the base defaults
	fileConfig, err := loadFromDisk(configPath)
	if err != nil {
		return nil, err
	}
	// Overrides the config with any values coming from the loaded file
	if err = mergo.Merge(cfg, fileConfig, mergo.WithOverride, mergo.WithTransformers(boolPtrTransformer{})); err != nil {
		return nil, fmt.Errorf("error merging config loaded from disk: %w", err)
	}

	// 5. Apply the environment variable overrides which take precedence
	if err = applyEnvVarOverrides(cfg); err != nil {
		return nil, err
	}

	// 6. Reject anything the rest of the application cannot work with
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the config for values the application cannot run with
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Profile.Source == "graphql" && c.Profile.Endpoint == "" {
		return fmt.Errorf("invalid config: profile.endpoint is required when profile.source is graphql")
	}
	return nil
}

// boolPtrTransformer lets a non-nil *bool from the file replace the default, even when it points at false.
// mergo would otherwise treat false as an empty value and keep the default.
type boolPtrTransformer struct{}

func (boolPtrTransformer) Transformer(t reflect.Type) func(dst, src reflect.Value) error {
	if t != reflect.TypeOf((*bool)(nil)) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if dst.CanSet() && !src.IsNil() {
			v := src.Elem().Bool()
			dst.Set(reflect.ValueOf(&v))
		}
		return nil
	}
}

// applyDynamicDefaults sets runtime-determined default values for any properties that haven't been explicitly configured.
// Unlike static defaults, these values might change between runs based on the environment or system configuration.
func applyDynamicDefaults(cfg *Config, configPath string) {
	cfg.Logging.FilePath = defaultLogFilePath()
	cfg.Preferences.FilePath = filepath.Join(filepath.Dir(configPath), "preferences.yaml")
}

// loadFromDisk loads the YAML config from disk and returns the unmarshalled Config
func loadFromDisk(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config file: %w", err)
	}

	return cfg, nil
}

func save(cfg *Config, configPath string) error {
	// Create config dir if not exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// UpdateConfig reads the existing config, applies the update function, and saves it back to disk
func UpdateConfig(updateFn func(*Config)) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("unable to determine config file path: %w", err)
	}

	cfg, err := loadFromDisk(configPath)
	if err != nil {
		return fmt.Errorf("error loading config file from disk: %w", err)
	}

	// Apply the updates
	updateFn(cfg)

	return save(cfg, configPath)
}

// getConfigPath returns the path to the config file.  Uses the environment variable override if present, else tries
// to use OS config location defaults.
func getConfigPath() (string, error) {
	configPath := os.Getenv("LUMIX_CONFIG_PATH")
	if configPath != "" {
		return configPath, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "lumix", "config.yaml"), nil
}

// createBaseDefaultConfig creates a config with all default values
func createBaseDefaultConfig() *Config {
	darkMode, notifications, autoplay := true, false, true
	return &Config{
		Auth: AuthConfig{},
		Profile: ProfileConfig{
			Source:  "static",
			Timeout: 10 * time.Second,
			Placeholder: IdentityConfig{
				ID:       "user_123",
				Name:     "User",
				Email:    "user@example.com",
				JoinDate: "January 2024",
			},
		},
		Preferences: PreferencesConfig{
			SaveAttempts: 3,
			RetryDelay:   500 * time.Millisecond,
			Defaults: PreferenceDefaults{
				DarkMode:         &darkMode,
				Notifications:    &notifications,
				AutoplayTrailers: &autoplay,
			},
		},
		Links: LinksConfig{
			PrivacyPolicy:  "https://lumix.app/privacy",
			TermsOfService: "https://lumix.app/terms",
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// defaultLogFilePath returns the path to the log file.  Tries to use expected OS location defaults.
func defaultLogFilePath() string {
	var basePath string
	homedir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to logging in the current directory if home directory cannot be determined
		return filepath.Join(".", "lumix.log")
	}

	switch runtime.GOOS {
	case "windows":
		// Windows:  %LOCALAPPDATA%\lumix\logs
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			basePath = filepath.Join(appData, "lumix", "logs")
		} else {
			basePath = filepath.Join(homedir, "AppData", "local", "lumix", "logs")
		}
	case "darwin":
		// macOS:  ~/Library/Logs/lumix
		basePath = filepath.Join(homedir, "Library", "Logs", "lumix")
	default:
		// Linux/BSD:  XDG_STATE_HOME
		if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
			basePath = filepath.Join(xdgState, "lumix", "logs")
		} else {
			basePath = filepath.Join(homedir, ".local", "state", "lumix", "logs")
		}
	}

	err = os.MkdirAll(basePath, 0700)
	if err != nil {
		// If we failed to create the directory, fallback to logging in the current directory
		return filepath.Join(".", "lumix.log")
	}
	return filepath.Join(basePath, "lumix.log")
}

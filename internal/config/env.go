package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type envVar struct {
	name  string
	desc  string
	apply func(*Config, string) error
}

var supportedEnvVars = []envVar{
	{
		// Only here for documentation purposes.  Does not override any values in the config as this environment variable
		// points to where the config should be loaded.  It is handled prior to loading the config.
		name:  "LUMIX_CONFIG_PATH",
		desc:  "Sets the path to the config file.  Default: OS-specific config directory",
		apply: func(c *Config, s string) error { return nil }, // Special case, no-op
	},
	{
		name:  "LUMIX_CONFIG_AUTH_TOKEN",
		desc:  "Sets the token sent to the profile backend.  Default: None",
		apply: func(c *Config, s string) error { c.Auth.Token = s; return nil },
	},
	{
		name:  "LUMIX_CONFIG_PROFILE_SOURCE",
		desc:  "Sets where identity and statistics are loaded from.  One of `static` or `graphql`.  Default: static",
		apply: func(c *Config, s string) error { c.Profile.Source = s; return nil },
	},
	{
		name:  "LUMIX_CONFIG_PROFILE_ENDPOINT",
		desc:  "Sets the GraphQL endpoint used when the profile source is graphql.  Default: None",
		apply: func(c *Config, s string) error { c.Profile.Endpoint = s; return nil },
	},
	{
		name: "LUMIX_CONFIG_PROFILE_TIMEOUT",
		desc: "Sets the timeout for loading the profile, e.g. `5s`.  Default: 10s",
		apply: func(c *Config, s string) error {
			d, err := time.ParseDuration(s)
			if err != nil {
				return err
			}
			c.Profile.Timeout = d
			return nil
		},
	},
	{
		name:  "LUMIX_CONFIG_PREFERENCES_FILE_PATH",
		desc:  "Sets the file preferences are saved to.  Default: preferences.yaml next to the config file",
		apply: func(c *Config, s string) error { c.Preferences.FilePath = s; return nil },
	},
	{
		name: "LUMIX_CONFIG_PREFERENCES_SAVE_ATTEMPTS",
		desc: "Sets how many times saving preferences is attempted before the change is rolled back.  Default: 3",
		apply: func(c *Config, s string) error {
			n, err := strconv.Atoi(s)
			if err != nil {
				return err
			}
			c.Preferences.SaveAttempts = n
			return nil
		},
	},
	{
		name:  "LUMIX_CONFIG_LOGGING_LEVEL",
		desc:  "Sets the logging level.  One of: trace, debug, info, warn, error.  Default: info",
		apply: func(c *Config, s string) error { c.Logging.Level = s; return nil },
	},
	{
		name:  "LUMIX_CONFIG_LOGGING_FILE_PATH",
		desc:  "Sets the logging file path.  Default: OS-specific",
		apply: func(c *Config, s string) error { c.Logging.FilePath = s; return nil },
	},
}

func applyEnvVarOverrides(c *Config) error {
	for _, envVar := range supportedEnvVars {
		if value := os.Getenv(envVar.name); value != "" {
			if err := envVar.apply(c, value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar.name, err)
			}
		}
	}
	return nil
}

// EnvVarHelp describes every supported environment variable, one per line
func EnvVarHelp() string {
	var b strings.Builder
	for _, envVar := range supportedEnvVars {
		b.WriteString(fmt.Sprintf("  %-40s %s\n", envVar.name, envVar.desc))
	}
	return b.String()
}

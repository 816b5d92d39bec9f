package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/consistencyhq/consistency-cli/internal/constants"
)

const (
	keyAPIBaseURL  = "api.base_url"
	keyMockEnabled = "mock.enabled"
	keyDebug       = "debug"
)

// Load reads the config file at configPath, writing one with defaults if
// none exists yet.
func Load(configPath, dataDir string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault(keyAPIBaseURL, constants.DefaultBaseURL)
	v.SetDefault(keyMockEnabled, false)
	v.SetDefault(keyDebug, false)

	err := v.ReadInConfig()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return nil, fmt.Errorf("writing default config failed: %w", err)
		}
	}

	cfg := &Config{
		API:     APIConfig{BaseURL: v.GetString(keyAPIBaseURL)},
		Mock:    MockConfig{Enabled: v.GetBool(keyMockEnabled)},
		Debug:   v.GetBool(keyDebug),
		DataDir: dataDir,
	}

	return cfg, nil
}

// SetMockEnabled flips the mock flag in the config file so the choice
// persists across invocations.
func SetMockEnabled(configPath string, enabled bool) error {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading config file failed: %w", err)
	}

	v.Set(keyMockEnabled, enabled)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("writing config failed: %w", err)
	}
	return nil
}

// Package config loads application settings from the user's config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/consistencyhq/consistency-cli/internal/constants"
)

type (
	// Config holds all configuration settings
	Config struct {
		API   APIConfig
		Mock  MockConfig
		Debug bool

		// DataDir holds the log file, the user record and the habit
		// cache. Derived from XDG paths, not the config file.
		DataDir string
	}

	// APIConfig holds settings for the real backend.
	APIConfig struct {
		BaseURL string
	}

	// MockConfig controls the development-time request interceptor.
	MockConfig struct {
		Enabled bool
	}
)

var (
	configDir      = constants.AppName
	configFileName = constants.ConfigFileName
	configFilePath string
	dataDirPath    string
)

func ConfigFilePath() string {
	return configFilePath
}

func DataDir() string {
	return dataDirPath
}

// InitializePaths resolves the config file and data directory locations.
// CONSISTENCY_ENV suffixes the file names so tests and alternate
// environments don't clobber real state.
func InitializePaths() error {
	env := strings.TrimSpace(os.Getenv("CONSISTENCY_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
	}

	var err error

	configFilePath, err = xdg.ConfigFile(filepath.Join(configDir, configFileName))
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	dataDirPath, err = xdg.DataFile(configDir)
	if err != nil {
		return fmt.Errorf("resolving data dir: %w", err)
	}

	return nil
}

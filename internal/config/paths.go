package config

import (
	"os"
	"path/filepath"

	"github.com/compasshq/compass/internal/constants"
	"github.com/compasshq/compass/internal/errors"
)

// Home returns the Compass home directory (~/.compass).
func Home() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(home, constants.CompassHome), nil
}

// DataDir resolves the directory for the file storage backend, honoring
// the configured override.
func DataDir(cfg *Config) (string, error) {
	if cfg != nil && cfg.Storage.DataDir != "" {
		return cfg.Storage.DataDir, nil
	}
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.DataDir), nil
}

// LogsDir returns the directory for rotated log files.
func LogsDir() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.LogsDir), nil
}

// configPath returns the global config file location.
func configPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.ConfigFileName), nil
}

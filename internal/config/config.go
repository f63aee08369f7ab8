// Package config provides configuration management for Compass with layered
// precedence.
//
// Configuration sources are loaded in the following order (highest
// precedence first):
//  1. CLI flags (bound by the cli package)
//  2. Environment variables (COMPASS_* prefix)
//  3. Global config (~/.compass/config.yaml)
//  4. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

// Config is the root configuration structure for Compass.
type Config struct {
	// Storage selects and parameterizes the persistence backend.
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// Logging controls the log file behavior.
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// StorageConfig selects where persisted collections live.
type StorageConfig struct {
	// Backend is the persistence adapter to use: "file" or "redis".
	// Default: "file"
	Backend string `yaml:"backend" mapstructure:"backend"`

	// DataDir overrides the directory used by the file backend.
	// Default: ~/.compass/data
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	// RedisAddr is the host:port of the Redis server for the redis backend.
	// Default: "localhost:6379"
	RedisAddr string `yaml:"redis_addr" mapstructure:"redis_addr"`
}

// LoggingConfig controls file logging.
type LoggingConfig struct {
	// MaxSizeMB is the size at which the log file rotates.
	// Default: 10
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups is how many rotated files are kept.
	// Default: 3
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`
}

// Storage backend names.
const (
	// BackendFile stores each collection as a JSON file under the data dir.
	BackendFile = "file"

	// BackendRedis stores collections in a Redis server.
	BackendRedis = "redis"
)

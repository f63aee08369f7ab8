package config

import "github.com/spf13/viper"

// Default values for all configuration keys.
const (
	defaultBackend      = BackendFile
	defaultRedisAddr    = "localhost:6379"
	defaultLogMaxSizeMB = 10
	defaultLogBackups   = 3
)

// setDefaults registers the built-in defaults on a viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", defaultBackend)
	v.SetDefault("storage.data_dir", "")
	v.SetDefault("storage.redis_addr", defaultRedisAddr)
	v.SetDefault("logging.max_size_mb", defaultLogMaxSizeMB)
	v.SetDefault("logging.max_backups", defaultLogBackups)
}

// DefaultConfig returns the built-in configuration, used when no config
// file exists and loading fails.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:   defaultBackend,
			RedisAddr: defaultRedisAddr,
		},
		Logging: LoggingConfig{
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogBackups,
		},
	}
}

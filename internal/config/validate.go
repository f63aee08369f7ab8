package config

import "github.com/compasshq/compass/internal/errors"

// Validate checks a Config for values that would misbehave at runtime.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	switch cfg.Storage.Backend {
	case BackendFile, BackendRedis:
	default:
		return errors.Wrapf(errors.ErrConfigInvalidStorage,
			"backend %q must be %q or %q", cfg.Storage.Backend, BackendFile, BackendRedis)
	}

	if cfg.Storage.Backend == BackendRedis && cfg.Storage.RedisAddr == "" {
		return errors.Wrap(errors.ErrConfigInvalidStorage, "redis backend requires redis_addr")
	}

	if cfg.Logging.MaxSizeMB < 0 || cfg.Logging.MaxBackups < 0 {
		return errors.Wrap(errors.ErrConfigInvalidStorage, "logging sizes must be non-negative")
	}

	return nil
}

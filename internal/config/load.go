package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/compasshq/compass/internal/constants"
	"github.com/compasshq/compass/internal/errors"
)

// newViperInstance creates a viper instance with defaults, the COMPASS_
// environment prefix, and the dot-to-underscore key replacer.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// viperDecoderOption configures the mapstructure decoder used when
// unmarshaling into Config.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
}

// isConfigNotFoundError reports whether err is viper's missing-config-file
// error, which is expected on a fresh machine.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound)
}

// Load reads configuration from all available sources with proper
// precedence. A missing config file is not an error; actual configuration
// problems are.
//
// The context parameter is accepted for API consistency; config reads are
// fast local I/O and are not cancelable.
func Load(_ context.Context) (*Config, error) {
	v := newViperInstance()

	path, err := configPath()
	if err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !isConfigNotFoundError(err) && !os.IsNotExist(err) {
				return nil, errors.Wrap(err, "failed to read config file")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

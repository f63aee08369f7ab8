package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasshq/compass/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
	}{
		{
			name: "defaults are valid",
			cfg:  DefaultConfig(),
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: errors.ErrConfigNil,
		},
		{
			name: "unknown backend",
			cfg: &Config{
				Storage: StorageConfig{Backend: "sqlite"},
			},
			wantErr: errors.ErrConfigInvalidStorage,
		},
		{
			name: "redis backend without address",
			cfg: &Config{
				Storage: StorageConfig{Backend: BackendRedis},
			},
			wantErr: errors.ErrConfigInvalidStorage,
		},
		{
			name: "redis backend with address",
			cfg: &Config{
				Storage: StorageConfig{Backend: BackendRedis, RedisAddr: "localhost:6379"},
			},
		},
		{
			name: "negative log size",
			cfg: &Config{
				Storage: StorageConfig{Backend: BackendFile},
				Logging: LoggingConfig{MaxSizeMB: -1},
			},
			wantErr: errors.ErrConfigInvalidStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

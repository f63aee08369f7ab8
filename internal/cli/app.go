package cli

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/compasshq/compass/internal/backup"
	"github.com/compasshq/compass/internal/clock"
	"github.com/compasshq/compass/internal/config"
	"github.com/compasshq/compass/internal/errors"
	"github.com/compasshq/compass/internal/goal"
	"github.com/compasshq/compass/internal/profile"
	"github.com/compasshq/compass/internal/storage"
	"github.com/compasshq/compass/internal/task"
	"github.com/compasshq/compass/internal/vision"
)

// App bundles the wired application: configuration, the storage adapter,
// and the stores. Stores are constructed once here and passed by
// reference; nothing reaches them through ambient globals.
type App struct {
	Config  *config.Config
	Clock   clock.Clock
	Goals   *goal.Store
	Tasks   *task.Store
	Profile *profile.Store
	Backup  *backup.Service

	// DataDir is set when the file backend is active, for the watcher.
	DataDir string

	closer func()
}

// buildApp loads configuration, opens the storage backend, and wires the
// stores together.
func buildApp(ctx context.Context, flags *GlobalFlags, log zerolog.Logger) (*App, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = config.DefaultConfig()
	}
	if flags.DataDir != "" {
		cfg.Storage.DataDir = flags.DataDir
	}

	clk := clock.RealClock{}

	var kv storage.KV
	var dataDir string
	var closer func()

	switch cfg.Storage.Backend {
	case config.BackendRedis:
		rkv, err := storage.NewRedisKV(cfg.Storage.RedisAddr, log)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open redis storage")
		}
		kv = rkv
		closer = func() { _ = rkv.Close() }
	default:
		dir, err := config.DataDir(cfg)
		if err != nil {
			return nil, err
		}
		fkv, err := storage.NewFileKV(dir, log)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open file storage")
		}
		kv = fkv
		dataDir = dir
	}

	goals := goal.NewStore(kv, log, clk)
	tasks := task.NewStore(kv, log, clk, vision.Infer)
	goals.SetCascade(tasks)
	tasks.SetGoals(goals)

	return &App{
		Config:  cfg,
		Clock:   clk,
		Goals:   goals,
		Tasks:   tasks,
		Profile: profile.NewStore(kv, log, clk),
		Backup:  backup.NewService(goals, tasks, clk, log),
		DataDir: dataDir,
		closer:  closer,
	}, nil
}

// Close releases backend resources, if any.
func (a *App) Close() {
	if a.closer != nil {
		a.closer()
	}
}

// loadLoggingConfig reads just the logging section for logger setup,
// falling back to defaults on any problem. The full config load happens
// later in buildApp with proper error reporting.
func loadLoggingConfig(ctx context.Context) config.LoggingConfig {
	cfg, err := config.Load(ctx)
	if err != nil {
		return config.DefaultConfig().Logging
	}
	return cfg.Logging
}

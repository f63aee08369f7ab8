package cli

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/compasshq/compass/internal/errors"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// It is set during PersistentPreRunE and must be accessed via Logger.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// Logger returns the initialized logger for use by subcommands.
//
// IMPORTANT: This function MUST only be called after the root command's
// PersistentPreRunE has executed. Calling it before initialization will
// return a zero-value logger that discards all log output.
func Logger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// newRootCmd creates and returns the root command for the compass CLI.
// This function-based approach avoids package-level globals, making the
// code more testable.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "compass",
		Short: "Compass - personal goal and task tracker",
		Long: `Compass tracks hierarchical goals and the tasks that serve them, from a
level-1 vision down to today's concrete work.

Features:
  • Goal hierarchy with vision, long-term, mid-term, and short-term levels
  • Recurring tasks expanded into dated occurrences on demand
  • Today and agenda views, including an interactive terminal UI
  • Impact scoring that ties tasks back to personal values
  • Versioned JSON export and import of the full state`,
		Version: formatVersion(info),
		// Run displays help when the root command is invoked without
		// subcommands. This ensures PersistentPreRunE runs for flag
		// validation.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			loggingCfg := loadLoggingConfig(cmd.Context())
			globalLoggerMu.Lock()
			globalLogger = InitLogger(flags.Verbose, flags.Quiet, loggingCfg)
			globalLoggerMu.Unlock()

			return nil
		},
		// SilenceUsage prevents printing usage on error
		// (we handle our own error messages).
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	AddGoalCommand(cmd, flags)
	AddTaskCommand(cmd, flags)
	AddTodayCommand(cmd, flags)
	AddAgendaCommand(cmd, flags)
	AddExportCommand(cmd, flags)
	AddImportCommand(cmd, flags)
	AddResetCommand(cmd, flags)
	AddProfileCommand(cmd, flags)

	return cmd
}

// Execute runs the compass CLI with the given context.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, info)
	defer CloseLogFile()

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		return "dev"
	}
	if info.Commit == "" {
		return info.Version
	}
	return fmt.Sprintf("%s (%s, %s)", info.Version, info.Commit, info.Date)
}

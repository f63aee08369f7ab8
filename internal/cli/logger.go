package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/compasshq/compass/internal/config"
)

// logFileWriter holds the log file writer for cleanup purposes.
var logFileWriter io.WriteCloser //nolint:gochecknoglobals // Needed for cleanup

// logFileName is the active log file inside the logs directory.
const logFileName = "compass.log"

// InitLogger creates and configures a zerolog.Logger based on verbosity
// flags.
//
// Log levels are set as follows:
//   - verbose=true: Debug level (most detailed)
//   - quiet=true: Warn level (errors and warnings only)
//   - default: Info level (normal operation)
//
// Output format is determined by the terminal: a TTY gets the console
// writer, otherwise JSON goes to stderr. The logger also writes to
// ~/.compass/logs/compass.log with rotation; if the log file cannot be
// created, console-only logging continues.
func InitLogger(verbose, quiet bool, cfg config.LoggingConfig) zerolog.Logger {
	level := selectLevel(verbose, quiet)
	console := selectConsole()

	writer := console
	if fileWriter, err := createLogFileWriter(cfg); err == nil {
		logFileWriter = fileWriter
		writer = zerolog.MultiLevelWriter(console, fileWriter)
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// CloseLogFile releases the rotating log file writer, if one was opened.
func CloseLogFile() {
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}

func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// selectConsole picks human-readable output on a TTY and JSON otherwise.
func selectConsole() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	return os.Stderr
}

func createLogFileWriter(cfg config.LoggingConfig) (io.WriteCloser, error) {
	logsDir, err := config.LogsDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(logsDir, 0o750); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, logFileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}, nil
}

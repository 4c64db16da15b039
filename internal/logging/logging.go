// Package logging provides zerolog-based structured logging for rinkctl:
// logger construction with file fallback, component loggers, context
// propagation, trace IDs, and the audit trail.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Output destinations understood by NewLoggerWithPath.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
)

// Log formats understood by NewLoggerWithPath.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config describes how the application logger should be constructed.
type Config struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Unparseable values fall back to info.
	Level string

	// Format selects console (human-readable) or json output.
	Format string

	// Output selects the destination: stderr or file.
	Output string

	// File is the log file path, used when Output is "file".
	File string

	// Caller enables caller annotation on every event.
	Caller bool
}

// LogPathResult carries the constructed logger together with where its
// output actually went, so callers can tell users about file logging or
// fallbacks.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if one was opened.
func (r *LogPathResult) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLoggerWithPath builds the application logger from cfg.
//
// When file output is requested but the file cannot be opened, the logger
// falls back to stderr and the result records the reason instead of failing:
// a broken log destination should never take the CLI down.
func NewLoggerWithPath(cfg Config) LogPathResult {
	result := LogPathResult{}

	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.Output == OutputFile && cfg.File != "" {
		logFile, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if openErr != nil {
			result.FallbackUsed = true
			result.FallbackReason = openErr.Error()
		} else {
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = logFile
			out = logFile
		}
	}

	if cfg.Format != FormatJSON {
		// File logs stay machine-readable even in console format runs.
		if !result.UsingFile {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}
	}

	logCtx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}
	result.Logger = logCtx.Logger()

	return result
}

// ComponentLogger returns a child logger tagged with a component field.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx by zerolog's WithContext,
// or a disabled logger when none is present.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// PrintLogPathMessage tells the user where file logging is going.
func PrintLogPathMessage(w io.Writer, path string) {
	fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user why file logging was not available.
func PrintFallbackWarning(w io.Writer, reason string) {
	fmt.Fprintf(w, "Warning: file logging unavailable, using stderr: %s\n", reason)
}

package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	errUtils "github.com/forrestthewoods/fts-depends/errors"
	"github.com/forrestthewoods/fts-depends/pkg/schema"
)

// Level is re-exported so callers don't need to import charmbracelet/log.
type Level = log.Level

// TraceLevel sits below charm's DebugLevel; charm has no native trace level.
const TraceLevel Level = log.DebugLevel - 1

// OffLevel disables all output, including fatal messages.
const OffLevel Level = log.FatalLevel + 1

// Log level names accepted in configuration.
const (
	LogLevelTrace   = "Trace"
	LogLevelDebug   = "Debug"
	LogLevelInfo    = "Info"
	LogLevelWarning = "Warning"
	LogLevelOff     = "Off"
)

// Logger wraps charmbracelet/log with a custom Trace level and
// configuration-driven construction.
type Logger struct {
	*log.Logger
}

// NewLogger creates a Logger writing to w with the default styles.
func NewLogger(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{ReportTimestamp: false})

	styles := log.DefaultStyles()
	styles.Levels[TraceLevel] = lipgloss.NewStyle().
		SetString("TRAC").
		Foreground(lipgloss.Color("63"))
	l.SetStyles(styles)

	return &Logger{Logger: l}
}

// NewLoggerFromConfig creates a Logger from the merged configuration.
// An empty log file means stderr; `/dev/stdout` and `/dev/stderr` are
// understood on every platform.
func NewLoggerFromConfig(cfg *schema.Configuration) (*Logger, error) {
	w, err := logWriter(cfg.Logs.File)
	if err != nil {
		return nil, err
	}

	level, err := ParseLogLevel(cfg.Logs.Level)
	if err != nil {
		return nil, err
	}

	l := NewLogger(w)
	l.SetLevel(level)
	return l, nil
}

func logWriter(file string) (io.Writer, error) {
	switch file {
	case "", "/dev/stderr":
		return os.Stderr, nil
	case "/dev/stdout":
		return os.Stdout, nil
	case os.DevNull:
		return io.Discard, nil
	default:
		return os.OpenFile(file, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	}
}

// ParseLogLevel converts a configured level name to a Level.
// An empty string means Info.
func ParseLogLevel(logLevel string) (Level, error) {
	switch logLevel {
	case "":
		return log.InfoLevel, nil
	case LogLevelTrace:
		return TraceLevel, nil
	case LogLevelDebug:
		return log.DebugLevel, nil
	case LogLevelInfo:
		return log.InfoLevel, nil
	case LogLevelWarning:
		return log.WarnLevel, nil
	case LogLevelOff:
		return OffLevel, nil
	default:
		return 0, errors.Wrapf(errUtils.ErrInvalidLogLevel,
			"'%s' (supported levels are Trace, Debug, Info, Warning, Off)", logLevel)
	}
}

// Trace logs a message at TraceLevel.
func (l *Logger) Trace(msg interface{}, keyvals ...interface{}) {
	l.Logger.Log(TraceLevel, msg, keyvals...)
}

package logger

import (
	"os"
	"sync/atomic"
)

// defaultLogger is the global default Logger instance stored atomically.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(NewLogger(os.Stderr))
}

// Default returns the global default Logger instance.
func Default() *Logger {
	return defaultLogger.Load().(*Logger)
}

// SetDefault sets a new global default Logger instance.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// Trace logs a message at trace level using the default logger.
func Trace(msg interface{}, keyvals ...interface{}) {
	Default().Trace(msg, keyvals...)
}

// Debug logs a message at debug level using the default logger.
func Debug(msg interface{}, keyvals ...interface{}) {
	Default().Debug(msg, keyvals...)
}

// Info logs a message at info level using the default logger.
func Info(msg interface{}, keyvals ...interface{}) {
	Default().Info(msg, keyvals...)
}

// Warn logs a message at warn level using the default logger.
func Warn(msg interface{}, keyvals ...interface{}) {
	Default().Warn(msg, keyvals...)
}

// Error logs a message at error level using the default logger.
func Error(msg interface{}, keyvals ...interface{}) {
	Default().Error(msg, keyvals...)
}

// SetLevel sets the logging level on the default logger.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// GetLevel returns the logging level of the default logger.
func GetLevel() Level {
	return Default().GetLevel()
}

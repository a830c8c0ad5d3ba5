package internal

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	globalLogger zerolog.Logger
	loggerOnce   sync.Once
)

// InitGlobalLogger configures the process-wide logger. Diagnostics always
// go to stderr so they never mix with the account table on stdout.
func InitGlobalLogger(level string, pretty bool) {
	loggerOnce.Do(func() {
		globalLogger = newLogger(level, pretty)
	})
}

// GetLogger returns the global logger, initializing it with defaults if
// InitGlobalLogger was never called.
func GetLogger() zerolog.Logger {
	loggerOnce.Do(func() {
		globalLogger = newLogger("info", false)
	})
	return globalLogger
}

func newLogger(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(lvl).With().Timestamp().Logger()
}

// Package logpkg builds the application logger.
package logpkg

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

// New returns a JSON logger writing to stderr at info level.
//
// In the development environment it writes human readable output at trace level
// with caller information. A non-empty LOG_LEVEL overrides the level in both cases.
func New(config configpkg.Config) zerolog.Logger {
	return NewWithWriter(config, os.Stderr)
}

// NewWithWriter is like New but writes to w.
func NewWithWriter(config configpkg.Config, w io.Writer) zerolog.Logger {
	var (
		output   = w
		logLevel = zerolog.InfoLevel // default to INFO
	)

	log := zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	if config.Environment == "development" {
		log = log.
			Output(zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}).
			Level(zerolog.TraceLevel).
			With().
			Caller().
			Logger()
	}

	if config.LogLevel != "" {
		if level, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			log = log.Level(level)
		}
	}

	return log
}

// Package clog provides the constraint-system core's structured
// logger: a single package-level zerolog.Logger, plus per-builder
// child loggers carrying the circuit's capacity hint as a field.
package clog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/plonkcore/plonkcore/internal/buildinfo"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Logger returns the package-level logger, initializing it on first
// use with the module's version stamped in.
func Logger() zerolog.Logger {
	once.Do(func() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().
			Timestamp().
			Str("component", "plonkcore").
			Str("version", buildinfo.String()).
			Logger()
	})
	return logger
}

// ForBuilder returns a child logger carrying the circuit's capacity
// hint, for gate-count milestone logging during construction.
func ForBuilder(circuitSize int) zerolog.Logger {
	return Logger().With().Int("circuit_size", circuitSize).Logger()
}

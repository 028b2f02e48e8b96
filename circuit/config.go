package circuit

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/plonkcore/plonkcore/internal/clog"
)

// Config holds construction-time options for New, in the
// functional-options style gnark-crypto's fft.NewDomain(size,
// fft.WithoutPrecompute()) uses.
type Config[E any] struct {
	logger  zerolog.Logger
	rand    io.Reader
	encoder PublicInputEncoder[E]
}

// Option configures a Config.
type Option[E any] func(*Config[E])

// WithLogger overrides the default per-builder logger.
func WithLogger[E any](l zerolog.Logger) Option[E] {
	return func(c *Config[E]) { c.logger = l }
}

// WithRand supplies the randomness source used by AddBlindingFactors.
func WithRand[E any](r io.Reader) Option[E] {
	return func(c *Config[E]) { c.rand = r }
}

// WithPublicInputEncoder supplies the item-encoding collaborator AddPI
// delegates to. It replaces the default encoder, which accepts only a
// bare field element, so it receives every item, bare elements included.
func WithPublicInputEncoder[E any](enc PublicInputEncoder[E]) Option[E] {
	return func(c *Config[E]) { c.encoder = enc }
}

func defaultConfig[E any](circuitSize int) *Config[E] {
	return &Config[E]{
		logger: clog.ForBuilder(circuitSize),
	}
}

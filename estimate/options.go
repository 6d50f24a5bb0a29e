package estimate

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/arloliu/phiinf/errs"
	"github.com/arloliu/phiinf/internal/options"
)

const (
	// DefaultTolerance is the default relative tolerance of the per-point fitness check.
	DefaultTolerance = 0.001
	// DefaultTail is the default seed of the proportional deviation threshold.
	DefaultTail = 0.007
)

// Config holds the estimator configuration.
type Config struct {
	// Tolerance bounds the boundary-condition error of each tail point relative
	// to its estimate. +Inf disables the check.
	Tolerance float64
	// Tail seeds the proportional deviation threshold of the tail-point scan.
	Tail float64
	// Logger receives diagnostic events.
	Logger *zap.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance: DefaultTolerance,
		Tail:      DefaultTail,
		Logger:    zap.NewNop(),
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithTolerance sets the per-point fitness tolerance. It must be positive;
// math.Inf(1) accepts the first complete tail sample however imprecise.
func WithTolerance(tol float64) Option {
	return options.New(func(cfg *Config) error {
		if !(tol > 0) {
			return fmt.Errorf("%w: tolerance %g must be positive", errs.ErrInvalidOption, tol)
		}
		cfg.Tolerance = tol

		return nil
	})
}

// WithTail sets the seed of the proportional deviation threshold.
func WithTail(tail float64) Option {
	return options.New(func(cfg *Config) error {
		if !(tail > 0) || math.IsInf(tail, 1) {
			return fmt.Errorf("%w: tail %g must be positive and finite", errs.ErrInvalidOption, tail)
		}
		cfg.Tail = tail

		return nil
	})
}

// WithLogger sets the logger for diagnostic events.
func WithLogger(logger *zap.Logger) Option {
	return options.New(func(cfg *Config) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidOption)
		}
		cfg.Logger = logger

		return nil
	})
}

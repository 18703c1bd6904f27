package conv

import (
	"fmt"

	"github.com/cwbudde/algo-img/img/raster"
)

// Strategy selects the convolution implementation.
type Strategy int

const (
	// StrategyAuto uses direct convolution unless Config.FFTThreshold is set
	// and the image has at least that many pixels.
	StrategyAuto Strategy = iota

	// StrategyDirect sums the neighbourhood in the spatial domain.
	StrategyDirect

	// StrategyFFT multiplies spectra of the edge-padded image and the kernel.
	StrategyFFT
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyDirect:
		return "direct"
	case StrategyFFT:
		return "fft"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts a name produced by [Strategy.String] back into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "auto":
		return StrategyAuto, nil
	case "direct":
		return StrategyDirect, nil
	case "fft":
		return StrategyFFT, nil
	default:
		return StrategyAuto, fmt.Errorf("%w: unknown strategy %q", raster.ErrInvalidArgument, name)
	}
}

// Config holds convolution settings.
type Config struct {
	Strategy Strategy

	// Divisor scales every output sample by 1/Divisor. Must be > 0.
	Divisor float64

	// FFTThreshold is the smallest image (in pixels) StrategyAuto hands to
	// the FFT path. Zero keeps StrategyAuto on the direct path.
	FFTThreshold int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the automatic strategy without post-scaling.
func DefaultConfig() Config {
	return Config{
		Strategy: StrategyAuto,
		Divisor:  1,
	}
}

// WithStrategy forces a convolution implementation.
func WithStrategy(s Strategy) Option {
	return func(cfg *Config) {
		cfg.Strategy = s
	}
}

// WithDivisor divides every output sample by d. Convolve rejects d <= 0.
func WithDivisor(d float64) Option {
	return func(cfg *Config) {
		cfg.Divisor = d
	}
}

// WithFFTThreshold lets StrategyAuto use FFT for images of at least pixels
// samples. Values <= 0 disable the switch.
func WithFFTThreshold(pixels int) Option {
	return func(cfg *Config) {
		cfg.FFTThreshold = max(pixels, 0)
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

package codec

// Config holds codec settings.
type Config struct {
	// RawWidth and RawHeight give the dimensions of headerless raw files.
	RawWidth, RawHeight int

	// Comment is written as a '#' line into PGM headers.
	Comment string
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{Comment: "written by algo-img"}
}

// WithRawSize sets the dimensions used to read raw files.
func WithRawSize(width, height int) Option {
	return func(cfg *Config) {
		cfg.RawWidth = width
		cfg.RawHeight = height
	}
}

// WithComment sets the PGM header comment. An empty comment omits the line.
func WithComment(comment string) Option {
	return func(cfg *Config) {
		cfg.Comment = comment
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

package charconv

import (
	"log/slog"

	"github.com/LynnKirby/charconv/internal/engine"
)

// Option configures a Decoder.
type Option func(*config)

type config struct {
	fatal    bool
	stripBOM bool
	logger   *slog.Logger
}

// WithFatal makes malformed input an error instead of U+FFFD.
//
// The failing call returns a *MalformedError and no text, and the Decoder is
// reset so it can start a new stream.
func WithFatal() Option {
	return func(c *config) {
		c.fatal = true
	}
}

// WithStripBOM drops one leading U+FEFF from the text of each stream.
func WithStripBOM() Option {
	return func(c *config) {
		c.stripBOM = true
	}
}

// WithLogger sets the logger for debug diagnostics.
//
// Default: slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) engineOptions() []engine.Option {
	var opts []engine.Option
	if c.fatal {
		opts = append(opts, engine.WithFatal())
	}
	if c.logger != nil {
		opts = append(opts, engine.WithLogger(c.logger.With(slog.String("component", "charconv"))))
	}
	return opts
}

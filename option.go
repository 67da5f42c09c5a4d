package cliargs

import "github.com/asjadenet/cliargs/log"

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// config holds the construction options for a [Schema].
type config struct {
	logger   log.Logger
	autoHelp bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	return apply(config{autoHelp: true}, opts...)
}

// WithAutoHelp controls the implicit help flag.
//
// When enabled (the default) and the config does not define 'h', [New] adds
// a boolean 'h' flag with long alias "help" and a stock description. Pass
// false to construct a schema with no implicit flags at all.
func WithAutoHelp(enable bool) Option {
	return func(c config) config {
		c.autoHelp = enable

		return c
	}
}

// WithLogger attaches a structured logger to the schema. The scanner emits
// trace-level records for each token it resolves, which is useful when
// diagnosing surprising parses. The zero [log.Logger] discards everything,
// so schemas built without this option pay nothing.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}

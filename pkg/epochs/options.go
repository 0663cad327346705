package epochs

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/gaze/pkg/logging"
)

// epochsOptions is a struct that contains the options for epoch extraction.
type epochsOptions struct {
	logger *zerolog.Logger
}

// apply applies the given options to the epochs options.
func (o *epochsOptions) apply(opts ...Option) *epochsOptions {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// epochsDefaults returns the default options for epoch extraction.
func epochsDefaults() *epochsOptions {
	return &epochsOptions{
		logger: logging.Default(),
	}
}

// Option configures epoch extraction.
type Option func(*epochsOptions)

// WithLogger routes extraction logs to the given logger instead of the
// package default.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *epochsOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

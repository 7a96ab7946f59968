package parser

import (
	"log/slog"

	"github.com/ghettovoice/uritmpl/internal/log"
)

// Options is a Parse configuration.
type Options struct {
	Logger *slog.Logger
}

// Option configures Parse.
type Option interface {
	ApplyParse(opts *Options)
}

func newOptions(opts ...Option) Options {
	o := Options{Logger: log.Noop}
	for _, opt := range opts {
		opt.ApplyParse(&o)
	}
	if o.Logger == nil {
		o.Logger = log.Noop
	}
	return o
}

type withLogger struct {
	logger *slog.Logger
}

func (o withLogger) ApplyParse(opts *Options) { opts.Logger = o.logger }

// WithLogger makes Parse log tokenization and build steps to the given logger
// at debug level.
func WithLogger(logger *slog.Logger) Option { return withLogger{logger} }

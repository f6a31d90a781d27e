package option

import (
	"github.com/bgrewell/eltorito-kit/pkg/logging"
	"github.com/bgrewell/eltorito-kit/pkg/report"
)

// Options represents the options for an extraction.
type Options struct {
	Logger *logging.Logger
	Report report.Sink
}

// Option represents a function that modifies the Options.
type Option func(*Options)

// WithLogger sets the logger used for decode progress and errors.
func WithLogger(logger *logging.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithReport sets the sink receiving each decoded field in decode order.
func WithReport(sink report.Sink) Option {
	return func(o *Options) {
		o.Report = sink
	}
}

package exdir

import "go.uber.org/zap"

// Option configures how a file and the objects opened through it behave.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

func defaultOptions() *options {
	return &options{
		logger: zap.NewNop(),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger used for object creation, dataset writes and
// skipped directory entries. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

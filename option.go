package structwalk

import (
	"github.com/viant/structwalk/logger"
	"github.com/viant/structwalk/record"
	"github.com/viant/structwalk/schema"
)

type (
	options struct {
		accessor  schema.Accessor
		logger    logger.Logger
		streaming bool
		maxDepth  int
	}

	//Option represents traversal option
	Option func(o *options)
)

func newOptions(opts []Option) *options {
	ret := &options{maxDepth: -1}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.accessor == nil {
		ret.accessor = record.New()
	}
	if ret.logger == nil {
		ret.logger = logger.Default()
	}
	return ret
}

// WithAccessor sets schema accessor, reflection based record accessor is used by default
func WithAccessor(accessor schema.Accessor) Option {
	return func(o *options) {
		o.accessor = accessor
	}
}

// WithLogger sets logger
func WithLogger(logger logger.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStreaming disables upfront validation, errors are reported once reached,
// after the waypoints preceding them were yielded
func WithStreaming() Option {
	return func(o *options) {
		o.streaming = true
	}
}

// WithMaxDepth limits discovery to nodes with depth up to maxDepth, negative value means unlimited
func WithMaxDepth(maxDepth int) Option {
	return func(o *options) {
		o.maxDepth = maxDepth
	}
}

package stream

import (
	"context"

	"go.uber.org/zap"
)

const DefaultMaxBatchSize = 1000

type consumer struct {
	opts ConsumerOpts
}
type consumerOpts func(*ConsumerOpts)

func FromOffset(o uint64) consumerOpts {
	return func(c *ConsumerOpts) { c.FromOffset = o }
}
func WithMaxBatchSize(v int) consumerOpts {
	return func(c *ConsumerOpts) {
		if v > 0 {
			c.MaxBatchSize = v
		}
	}
}
func WithEOFBehaviour(v eofBehaviour) consumerOpts {
	return func(c *ConsumerOpts) { c.EOFBehaviour = v }
}
func WithName(v string) consumerOpts {
	return func(c *ConsumerOpts) { c.Name = v }
}
func WithMiddleware(v Middleware) consumerOpts {
	return func(c *ConsumerOpts) { c.Middleware = append(c.Middleware, v) }
}
func WithPerformanceLogging(logger *zap.Logger) consumerOpts {
	return WithMiddleware(func(p Processor, opts ConsumerOpts) Processor {
		l := logger
		if (opts.Name) != "" {
			l = l.With(zap.String("consumer_name", opts.Name))
		}
		l = l.With(
			zap.Int("consumer_max_batch_size", opts.MaxBatchSize),
		)
		return PerformanceLogger(l, p)
	})
}

type Consumer interface {
	Consume(ctx context.Context, log Log, processor Processor) error
}

func NewConsumer(opts ...consumerOpts) Consumer {
	config := ConsumerOpts{
		MaxBatchSize: DefaultMaxBatchSize,
		EOFBehaviour: EOFBehaviourExit,
		FromOffset:   0,
	}
	for _, opt := range opts {
		opt(&config)
	}
	return consumer{opts: config}
}

func (c consumer) Consume(ctx context.Context, log Log, processor Processor) error {
	return consume(ctx, log, c.opts, processor)
}

package stream

import (
	"context"
)

// Processor is a function that will process stream records
type Processor func(context.Context, Batch) error

// consume starts a poller, and calls Processor on each batch it produces.
// It returns once the poller is stopped and its cursor released.
func consume(ctx context.Context, log Log, opts ConsumerOpts, processor Processor) error {
	for _, middleware := range opts.Middleware {
		processor = middleware(processor, opts)
	}
	ctx, cancel := context.WithCancel(ctx)
	poller, err := newPoller(ctx, log, opts)
	if err != nil {
		cancel()
		return err
	}
	defer func() {
		cancel()
		for range poller.Ready() {
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case batch, ok := <-poller.Ready():
			if !ok {
				if err := poller.Error(); err != nil {
					return err
				}
				return ctx.Err()
			}
			// A batch may be ready while ctx is already cancelled.
			if err := ctx.Err(); err != nil {
				return err
			}
			err := processor(ctx, batch)
			if err != nil {
				return err
			}
		}
	}
}

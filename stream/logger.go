package stream

import (
	"context"
	"time"

	"go.uber.org/zap"
)

func PerformanceLogger(logger *zap.Logger, processor Processor) Processor {
	return func(ctx context.Context, batch Batch) error {
		if len(batch.Entries) > 0 {
			start := time.Now()
			err := processor(ctx, batch)
			last := batch.Entries[len(batch.Entries)-1]
			l := logger.With(zap.Int("batch_size", len(batch.Entries)),
				zap.Uint64("batch_first_offset", batch.FirstOffset),
				zap.Duration("batch_processing_time", time.Since(start)),
				zap.Duration("processor_lateness", lateness(start, last.Timestamp())))

			if err == nil {
				l.Debug("stream processed")
			} else {
				l.Error("stream processing failed", zap.Error(err))
			}
			return err
		}
		return nil
	}
}

// lateness returns how long after ts processing started. It is negative when ts is ahead of the local clock.
func lateness(start time.Time, ts uint64) time.Duration {
	return time.Duration(start.UnixNano() - int64(ts))
}

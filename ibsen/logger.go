package ibsen

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

var nopLogger = zap.NewNop()

// StoreLogger returns a copy of ctx carrying the provided logger.
func StoreLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// L returns the logger stored in ctx, or a no-op logger.
func L(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return nopLogger
	}
	logger, ok := ctx.Value(loggerKey{}).(*zap.Logger)
	if !ok || logger == nil {
		return nopLogger
	}
	return logger
}

// AddFields returns a copy of ctx whose logger carries the provided fields.
func AddFields(ctx context.Context, fields ...zap.Field) context.Context {
	return StoreLogger(ctx, L(ctx).With(fields...))
}

package ibsen

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vx-labs/ibsen/commitlog"
)

var (
	ErrInvalidTopic     = errors.New("invalid topic name")
	ErrUnknownTopic     = errors.New("unknown topic")
	ErrInvalidOffset    = errors.New("invalid offset")
	ErrOffsetOutOfRange = commitlog.ErrOffsetOutOfRange
	ErrStorageFull      = commitlog.ErrStorageFull
	ErrEntryTooBig      = commitlog.ErrEntryTooBig
	ErrCancelled        = errors.New("operation cancelled")
	ErrInternal         = errors.New("internal error")
	ErrClosed           = errors.New("engine is closed")
)

// classify maps any error returned by the storage layer onto the engine error taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}
	switch errors.Cause(err) {
	case ErrInvalidTopic, ErrUnknownTopic, ErrInvalidOffset, ErrOffsetOutOfRange,
		ErrStorageFull, ErrEntryTooBig, ErrCancelled, ErrInternal, ErrClosed:
		return err
	case commitlog.ErrLogClosed:
		return errors.Wrap(ErrClosed, err.Error())
	case context.Canceled, context.DeadlineExceeded:
		return errors.Wrap(ErrCancelled, err.Error())
	default:
		return errors.Wrap(ErrInternal, err.Error())
	}
}

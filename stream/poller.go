package stream

import (
	"context"
	"io"
	"math"

	"github.com/vx-labs/ibsen/commitlog"
)

type eofBehaviour int

const (
	// EOFBehaviourPoll will make the session wait for new records after an EOF error is received
	EOFBehaviourPoll eofBehaviour = 1 << iota
	// EOFBehaviourExit wil make the session exit when the end of the log is reached
	EOFBehaviourExit eofBehaviour = 1 << iota
)

// Middleware wraps a Processor.
type Middleware func(Processor, ConsumerOpts) Processor

// ConsumerOpts describes stream session preferences
type ConsumerOpts struct {
	Name         string
	MaxBatchSize int
	FromOffset   uint64
	EOFBehaviour eofBehaviour
	Middleware   []Middleware
}

type poller struct {
	maxBatchSize int
	until        uint64
	ch           chan Batch
	err          error
}

type Poller interface {
	Ready() <-chan Batch
	// Error returns the error that stopped the poller. It must only be called once Ready is closed.
	Error() error
}

func newPoller(ctx context.Context, log Log, opts ConsumerOpts) (Poller, error) {
	cursor := log.Reader()
	_, err := cursor.Seek(int64(opts.FromOffset), io.SeekStart)
	if err != nil {
		cursor.Close()
		return nil, err
	}
	s := &poller{
		ch:           make(chan Batch),
		maxBatchSize: opts.MaxBatchSize,
		until:        math.MaxUint64,
	}
	if opts.EOFBehaviour == EOFBehaviourExit {
		s.until = log.Offset()
	}
	go s.run(ctx, cursor, log, opts)
	return s, nil
}

func (s *poller) Error() error {
	return s.err
}
func (s *poller) Ready() <-chan Batch {
	return s.ch
}
func (s *poller) run(ctx context.Context, cursor commitlog.Cursor, log Log, opts ConsumerOpts) {
	defer close(s.ch)
	defer cursor.Close()
	for {
		// Grab the notification channel before reading, so no append can be missed.
		notify := log.Notify()
		entries, err := cursor.ReadEntries(s.maxBatchSize, s.until)
		if err == nil {
			select {
			case s.ch <- Batch{FirstOffset: entries[0].Offset(), Entries: entries}:
				continue
			case <-ctx.Done():
				return
			}
		}
		if err != io.EOF {
			s.err = err
			return
		}
		if opts.EOFBehaviour == EOFBehaviourExit {
			return
		}
		select {
		case <-notify:
		case <-ctx.Done():
			return
		}
	}
}

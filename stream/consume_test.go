package stream

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vx-labs/ibsen/commitlog"
	"go.uber.org/zap"
)

func openLog(t *testing.T, count int) commitlog.CommitLog {
	clog, err := commitlog.Open(t.TempDir(), commitlog.Options{SegmentMaxEntries: 7})
	require.NoError(t, err)
	t.Cleanup(func() { clog.Close() })
	values := make([][]byte, count)
	for i := range values {
		values[i] = []byte(fmt.Sprintf("entry%d", i))
	}
	_, err = clog.WriteEntries(uint64(time.Now().UnixNano()), values)
	require.NoError(t, err)
	return clog
}

func TestConsumer(t *testing.T) {
	clog := openLog(t, 25)

	t.Run("should read the whole log then exit", func(t *testing.T) {
		offsets := []uint64{}
		sizes := []int{}
		err := NewConsumer(WithMaxBatchSize(10)).Consume(context.Background(), clog, func(ctx context.Context, batch Batch) error {
			sizes = append(sizes, len(batch.Entries))
			for _, e := range batch.Entries {
				offsets = append(offsets, e.Offset())
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, []int{10, 10, 5}, sizes)
		require.Equal(t, 25, len(offsets))
		for i, offset := range offsets {
			require.Equal(t, uint64(i), offset)
		}
	})
	t.Run("should start from the provided offset", func(t *testing.T) {
		var first Batch
		err := NewConsumer(FromOffset(20)).Consume(context.Background(), clog, func(ctx context.Context, batch Batch) error {
			first = batch
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, uint64(20), first.FirstOffset)
		require.Equal(t, uint64(24), first.LastOffset())
		require.Equal(t, []byte("entry20"), first.Entries[0].Payload())
	})
	t.Run("should yield nothing when starting at the end of the log", func(t *testing.T) {
		called := false
		err := NewConsumer(FromOffset(25)).Consume(context.Background(), clog, func(ctx context.Context, batch Batch) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		require.False(t, called)
	})
	t.Run("should refuse offsets past the end of the log", func(t *testing.T) {
		err := NewConsumer(FromOffset(26)).Consume(context.Background(), clog, func(ctx context.Context, batch Batch) error {
			return nil
		})
		require.Equal(t, commitlog.ErrOffsetOutOfRange, err)
	})
	t.Run("should stop on processor errors", func(t *testing.T) {
		failure := errors.New("failure")
		calls := 0
		err := NewConsumer(WithMaxBatchSize(5), WithPerformanceLogging(zap.NewNop())).Consume(context.Background(), clog, func(ctx context.Context, batch Batch) error {
			calls++
			return failure
		})
		require.Equal(t, failure, err)
		require.Equal(t, 1, calls)
	})
}

func TestConsumer_Follow(t *testing.T) {
	clog := openLog(t, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	received := make(chan Batch)
	done := make(chan error)
	go func() {
		done <- NewConsumer(WithEOFBehaviour(EOFBehaviourPoll), WithName("test")).Consume(ctx, clog, func(ctx context.Context, batch Batch) error {
			received <- batch
			return nil
		})
	}()
	batch := <-received
	require.Equal(t, 2, len(batch.Entries))

	_, err := clog.WriteEntries(0, [][]byte{[]byte("late")})
	require.NoError(t, err)
	batch = <-received
	require.Equal(t, uint64(2), batch.FirstOffset)
	require.Equal(t, []byte("late"), batch.Entries[0].Payload())

	cancel()
	select {
	case err := <-done:
		require.Equal(t, context.Canceled, err)
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}
}

func TestConsumer_Cancel(t *testing.T) {
	clog := openLog(t, 10)
	for i := 0; i < 20; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := NewConsumer(WithMaxBatchSize(1), WithEOFBehaviour(EOFBehaviourPoll)).Consume(ctx, clog, func(ctx context.Context, batch Batch) error {
			calls++
			if calls == 2 {
				cancel()
			}
			return nil
		})
		cancel()
		require.Equal(t, context.Canceled, err)
		require.Equal(t, 2, calls)
	}
}

func TestLateness(t *testing.T) {
	start := time.Unix(0, 1000)
	require.Equal(t, time.Duration(400), lateness(start, 600))
	require.Equal(t, time.Duration(-500), lateness(start, 1500))
	require.Equal(t, time.Duration(1000), lateness(start, 0))
}

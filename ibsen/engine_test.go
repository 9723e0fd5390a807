package ibsen

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/vx-labs/ibsen/stream"
	"google.golang.org/grpc/codes"
)

func newEngine(t *testing.T, config Config) *Engine {
	if config.DataDir == "" {
		config.DataDir = t.TempDir()
	}
	engine, err := NewEngine(context.Background(), config)
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

type readResult struct {
	payloads [][]byte
	offsets  []uint64
	chunks   int
}

func readTopic(ctx context.Context, engine *Engine, topic string, opts ReadOptions) (readResult, error) {
	out := readResult{}
	err := engine.Read(ctx, topic, opts, func(ctx context.Context, batch stream.Batch) error {
		out.chunks++
		for _, entry := range batch.Entries {
			out.payloads = append(out.payloads, entry.Payload())
			out.offsets = append(out.offsets, entry.Offset())
		}
		return nil
	})
	return out, err
}

func TestEngine_WriteRead(t *testing.T) {
	engine := newEngine(t, Config{SegmentMaxEntries: 2})
	ctx := context.Background()

	t.Run("should list no topic on an empty data directory", func(t *testing.T) {
		require.Empty(t, engine.ListTopics())
	})
	t.Run("should write then read entries", func(t *testing.T) {
		n, err := engine.Write(ctx, "test", [][]byte{[]byte("entry1"), []byte("entry2"), []byte("entry3")})
		require.NoError(t, err)
		require.Equal(t, 3, n)
		out, err := readTopic(ctx, engine, "test", ReadOptions{Offset: 0, BatchSize: 1000})
		require.NoError(t, err)
		require.Equal(t, [][]byte{[]byte("entry1"), []byte("entry2"), []byte("entry3")}, out.payloads)
		require.Equal(t, []uint64{0, 1, 2}, out.offsets)
		require.Equal(t, []string{"test"}, engine.ListTopics())
	})
	t.Run("should assign gap-free offsets across batches", func(t *testing.T) {
		n, err := engine.Write(ctx, "test", [][]byte{[]byte("entry4"), []byte(""), []byte("entry6")})
		require.NoError(t, err)
		require.Equal(t, 3, n)
		out, err := readTopic(ctx, engine, "test", ReadOptions{Offset: 2, BatchSize: 2})
		require.NoError(t, err)
		require.Equal(t, []uint64{2, 3, 4, 5}, out.offsets)
		require.Equal(t, 2, out.chunks)
		require.Equal(t, []byte{}, out.payloads[2])
	})
	t.Run("should return an empty sequence when reading at the next offset", func(t *testing.T) {
		out, err := readTopic(ctx, engine, "test", ReadOptions{Offset: 6})
		require.NoError(t, err)
		require.Equal(t, 0, out.chunks)
	})
	t.Run("should reproduce the same entries when reading again", func(t *testing.T) {
		first, err := readTopic(ctx, engine, "test", ReadOptions{Offset: 1, BatchSize: 1})
		require.NoError(t, err)
		second, err := readTopic(ctx, engine, "test", ReadOptions{Offset: 1, BatchSize: 3})
		require.NoError(t, err)
		require.Equal(t, first.payloads, second.payloads)
		require.Equal(t, first.offsets, second.offsets)
	})
	t.Run("should not create a topic on empty batches", func(t *testing.T) {
		n, err := engine.Write(ctx, "empty", nil)
		require.NoError(t, err)
		require.Equal(t, 0, n)
		require.Equal(t, []string{"test"}, engine.ListTopics())
	})
	t.Run("should report topic status", func(t *testing.T) {
		status := engine.Status()
		require.Equal(t, 1, len(status))
		require.Equal(t, "test", status[0].Topic)
		require.Equal(t, uint64(6), status[0].NextOffset)
		require.Equal(t, uint64(3), status[0].SegmentCount)
	})
}

func TestEngine_Errors(t *testing.T) {
	engine := newEngine(t, Config{TopicMaxBytes: 100})
	ctx := context.Background()
	noop := func(context.Context, stream.Batch) error { return nil }

	_, err := engine.Write(ctx, "quota", [][]byte{[]byte("a")})
	require.NoError(t, err)

	t.Run("should refuse invalid topic names", func(t *testing.T) {
		for _, name := range []string{"", ".hidden", "a/b", "a\\b", string(make([]byte, 256))} {
			_, err := engine.Write(ctx, name, [][]byte{[]byte("a")})
			require.Equal(t, ErrInvalidTopic, errors.Cause(err), name)
			require.Equal(t, ErrInvalidTopic, errors.Cause(engine.Read(ctx, name, ReadOptions{}, noop)), name)
		}
	})
	t.Run("should refuse negative offsets", func(t *testing.T) {
		require.Equal(t, ErrInvalidOffset, errors.Cause(engine.Read(ctx, "quota", ReadOptions{Offset: -1}, noop)))
	})
	t.Run("should refuse offsets past the next offset", func(t *testing.T) {
		require.Equal(t, ErrOffsetOutOfRange, errors.Cause(engine.Read(ctx, "quota", ReadOptions{Offset: 2}, noop)))
	})
	t.Run("should refuse reading unknown topics without creating them", func(t *testing.T) {
		require.Equal(t, ErrUnknownTopic, errors.Cause(engine.Read(ctx, "unknown", ReadOptions{}, noop)))
		require.Equal(t, []string{"quota"}, engine.ListTopics())
	})
	t.Run("should leave the topic unchanged when the quota is exceeded", func(t *testing.T) {
		_, err := engine.Write(ctx, "quota", [][]byte{[]byte("b"), make([]byte, 64)})
		require.Equal(t, ErrStorageFull, errors.Cause(err))
		out, err := readTopic(ctx, engine, "quota", ReadOptions{})
		require.NoError(t, err)
		require.Equal(t, [][]byte{[]byte("a")}, out.payloads)
	})
	t.Run("should map processor cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := engine.Read(cancelled, "quota", ReadOptions{Follow: true}, noop)
		require.Equal(t, ErrCancelled, errors.Cause(err))
	})
}

func TestEngine_ConcurrentWriters(t *testing.T) {
	engine := newEngine(t, Config{SegmentMaxEntries: 10})
	ctx := context.Background()
	wg := sync.WaitGroup{}
	for w := 0; w < 10; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				topic := fmt.Sprintf("topic-%d", i%3)
				engine.Write(ctx, topic, [][]byte{[]byte(fmt.Sprintf("%d-%d", w, i))})
			}
		}(w)
	}
	wg.Wait()
	require.Equal(t, []string{"topic-0", "topic-1", "topic-2"}, engine.ListTopics())
	total := 0
	for _, topic := range engine.ListTopics() {
		out, err := readTopic(ctx, engine, topic, ReadOptions{})
		require.NoError(t, err)
		for i, offset := range out.offsets {
			require.Equal(t, uint64(i), offset)
		}
		total += len(out.offsets)
	}
	require.Equal(t, 100, total)
}

func TestEngine_Follow(t *testing.T) {
	engine := newEngine(t, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, err := engine.Write(ctx, "follow", [][]byte{[]byte("entry1")})
	require.NoError(t, err)

	received := make(chan []byte, 10)
	done := make(chan error)
	go func() {
		done <- engine.Read(ctx, "follow", ReadOptions{Follow: true}, func(ctx context.Context, batch stream.Batch) error {
			for _, entry := range batch.Entries {
				received <- entry.Payload()
			}
			return nil
		})
	}()
	require.Equal(t, []byte("entry1"), <-received)
	_, err = engine.Write(ctx, "follow", [][]byte{[]byte("entry2")})
	require.NoError(t, err)
	require.Equal(t, []byte("entry2"), <-received)
	cancel()
	select {
	case err := <-done:
		require.Equal(t, ErrCancelled, errors.Cause(err))
	case <-time.After(5 * time.Second):
		t.Fatal("follower did not stop")
	}
	_, err = engine.Write(context.Background(), "follow", [][]byte{[]byte("entry3")})
	require.NoError(t, err)
	require.Equal(t, 0, len(received))
}

func TestEngine_Close(t *testing.T) {
	datadir := t.TempDir()
	engine, err := NewEngine(context.Background(), Config{DataDir: datadir})
	require.NoError(t, err)
	_, err = engine.Write(context.Background(), "persisted", [][]byte{[]byte("a"), []byte("b")})
	require.NoError(t, err)

	done := make(chan error)
	go func() {
		done <- engine.Read(context.Background(), "persisted", ReadOptions{Follow: true}, func(context.Context, stream.Batch) error { return nil })
	}()
	t.Run("should stop followers when closing", func(t *testing.T) {
		time.Sleep(50 * time.Millisecond)
		require.NoError(t, engine.Close())
		err := <-done
		require.Equal(t, ErrClosed, errors.Cause(err))
		require.Equal(t, codes.Unavailable, Code(err))
		_, err = engine.Write(context.Background(), "persisted", [][]byte{[]byte("c")})
		require.Equal(t, ErrClosed, errors.Cause(err))
	})
	t.Run("should reopen existing topics", func(t *testing.T) {
		engine, err := NewEngine(context.Background(), Config{DataDir: datadir})
		require.NoError(t, err)
		defer engine.Close()
		require.Equal(t, []string{"persisted"}, engine.ListTopics())
		n, err := engine.Write(context.Background(), "persisted", [][]byte{[]byte("c")})
		require.NoError(t, err)
		require.Equal(t, 1, n)
		out, err := readTopic(context.Background(), engine, "persisted", ReadOptions{})
		require.NoError(t, err)
		require.Equal(t, []uint64{0, 1, 2}, out.offsets)
	})
}

func TestEngine_ReadBatchSize(t *testing.T) {
	engine := newEngine(t, Config{})
	ctx := context.Background()
	_, err := engine.Write(ctx, "test", [][]byte{[]byte("entry1"), []byte("entry2"), []byte("entry3")})
	require.NoError(t, err)

	t.Run("should cap oversized batch sizes", func(t *testing.T) {
		out, err := readTopic(ctx, engine, "test", ReadOptions{BatchSize: int(^uint32(0))})
		require.NoError(t, err)
		require.Equal(t, 1, out.chunks)
		require.Equal(t, []uint64{0, 1, 2}, out.offsets)
	})
	t.Run("should use the default batch size when unset", func(t *testing.T) {
		out, err := readTopic(ctx, engine, "test", ReadOptions{BatchSize: 0})
		require.NoError(t, err)
		require.Equal(t, 1, out.chunks)
		require.Equal(t, 3, len(out.payloads))
	})
}

func TestEngine_CancelFollower(t *testing.T) {
	engine := newEngine(t, Config{})
	_, err := engine.Write(context.Background(), "test", [][]byte{[]byte("entry1"), []byte("entry2"), []byte("entry3")})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	received := []uint64{}
	err = engine.Read(ctx, "test", ReadOptions{Follow: true, BatchSize: 1}, func(ctx context.Context, batch stream.Batch) error {
		for _, entry := range batch.Entries {
			received = append(received, entry.Offset())
		}
		if len(received) == 2 {
			cancel()
		}
		return nil
	})
	require.Equal(t, ErrCancelled, errors.Cause(err))
	require.Equal(t, []uint64{0, 1}, received)
	require.Equal(t, int64(0), engine.ActiveReads())

	out, err := readTopic(context.Background(), engine, "test", ReadOptions{})
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1, 2}, out.offsets)
	require.Equal(t, [][]byte{[]byte("entry1"), []byte("entry2"), []byte("entry3")}, out.payloads)
}

func TestEngine_CancelReads(t *testing.T) {
	engine := newEngine(t, Config{})
	_, err := engine.Write(context.Background(), "test", [][]byte{[]byte("entry1")})
	require.NoError(t, err)

	started := make(chan struct{}, 1)
	done := make(chan error)
	go func() {
		done <- engine.Read(context.Background(), "test", ReadOptions{Follow: true}, func(context.Context, stream.Batch) error {
			started <- struct{}{}
			return nil
		})
	}()
	<-started
	engine.CancelReads()
	select {
	case err := <-done:
		require.Equal(t, ErrClosed, errors.Cause(err))
		require.Equal(t, codes.Unavailable, Code(err))
	case <-time.After(5 * time.Second):
		t.Fatal("follower did not stop")
	}
}

func TestEngine_CreateDrop(t *testing.T) {
	datadir := t.TempDir()
	engine := newEngine(t, Config{DataDir: datadir})
	ctx := context.Background()

	t.Run("should create an empty topic", func(t *testing.T) {
		created, err := engine.Create(ctx, "test")
		require.NoError(t, err)
		require.True(t, created)
		created, err = engine.Create(ctx, "test")
		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, []string{"test"}, engine.ListTopics())
		out, err := readTopic(ctx, engine, "test", ReadOptions{})
		require.NoError(t, err)
		require.Empty(t, out.payloads)
	})
	t.Run("should refuse invalid topic names", func(t *testing.T) {
		_, err := engine.Create(ctx, ".hidden")
		require.Equal(t, ErrInvalidTopic, errors.Cause(err))
		_, err = engine.Drop(ctx, "a/b")
		require.Equal(t, ErrInvalidTopic, errors.Cause(err))
	})
	t.Run("should stop followers and remove data when dropping", func(t *testing.T) {
		_, err := engine.Write(ctx, "test", [][]byte{[]byte("entry1")})
		require.NoError(t, err)
		started := make(chan struct{}, 1)
		done := make(chan error)
		go func() {
			done <- engine.Read(ctx, "test", ReadOptions{Follow: true}, func(context.Context, stream.Batch) error {
				started <- struct{}{}
				return nil
			})
		}()
		<-started
		dropped, err := engine.Drop(ctx, "test")
		require.NoError(t, err)
		require.True(t, dropped)
		select {
		case err := <-done:
			require.Equal(t, ErrUnknownTopic, errors.Cause(err))
		case <-time.After(5 * time.Second):
			t.Fatal("follower did not stop")
		}
		require.Empty(t, engine.ListTopics())
		_, err = os.Stat(datadir + "/test")
		require.True(t, os.IsNotExist(err))
		require.Equal(t, ErrUnknownTopic, errors.Cause(engine.Read(ctx, "test", ReadOptions{}, func(context.Context, stream.Batch) error { return nil })))
	})
	t.Run("should report unknown topics when dropping", func(t *testing.T) {
		dropped, err := engine.Drop(ctx, "test")
		require.NoError(t, err)
		require.False(t, dropped)
	})
	t.Run("should recreate a dropped topic from offset 0", func(t *testing.T) {
		_, err := engine.Write(ctx, "test", [][]byte{[]byte("entry2")})
		require.NoError(t, err)
		out, err := readTopic(ctx, engine, "test", ReadOptions{})
		require.NoError(t, err)
		require.Equal(t, []uint64{0}, out.offsets)
		require.Equal(t, [][]byte{[]byte("entry2")}, out.payloads)
	})
}

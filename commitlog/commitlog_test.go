package commitlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func readAll(t testing.TB, clog CommitLog, from uint64) []Entry {
	r := clog.Reader()
	defer r.Close()
	_, err := r.Seek(int64(from), io.SeekStart)
	require.NoError(t, err)
	out := []Entry{}
	for {
		entries, err := r.ReadEntries(7, clog.Offset())
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, entries...)
	}
}

func TestCommitLog(t *testing.T) {
	datadir := t.TempDir()
	clog, err := Open(datadir, Options{SegmentMaxEntries: 10})
	require.NoError(t, err)
	defer func() { clog.Close() }()
	value := []byte("test")
	t.Run("should allow reading from empty log", func(t *testing.T) {
		r := clog.Reader()
		entries, err := r.ReadEntries(10, clog.Offset())
		require.Equal(t, io.EOF, err)
		require.Empty(t, entries)
	})
	t.Run("should not create anything on empty batches", func(t *testing.T) {
		n, err := clog.WriteEntries(0, nil)
		require.NoError(t, err)
		require.Equal(t, uint64(0), n)
		require.Equal(t, uint64(0), clog.Offset())
	})

	for i := 0; i < 50; i++ {
		n, err := clog.WriteEntries(uint64(i), [][]byte{value})
		require.NoError(t, err)
		require.Equal(t, uint64(i), n)
	}
	l := clog.(*commitLog)
	require.Equal(t, 5, len(l.segments))
	t.Run("should close then reopen without error", func(t *testing.T) {
		require.NoError(t, clog.Close())
		clog, err = Open(datadir, Options{SegmentMaxEntries: 10})
		require.NoError(t, err)
		require.Equal(t, uint64(50), clog.Offset())
		require.Equal(t, uint64(5), clog.GetStatistics().SegmentCount)
		require.Equal(t, uint64(50*(EntryHeaderSize+len(value))), clog.GetStatistics().StoredBytes)
	})
	t.Run("should allow looking up for offset", func(t *testing.T) {
		segments := clog.(*commitLog).snapshot()
		require.Equal(t, 2, lookupOffset(segments, 27))
		require.Equal(t, 0, lookupOffset(segments, 9))
		require.Equal(t, 1, lookupOffset(segments, 10))
	})
	t.Run("should allow reading from log", func(t *testing.T) {
		entries := readAll(t, clog, 0)
		require.Equal(t, 50, len(entries))
		for i, e := range entries {
			require.Equal(t, uint64(i), e.Offset(), fmt.Sprintf("index: %d", i))
			require.Equal(t, uint64(i), e.Timestamp())
			require.Equal(t, value, e.Payload())
		}
	})
	t.Run("should rotate segments inside a single batch", func(t *testing.T) {
		batch := make([][]byte, 25)
		for i := range batch {
			batch[i] = []byte(fmt.Sprintf("batch-%d", i))
		}
		n, err := clog.WriteEntries(100, batch)
		require.NoError(t, err)
		require.Equal(t, uint64(50), n)
		require.Equal(t, uint64(75), clog.Offset())
		require.Equal(t, uint64(8), clog.GetStatistics().SegmentCount)
		entries := readAll(t, clog, 48)
		require.Equal(t, 27, len(entries))
		require.Equal(t, []byte("batch-24"), entries[26].Payload())
		require.Equal(t, uint64(74), entries[26].Offset())
	})
	t.Run("should allow decoder to be plugged in", func(t *testing.T) {
		fd, err := os.Open(segmentName(datadir, 10))
		require.NoError(t, err)
		defer fd.Close()
		dec := NewDecoder(fd)
		entry, err := dec.Decode()
		require.NoError(t, err)
		require.Equal(t, []byte("test"), entry.Payload())
		require.Equal(t, uint64(10), entry.Offset())
		require.True(t, entry.IsValid())
		require.Equal(t, uint64(EntryHeaderSize+4), dec.Position())
	})
}

func TestCommitLog_Rotation(t *testing.T) {
	t.Run("should rotate on byte threshold", func(t *testing.T) {
		clog, err := Open(t.TempDir(), Options{SegmentMaxEntries: 1000, SegmentMaxBytes: 100})
		require.NoError(t, err)
		defer clog.Close()
		value := make([]byte, 22)
		// each entry uses 50 bytes: two entries per segment.
		_, err = clog.WriteEntries(0, [][]byte{value, value, value, value, value})
		require.NoError(t, err)
		require.Equal(t, uint64(3), clog.GetStatistics().SegmentCount)
		require.Equal(t, 5, len(readAll(t, clog, 0)))
	})
	t.Run("should accept entries bigger than the byte threshold", func(t *testing.T) {
		clog, err := Open(t.TempDir(), Options{SegmentMaxBytes: 10})
		require.NoError(t, err)
		defer clog.Close()
		_, err = clog.WriteEntries(0, [][]byte{make([]byte, 64), make([]byte, 64)})
		require.NoError(t, err)
		require.Equal(t, uint64(2), clog.GetStatistics().SegmentCount)
	})
}

func TestCommitLog_Atomicity(t *testing.T) {
	datadir := t.TempDir()
	value := []byte("test")
	entrySize := uint64(EntryHeaderSize + len(value))
	clog, err := Open(datadir, Options{SegmentMaxEntries: 4, MaxBytes: 6 * entrySize})
	require.NoError(t, err)
	defer clog.Close()

	_, err = clog.WriteEntries(0, [][]byte{value, value, value})
	require.NoError(t, err)
	t.Run("should refuse a batch exceeding the quota", func(t *testing.T) {
		_, err = clog.WriteEntries(0, [][]byte{value, value, value, value})
		require.Equal(t, ErrStorageFull, errors.Cause(err))
		require.Equal(t, uint64(3), clog.Offset())
		require.Equal(t, uint64(1), clog.GetStatistics().SegmentCount)
		require.Equal(t, 3, len(readAll(t, clog, 0)))
	})
	t.Run("should refuse entries that are too big", func(t *testing.T) {
		_, err = clog.WriteEntries(0, [][]byte{value, make([]byte, MaxEntrySize+1)})
		require.Equal(t, ErrEntryTooBig, err)
		require.Equal(t, uint64(3), clog.Offset())
	})
	t.Run("should rollback created segments when a write fails", func(t *testing.T) {
		l := clog.(*commitLog)
		// a stale segment file makes the rotation fail.
		stale, err := os.Create(segmentName(datadir, 4))
		require.NoError(t, err)
		require.NoError(t, stale.Close())
		_, err = clog.WriteEntries(0, [][]byte{value, value})
		require.Error(t, err)
		require.Equal(t, uint64(3), clog.Offset())
		require.Equal(t, 1, len(l.snapshot()))
		info, err := os.Stat(segmentName(datadir, 0))
		require.NoError(t, err)
		require.Equal(t, int64(3*entrySize), info.Size())
		require.NoError(t, os.Remove(segmentName(datadir, 4)))

		n, err := clog.WriteEntries(0, [][]byte{value, value})
		require.NoError(t, err)
		require.Equal(t, uint64(3), n)
		require.Equal(t, 5, len(readAll(t, clog, 0)))
	})
}

func TestCommitLog_Recovery(t *testing.T) {
	datadir := t.TempDir()
	value := []byte("test")
	clog, err := Open(datadir, Options{SegmentMaxEntries: 3})
	require.NoError(t, err)
	_, err = clog.WriteEntries(0, [][]byte{value, value, value, value, value})
	require.NoError(t, err)
	require.NoError(t, clog.Close())

	t.Run("should truncate a torn tail of the active segment", func(t *testing.T) {
		fd, err := os.OpenFile(segmentName(datadir, 3), os.O_RDWR, 0650)
		require.NoError(t, err)
		require.NoError(t, fd.Truncate(int64(EntryHeaderSize+len(value)+5)))
		require.NoError(t, fd.Close())

		clog, err := Open(datadir, Options{SegmentMaxEntries: 3})
		require.NoError(t, err)
		defer clog.Close()
		require.Equal(t, uint64(4), clog.Offset())
		n, err := clog.WriteEntries(0, [][]byte{[]byte("after")})
		require.NoError(t, err)
		require.Equal(t, uint64(4), n)
		entries := readAll(t, clog, 3)
		require.Equal(t, 2, len(entries))
		require.Equal(t, []byte("after"), entries[1].Payload())
	})
	t.Run("should refuse to open a log with a missing segment", func(t *testing.T) {
		require.NoError(t, os.Rename(segmentName(datadir, 3), segmentName(datadir, 4)))
		_, err := Open(datadir, Options{SegmentMaxEntries: 3})
		require.Equal(t, ErrCorruptedLog, errors.Cause(err))
	})
}

func TestCommitLog_Notify(t *testing.T) {
	clog, err := Open(t.TempDir(), Options{})
	require.NoError(t, err)
	defer clog.Close()
	ch := clog.Notify()
	select {
	case <-ch:
		t.Fatal("notification channel closed before any write")
	default:
	}
	_, err = clog.WriteEntries(0, [][]byte{[]byte("a")})
	require.NoError(t, err)
	<-ch
	require.NotEqual(t, ch, clog.Notify())
}

func TestCommitLog_ConcurrentWriters(t *testing.T) {
	clog, err := Open(t.TempDir(), Options{SegmentMaxEntries: 16})
	require.NoError(t, err)
	defer clog.Close()
	wg := sync.WaitGroup{}
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				_, err := clog.WriteEntries(0, [][]byte{[]byte(fmt.Sprintf("%d-%d", w, i)), []byte("pair")})
				require.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()
	entries := readAll(t, clog, 0)
	require.Equal(t, 320, len(entries))
	for i, e := range entries {
		require.Equal(t, uint64(i), e.Offset())
		if i%2 == 1 {
			require.Equal(t, []byte("pair"), e.Payload())
		}
	}
}

func BenchmarkLog(b *testing.B) {
	s, err := Open(b.TempDir(), Options{SegmentMaxEntries: 500})
	require.NoError(b, err)
	defer s.Close()
	value := [][]byte{[]byte("test")}
	b.Run("write", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, err = s.WriteEntries(0, value)
			if err != nil {
				b.Fatalf("log write failed: %v", err)
			}
		}
	})
}

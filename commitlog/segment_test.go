package commitlog

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSegment(t testing.TB, s *segment, values ...[]byte) {
	for _, value := range values {
		require.NoError(t, s.append(1, value))
	}
	s.commit()
}

func TestSegment(t *testing.T) {
	datadir := t.TempDir()
	s, err := createSegment(datadir, 0, 200)
	require.NoError(t, err)
	value := []byte("test")
	buf := make([]byte, EntryHeaderSize)

	t.Run("should not allow creating an existing segment", func(t *testing.T) {
		_, err := createSegment(datadir, 0, 200)
		require.Error(t, err)
	})
	t.Run("should hide pending entries from readers", func(t *testing.T) {
		require.NoError(t, s.append(2, value))
		_, err := s.ReadEntryAt(buf, 0)
		require.Equal(t, io.EOF, err)
		s.commit()
		e, err := s.ReadEntryAt(buf, 0)
		require.NoError(t, err)
		require.Equal(t, value, e.Payload())
		require.Equal(t, uint64(2), e.Timestamp())
		require.Equal(t, uint64(0), e.Offset())
	})
	t.Run("should discard pending entries on rollback", func(t *testing.T) {
		require.NoError(t, s.append(2, value))
		require.NoError(t, s.rollback())
		require.Equal(t, uint64(1), s.Count())
		info, err := os.Stat(s.FilePath())
		require.NoError(t, err)
		require.Equal(t, int64(EntryHeaderSize+len(value)), info.Size())
	})
	t.Run("should close then reopen without error", func(t *testing.T) {
		require.NoError(t, s.Close())
		s, err = openSegment(datadir, 0, 200, true)
		require.NoError(t, err)
		require.Equal(t, uint64(1), s.Count())
		require.Equal(t, uint64(EntryHeaderSize+len(value)), s.Size())
	})
	t.Run("should report itself full once its capacity is reached", func(t *testing.T) {
		full, err := createSegment(datadir, 1000, 2)
		require.NoError(t, err)
		defer full.Delete()
		writeSegment(t, full, value, value)
		require.True(t, full.full(0))
		require.Equal(t, ErrSegmentFull, full.append(1, value))
	})
	t.Run("should report itself full once its byte threshold is reached", func(t *testing.T) {
		require.False(t, s.full(1024))
		require.True(t, s.full(uint64(EntryHeaderSize)))
	})
	t.Run("should truncate a torn tail when opened for writing", func(t *testing.T) {
		writeSegment(t, s, value, value)
		require.NoError(t, s.Close())
		fd, err := os.OpenFile(segmentName(datadir, 0), os.O_RDWR, 0650)
		require.NoError(t, err)
		info, err := fd.Stat()
		require.NoError(t, err)
		require.NoError(t, fd.Truncate(info.Size()-2))
		require.NoError(t, fd.Close())

		_, err = openSegment(datadir, 0, 200, false)
		require.Equal(t, ErrSegmentCorrupt, err)

		s, err = openSegment(datadir, 0, 200, true)
		require.NoError(t, err)
		require.Equal(t, uint64(2), s.Count())
		require.Equal(t, uint64(2*(EntryHeaderSize+len(value))), s.Size())
		e, err := s.ReadEntryAt(buf, 1)
		require.NoError(t, err)
		require.Equal(t, value, e.Payload())
	})
	t.Run("should rebuild a missing index", func(t *testing.T) {
		require.NoError(t, s.Close())
		require.NoError(t, os.Remove(indexName(datadir, 0)))
		s, err = openSegment(datadir, 0, 200, true)
		require.NoError(t, err)
		require.Equal(t, uint64(2), s.Count())
		e, err := s.ReadEntryAt(buf, 1)
		require.NoError(t, err)
		require.Equal(t, uint64(1), e.Offset())
	})
	require.NoError(t, s.Delete())
}

func BenchmarkSegment(b *testing.B) {
	datadir := b.TempDir()
	s, err := createSegment(datadir, 0, 20000000)
	require.NoError(b, err)
	defer s.Delete()
	value := []byte("test")
	b.Run("write", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			err = s.append(0, value)
			if err != nil {
				b.Fatalf("segment write failed: %v", err)
			}
			s.commit()
		}
	})
	b.Run("open", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			err := s.Close()
			require.NoError(b, err)
			s, err = openSegment(datadir, 0, 20000000, true)
			require.NoError(b, err)
		}
	})
}

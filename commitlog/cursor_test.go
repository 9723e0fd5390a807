package commitlog

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	clog, err := Open(t.TempDir(), Options{SegmentMaxEntries: 10})
	require.NoError(t, err)
	defer clog.Close()
	value := []byte("test")

	for i := 0; i < 5; i++ {
		_, err := clog.WriteEntries(uint64(i), [][]byte{value, value, value, value, value, value, value, value, value, value})
		require.NoError(t, err)
	}

	t.Run("should read bounded chunks across segments", func(t *testing.T) {
		c := clog.Reader()
		defer c.Close()
		_, err := c.Seek(8, io.SeekStart)
		require.NoError(t, err)
		entries, err := c.ReadEntries(5, clog.Offset())
		require.NoError(t, err)
		require.Equal(t, 5, len(entries))
		require.Equal(t, uint64(8), entries[0].Offset())
		require.Equal(t, uint64(12), entries[4].Offset())
		require.Equal(t, uint64(13), c.Offset())
	})
	t.Run("should stop at the until offset", func(t *testing.T) {
		c := clog.Reader()
		defer c.Close()
		entries, err := c.ReadEntries(100, 3)
		require.NoError(t, err)
		require.Equal(t, 3, len(entries))
		_, err = c.ReadEntries(100, 3)
		require.Equal(t, io.EOF, err)
	})
	t.Run("should not size chunks after the requested maximum", func(t *testing.T) {
		c := clog.Reader()
		defer c.Close()
		_, err := c.Seek(48, io.SeekStart)
		require.NoError(t, err)
		entries, err := c.ReadEntries(int(^uint32(0)), ^uint64(0))
		require.NoError(t, err)
		require.Equal(t, 2, len(entries))
		require.Equal(t, 2, cap(entries))
	})
	t.Run("should allow seeking to the end of the log", func(t *testing.T) {
		c := clog.Reader()
		defer c.Close()
		n, err := c.Seek(0, io.SeekEnd)
		require.NoError(t, err)
		require.Equal(t, int64(50), n)
		_, err = c.ReadEntries(100, clog.Offset())
		require.Equal(t, io.EOF, err)
	})
	t.Run("should refuse seeking past the end of the log", func(t *testing.T) {
		c := clog.Reader()
		defer c.Close()
		_, err := c.Seek(51, io.SeekStart)
		require.Equal(t, ErrOffsetOutOfRange, err)
	})
	t.Run("should refuse reading once closed", func(t *testing.T) {
		c := clog.Reader()
		require.NoError(t, c.Close())
		_, err := c.ReadEntries(1, clog.Offset())
		require.Equal(t, ErrLogClosed, err)
	})
}

package commitlog

import (
	"io"
	"sync"

	"github.com/pkg/errors"
)

// Cursor reads a log sequentially, entry by entry.
type Cursor interface {
	io.Seeker
	io.Closer
	// ReadEntries returns at most max entries, stopping before the until offset.
	// It returns io.EOF when no entry could be read.
	ReadEntries(max int, until uint64) ([]Entry, error)
	// Offset returns the offset of the next entry the cursor will read.
	Offset() uint64
}

type cursor struct {
	mtx       sync.Mutex
	offset    uint64
	closed    bool
	headerBuf []byte
	log       *commitLog
}

func (c *cursor) Close() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.closed = true
	return nil
}

func (c *cursor) Offset() uint64 {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.offset
}

func (c *cursor) Seek(offset int64, whence int) (int64, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = int64(c.offset) + offset
	case io.SeekEnd:
		target = int64(c.log.Offset()) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if target < 0 {
		return 0, errors.New("negative offset")
	}
	if uint64(target) > c.log.Offset() {
		return 0, ErrOffsetOutOfRange
	}
	c.offset = uint64(target)
	return target, nil
}

func (c *cursor) ReadEntries(max int, until uint64) ([]Entry, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if c.closed {
		return nil, ErrLogClosed
	}
	if max <= 0 || c.offset >= until {
		return nil, io.EOF
	}
	segments := c.log.snapshot()
	idx := lookupOffset(segments, c.offset)
	if idx < 0 {
		return nil, ErrOffsetOutOfRange
	}
	if next := c.log.Offset(); until > next {
		until = next
	}
	if remaining := until - c.offset; remaining < uint64(max) {
		max = int(remaining)
	}
	out := make([]Entry, 0, max)
	for len(out) < max && c.offset < until {
		e, err := segments[idx].ReadEntryAt(c.headerBuf, c.offset)
		if err == io.EOF {
			if idx+1 < len(segments) {
				idx++
				continue
			}
			break
		}
		if err != nil {
			if len(out) > 0 {
				return out, nil
			}
			return nil, err
		}
		out = append(out, e)
		c.offset++
	}
	if len(out) == 0 {
		return nil, io.EOF
	}
	return out, nil
}

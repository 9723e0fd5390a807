package commitlog

import (
	"fmt"
	"io"
	"os"
	"path"
	"sync/atomic"

	"github.com/pkg/errors"
)

var (
	ErrSegmentAlreadyExists = errors.New("segment already exists")
	ErrSegmentDoesNotExist  = errors.New("segment does not exist")
	ErrSegmentFull          = errors.New("segment is full")
	ErrSegmentCorrupt       = errors.New("segment corrupted")
	ErrCorruptedEntry       = errors.New("entry corrupted")
)

// segment stores a contiguous range of entries starting at baseOffset.
// count and size are the committed entry count and byte size, published to readers atomically.
// pendingCount and pendingSize are only touched by the log writer, under the log write mutex.
type segment struct {
	baseOffset   uint64
	count        uint64
	size         uint64
	pendingCount uint64
	pendingSize  uint64
	fd           *os.File
	index        *index
	path         string
}

func segmentName(datadir string, id uint64) string {
	return path.Join(datadir, fmt.Sprintf("%d.log", id))
}

func (s *segment) Close() error {
	err := s.index.Close()
	if err != nil {
		return err
	}
	return s.fd.Close()
}

func (s *segment) Delete() error {
	s.Close()
	err := os.Remove(s.index.FilePath())
	if err != nil {
		return err
	}
	return os.Remove(s.FilePath())
}

func (s *segment) FilePath() string {
	return s.path
}
func (s *segment) BaseOffset() uint64 {
	return s.baseOffset
}

// Count returns the number of committed entries.
func (s *segment) Count() uint64 {
	return atomic.LoadUint64(&s.count)
}

// Size returns the number of committed bytes.
func (s *segment) Size() uint64 {
	return atomic.LoadUint64(&s.size)
}

// NextOffset returns the log offset following the last committed entry.
func (s *segment) NextOffset() uint64 {
	return s.baseOffset + s.Count()
}

func (s *segment) Capacity() uint64 {
	return s.index.capacity
}

func createSegment(datadir string, id uint64, capacity uint64) (*segment, error) {
	filename := segmentName(datadir, id)
	if fileExists(filename) {
		return nil, ErrSegmentAlreadyExists
	}
	idx, err := createIndex(datadir, id, capacity)
	if err != nil {
		return nil, err
	}

	fd, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0650)
	if err != nil {
		idx.Close()
		os.Remove(idx.FilePath())
		return nil, err
	}
	s := &segment{
		path:       filename,
		baseOffset: id,
		index:      idx,
		fd:         fd,
	}
	return s, nil
}

// openSegment opens an existing segment and checks its content.
// A writable segment is the active one: its torn or corrupted tail is truncated, and its index rebuilt.
// A read-only segment is sealed and must be intact.
func openSegment(datadir string, id uint64, capacity uint64, write bool) (*segment, error) {
	filename := segmentName(datadir, id)
	if !fileExists(filename) {
		return nil, ErrSegmentDoesNotExist
	}
	perm := os.O_RDONLY
	if write {
		perm = os.O_RDWR
	}
	fd, err := os.OpenFile(filename, perm, 0650)
	if err != nil {
		return nil, err
	}
	positions, end, err := scanSegment(fd, id, write)
	if err != nil {
		fd.Close()
		return nil, err
	}
	info, err := fd.Stat()
	if err != nil {
		fd.Close()
		return nil, err
	}
	if end != uint64(info.Size()) {
		if !write {
			fd.Close()
			return nil, ErrSegmentCorrupt
		}
		if err := fd.Truncate(int64(end)); err != nil {
			fd.Close()
			return nil, errors.Wrap(err, "failed to truncate corrupted segment tail")
		}
	}
	idx, err := openIndex(datadir, id, write)
	if write {
		if err != nil || idx.capacity < uint64(len(positions)) {
			if idx != nil {
				idx.Close()
			}
			os.Remove(indexName(datadir, id))
			if uint64(len(positions)) > capacity {
				capacity = uint64(len(positions))
			}
			idx, err = createIndex(datadir, id, capacity)
		}
		if err != nil {
			fd.Close()
			return nil, err
		}
		for offset, position := range positions {
			if err := idx.writePosition(uint64(offset), position); err != nil {
				idx.Close()
				fd.Close()
				return nil, err
			}
		}
	} else {
		if err != nil {
			fd.Close()
			return nil, err
		}
		for offset, position := range positions {
			stored, err := idx.readPosition(uint64(offset))
			if err != nil || stored != position {
				idx.Close()
				fd.Close()
				return nil, ErrIndexCorrupt
			}
		}
	}
	count := uint64(len(positions))
	return &segment{
		path:         filename,
		baseOffset:   id,
		count:        count,
		size:         end,
		pendingCount: count,
		pendingSize:  end,
		index:        idx,
		fd:           fd,
	}, nil
}

// scanSegment walks the segment headers and returns the position of every entry and the position
// following the last valid one.
// When tolerant is true, scanning stops at the first invalid entry instead of failing, and payload
// checksums are verified.
func scanSegment(r io.ReaderAt, baseOffset uint64, tolerant bool) ([]uint64, uint64, error) {
	positions := make([]uint64, 0)
	buf := make([]byte, EntryHeaderSize)
	var position uint64
	for {
		reader := &readerAt{pos: position, r: r}
		var offset, size uint64
		var err error
		if tolerant {
			var e Entry
			e, err = readEntry(reader, buf)
			if err == nil && !e.IsValid() {
				err = ErrCorruptedEntry
			}
			if err == nil {
				offset, size = e.Offset(), e.Size()
			}
		} else {
			_, err = io.ReadFull(reader, buf)
			if err == nil {
				var h header
				h, err = parseHeader(buf)
				offset, size = h.offset, h.payloadSize
			}
		}
		if err == io.EOF {
			return positions, position, nil
		}
		if err == nil && offset != baseOffset+uint64(len(positions)) {
			err = ErrSegmentCorrupt
		}
		if err != nil {
			if tolerant {
				return positions, position, nil
			}
			return nil, 0, ErrSegmentCorrupt
		}
		positions = append(positions, position)
		position += uint64(EntryHeaderSize) + size
	}
}

// ReadEntryAt reads the entry stored at the given log offset.
// It returns io.EOF when the offset is not committed yet.
func (s *segment) ReadEntryAt(buf []byte, logOffset uint64) (Entry, error) {
	if logOffset < s.baseOffset {
		return nil, ErrInvalidOffsetTooBig
	}
	offset := logOffset - s.baseOffset
	if offset >= s.Count() {
		return nil, io.EOF
	}
	position, err := s.index.readPosition(offset)
	if err != nil {
		return nil, err
	}
	e, err := readEntry(&readerAt{pos: position, r: s.fd}, buf)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read entry %d", logOffset)
	}
	if e.Offset() != logOffset {
		return nil, ErrSegmentCorrupt
	}
	if !e.IsValid() {
		return nil, ErrCorruptedEntry
	}
	return e, nil
}

func (s *segment) full(maxBytes uint64) bool {
	if s.pendingCount >= s.index.capacity {
		return true
	}
	return maxBytes > 0 && s.pendingSize >= maxBytes
}

// append writes an entry after the pending tail. The entry stays invisible to readers until commit is called.
func (s *segment) append(ts uint64, payload []byte) error {
	if s.pendingCount >= s.index.capacity {
		return ErrSegmentFull
	}
	n, err := writeEntry(&writerAt{pos: s.pendingSize, w: s.fd}, ts, s.baseOffset+s.pendingCount, payload)
	if err != nil {
		if err == ErrStorageFull {
			return err
		}
		return errors.Wrap(err, "failed to write entry")
	}
	err = s.index.writePosition(s.pendingCount, s.pendingSize)
	if err != nil {
		return err
	}
	s.pendingCount++
	s.pendingSize += uint64(n)
	return nil
}

func (s *segment) commit() {
	atomic.StoreUint64(&s.size, s.pendingSize)
	atomic.StoreUint64(&s.count, s.pendingCount)
}

// rollback discards every pending entry.
func (s *segment) rollback() error {
	s.pendingCount = s.Count()
	s.pendingSize = s.Size()
	return s.fd.Truncate(int64(s.pendingSize))
}

// seal flushes the segment before it stops accepting writes.
func (s *segment) seal() error {
	if err := s.fd.Sync(); err != nil {
		return ErrFSyncFailed
	}
	return s.index.Sync()
}

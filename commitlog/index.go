package commitlog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/tysontate/gommap"
)

const (
	indexValueSize = 8
)

var encoding = binary.BigEndian

var (
	ErrIndexAlreadyExists  = errors.New("index already exists")
	ErrIndexDoesNotExist   = errors.New("index does not exist")
	ErrInvalidOffsetTooBig = errors.New("invalid offset: offset is too big")
	ErrMMapFailed          = errors.New("mmap failed")
	ErrFSyncFailed         = errors.New("file sync failed")
	ErrIndexCorrupt        = errors.New("index corrupt")
)

// index maps a segment-relative offset to the byte position of the entry in the segment file.
// The file is preallocated: its size divided by indexValueSize is the segment capacity.
type index struct {
	path     string
	fd       *os.File
	data     gommap.MMap
	capacity uint64
	writable bool
}

func indexName(datadir string, id uint64) string {
	return path.Join(datadir, fmt.Sprintf("%d.index", id))
}

func createIndex(datadir string, id uint64, capacity uint64) (*index, error) {
	filename := indexName(datadir, id)
	if fileExists(filename) {
		return nil, ErrIndexAlreadyExists
	}
	if capacity == 0 {
		return nil, ErrIndexCorrupt
	}
	fd, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0650)
	if err != nil {
		return nil, err
	}
	err = fd.Truncate(int64(capacity * indexValueSize))
	if err != nil {
		fd.Close()
		os.Remove(filename)
		return nil, err
	}
	idx := &index{fd: fd, path: filename, capacity: capacity, writable: true}
	if err := idx.mmap(); err != nil {
		fd.Close()
		os.Remove(filename)
		return nil, err
	}
	return idx, nil
}

func openIndex(datadir string, id uint64, write bool) (*index, error) {
	filename := indexName(datadir, id)
	if !fileExists(filename) {
		return nil, ErrIndexDoesNotExist
	}
	perm := os.O_RDONLY
	if write {
		perm = os.O_RDWR
	}
	fd, err := os.OpenFile(filename, perm, 0650)
	if err != nil {
		return nil, err
	}
	info, err := fd.Stat()
	if err != nil {
		fd.Close()
		return nil, err
	}
	size := uint64(info.Size())
	if size == 0 || size%indexValueSize != 0 {
		fd.Close()
		return nil, ErrIndexCorrupt
	}
	idx := &index{fd: fd, path: filename, capacity: size / indexValueSize, writable: write}
	if err := idx.mmap(); err != nil {
		fd.Close()
		return nil, err
	}
	return idx, nil
}

func (i *index) FilePath() string {
	return i.path
}

func (i *index) mmap() error {
	prot := gommap.PROT_READ
	if i.writable {
		prot |= gommap.PROT_WRITE
	}
	mmapedData, err := gommap.Map(i.fd.Fd(), prot, gommap.MAP_SHARED)
	if err != nil {
		return ErrMMapFailed
	}
	i.data = mmapedData
	return nil
}

func (i *index) Sync() error {
	if !i.writable {
		return nil
	}
	if err := i.data.Sync(gommap.MS_SYNC); err != nil {
		return ErrMMapFailed
	}
	if err := i.fd.Sync(); err != nil {
		return ErrFSyncFailed
	}
	return nil
}

func (i *index) Close() error {
	err := i.Sync()
	if err != nil {
		return err
	}
	err = i.data.UnsafeUnmap()
	if err != nil {
		return err
	}
	return i.fd.Close()
}

func (i *index) writePosition(offset, position uint64) error {
	if offset >= i.capacity {
		return ErrInvalidOffsetTooBig
	}
	writeOffset := offset * indexValueSize
	encoding.PutUint64(i.data[writeOffset:writeOffset+indexValueSize], position)
	return nil
}

func (i *index) readPosition(offset uint64) (uint64, error) {
	if offset >= i.capacity {
		return 0, ErrInvalidOffsetTooBig
	}
	readOffset := offset * indexValueSize
	return encoding.Uint64(i.data[readOffset : readOffset+indexValueSize]), nil
}

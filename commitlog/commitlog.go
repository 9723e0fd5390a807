package commitlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

var (
	ErrCorruptedLog     = errors.New("corrupted commitlog")
	ErrStorageFull      = errors.New("storage is full")
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrLogClosed        = errors.New("commitlog is closed")
)

const (
	DefaultSegmentMaxEntries uint64 = 250000
	DefaultSegmentMaxBytes   uint64 = 64 * 1024 * 1024
)

// Options configures segment rotation and storage quota.
type Options struct {
	// SegmentMaxEntries is the entry capacity of new segments.
	SegmentMaxEntries uint64
	// SegmentMaxBytes rotates the active segment once it holds at least this many bytes. Zero disables it.
	SegmentMaxBytes uint64
	// MaxBytes caps the total size of the log. Zero means unlimited.
	MaxBytes uint64
}

func (o Options) withDefaults() Options {
	if o.SegmentMaxEntries == 0 {
		o.SegmentMaxEntries = DefaultSegmentMaxEntries
	}
	return o
}

type commitLog struct {
	datadir string
	opts    Options
	// mtx serializes writers.
	mtx sync.Mutex
	// segmentsMtx protects segments and activeSegment against concurrent readers.
	segmentsMtx   sync.RWMutex
	segments      []*segment
	activeSegment *segment
	offset        uint64
	storedBytes   uint64
	notifyMtx     sync.Mutex
	notifyCh      chan struct{}
	closed        bool
}

type CommitLog interface {
	io.Closer
	// WriteEntries appends all values as one batch, and returns the offset of the first one.
	WriteEntries(ts uint64, values [][]byte) (uint64, error)
	Delete() error
	Reader() Cursor
	// Offset returns the offset the next written entry will get.
	Offset() uint64
	Datadir() string
	// Notify returns a channel closed on the next successful write.
	Notify() <-chan struct{}
	GetStatistics() Statistics
}

func logFiles(datadir string) []uint64 {
	matches, err := filepath.Glob(fmt.Sprintf("%s/*.log", datadir))
	if err != nil {
		return nil
	}
	out := make([]uint64, 0)
	for idx := range matches {
		offsetStr := strings.TrimSuffix(filepath.Base(matches[idx]), ".log")
		offset, err := strconv.ParseUint(offsetStr, 10, 64)
		if err == nil {
			out = append(out, offset)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Open opens the log stored in datadir, creating it if needed.
func Open(datadir string, opts Options) (CommitLog, error) {
	opts = opts.withDefaults()
	files := logFiles(datadir)
	if len(files) > 0 {
		return open(datadir, files, opts)
	}
	err := os.MkdirAll(datadir, 0750)
	if err != nil {
		return nil, err
	}
	return create(datadir, opts)
}

func newLog(datadir string, opts Options) *commitLog {
	return &commitLog{
		datadir:  datadir,
		opts:     opts,
		notifyCh: make(chan struct{}),
	}
}

func create(datadir string, opts Options) (*commitLog, error) {
	l := newLog(datadir, opts)
	seg, err := createSegment(datadir, 0, opts.SegmentMaxEntries)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create new segment")
	}
	l.segments = []*segment{seg}
	l.activeSegment = seg
	return l, nil
}

func open(datadir string, files []uint64, opts Options) (*commitLog, error) {
	l := newLog(datadir, opts)
	var expected uint64
	for idx, base := range files {
		if base != expected {
			l.closeSegments()
			return nil, errors.Wrapf(ErrCorruptedLog, "segment %d does not start at offset %d", base, expected)
		}
		active := idx == len(files)-1
		seg, err := openSegment(datadir, base, opts.SegmentMaxEntries, active)
		if err != nil {
			l.closeSegments()
			return nil, errors.Wrapf(ErrCorruptedLog, "failed to open segment %d: %v", base, err)
		}
		l.segments = append(l.segments, seg)
		l.storedBytes += seg.Size()
		expected = seg.NextOffset()
	}
	l.activeSegment = l.segments[len(l.segments)-1]
	l.offset = expected
	return l, nil
}

func (e *commitLog) closeSegments() error {
	var firstErr error
	for _, seg := range e.segments {
		if err := seg.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (e *commitLog) Offset() uint64 {
	return atomic.LoadUint64(&e.offset)
}

func (e *commitLog) Close() error {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	e.segmentsMtx.Lock()
	defer e.segmentsMtx.Unlock()
	return e.closeSegments()
}

func (e *commitLog) Datadir() string {
	return e.datadir
}

func (e *commitLog) Delete() error {
	err := e.Close()
	if err != nil {
		return err
	}
	return os.RemoveAll(e.datadir)
}

func (e *commitLog) Notify() <-chan struct{} {
	e.notifyMtx.Lock()
	defer e.notifyMtx.Unlock()
	return e.notifyCh
}

func (e *commitLog) notify() {
	e.notifyMtx.Lock()
	defer e.notifyMtx.Unlock()
	close(e.notifyCh)
	e.notifyCh = make(chan struct{})
}

// snapshot returns the segments readers may use.
func (e *commitLog) snapshot() []*segment {
	e.segmentsMtx.RLock()
	defer e.segmentsMtx.RUnlock()
	return e.segments
}

// lookupOffset returns the index of the segment containing the provided offset
func lookupOffset(segments []*segment, offset uint64) int {
	count := len(segments)
	idx := sort.Search(count, func(i int) bool {
		return segments[i].BaseOffset() > offset
	})
	return idx - 1
}

func (e *commitLog) Reader() Cursor {
	return &cursor{
		log:       e,
		headerBuf: make([]byte, EntryHeaderSize),
	}
}

func (e *commitLog) WriteEntries(ts uint64, values [][]byte) (uint64, error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	if e.closed {
		return 0, ErrLogClosed
	}
	firstOffset := e.Offset()
	if len(values) == 0 {
		return firstOffset, nil
	}
	var batchSize uint64
	for _, value := range values {
		if uint64(len(value)) > MaxEntrySize {
			return 0, ErrEntryTooBig
		}
		batchSize += encodedSize(value)
	}
	if e.opts.MaxBytes > 0 && atomic.LoadUint64(&e.storedBytes)+batchSize > e.opts.MaxBytes {
		return 0, ErrStorageFull
	}

	active := e.activeSegment
	touched := []*segment{active}
	created := make([]*segment, 0)
	abort := func(cause error) (uint64, error) {
		for _, seg := range created {
			seg.Delete()
		}
		if err := e.activeSegment.rollback(); err != nil {
			return 0, errors.Wrap(err, "failed to rollback log")
		}
		return 0, cause
	}
	for _, value := range values {
		if active.full(e.opts.SegmentMaxBytes) && active.pendingCount > 0 {
			seg, err := createSegment(e.datadir, active.baseOffset+active.pendingCount, e.opts.SegmentMaxEntries)
			if err != nil {
				return abort(errors.Wrap(err, "failed to create new segment"))
			}
			created = append(created, seg)
			touched = append(touched, seg)
			active = seg
		}
		if err := active.append(ts, value); err != nil {
			return abort(err)
		}
	}
	for _, seg := range touched[:len(touched)-1] {
		if err := seg.seal(); err != nil {
			return abort(err)
		}
	}

	e.segmentsMtx.Lock()
	for _, seg := range touched {
		seg.commit()
	}
	if len(created) > 0 {
		segments := make([]*segment, len(e.segments), len(e.segments)+len(created))
		copy(segments, e.segments)
		e.segments = append(segments, created...)
		e.activeSegment = active
	}
	atomic.AddUint64(&e.storedBytes, batchSize)
	atomic.StoreUint64(&e.offset, firstOffset+uint64(len(values)))
	e.segmentsMtx.Unlock()

	e.notify()
	return firstOffset, nil
}

package commitlog

import (
	"errors"
	"hash/crc32"
	"io"
)

var (
	ErrInvalidBufferSize        = errors.New("invalid buffer size")
	ErrEntryTooBig              = errors.New("entry is too big")
	MaxEntrySize         uint64 = 20000000
)

// Entry header layout: payload size, log offset, timestamp, payload crc32.
const (
	sizeField      = 0
	offsetField    = 8
	timestampField = 16
	checksumField  = 24

	EntryHeaderSize int = checksumField + 4
)

// Entry is a single record stored in a log.
type Entry interface {
	// Size returns the payload size in bytes.
	Size() uint64
	Offset() uint64
	// Timestamp returns the write time, in nanoseconds since the Unix epoch.
	Timestamp() uint64
	Checksum() uint32
	Payload() []byte
	// IsValid returns false when the payload does not match its stored checksum.
	IsValid() bool
}

type entry struct {
	offset    uint64
	timestamp uint64
	checksum  uint32
	payload   []byte
}

func (e *entry) Size() uint64      { return uint64(len(e.payload)) }
func (e *entry) Offset() uint64    { return e.offset }
func (e *entry) Timestamp() uint64 { return e.timestamp }
func (e *entry) Checksum() uint32  { return e.checksum }
func (e *entry) Payload() []byte   { return e.payload }
func (e *entry) IsValid() bool     { return crc32.ChecksumIEEE(e.payload) == e.checksum }

// encodedSize returns the number of bytes used on disk by an entry holding this payload.
func encodedSize(payload []byte) uint64 {
	return uint64(EntryHeaderSize) + uint64(len(payload))
}

type header struct {
	payloadSize uint64
	offset      uint64
	timestamp   uint64
	checksum    uint32
}

func parseHeader(buf []byte) (header, error) {
	if len(buf) < EntryHeaderSize {
		return header{}, ErrInvalidBufferSize
	}
	h := header{
		payloadSize: encoding.Uint64(buf[sizeField:]),
		offset:      encoding.Uint64(buf[offsetField:]),
		timestamp:   encoding.Uint64(buf[timestampField:]),
		checksum:    encoding.Uint32(buf[checksumField:]),
	}
	if h.payloadSize > MaxEntrySize {
		return h, ErrEntryTooBig
	}
	return h, nil
}

// readEntry reads one entry from r, using buf to hold its header.
// A header announcing a payload bigger than MaxEntrySize is rejected before the payload is read.
func readEntry(r io.Reader, buf []byte) (Entry, error) {
	if len(buf) != EntryHeaderSize {
		return nil, ErrInvalidBufferSize
	}
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	h, err := parseHeader(buf)
	if err != nil {
		return nil, err
	}
	payload := make([]byte, h.payloadSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return &entry{
		offset:    h.offset,
		timestamp: h.timestamp,
		checksum:  h.checksum,
		payload:   payload,
	}, nil
}

// writeEntry encodes the entry and its header in a single write.
func writeEntry(w io.Writer, ts, offset uint64, payload []byte) (int, error) {
	if uint64(len(payload)) > MaxEntrySize {
		return 0, ErrEntryTooBig
	}
	buf := make([]byte, encodedSize(payload))
	encoding.PutUint64(buf[sizeField:], uint64(len(payload)))
	encoding.PutUint64(buf[offsetField:], offset)
	encoding.PutUint64(buf[timestampField:], ts)
	encoding.PutUint32(buf[checksumField:], crc32.ChecksumIEEE(payload))
	copy(buf[EntryHeaderSize:], payload)
	return w.Write(buf)
}

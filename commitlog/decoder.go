package commitlog

import (
	"io"
)

// Decoder reads entries sequentially from a raw segment file, without using its index.
type Decoder struct {
	r         io.Reader
	headerBuf []byte
	position  uint64
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r, headerBuf: make([]byte, EntryHeaderSize)}
}

// Decode returns the next entry.
// It returns io.EOF once the segment is exhausted, and io.ErrUnexpectedEOF on a torn trailing entry.
func (d *Decoder) Decode() (Entry, error) {
	e, err := readEntry(d.r, d.headerBuf)
	if err != nil {
		return nil, err
	}
	d.position += uint64(EntryHeaderSize) + e.Size()
	return e, nil
}

// Position returns the number of bytes consumed by decoded entries.
func (d *Decoder) Position() uint64 {
	return d.position
}

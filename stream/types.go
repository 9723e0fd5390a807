package stream

import "github.com/vx-labs/ibsen/commitlog"

// Log is the storage a consumer reads from.
type Log interface {
	Reader() commitlog.Cursor
	Offset() uint64
	Notify() <-chan struct{}
}

type Batch struct {
	FirstOffset uint64
	Entries     []commitlog.Entry
}

// LastOffset returns the offset of the last entry of the batch.
func (b Batch) LastOffset() uint64 {
	if len(b.Entries) == 0 {
		return b.FirstOffset
	}
	return b.Entries[len(b.Entries)-1].Offset()
}

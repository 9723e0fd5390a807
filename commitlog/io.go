package commitlog

import (
	stderrors "errors"
	"io"
	"os"
	"syscall"
)

// readerAt turns a positioned reader into a sequential one, starting at pos.
type readerAt struct {
	pos uint64
	r   io.ReaderAt
}

func (r *readerAt) Read(buf []byte) (int, error) {
	n, err := r.r.ReadAt(buf, int64(r.pos))
	r.pos += uint64(n)
	return n, err
}

// writerAt writes sequentially from pos. A full device is reported as ErrStorageFull.
type writerAt struct {
	pos uint64
	w   io.WriterAt
}

func (w *writerAt) Write(buf []byte) (int, error) {
	n, err := w.w.WriteAt(buf, int64(w.pos))
	w.pos += uint64(n)
	if err != nil && stderrors.Is(err, syscall.ENOSPC) {
		return n, ErrStorageFull
	}
	return n, err
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

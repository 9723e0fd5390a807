package ibsen

import (
	"context"
	"crypto/rand"
	"io/ioutil"
	"os"
	"path"
	"time"

	"github.com/oklog/ulid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const lockFileName = ".writeLock"

// Lock is an exclusive lock on a data directory.
type Lock struct {
	ID   string
	path string
	fd   *os.File
}

func newInstanceID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

func tryLock(filename, id string) (*os.File, error) {
	fd, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0600)
	if err != nil {
		return nil, err
	}
	_, err = fd.Write([]byte(id))
	if err == nil {
		err = fd.Sync()
	}
	if err != nil {
		fd.Close()
		os.Remove(filename)
		return nil, err
	}
	return fd, nil
}

// AcquireLock waits until it holds the lock of datadir, retrying every interval, or until ctx is cancelled.
func AcquireLock(ctx context.Context, datadir string, interval time.Duration) (*Lock, error) {
	id := newInstanceID()
	filename := path.Join(datadir, lockFileName)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		fd, err := tryLock(filename, id)
		if err == nil {
			L(ctx).Info("data directory locked", zap.String("instance_id", id), zap.String("lock_file", filename))
			return &Lock{ID: id, path: filename, fd: fd}, nil
		}
		if !os.IsExist(err) {
			return nil, errors.Wrap(err, "failed to create lock file")
		}
		owner, _ := ioutil.ReadFile(filename)
		L(ctx).Warn("data directory is locked by another instance, waiting",
			zap.String("lock_file", filename), zap.String("lock_owner", string(owner)))
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Release removes the lock file.
func (l *Lock) Release() error {
	err := l.fd.Close()
	if err != nil {
		return err
	}
	return os.Remove(l.path)
}

package ibsen

import (
	"io/ioutil"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/vx-labs/ibsen/commitlog"
	"golang.org/x/sync/singleflight"
)

const maxTopicNameLength = 255

// ValidateTopicName returns ErrInvalidTopic if name cannot be used as a topic.
// Topics are stored as directories, so names must be usable as a single path element.
func ValidateTopicName(name string) error {
	if len(name) == 0 || len(name) > maxTopicNameLength {
		return ErrInvalidTopic
	}
	if strings.HasPrefix(name, ".") {
		return ErrInvalidTopic
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return ErrInvalidTopic
	}
	return nil
}

// TopicManager owns the commitlog of every topic stored in a data directory.
type TopicManager struct {
	datadir  string
	opts     commitlog.Options
	mtx      sync.RWMutex
	topics   map[string]commitlog.CommitLog
	dropping map[string]chan struct{}
	creation singleflight.Group
	closed   bool
}

// OpenTopicManager opens every topic found in datadir.
func OpenTopicManager(datadir string, opts commitlog.Options) (*TopicManager, error) {
	m := &TopicManager{
		datadir:  datadir,
		opts:     opts,
		topics:   map[string]commitlog.CommitLog{},
		dropping: map[string]chan struct{}{},
	}
	files, err := ioutil.ReadDir(datadir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list data directory")
	}
	for _, file := range files {
		if !file.IsDir() || ValidateTopicName(file.Name()) != nil {
			continue
		}
		log, err := commitlog.Open(path.Join(datadir, file.Name()), opts)
		if err != nil {
			m.Close()
			return nil, errors.Wrapf(err, "failed to open topic %q", file.Name())
		}
		m.topics[file.Name()] = log
	}
	return m, nil
}

// ListTopics returns the name of every known topic, sorted.
func (m *TopicManager) ListTopics() []string {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	out := make([]string, 0, len(m.topics))
	for name := range m.topics {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// get returns the named topic. When the topic is being dropped, it also returns a channel closed once the drop is over.
func (m *TopicManager) get(name string) (commitlog.CommitLog, bool, <-chan struct{}, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	if m.closed {
		return nil, false, nil, ErrClosed
	}
	log, ok := m.topics[name]
	return log, ok, m.dropping[name], nil
}

type resolution struct {
	log     commitlog.CommitLog
	created bool
}

func (m *TopicManager) resolve(name string, create bool) (resolution, error) {
	if err := ValidateTopicName(name); err != nil {
		return resolution{}, err
	}
	log, ok, _, err := m.get(name)
	if err != nil {
		return resolution{}, err
	}
	if ok {
		return resolution{log: log}, nil
	}
	if !create {
		return resolution{}, ErrUnknownTopic
	}
	v, err, _ := m.creation.Do(name, func() (interface{}, error) {
		log, ok, dropped, err := m.get(name)
		if err != nil {
			return nil, err
		}
		if dropped != nil {
			<-dropped
			log, ok, _, err = m.get(name)
			if err != nil {
				return nil, err
			}
		}
		if ok {
			return resolution{log: log}, nil
		}
		log, err = commitlog.Open(path.Join(m.datadir, name), m.opts)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create topic %q", name)
		}
		m.mtx.Lock()
		defer m.mtx.Unlock()
		if m.closed {
			log.Close()
			return nil, ErrClosed
		}
		m.topics[name] = log
		return resolution{log: log, created: true}, nil
	})
	if err != nil {
		return resolution{}, err
	}
	return v.(resolution), nil
}

// Resolve returns the commitlog backing the named topic.
// When create is true, the topic is created if it does not exist. Otherwise ErrUnknownTopic is returned.
func (m *TopicManager) Resolve(name string, create bool) (commitlog.CommitLog, error) {
	r, err := m.resolve(name, create)
	return r.log, err
}

// Create creates the named topic, and returns false if it already existed.
func (m *TopicManager) Create(name string) (bool, error) {
	r, err := m.resolve(name, true)
	return r.created, err
}

// Drop deletes the named topic and its data, and returns false if it did not exist.
// drain is called once the topic is no longer reachable, before its files are removed.
// Creating a topic with the same name waits until the drop is over.
func (m *TopicManager) Drop(name string, drain func()) (bool, error) {
	if err := ValidateTopicName(name); err != nil {
		return false, err
	}
	m.mtx.Lock()
	if m.closed {
		m.mtx.Unlock()
		return false, ErrClosed
	}
	log, ok := m.topics[name]
	if !ok {
		m.mtx.Unlock()
		return false, nil
	}
	delete(m.topics, name)
	done := make(chan struct{})
	m.dropping[name] = done
	m.mtx.Unlock()

	defer func() {
		m.mtx.Lock()
		delete(m.dropping, name)
		m.mtx.Unlock()
		close(done)
	}()
	if drain != nil {
		drain()
	}
	if err := log.Delete(); err != nil {
		return false, errors.Wrapf(err, "failed to delete topic %q", name)
	}
	return true, nil
}

// Statistics returns the statistics of every topic, keyed by topic name.
func (m *TopicManager) Statistics() map[string]commitlog.Statistics {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	out := make(map[string]commitlog.Statistics, len(m.topics))
	for name, log := range m.topics {
		out[name] = log.GetStatistics()
	}
	return out
}

func (m *TopicManager) Close() error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.closed = true
	var firstErr error
	for name, log := range m.topics {
		if err := log.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrapf(err, "failed to close topic %q", name)
		}
	}
	return firstErr
}

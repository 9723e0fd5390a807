package ibsen

import (
	"context"
	"os"
	"path"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/vx-labs/ibsen/commitlog"
	"github.com/vx-labs/ibsen/ibsen/stats"
	"github.com/vx-labs/ibsen/stream"
	"go.uber.org/zap"
)

type Config struct {
	DataDir           string
	SegmentMaxEntries uint64
	SegmentMaxBytes   uint64
	// TopicMaxBytes caps the size of each topic. Zero means unlimited.
	TopicMaxBytes uint64
}

// ReadOptions describes where a read starts and how it ends.
type ReadOptions struct {
	Offset int64
	// BatchSize is the maximum number of entries per chunk. Values lower than 1 select stream.DefaultMaxBatchSize.
	BatchSize int
	// Follow keeps the read open after reaching the end of the topic, waiting for new entries.
	Follow bool
}

type TopicStatus struct {
	Topic        string
	SegmentCount uint64
	NextOffset   uint64
	StoredBytes  uint64
	Path         string
}

// MaxReadBatchSize caps the number of entries in a read chunk.
const MaxReadBatchSize = 10000

// Engine serves writes and reads over the topics of a data directory.
type Engine struct {
	topics  *TopicManager
	ctx     context.Context
	cancel  context.CancelFunc
	mtx     sync.RWMutex
	closed  bool
	readers sync.WaitGroup
	active  int64
	// reads holds the cancel function of every read in progress, by topic.
	readsMtx  sync.Mutex
	readsCond *sync.Cond
	reads     map[string]map[uint64]context.CancelCauseFunc
	nextRead  uint64
	now       func() time.Time
}

func NewEngine(ctx context.Context, config Config) (*Engine, error) {
	err := os.MkdirAll(config.DataDir, 0750)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create data directory")
	}
	topics, err := OpenTopicManager(config.DataDir, commitlog.Options{
		SegmentMaxEntries: config.SegmentMaxEntries,
		SegmentMaxBytes:   config.SegmentMaxBytes,
		MaxBytes:          config.TopicMaxBytes,
	})
	if err != nil {
		return nil, err
	}
	L(ctx).Debug("topics loaded", zap.Int("topic_count", len(topics.ListTopics())))
	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		topics: topics,
		ctx:    ctx,
		cancel: cancel,
		reads:  map[string]map[uint64]context.CancelCauseFunc{},
		now:    time.Now,
	}
	e.readsCond = sync.NewCond(&e.readsMtx)
	return e, nil
}

func (e *Engine) ListTopics() []string {
	return e.topics.ListTopics()
}

// Write appends entries to topic, creating it if needed, and returns the number of entries written.
// The batch is atomic: on failure, nothing is written.
func (e *Engine) Write(ctx context.Context, topic string, entries [][]byte) (int, error) {
	if err := ValidateTopicName(topic); err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}
	start := time.Now()
	log, err := e.topics.Resolve(topic, true)
	if err != nil {
		return 0, classify(err)
	}
	firstOffset, err := log.WriteEntries(uint64(e.now().UnixNano()), entries)
	if err != nil {
		stats.HistogramVec("writeTime").WithLabelValues("failure").Observe(stats.MilisecondsElapsed(start))
		L(ctx).Warn("failed to write entries", zap.String("topic", topic), zap.Int("entry_count", len(entries)), zap.Error(err))
		return 0, classify(err)
	}
	stats.HistogramVec("writeTime").WithLabelValues("success").Observe(stats.MilisecondsElapsed(start))
	stats.CounterVec("writtenEntries").WithLabelValues(topic).Add(float64(len(entries)))
	var size int
	for _, entry := range entries {
		size += len(entry)
	}
	stats.CounterVec("writtenBytes").WithLabelValues(topic).Add(float64(size))
	L(ctx).Debug("entries written", zap.String("topic", topic), zap.Uint64("first_offset", firstOffset), zap.Int("entry_count", len(entries)))
	return len(entries), nil
}

// Create creates an empty topic, and returns false if it already existed.
func (e *Engine) Create(ctx context.Context, topic string) (bool, error) {
	created, err := e.topics.Create(topic)
	if err != nil {
		return false, classify(err)
	}
	if created {
		L(ctx).Info("topic created", zap.String("topic", topic))
	}
	return created, nil
}

// Drop deletes a topic and its data, and returns false if it did not exist.
// Reads of the topic in progress are stopped with ErrUnknownTopic before its files are removed.
func (e *Engine) Drop(ctx context.Context, topic string) (bool, error) {
	dropped, err := e.topics.Drop(topic, func() {
		e.cancelReads(topic, ErrUnknownTopic)
	})
	if err != nil {
		return false, classify(err)
	}
	if dropped {
		L(ctx).Info("topic dropped", zap.String("topic", topic))
	}
	return dropped, nil
}

func (e *Engine) startReader(topic string, cancel context.CancelCauseFunc) (uint64, error) {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	if e.closed {
		return 0, ErrClosed
	}
	e.readers.Add(1)
	atomic.AddInt64(&e.active, 1)

	e.readsMtx.Lock()
	defer e.readsMtx.Unlock()
	e.nextRead++
	if e.reads[topic] == nil {
		e.reads[topic] = map[uint64]context.CancelCauseFunc{}
	}
	e.reads[topic][e.nextRead] = cancel
	return e.nextRead, nil
}

func (e *Engine) stopReader(topic string, id uint64) {
	e.readsMtx.Lock()
	delete(e.reads[topic], id)
	if len(e.reads[topic]) == 0 {
		delete(e.reads, topic)
	}
	e.readsCond.Broadcast()
	e.readsMtx.Unlock()
	atomic.AddInt64(&e.active, -1)
	e.readers.Done()
}

// cancelReads stops every read of topic, and waits for them to return.
func (e *Engine) cancelReads(topic string, cause error) {
	e.readsMtx.Lock()
	defer e.readsMtx.Unlock()
	for _, cancel := range e.reads[topic] {
		cancel(cause)
	}
	for len(e.reads[topic]) > 0 {
		e.readsCond.Wait()
	}
}

// ActiveReads returns the number of reads in progress.
func (e *Engine) ActiveReads() int64 {
	return atomic.LoadInt64(&e.active)
}

// resolveRead checks that a read of topic can start at offset.
func (e *Engine) resolveRead(topic string, offset int64) (commitlog.CommitLog, error) {
	if err := ValidateTopicName(topic); err != nil {
		return nil, err
	}
	if offset < 0 {
		return nil, ErrInvalidOffset
	}
	log, err := e.topics.Resolve(topic, false)
	if err != nil {
		return nil, classify(err)
	}
	if uint64(offset) > log.Offset() {
		return nil, ErrOffsetOutOfRange
	}
	return log, nil
}

// Read streams the entries of topic to processor, in chunks of at most opts.BatchSize entries (capped to MaxReadBatchSize).
// Without opts.Follow, it returns once every entry present when the read started was processed.
// With opts.Follow, it only returns when ctx is cancelled, the topic is dropped, the engine is closed, or the processor fails.
// Reads stopped by the engine return ErrClosed.
func (e *Engine) Read(ctx context.Context, topic string, opts ReadOptions, processor stream.Processor) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	id, err := e.startReader(topic, cancel)
	if err != nil {
		return err
	}
	defer e.stopReader(topic, id)
	log, err := e.resolveRead(topic, opts.Offset)
	if err != nil {
		return err
	}
	if opts.BatchSize > MaxReadBatchSize {
		opts.BatchSize = MaxReadBatchSize
	}
	go func() {
		select {
		case <-e.ctx.Done():
			cancel(ErrClosed)
		case <-ctx.Done():
		}
	}()

	follow := strconv.FormatBool(opts.Follow)
	stats.GaugeVec("activeReaders").WithLabelValues(follow).Inc()
	defer stats.GaugeVec("activeReaders").WithLabelValues(follow).Dec()

	eofBehaviour := stream.EOFBehaviourExit
	if opts.Follow {
		eofBehaviour = stream.EOFBehaviourPoll
	}
	consumer := stream.NewConsumer(
		stream.WithName(topic),
		stream.FromOffset(uint64(opts.Offset)),
		stream.WithMaxBatchSize(opts.BatchSize),
		stream.WithEOFBehaviour(eofBehaviour),
		stream.WithPerformanceLogging(L(ctx)),
		stream.WithMiddleware(func(next stream.Processor, _ stream.ConsumerOpts) stream.Processor {
			return func(ctx context.Context, batch stream.Batch) error {
				stats.HistogramVec("readBatchSize").WithLabelValues(follow).Observe(float64(len(batch.Entries)))
				stats.CounterVec("readEntries").WithLabelValues(topic).Add(float64(len(batch.Entries)))
				return next(ctx, batch)
			}
		}),
	)
	err = consumer.Consume(ctx, log, processor)
	if err != nil {
		switch cause := context.Cause(ctx); cause {
		case ErrClosed, ErrUnknownTopic:
			return cause
		}
		return classify(err)
	}
	return nil
}

func (e *Engine) Status() []TopicStatus {
	statistics := e.topics.Statistics()
	out := make([]TopicStatus, 0, len(statistics))
	for _, topic := range e.topics.ListTopics() {
		s, ok := statistics[topic]
		if !ok {
			continue
		}
		out = append(out, TopicStatus{
			Topic:        topic,
			SegmentCount: s.SegmentCount,
			NextOffset:   s.CurrentOffset,
			StoredBytes:  s.StoredBytes,
			Path:         path.Join(e.topics.datadir, topic),
		})
	}
	return out
}

// CancelReads stops every read in progress, including followers.
func (e *Engine) CancelReads() {
	e.cancel()
}

// Close cancels every read in progress, waits for them to stop, then closes all topics.
func (e *Engine) Close() error {
	e.mtx.Lock()
	if e.closed {
		e.mtx.Unlock()
		return nil
	}
	e.closed = true
	e.mtx.Unlock()
	e.cancel()
	e.readers.Wait()
	return e.topics.Close()
}

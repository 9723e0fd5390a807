package ibsen

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/vx-labs/ibsen/ibsen/api"
	"github.com/vx-labs/ibsen/stream"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func NewServer(engine *Engine) *server {
	return &server{
		engine: engine,
	}
}

type server struct {
	engine *Engine
}

// Code returns the gRPC status code matching err.
func Code(err error) codes.Code {
	switch errors.Cause(err) {
	case nil:
		return codes.OK
	case ErrInvalidTopic, ErrInvalidOffset, ErrEntryTooBig:
		return codes.InvalidArgument
	case ErrUnknownTopic:
		return codes.NotFound
	case ErrOffsetOutOfRange:
		return codes.OutOfRange
	case ErrStorageFull:
		return codes.ResourceExhausted
	case ErrCancelled:
		return codes.Canceled
	case ErrClosed:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(Code(err), err.Error())
}

func (s *server) ListTopics(ctx context.Context, in *api.ListTopicsRequest) (*api.ListTopicsResponse, error) {
	return &api.ListTopicsResponse{Topics: s.engine.ListTopics()}, nil
}

func (s *server) Create(ctx context.Context, in *api.CreateRequest) (*api.CreateResponse, error) {
	created, err := s.engine.Create(ctx, in.Topic)
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.CreateResponse{Created: created}, nil
}

func (s *server) Drop(ctx context.Context, in *api.DropRequest) (*api.DropResponse, error) {
	dropped, err := s.engine.Drop(ctx, in.Topic)
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.DropResponse{Dropped: dropped}, nil
}

func (s *server) Write(ctx context.Context, in *api.WriteRequest) (*api.WriteResponse, error) {
	start := time.Now()
	n, err := s.engine.Write(ctx, in.Topic, in.Entries)
	if err != nil {
		return nil, toStatus(err)
	}
	return &api.WriteResponse{Wrote: int64(n), TimeNano: time.Since(start).Nanoseconds()}, nil
}

// WriteStream writes every received batch in order, and reports the total once the client closes its side.
// The first failed batch ends the call; batches written before it stay written.
func (s *server) WriteStream(client api.Ibsen_WriteStreamServer) error {
	start := time.Now()
	var wrote int64
	for {
		in, err := client.Recv()
		if err == io.EOF {
			return client.SendAndClose(&api.WriteResponse{Wrote: wrote, TimeNano: time.Since(start).Nanoseconds()})
		}
		if err != nil {
			return err
		}
		n, err := s.engine.Write(client.Context(), in.Topic, in.Entries)
		if err != nil {
			L(client.Context()).Debug("write stream stopped", zap.Int64("wrote", wrote), zap.Error(err))
			return toStatus(err)
		}
		wrote += int64(n)
	}
}

func (s *server) Read(in *api.ReadRequest, client api.Ibsen_ReadServer) error {
	ctx := AddFields(client.Context(), zap.String("topic", in.Topic), zap.Bool("follow", in.Follow))
	err := s.engine.Read(ctx, in.Topic, ReadOptions{
		Offset:    in.Offset,
		BatchSize: int(in.BatchSize),
		Follow:    in.Follow,
	}, func(ctx context.Context, batch stream.Batch) error {
		return client.Send(&api.ReadResponse{Entries: toAPIEntries(batch)})
	})
	if err != nil {
		L(ctx).Debug("read stopped", zap.Error(err))
		return toStatus(err)
	}
	return nil
}

func (s *server) Status(ctx context.Context, in *api.StatusRequest) (*api.StatusResponse, error) {
	topics := s.engine.Status()
	out := make([]*api.TopicStatus, len(topics))
	for idx, topic := range topics {
		out[idx] = &api.TopicStatus{
			Topic:        topic.Topic,
			SegmentCount: topic.SegmentCount,
			NextOffset:   topic.NextOffset,
			StoredBytes:  topic.StoredBytes,
			Path:         topic.Path,
		}
	}
	return &api.StatusResponse{Topics: out}, nil
}

func (s *server) Serve(grpcServer *grpc.Server) {
	api.RegisterIbsenServer(grpcServer, s)
}

func toAPIEntries(batch stream.Batch) []*api.Entry {
	out := make([]*api.Entry, len(batch.Entries))
	for idx, entry := range batch.Entries {
		out[idx] = &api.Entry{
			Offset:    entry.Offset(),
			Timestamp: entry.Timestamp(),
			Payload:   entry.Payload(),
		}
	}
	return out
}

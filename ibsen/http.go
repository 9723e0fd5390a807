package ibsen

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/vx-labs/ibsen/stream"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
)

// HTTPGateway exposes the engine over HTTP, with a websocket endpoint for following topics.
type HTTPGateway struct {
	engine   *Engine
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

type httpEntry struct {
	Offset    uint64 `json:"offset"`
	Timestamp uint64 `json:"timestamp"`
	Payload   []byte `json:"payload"`
}

type httpChunk struct {
	Entries []httpEntry `json:"entries"`
}

// httpReadError is the last line of a read stream that stopped on an error.
type httpReadError struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

type httpWriteRequest struct {
	Entries [][]byte `json:"entries"`
}

func NewHTTPGateway(engine *Engine, logger *zap.Logger) *HTTPGateway {
	return &HTTPGateway{
		engine: engine,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (g *HTTPGateway) Routes() http.Handler {
	engine := gin.New()
	engine.Use(g.loggingMiddleware(), gin.Recovery())
	engine.GET("/health", g.handleHealth)
	engine.GET("/status", g.handleStatus)
	engine.GET("/topics", g.handleListTopics)
	engine.PUT("/topics/:topic", g.handleCreate)
	engine.DELETE("/topics/:topic", g.handleDrop)
	engine.POST("/topics/:topic", g.handleWrite)
	engine.GET("/topics/:topic", g.handleRead)
	engine.GET("/topics/:topic/follow", g.handleFollow)
	return engine
}

func (g *HTTPGateway) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		g.logger.Debug("http request served",
			zap.String("http_method", c.Request.Method),
			zap.String("http_path", c.Request.URL.Path),
			zap.Int("http_status", c.Writer.Status()),
			zap.Duration("http_request_duration", time.Since(start)))
	}
}

// HTTPStatus returns the HTTP status code matching err.
func HTTPStatus(err error) int {
	switch Code(err) {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.OutOfRange:
		return http.StatusRequestedRangeNotSatisfiable
	case codes.ResourceExhausted:
		return http.StatusInsufficientStorage
	case codes.Canceled:
		return http.StatusRequestTimeout
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(HTTPStatus(err), gin.H{"error": err.Error()})
}

func (g *HTTPGateway) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (g *HTTPGateway) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": g.engine.Status()})
}

func (g *HTTPGateway) handleListTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": g.engine.ListTopics()})
}

func (g *HTTPGateway) handleWrite(c *gin.Context) {
	var req httpWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	n, err := g.engine.Write(StoreLogger(c.Request.Context(), g.logger), c.Param("topic"), req.Entries)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wrote": n})
}

func (g *HTTPGateway) handleCreate(c *gin.Context) {
	created, err := g.engine.Create(StoreLogger(c.Request.Context(), g.logger), c.Param("topic"))
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

func (g *HTTPGateway) handleDrop(c *gin.Context) {
	dropped, err := g.engine.Drop(StoreLogger(c.Request.Context(), g.logger), c.Param("topic"))
	if err != nil {
		abort(c, err)
		return
	}
	if !dropped {
		abort(c, ErrUnknownTopic)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dropped": true})
}

func readOptions(c *gin.Context, follow bool) (ReadOptions, error) {
	opts := ReadOptions{Follow: follow}
	if v := c.Query("offset"); v != "" {
		offset, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return opts, errors.Wrap(ErrInvalidOffset, "invalid offset parameter")
		}
		opts.Offset = offset
	}
	if v := c.Query("batch_size"); v != "" {
		batchSize, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New("invalid batch_size parameter")
		}
		opts.BatchSize = batchSize
	}
	return opts, nil
}

func toHTTPChunk(batch stream.Batch) httpChunk {
	out := httpChunk{Entries: make([]httpEntry, len(batch.Entries))}
	for idx, entry := range batch.Entries {
		out.Entries[idx] = httpEntry{
			Offset:    entry.Offset(),
			Timestamp: entry.Timestamp(),
			Payload:   entry.Payload(),
		}
	}
	return out
}

// handleRead streams chunks as newline-delimited JSON objects.
// Once the response has started, a read error is reported as a final httpReadError line.
func (g *HTTPGateway) handleRead(c *gin.Context) {
	topic := c.Param("topic")
	opts, err := readOptions(c, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := g.engine.resolveRead(topic, opts.Offset); err != nil {
		abort(c, err)
		return
	}
	c.Header("Content-Type", "application/x-ndjson")
	c.Status(http.StatusOK)
	encoder := json.NewEncoder(c.Writer)
	ctx := StoreLogger(c.Request.Context(), g.logger.With(zap.String("topic", topic)))
	err = g.engine.Read(ctx, topic, opts, func(ctx context.Context, batch stream.Batch) error {
		if err := encoder.Encode(toHTTPChunk(batch)); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	})
	if err == nil || c.Request.Context().Err() != nil {
		return
	}
	g.logger.Warn("http read failed", zap.String("topic", topic), zap.Error(err))
	if err := encoder.Encode(httpReadError{Error: err.Error(), Code: HTTPStatus(err)}); err == nil {
		c.Writer.Flush()
	}
}

// handleFollow streams chunks as websocket text messages until the client goes away.
func (g *HTTPGateway) handleFollow(c *gin.Context) {
	topic := c.Param("topic")
	opts, err := readOptions(c, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := g.engine.resolveRead(topic, opts.Offset); err != nil {
		abort(c, err)
		return
	}
	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		g.logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	ctx, cancel := context.WithCancel(StoreLogger(context.Background(), g.logger.With(zap.String("topic", topic))))
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	err = g.engine.Read(ctx, topic, opts, func(ctx context.Context, batch stream.Batch) error {
		return conn.WriteJSON(toHTTPChunk(batch))
	})
	if err != nil && Code(err) != codes.Canceled {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, err.Error()), time.Now().Add(time.Second))
		return
	}
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
}

package connector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
)

const (
	ActionRaw = "raw"

	writeWait        = 10 * time.Second
	handshakeTimeout = 10 * time.Second
	defaultReadLimit = 1 << 20
)

var ErrNotConnected = errors.New("not connected")

type WebSocketOption func(*WebSocket)

func WithSubprotocols(protocols ...string) WebSocketOption {
	return func(w *WebSocket) {
		w.dialer.Subprotocols = protocols
	}
}

func WithHeader(header http.Header) WebSocketOption {
	return func(w *WebSocket) {
		w.header = header
	}
}

// WithWorker runs worker next to the read loop for the length of every session.
func WithWorker(worker Worker) WebSocketOption {
	return func(w *WebSocket) {
		w.worker = worker
	}
}

func WithReadLimit(limit int64) WebSocketOption {
	return func(w *WebSocket) {
		w.readLimit = limit
	}
}

func WithLifecycle(opts ...Option) WebSocketOption {
	return func(w *WebSocket) {
		w.lifecycleOpts = append(w.lifecycleOpts, opts...)
	}
}

// WebSocket is a Connector speaking JSON text frames over a client WebSocket.
// Decoded frames are passed to the MessageHandler.
type WebSocket struct {
	*Lifecycle

	url           string
	handler       MessageHandler
	dialer        *websocket.Dialer
	header        http.Header
	worker        Worker
	readLimit     int64
	lifecycleOpts []Option

	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWebSocket(name, url string, handler MessageHandler, opts ...WebSocketOption) *WebSocket {
	w := &WebSocket{
		url:       url,
		handler:   handler,
		dialer:    &websocket.Dialer{HandshakeTimeout: handshakeTimeout, Proxy: http.ProxyFromEnvironment},
		readLimit: defaultReadLimit,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.Lifecycle = NewLifecycle(name, w, w.lifecycleOpts...)
	return w
}

func (w *WebSocket) URL() string {
	return w.url
}

func (w *WebSocket) OnConnected(ctx context.Context) error {
	return w.handler.OnConnected(ctx)
}

func (w *WebSocket) OnDisconnected(ctx context.Context) {
	w.handler.OnDisconnected(ctx)
}

func (w *WebSocket) OnError(ctx context.Context, err error) {
	w.handler.OnError(ctx, err)
}

func (w *WebSocket) Open(ctx context.Context) (func(), error) {
	conn, _, err := w.dialer.DialContext(ctx, w.url, w.header)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", w.Name(), err)
	}
	conn.SetReadLimit(w.readLimit)

	w.mu.Lock()
	w.conn = conn
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		w.conn = nil
		w.mu.Unlock()

		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		_ = conn.Close()
	}, nil
}

func (w *WebSocket) Serve(ctx context.Context) Result {
	w.mu.Lock()
	conn := w.conn
	w.mu.Unlock()
	if conn == nil {
		return Failed(ErrNotConnected)
	}

	sctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var readErr, workErr error

	g := &errgroup.Group{}
	g.Go(func() error {
		<-sctx.Done()
		_ = conn.Close()
		return nil
	})
	g.Go(func() error {
		defer cancel()
		readErr = w.readLoop(sctx, conn)
		return nil
	})
	if w.worker != nil {
		g.Go(func() error {
			defer cancel()
			workErr = w.worker.Work(sctx)
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		return Shutdown()
	}
	if workErr != nil && !errors.Is(workErr, context.Canceled) {
		return ResultOf(workErr)
	}
	if readErr == nil || websocket.IsCloseError(readErr, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return Ok()
	}
	return ResultOf(readErr)
}

func (w *WebSocket) readLoop(ctx context.Context, conn *websocket.Conn) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		if !json.Valid(data) {
			logger.Warn(fmt.Sprintf("%s: skipping malformed frame: %.200s", w.Name(), data))
			continue
		}

		if err = w.handler.OnMessage(ctx, json.RawMessage(data)); err != nil {
			var reconnect *ReconnectError
			if errors.As(err, &reconnect) {
				return err
			}
			logger.Error(fmt.Sprintf("%s: failed to handle frame: %v", w.Name(), err))
		}
	}
}

// Send writes v as a JSON text frame. It reports false when there is no open connection
// or the write failed.
func (w *WebSocket) Send(ctx context.Context, v any) (bool, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return false, fmt.Errorf("failed to marshal frame: %v", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn == nil {
		return false, nil
	}

	_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err = w.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Warn(fmt.Sprintf("%s: failed to send frame: %v", w.Name(), err))
		return false, nil
	}
	return true, nil
}

// Deliver handles the actions every WebSocket connector understands.
func (w *WebSocket) Deliver(ctx context.Context, msg Message) (bool, error) {
	switch msg.Action {
	case ActionRaw:
		if _, err := w.Send(ctx, msg.Payload); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

package connector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
)

const (
	defaultMaxInitAttempts   = 6
	defaultMaxReconnectDelay = 60 * time.Second
	disconnectTimeout        = 30 * time.Second
)

type State int32

const (
	StateIdle State = iota
	StateConnecting
	StateConnected
	StateDisconnecting
	StateReconnecting
	StateShutDown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateDisconnecting:
		return "disconnecting"
	case StateReconnecting:
		return "reconnecting"
	case StateShutDown:
		return "shutdown"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

type Option func(*Lifecycle)

func WithMaxInitAttempts(n int) Option {
	return func(l *Lifecycle) {
		if n > 0 {
			l.maxInitAttempts = n
		}
	}
}

func WithMaxReconnectDelay(d time.Duration) Option {
	return func(l *Lifecycle) {
		if d > 0 {
			l.maxReconnectDelay = d
		}
	}
}

// WithSleep replaces the backoff wait. fn must return false once ctx is done.
func WithSleep(fn func(ctx context.Context, d time.Duration) bool) Option {
	return func(l *Lifecycle) {
		l.sleep = fn
	}
}

// Lifecycle drives a Peer through connect, serve, disconnect and reconnect with backoff.
type Lifecycle struct {
	name              string
	peer              Peer
	maxInitAttempts   int
	maxReconnectDelay time.Duration
	sleep             func(ctx context.Context, d time.Duration) bool

	state     atomic.Int32
	connected atomic.Bool

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
}

func NewLifecycle(name string, peer Peer, opts ...Option) *Lifecycle {
	l := &Lifecycle{
		name:              name,
		peer:              peer,
		maxInitAttempts:   defaultMaxInitAttempts,
		maxReconnectDelay: defaultMaxReconnectDelay,
		sleep:             sleepContext,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Lifecycle) Name() string {
	return l.name
}

func (l *Lifecycle) Connected() bool {
	return l.connected.Load()
}

func (l *Lifecycle) State() State {
	return State(l.state.Load())
}

// Suspend marks the session unusable for bus delivery without closing it.
func (l *Lifecycle) Suspend() {
	l.connected.Store(false)
}

// Shutdown stops the lifecycle. It is safe to call before, during and after Run.
func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopped = true
	if l.cancel != nil {
		l.cancel()
	}
}

func (l *Lifecycle) Run(ctx context.Context) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		l.setState(StateShutDown)
		return nil
	}
	l.cancel = cancel
	l.mu.Unlock()

	defer l.setState(StateShutDown)

	failures := 0
	initializing := true

	for {
		if ctx.Err() != nil {
			logger.Info(fmt.Sprintf("%s: shut down", l.name))
			return nil
		}

		if failures > 0 {
			if initializing && failures >= l.maxInitAttempts {
				logger.Warn(fmt.Sprintf("%s: unable to connect after %d attempts, shutting down connector", l.name, failures))
				return nil
			}

			delay := Backoff(failures, l.maxReconnectDelay)
			l.setState(StateReconnecting)
			logger.Info(fmt.Sprintf("%s: reconnecting in %s", l.name, delay))
			if !l.sleep(ctx, delay) {
				logger.Info(fmt.Sprintf("%s: shut down", l.name))
				return nil
			}
		}

		if initializing {
			logger.Info(fmt.Sprintf("%s: connecting [attempt %d of %d]", l.name, failures+1, l.maxInitAttempts))
		} else {
			logger.Info(fmt.Sprintf("%s: reconnecting", l.name))
		}

		l.setState(StateConnecting)
		res, established := l.session(ctx)
		if established {
			initializing = false
			failures = 0
		} else {
			failures++
		}

		if ctx.Err() != nil {
			continue
		}

		switch res.Kind {
		case KindShutdown:
			logger.Info(fmt.Sprintf("%s: shut down by peer", l.name))
			return nil
		case KindOk:
			logger.Info(fmt.Sprintf("%s: connection ended", l.name))
		case KindReconnect:
			logger.Info(fmt.Sprintf("%s: reconnect requested: %s", l.name, res.Reason))
		case KindError:
			l.peer.OnError(ctx, res.Err)
		default:
			logger.Warn(fmt.Sprintf("%s: unrecognized session outcome %s, reconnecting", l.name, res.Kind))
		}
	}
}

func (l *Lifecycle) session(ctx context.Context) (res Result, established bool) {
	defer func() {
		if p := recover(); p != nil {
			res = Failed(fmt.Errorf("panic in %s: %v", l.name, p))
		}
	}()

	release, err := l.peer.Open(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return Shutdown(), false
		}
		return ResultOf(err), false
	}

	established = true
	l.connected.Store(true)
	l.setState(StateConnected)

	defer func() {
		l.connected.Store(false)
		l.setState(StateDisconnecting)
		if release != nil {
			release()
		}

		// the session context may already be cancelled, the hook still needs to persist state
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), disconnectTimeout)
		defer cancel()
		l.peer.OnDisconnected(dctx)
	}()

	if err = l.peer.OnConnected(ctx); err != nil {
		if ctx.Err() != nil {
			return Shutdown(), true
		}
		return ResultOf(err), true
	}

	res = l.peer.Serve(ctx)
	if ctx.Err() != nil {
		return Shutdown(), true
	}
	return res, true
}

func (l *Lifecycle) setState(s State) {
	l.state.Store(int32(s))
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// LoggingHooks is the default Hooks implementation: it only logs.
type LoggingHooks struct {
	Name string
}

func (h LoggingHooks) OnConnected(ctx context.Context) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.Info(fmt.Sprintf("%s: connection opened", h.Name))
	return nil
}

func (h LoggingHooks) OnDisconnected(ctx context.Context) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.Info(fmt.Sprintf("%s: connection closed", h.Name))
}

func (h LoggingHooks) OnError(ctx context.Context, err error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	if IsConnectionError(err) {
		logger.Warn(fmt.Sprintf("%s: connection error: %v", h.Name, err))
		return
	}
	logger.Error(fmt.Sprintf("%s: error: %v", h.Name, err))
}

// IsConnectionError reports network level failures: refused, timed out, closed or a failed handshake.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	var closeErr *websocket.CloseError
	switch {
	case errors.As(err, &netErr),
		errors.As(err, &closeErr),
		errors.Is(err, websocket.ErrBadHandshake),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, net.ErrClosed),
		errors.Is(err, context.DeadlineExceeded):
		return true
	}
	return false
}

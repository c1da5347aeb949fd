package connector

import (
	"errors"
	"fmt"
	"time"
)

// Kind tags the outcome of one connection session.
type Kind int

const (
	KindOk Kind = iota
	KindShutdown
	KindReconnect
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindOk:
		return "ok"
	case KindShutdown:
		return "shutdown"
	case KindReconnect:
		return "reconnect"
	case KindError:
		return "error"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

type Result struct {
	Kind   Kind
	Reason string
	Err    error
}

func Ok() Result {
	return Result{Kind: KindOk}
}

func Shutdown() Result {
	return Result{Kind: KindShutdown}
}

func Reconnect(reason string) Result {
	return Result{Kind: KindReconnect, Reason: reason}
}

func Failed(err error) Result {
	return Result{Kind: KindError, Err: err}
}

// ReconnectError lets a hook ask for a fresh connection instead of reporting a failure.
type ReconnectError struct {
	Reason string
	Err    error
}

func NewReconnectError(reason string, err error) *ReconnectError {
	return &ReconnectError{Reason: reason, Err: err}
}

func (e *ReconnectError) Error() string {
	if e.Err == nil {
		return "reconnect requested: " + e.Reason
	}
	return fmt.Sprintf("reconnect requested: %s: %v", e.Reason, e.Err)
}

func (e *ReconnectError) Unwrap() error {
	return e.Err
}

// ResultOf classifies an error returned by a hook or a receive loop.
func ResultOf(err error) Result {
	if err == nil {
		return Ok()
	}
	var reconnect *ReconnectError
	if errors.As(err, &reconnect) {
		return Reconnect(reconnect.Reason)
	}
	return Failed(err)
}

// Backoff returns the wait before retry number attempt (1-based): min(maxDelay, 2^(attempt-1)s).
func Backoff(attempt int, maxDelay time.Duration) time.Duration {
	if attempt < 1 {
		return 0
	}
	if attempt > 31 {
		return maxDelay
	}
	delay := time.Duration(1<<(attempt-1)) * time.Second
	if delay > maxDelay {
		return maxDelay
	}
	return delay
}

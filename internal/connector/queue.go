package connector

import (
	"context"
	"sync"
)

// queue is an unbounded FIFO. Push never blocks.
type queue struct {
	mu     sync.Mutex
	items  []Message
	signal chan struct{}
}

func newQueue() *queue {
	return &queue{signal: make(chan struct{}, 1)}
}

func (q *queue) Push(msg Message) {
	q.mu.Lock()
	q.items = append(q.items, msg)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// Pop waits for the next message. ok is false once ctx is done.
func (q *queue) Pop(ctx context.Context) (Message, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			msg := q.items[0]
			q.items[0] = Message{}
			q.items = q.items[1:]
			q.mu.Unlock()
			return msg, true
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return Message{}, false
		case <-q.signal:
		}
	}
}

func (q *queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

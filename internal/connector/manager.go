package connector

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
)

var ErrDuplicateConnector = errors.New("connector already registered")

type Status struct {
	Name      string `json:"name"`
	Connected bool   `json:"connected"`
	State     string `json:"state"`
}

// Manager owns the connectors and routes messages between them.
type Manager struct {
	metrics Metrics
	queue   *queue

	mu         sync.RWMutex
	connectors map[string]Connector
	order      []string
	cancel     context.CancelFunc
	done       chan struct{}
	stopped    bool
}

func NewManager(metrics Metrics) *Manager {
	return &Manager{
		metrics:    metrics,
		queue:      newQueue(),
		connectors: make(map[string]Connector),
	}
}

func (m *Manager) Register(c Connector) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.connectors[c.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateConnector, c.Name())
	}
	m.connectors[c.Name()] = c
	m.order = append(m.order, c.Name())
	return nil
}

func (m *Manager) Get(name string) (Connector, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.connectors[name]
	return c, ok
}

// Ready reports whether the named connector is connected and, when it can tell, able to take work.
func (m *Manager) Ready(name string) bool {
	c, ok := m.Get(name)
	if !ok || !c.Connected() {
		return false
	}
	if r, ok := c.(Readier); ok {
		return r.Ready()
	}
	return true
}

// Enqueue queues a message for asynchronous delivery. It never blocks.
func (m *Manager) Enqueue(sender, receiver, action string, payload any) {
	m.queue.Push(NewMessage(sender, receiver, action, payload))
	m.increment("bus.enqueued")
}

// Run starts every registered connector and the dispatch loop, and waits until all of them stop.
func (m *Manager) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return nil
	}
	m.cancel = cancel
	done := make(chan struct{})
	m.done = done
	defer close(done)
	connectors := make([]Connector, 0, len(m.order))
	for _, name := range m.order {
		connectors = append(connectors, m.connectors[name])
	}
	m.mu.Unlock()

	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.Info(fmt.Sprintf("starting %d connectors", len(connectors)))

	connectorsDone := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m.dispatch(gctx)
		return nil
	})

	var wg sync.WaitGroup
	for _, c := range connectors {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			if err := c.Run(gctx); err != nil {
				logger.Error(fmt.Sprintf("connector %s stopped with error: %v", c.Name(), err))
			}
			return nil
		})
	}

	// dispatch stops with the last connector, so with none registered Run returns at once
	g.Go(func() error {
		wg.Wait()
		close(connectorsDone)
		cancel()
		return nil
	})

	err := g.Wait()
	<-connectorsDone
	logger.Info("all connectors stopped")
	return err
}

// Shutdown stops every connector and the dispatch loop and waits for Run to return.
// It returns at once when Run was never started. It is idempotent.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	m.stopped = true
	if m.cancel != nil {
		m.cancel()
	}
	done := m.done
	m.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (m *Manager) Snapshot() []Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]Status, 0, len(m.connectors))
	for _, c := range m.connectors {
		res = append(res, Status{
			Name:      c.Name(),
			Connected: c.Connected(),
			State:     c.State().String(),
		})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

// Pending returns the number of queued, undelivered messages.
func (m *Manager) Pending() int {
	return m.queue.Len()
}

func (m *Manager) dispatch(ctx context.Context) {
	for {
		msg, ok := m.queue.Pop(ctx)
		if !ok {
			return
		}
		m.deliver(ctx, msg)
	}
}

func (m *Manager) deliver(ctx context.Context, msg Message) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	c, ok := m.Get(msg.Receiver)
	if !ok {
		logger.Warn(fmt.Sprintf("unknown receiver, dropping %s", msg))
		m.increment("bus.dropped")
		return
	}
	if !c.Connected() {
		logger.Warn(fmt.Sprintf("receiver %s not connected, dropping %s", msg.Receiver, msg))
		m.increment("bus.dropped")
		return
	}

	handled, err := m.safeDeliver(ctx, c, msg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to deliver %s: %v", msg, err))
		m.increment("bus.failed")
		return
	}
	if !handled {
		logger.Warn(fmt.Sprintf("%s did not handle %s", msg.Receiver, msg))
		m.increment("bus.dropped")
		return
	}
	m.increment("bus.delivered")
}

func (m *Manager) safeDeliver(ctx context.Context, c Connector, msg Message) (handled bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic in %s: %v", c.Name(), p)
		}
	}()
	return c.Deliver(ctx, msg)
}

func (m *Manager) increment(name string) {
	if m.metrics != nil {
		m.metrics.Increment(name)
	}
}

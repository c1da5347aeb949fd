// Package buttplug drives haptic devices through an Intiface server.
package buttplug

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/connector"
	"github.com/s21platform/stream-hub/internal/model"
)

const (
	ActionVibe    = "vibe"
	ActionStop    = "stop"
	ActionDisable = "disable"

	clientName   = "stream-hub"
	scanDuration = 10 * time.Second
	pingPoll     = time.Second
	queueSize    = 64
)

var ErrQueueFull = errors.New("vibe queue is full")

type queued struct {
	group      VibeGroup
	generation uint64
}

type device struct {
	name      string
	actuators []actuator
}

type Connector struct {
	*connector.WebSocket

	hooks connector.LoggingHooks
	bus   connector.Bus
	send  func(ctx context.Context, v any) (bool, error)
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) bool

	msgID atomic.Uint32
	queue chan queued

	mu            sync.Mutex
	devices       map[int]device
	maxPingTime   time.Duration
	disabledUntil time.Time
	generation    uint64
	cancelGroup   context.CancelFunc
}

func New(url string, bus connector.Bus, opts ...connector.Option) *Connector {
	c := &Connector{
		hooks:   connector.LoggingHooks{Name: model.PeerButtplug},
		bus:     bus,
		now:     time.Now,
		sleep:   sleepContext,
		queue:   make(chan queued, queueSize),
		devices: map[int]device{},
	}
	c.WebSocket = connector.NewWebSocket(model.PeerButtplug, url, c,
		connector.WithWorker(c),
		connector.WithLifecycle(opts...),
	)
	c.send = c.WebSocket.Send
	return c
}

// Ready reports whether there is at least one device to vibe.
func (c *Connector) Ready() bool {
	if !c.Connected() {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.devices) > 0
}

// Devices returns the sorted names of the known devices.
func (c *Connector) Devices() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.devices))
	for _, d := range c.devices {
		names = append(names, d.name)
	}
	sort.Strings(names)
	return names
}

func (c *Connector) Deliver(ctx context.Context, msg connector.Message) (bool, error) {
	if handled, err := c.WebSocket.Deliver(ctx, msg); handled || err != nil {
		return handled, err
	}

	switch msg.Action {
	case ActionVibe:
		group, err := connector.PayloadAs[VibeGroup](msg)
		if err != nil {
			return true, err
		}
		return true, c.enqueue(group)

	case ActionStop:
		c.stop(ctx)
		return true, nil

	case ActionDisable:
		d, err := disableDuration(msg)
		if err != nil {
			return true, err
		}
		c.disable(d)
		return true, nil
	}
	return false, nil
}

func (c *Connector) OnConnected(ctx context.Context) error {
	if err := c.hooks.OnConnected(ctx); err != nil {
		return err
	}

	_, err := c.send(ctx, envelope("RequestServerInfo", requestServerInfo{
		ID:             c.nextID(),
		ClientName:     clientName,
		MessageVersion: messageVersion,
	}))
	return err
}

func (c *Connector) OnDisconnected(ctx context.Context) {
	c.mu.Lock()
	c.devices = map[int]device{}
	c.maxPingTime = 0
	c.mu.Unlock()

	c.hooks.OnDisconnected(ctx)
}

func (c *Connector) OnError(ctx context.Context, err error) {
	c.hooks.OnError(ctx, err)
}

func (c *Connector) OnMessage(ctx context.Context, data json.RawMessage) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	messages, err := decodeFrame(data)
	if err != nil {
		return err
	}

	for _, m := range messages {
		switch m.Kind {
		case "ServerInfo":
			var info serverInfo
			if err = json.Unmarshal(m.Body, &info); err != nil {
				return fmt.Errorf("failed to decode server info: %w", err)
			}
			logger.Info(fmt.Sprintf("%s: connected to %s, protocol v%d", c.Name(), info.ServerName, info.MessageVersion))

			c.mu.Lock()
			c.maxPingTime = time.Duration(info.MaxPingTime) * time.Millisecond
			c.mu.Unlock()

			if _, err = c.send(ctx, envelope("RequestDeviceList", idOnly{ID: c.nextID()})); err != nil {
				return err
			}
			if _, err = c.send(ctx, envelope("StartScanning", idOnly{ID: c.nextID()})); err != nil {
				return err
			}

		case "DeviceList":
			var list deviceList
			if err = json.Unmarshal(m.Body, &list); err != nil {
				return fmt.Errorf("failed to decode device list: %w", err)
			}
			for _, d := range list.Devices {
				c.addDevice(ctx, d)
			}

		case "DeviceAdded":
			var d deviceInfo
			if err = json.Unmarshal(m.Body, &d); err != nil {
				return fmt.Errorf("failed to decode device: %w", err)
			}
			c.addDevice(ctx, d)

		case "DeviceRemoved":
			var d deviceRemoved
			if err = json.Unmarshal(m.Body, &d); err != nil {
				return fmt.Errorf("failed to decode device: %w", err)
			}
			c.mu.Lock()
			removed, ok := c.devices[d.DeviceIndex]
			delete(c.devices, d.DeviceIndex)
			c.mu.Unlock()
			if ok {
				logger.Info(fmt.Sprintf("%s: device removed: %s", c.Name(), removed.name))
			}

		case "Error":
			var e errorMessage
			if err = json.Unmarshal(m.Body, &e); err != nil {
				return fmt.Errorf("failed to decode error: %w", err)
			}
			logger.Warn(fmt.Sprintf("%s: server error %d for message %d: %s", c.Name(), e.ErrorCode, e.ID, e.ErrorMessage))

		case "Ok", "ScanningFinished":

		default:
			logger.Info(fmt.Sprintf("%s: unhandled %s: %.500s", c.Name(), m.Kind, m.Body))
		}
	}
	return nil
}

// Work runs the device scan, the keep-alive ping and the vibe queue for one session.
func (c *Connector) Work(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.scanLoop(ctx)
	})
	g.Go(func() error {
		return c.pingLoop(ctx)
	})
	g.Go(func() error {
		return c.vibeLoop(ctx)
	})
	return g.Wait()
}

func (c *Connector) scanLoop(ctx context.Context) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	if !c.sleep(ctx, scanDuration) {
		return nil
	}
	if _, err := c.send(ctx, envelope("StopScanning", idOnly{ID: c.nextID()})); err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("%s: device scan complete: %v", c.Name(), c.Devices()))
	return nil
}

func (c *Connector) pingLoop(ctx context.Context) error {
	for {
		c.mu.Lock()
		interval := c.maxPingTime / 2
		c.mu.Unlock()

		if interval <= 0 {
			if !c.sleep(ctx, pingPoll) {
				return nil
			}
			continue
		}

		if !c.sleep(ctx, interval) {
			return nil
		}
		if _, err := c.send(ctx, envelope("Ping", idOnly{ID: c.nextID()})); err != nil {
			return err
		}
	}
}

func (c *Connector) vibeLoop(ctx context.Context) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	for {
		var item queued
		select {
		case <-ctx.Done():
			return nil
		case item = <-c.queue:
		}

		logger.Info(fmt.Sprintf("%s: %s; queue remaining: %d", c.Name(), item.group, len(c.queue)))
		if err := c.play(ctx, item); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}

		if len(c.queue) == 0 {
			if err := c.vibeAll(ctx, 0); err != nil {
				return err
			}
		}
	}
}

// play runs the frames of one group. It returns early when the group is stopped.
func (c *Connector) play(ctx context.Context, item queued) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	group := item.group

	c.mu.Lock()
	if item.generation != c.generation {
		c.mu.Unlock()
		return nil
	}
	gctx, cancel := context.WithCancel(ctx)
	c.cancelGroup = cancel
	c.mu.Unlock()
	defer cancel()

	for i, frame := range group.Frames {
		if frame.Duration <= 0 {
			continue
		}

		for {
			delay := c.disabledFor()
			if delay <= 0 {
				break
			}
			text := fmt.Sprintf("Vibe: disabled for %.2f seconds", delay.Seconds())
			logger.Info(fmt.Sprintf("%s: %s", c.Name(), text))
			c.chat(group.ChannelID, text)
			if !c.sleep(gctx, delay) {
				return nil
			}
		}

		logger.Info(fmt.Sprintf("%s: %s", c.Name(), frame))
		if i == 0 {
			c.chat(group.ChannelID, summary(group, len(c.queue)))
		}

		if err := c.vibeAll(ctx, frame.Value); err != nil {
			return err
		}
		if !c.sleep(gctx, frame.Duration) {
			return nil
		}
	}
	return nil
}

func summary(group VibeGroup, pending int) string {
	text := fmt.Sprintf("Vibe: %d items for %.0fs", len(group.Frames), math.Round(group.Duration().Seconds()))
	if len(group.Frames) == 1 {
		text += fmt.Sprintf(" at %.0f%%", math.Round(group.Frames[0].Value*100))
	}
	return text + fmt.Sprintf(" by %s; queued: %d", group.Username, pending)
}

func (c *Connector) enqueue(group VibeGroup) error {
	if len(group.Frames) == 0 {
		return nil
	}

	c.mu.Lock()
	item := queued{group: group, generation: c.generation}
	c.mu.Unlock()

	select {
	case c.queue <- item:
		return nil
	default:
		return ErrQueueFull
	}
}

// stop drops the queue, aborts the playing group and turns every device off.
func (c *Connector) stop(ctx context.Context) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	c.mu.Lock()
	c.generation++
	if c.cancelGroup != nil {
		c.cancelGroup()
	}
	c.mu.Unlock()

drain:
	for {
		select {
		case <-c.queue:
		default:
			break drain
		}
	}

	if err := c.vibeAll(ctx, 0); err != nil {
		logger.Warn(fmt.Sprintf("%s: failed to stop devices: %v", c.Name(), err))
	}
}

func (c *Connector) disable(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	until := c.now().Add(d)
	if until.After(c.disabledUntil) {
		c.disabledUntil = until
	}
}

func (c *Connector) disabledFor() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disabledUntil.Sub(c.now())
}

func (c *Connector) vibeAll(ctx context.Context, value float64) error {
	value = min(max(value, 0), 1)

	c.mu.Lock()
	cmds := make([]scalarCmd, 0, len(c.devices))
	for index, d := range c.devices {
		cmd := scalarCmd{DeviceIndex: index}
		for i, a := range d.actuators {
			cmd.Scalars = append(cmd.Scalars, scalar{Index: i, Scalar: value, ActuatorType: a.ActuatorType})
		}
		if len(cmd.Scalars) > 0 {
			cmds = append(cmds, cmd)
		}
	}
	c.mu.Unlock()

	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].DeviceIndex < cmds[j].DeviceIndex
	})
	for _, cmd := range cmds {
		cmd.ID = c.nextID()
		if _, err := c.send(ctx, envelope("ScalarCmd", cmd)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Connector) addDevice(ctx context.Context, d deviceInfo) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	c.mu.Lock()
	c.devices[d.DeviceIndex] = device{name: d.DeviceName, actuators: d.DeviceMessages.ScalarCmd}
	c.mu.Unlock()

	logger.Info(fmt.Sprintf("%s: device added: %s with %d actuators", c.Name(), d.DeviceName, len(d.DeviceMessages.ScalarCmd)))
}

func (c *Connector) chat(channelID, text string) {
	c.bus.Enqueue(c.Name(), model.PeerJoystickTV, "chat", model.ChatMessage{ChannelID: channelID, Text: text})
}

func (c *Connector) nextID() uint32 {
	return c.msgID.Add(1)
}

// disableDuration accepts a time.Duration or a number of seconds.
func disableDuration(msg connector.Message) (time.Duration, error) {
	if d, ok := msg.Payload.(time.Duration); ok {
		return d, nil
	}

	seconds, err := connector.PayloadAs[float64](msg)
	if err != nil {
		return 0, err
	}
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("%s: invalid duration %v", msg, seconds)
	}
	return time.Duration(seconds * float64(time.Second)), nil
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

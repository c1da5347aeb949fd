package pishock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	logger_lib "github.com/s21platform/logger-lib"

	pishock_client "github.com/s21platform/stream-hub/internal/client/pishock"
	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/connector"
	"github.com/s21platform/stream-hub/internal/model"
	"github.com/s21platform/stream-hub/internal/pkg/dsl"
)

const ActionShock = "shock"

type publish struct {
	Operation       string           `json:"Operation"`
	PublishCommands []publishCommand `json:"PublishCommands"`
}

type publishCommand struct {
	Target string      `json:"Target"`
	Body   publishBody `json:"Body"`
}

type publishBody struct {
	ID        int64      `json:"id"`
	Mode      ShockMode  `json:"m"`
	Intensity int        `json:"i"`
	Duration  int64      `json:"d"`
	Repeat    bool       `json:"r"`
	Log       publishLog `json:"l"`
}

type publishLog struct {
	UserID     int64  `json:"u"`
	Type       string `json:"ty"`
	Warning    bool   `json:"w"`
	Held       bool   `json:"h"`
	Originator string `json:"o"`
}

// BrokerURL adds the account credentials to the broker address.
func BrokerURL(base, username, apiKey string) string {
	return fmt.Sprintf("%s?Username=%s&ApiKey=%s", base, url.QueryEscape(username), url.QueryEscape(apiKey))
}

type Connector struct {
	*connector.WebSocket

	hooks connector.LoggingHooks
	api   API
	rnd   dsl.Random
	send  func(ctx context.Context, v any) (bool, error)

	mu      sync.RWMutex
	user    *pishock_client.UserInfo
	devices []pishock_client.Device
}

func New(url string, api API, opts ...connector.Option) *Connector {
	c := &Connector{
		hooks: connector.LoggingHooks{Name: model.PeerPiShock},
		api:   api,
		rnd:   dsl.DefaultRandom,
	}
	c.WebSocket = connector.NewWebSocket(model.PeerPiShock, url, c, connector.WithLifecycle(opts...))
	c.send = c.WebSocket.Send
	return c
}

// Ready reports whether shocks can be published right now.
func (c *Connector) Ready() bool {
	if !c.Connected() {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil && len(c.devices) > 0
}

func (c *Connector) Deliver(ctx context.Context, msg connector.Message) (bool, error) {
	if handled, err := c.WebSocket.Deliver(ctx, msg); handled || err != nil {
		return handled, err
	}

	switch msg.Action {
	case ActionShock:
		group, err := connector.PayloadAs[ShockGroup](msg)
		if err != nil {
			return true, err
		}
		for _, frame := range group.Frames {
			if err = c.shock(ctx, frame, group.Username); err != nil {
				return true, err
			}
		}
		return true, nil
	}
	return false, nil
}

// OnConnected loads the account and its devices once. Failures ask for a fresh connection.
func (c *Connector) OnConnected(ctx context.Context) error {
	if err := c.hooks.OnConnected(ctx); err != nil {
		return err
	}
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		logger.Info(fmt.Sprintf("%s: fetching user id", c.Name()))
		user, err := c.api.UserInfo(ctx)
		if err != nil {
			return connector.NewReconnectError("failed to fetch user id", err)
		}
		c.user = user
	}

	if len(c.devices) == 0 {
		logger.Info(fmt.Sprintf("%s: fetching devices", c.Name()))
		devices, err := c.api.Devices(ctx, c.user.UserID)
		if err != nil {
			return connector.NewReconnectError("failed to fetch devices", err)
		}
		c.devices = devices
	}

	logger.Info(fmt.Sprintf("%s: %d devices ready", c.Name(), len(c.devices)))
	return nil
}

func (c *Connector) OnDisconnected(ctx context.Context) {
	c.hooks.OnDisconnected(ctx)
}

func (c *Connector) OnError(ctx context.Context, err error) {
	c.hooks.OnError(ctx, err)
}

func (c *Connector) OnMessage(ctx context.Context, data json.RawMessage) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.Info(fmt.Sprintf("%s: received %.500s", c.Name(), data))
	return nil
}

// shock publishes frame to a random shocker of a random device.
func (c *Connector) shock(ctx context.Context, frame ShockFrame, username string) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	c.mu.RLock()
	user, devices := c.user, c.devices
	c.mu.RUnlock()

	if user == nil || len(devices) == 0 {
		logger.Warn(fmt.Sprintf("%s: no devices, dropping %s", c.Name(), frame))
		return nil
	}

	device := devices[c.rnd.IntN(len(devices))]
	if len(device.Shockers) == 0 {
		logger.Warn(fmt.Sprintf("%s: device %s has no shockers", c.Name(), device.Name))
		return nil
	}
	shocker := device.Shockers[c.rnd.IntN(len(device.Shockers))]
	if !shocker.Available() {
		logger.Warn(fmt.Sprintf("%s: shocker %s is paused", c.Name(), shocker.Name))
		return nil
	}

	originator := username
	if originator == "" {
		originator = c.Name()
	}

	_, err := c.send(ctx, publish{
		Operation: "PUBLISH",
		PublishCommands: []publishCommand{{
			Target: fmt.Sprintf("c%d-ops", device.ClientID),
			Body: publishBody{
				ID:        shocker.ShockerID,
				Mode:      frame.Mode,
				Intensity: min(max(frame.Intensity, 1), 100),
				Duration:  frame.DurationMS(),
				Repeat:    true,
				Log: publishLog{
					UserID:     user.UserID,
					Type:       "api",
					Originator: originator,
				},
			},
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to publish shock: %w", err)
	}
	logger.Info(fmt.Sprintf("%s: sent %s to %s/%s", c.Name(), frame, device.Name, shocker.Name))
	return nil
}

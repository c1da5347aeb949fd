// Package warudo drives the Warudo avatar over its websocket blueprint interface.
package warudo

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/connector"
	"github.com/s21platform/stream-hub/internal/model"
)

const ActionAction = "action"

type Connector struct {
	*connector.WebSocket

	hooks connector.LoggingHooks
	send  func(ctx context.Context, v any) (bool, error)
}

func New(url string, opts ...connector.Option) *Connector {
	c := &Connector{hooks: connector.LoggingHooks{Name: model.PeerWarudo}}
	c.WebSocket = connector.NewWebSocket(model.PeerWarudo, url, c, connector.WithLifecycle(opts...))
	c.send = c.WebSocket.Send
	return c
}

// Deliver forwards "action" payloads to Warudo unchanged.
func (c *Connector) Deliver(ctx context.Context, msg connector.Message) (bool, error) {
	if handled, err := c.WebSocket.Deliver(ctx, msg); handled || err != nil {
		return handled, err
	}

	switch msg.Action {
	case ActionAction:
		if msg.Payload == nil {
			return true, fmt.Errorf("%s: empty payload", msg)
		}
		if _, err := c.send(ctx, msg.Payload); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

func (c *Connector) OnConnected(ctx context.Context) error {
	return c.hooks.OnConnected(ctx)
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

// Package streamerbot runs Streamer.bot actions and triggers over its websocket server.
package streamerbot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/connector"
	"github.com/s21platform/stream-hub/internal/model"
)

const (
	ActionAction  = "action"
	ActionTrigger = "trigger"
)

type named struct {
	Name string `json:"name"`
}

type request struct {
	Request string         `json:"request"`
	ID      string         `json:"id"`
	Action  *named         `json:"action,omitempty"`
	Trigger *named         `json:"trigger,omitempty"`
	Args    map[string]any `json:"args"`
}

type Connector struct {
	*connector.WebSocket

	hooks connector.LoggingHooks
	send  func(ctx context.Context, v any) (bool, error)
	newID func() string
}

func New(url string, opts ...connector.Option) *Connector {
	c := &Connector{
		hooks: connector.LoggingHooks{Name: model.PeerStreamerBot},
		newID: uuid.NewString,
	}
	c.WebSocket = connector.NewWebSocket(model.PeerStreamerBot, url, c, connector.WithLifecycle(opts...))
	c.send = c.WebSocket.Send
	return c
}

func (c *Connector) Deliver(ctx context.Context, msg connector.Message) (bool, error) {
	if handled, err := c.WebSocket.Deliver(ctx, msg); handled || err != nil {
		return handled, err
	}

	switch msg.Action {
	case ActionAction, ActionTrigger:
		req, err := connector.PayloadAs[model.StreamerBotRequest](msg)
		if err != nil {
			return true, err
		}
		if req.Name == "" {
			return true, fmt.Errorf("%s: missing name", msg)
		}
		if _, err = c.send(ctx, c.request(msg.Action, req)); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

func (c *Connector) request(action string, req model.StreamerBotRequest) request {
	res := request{ID: c.newID(), Args: req.Args}
	if res.Args == nil {
		res.Args = map[string]any{}
	}
	if action == ActionTrigger {
		res.Request = "Trigger"
		res.Trigger = &named{Name: req.Name}
	} else {
		res.Request = "DoAction"
		res.Action = &named{Name: req.Name}
	}
	return res
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

	var frame struct {
		Request string `json:"request"`
	}
	if err := json.Unmarshal(data, &frame); err == nil && frame.Request == "Hello" {
		logger.Info(fmt.Sprintf("%s: received hello", c.Name()))
		return nil
	}
	logger.Info(fmt.Sprintf("%s: received %.500s", c.Name(), data))
	return nil
}

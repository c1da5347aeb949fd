// Package obs talks to OBS Studio over obs-websocket protocol v5.
package obs

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/connector"
	"github.com/s21platform/stream-hub/internal/model"
)

const (
	ActionClip = "clip"

	ClipCooldown = 30 * time.Second

	rpcVersion = 1
)

// obs-websocket opcodes
const (
	opHello           = 0
	opIdentify        = 1
	opIdentified      = 2
	opRequest         = 6
	opRequestResponse = 7
)

type frame struct {
	Op int             `json:"op"`
	D  json.RawMessage `json:"d"`
}

type outFrame struct {
	Op int `json:"op"`
	D  any `json:"d"`
}

type hello struct {
	OBSWebSocketVersion string `json:"obsWebSocketVersion"`
	Authentication      *struct {
		Challenge string `json:"challenge"`
		Salt      string `json:"salt"`
	} `json:"authentication"`
}

type identify struct {
	RPCVersion         int    `json:"rpcVersion"`
	Authentication     string `json:"authentication,omitempty"`
	EventSubscriptions int    `json:"eventSubscriptions"`
}

type request struct {
	RequestType string `json:"requestType"`
	RequestID   string `json:"requestId"`
}

type requestResponse struct {
	RequestType   string `json:"requestType"`
	RequestID     string `json:"requestId"`
	RequestStatus struct {
		Result  bool   `json:"result"`
		Code    int    `json:"code"`
		Comment string `json:"comment"`
	} `json:"requestStatus"`
}

type Connector struct {
	*connector.WebSocket

	hooks    connector.LoggingHooks
	password string
	send     func(ctx context.Context, v any) (bool, error)
	newID    func() string
	now      func() time.Time

	mu       sync.Mutex
	lastClip time.Time
}

func New(url, password string, opts ...connector.Option) *Connector {
	c := &Connector{
		hooks:    connector.LoggingHooks{Name: model.PeerOBS},
		password: password,
		newID:    uuid.NewString,
		now:      time.Now,
	}
	c.WebSocket = connector.NewWebSocket(model.PeerOBS, url, c, connector.WithLifecycle(opts...))
	c.send = c.WebSocket.Send
	return c
}

// Deliver saves the replay buffer on "clip", at most once per ClipCooldown.
func (c *Connector) Deliver(ctx context.Context, msg connector.Message) (bool, error) {
	if handled, err := c.WebSocket.Deliver(ctx, msg); handled || err != nil {
		return handled, err
	}

	switch msg.Action {
	case ActionClip:
		logger := logger_lib.FromContext(ctx, config.KeyLogger)

		c.mu.Lock()
		now := c.now()
		if now.Sub(c.lastClip) < ClipCooldown {
			c.mu.Unlock()
			logger.Info(fmt.Sprintf("%s: clip skipped, cooling down", c.Name()))
			return true, nil
		}
		c.lastClip = now
		c.mu.Unlock()

		return true, c.request(ctx, "SaveReplayBuffer")
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

	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to decode frame: %w", err)
	}

	switch f.Op {
	case opHello:
		var h hello
		if err := json.Unmarshal(f.D, &h); err != nil {
			return fmt.Errorf("failed to decode hello: %w", err)
		}
		logger.Info(fmt.Sprintf("%s: hello from obs-websocket %s", c.Name(), h.OBSWebSocketVersion))

		id := identify{RPCVersion: rpcVersion}
		if h.Authentication != nil {
			id.Authentication = Authenticate(c.password, h.Authentication.Salt, h.Authentication.Challenge)
		}
		_, err := c.send(ctx, outFrame{Op: opIdentify, D: id})
		return err

	case opIdentified:
		logger.Info(fmt.Sprintf("%s: identified, starting replay buffer", c.Name()))
		return c.request(ctx, "StartReplayBuffer")

	case opRequestResponse:
		var resp requestResponse
		if err := json.Unmarshal(f.D, &resp); err != nil {
			return fmt.Errorf("failed to decode request response: %w", err)
		}
		if !resp.RequestStatus.Result {
			logger.Warn(fmt.Sprintf("%s: %s failed: %d %s", c.Name(), resp.RequestType, resp.RequestStatus.Code, resp.RequestStatus.Comment))
			return nil
		}
		logger.Info(fmt.Sprintf("%s: %s done", c.Name(), resp.RequestType))
	}
	return nil
}

func (c *Connector) request(ctx context.Context, requestType string) error {
	_, err := c.send(ctx, outFrame{Op: opRequest, D: request{RequestType: requestType, RequestID: c.newID()}})
	return err
}

// Authenticate builds the obs-websocket v5 auth string:
// base64(sha256(base64(sha256(password + salt)) + challenge)).
func Authenticate(password, salt, challenge string) string {
	secret := sha256.Sum256([]byte(password + salt))
	secretB64 := base64.StdEncoding.EncodeToString(secret[:])
	auth := sha256.Sum256([]byte(secretB64 + challenge))
	return base64.StdEncoding.EncodeToString(auth[:])
}

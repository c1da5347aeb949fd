// Package vrchat sends avatar parameters to VRChat over OSC.
package vrchat

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"

	"github.com/hypebeast/go-osc/osc"

	"github.com/s21platform/stream-hub/internal/connector"
	"github.com/s21platform/stream-hub/internal/model"
)

const ActionOSC = "osc"

// Connector has no session to keep: Open builds the UDP client and Serve waits for shutdown.
type Connector struct {
	*connector.Lifecycle

	hooks connector.LoggingHooks
	host  string

	mu     sync.Mutex
	client *osc.Client
}

func New(host string, opts ...connector.Option) *Connector {
	c := &Connector{
		hooks: connector.LoggingHooks{Name: model.PeerVRChat},
		host:  host,
	}
	c.Lifecycle = connector.NewLifecycle(model.PeerVRChat, c, opts...)
	return c
}

func (c *Connector) Open(_ context.Context) (func(), error) {
	host, port, err := splitHostPort(c.host)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.client = osc.NewClient(host, port)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		c.client = nil
		c.mu.Unlock()
	}, nil
}

func (c *Connector) Serve(ctx context.Context) connector.Result {
	<-ctx.Done()
	return connector.Shutdown()
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

func (c *Connector) Deliver(_ context.Context, msg connector.Message) (bool, error) {
	if msg.Action != ActionOSC {
		return false, nil
	}

	m, err := connector.PayloadAs[model.OSCMessage](msg)
	if err != nil {
		return true, err
	}
	if m.Address == "" {
		return true, fmt.Errorf("%s: missing address", msg)
	}

	c.mu.Lock()
	client := c.client
	c.mu.Unlock()
	if client == nil {
		return true, connector.ErrNotConnected
	}

	if err = client.Send(osc.NewMessage(m.Address, oscArgs(m.Args)...)); err != nil {
		return true, fmt.Errorf("failed to send osc message: %w", err)
	}
	return true, nil
}

// oscArgs narrows numbers to the 32 bit types avatar parameters use. JSON numbers become floats.
func oscArgs(args []any) []any {
	res := make([]any, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case float64:
			res[i] = float32(v)
		case int:
			res[i] = int32(v)
		case int64:
			res[i] = int32(v)
		default:
			res[i] = arg
		}
	}
	return res
}

func splitHostPort(hostport string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(hostport)
	if err != nil {
		return "", 0, fmt.Errorf("invalid host:port %q: %w", hostport, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	return host, port, nil
}

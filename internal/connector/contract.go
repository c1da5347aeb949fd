//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package connector

import (
	"context"
	"encoding/json"
)

// Connector is a peer adapter driven by the Manager.
type Connector interface {
	Name() string
	Connected() bool
	State() State
	Run(ctx context.Context) error
	Deliver(ctx context.Context, msg Message) (bool, error)
}

// Hooks are the lifecycle callbacks of a peer.
type Hooks interface {
	OnConnected(ctx context.Context) error
	OnDisconnected(ctx context.Context)
	OnError(ctx context.Context, err error)
}

// Peer is the protocol specific half of a connector driven by a Lifecycle.
type Peer interface {
	Hooks
	// Open acquires the underlying connection. release is called on every exit path.
	Open(ctx context.Context) (release func(), err error)
	// Serve runs the receive loop until the peer closes, fails or ctx is done.
	Serve(ctx context.Context) Result
}

// MessageHandler receives the decoded frames of a WebSocket peer.
type MessageHandler interface {
	Hooks
	OnMessage(ctx context.Context, data json.RawMessage) error
}

// Worker runs next to the read loop of a WebSocket session.
type Worker interface {
	Work(ctx context.Context) error
}

// Readier is implemented by connectors that need more than an open session to take work.
type Readier interface {
	Ready() bool
}

// Bus is the part of the Manager visible to connectors.
type Bus interface {
	Enqueue(sender, receiver, action string, payload any)
}

type Metrics interface {
	Increment(name string)
}

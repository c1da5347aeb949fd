//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package joysticktv

import (
	"context"

	"github.com/s21platform/stream-hub/internal/command"
)

// Presence keeps channel and viewer state in step with the gateway.
type Presence interface {
	Reconcile(ctx context.Context) ([]string, error)
	RewardPresent(ctx context.Context) error
	StreamStarted(ctx context.Context, channelID string) error
	StreamResuming(ctx context.Context, channelID string) error
	StreamEnded(ctx context.Context, channelID string) error
	EnterStream(ctx context.Context, channelID, username string) error
	LeaveStream(ctx context.Context, channelID, username string) error
	Chatted(ctx context.Context, channelID, username string) (float64, error)
	Followed(ctx context.Context, channelID, username string) (float64, error)
	Subscribed(ctx context.Context, channelID, username string) (float64, error)
	Tipped(ctx context.Context, channelID, username string, amount float64) (float64, error)
	Raided(ctx context.Context, channelID, username string, viewers int) (float64, error)
	TouchLastEvent(ctx context.Context) error
}

type EventRunner interface {
	Run(ctx context.Context, ev *command.Event) bool
}

type Dispatcher interface {
	Dispatch(ctx context.Context, req command.Request) error
}

type Bus interface {
	Enqueue(sender, receiver, action string, payload any)
}

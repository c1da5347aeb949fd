//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package presence

import (
	"context"
	"time"

	"github.com/s21platform/stream-hub/internal/model"
)

type DBRepo interface {
	GetOrCreateChannel(ctx context.Context, channelID string) (*model.Channel, error)
	GetChannels(ctx context.Context) ([]model.Channel, error)
	GetLiveChannels(ctx context.Context) ([]model.Channel, error)
	UpdateChannel(ctx context.Context, channel *model.Channel) error
	GetOrCreateViewer(ctx context.Context, channel *model.Channel, username string) (*model.Viewer, error)
	GetPresentViewers(ctx context.Context, channelPK int64) ([]model.Viewer, error)
	UpdateViewer(ctx context.Context, viewer *model.Viewer) error
	GetLastEventReceivedAt(ctx context.Context) (*time.Time, error)
	SetLastEventReceivedAt(ctx context.Context, at time.Time) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

// StatusFetcher asks the streaming platform whether a channel is live right now.
type StatusFetcher interface {
	StreamLive(ctx context.Context, channelID string) (bool, error)
}

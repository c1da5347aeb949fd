//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package command

import (
	"context"

	"github.com/s21platform/stream-hub/internal/model"
)

// Bus queues a message for another connector.
type Bus interface {
	Enqueue(sender, receiver, action string, payload any)
}

// Peers reports whether a connector can take work right now.
type Peers interface {
	Ready(name string) bool
}

type PointsStore interface {
	Points(ctx context.Context, channelID, username string) (*model.Viewer, error)
	Spend(ctx context.Context, channelID, username string, cost float64) (*model.Viewer, error)
}

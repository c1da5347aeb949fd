//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"encoding/json"

	"github.com/s21platform/stream-hub/internal/connector"
)

type Bus interface {
	Snapshot() []connector.Status
	Pending() int
	Get(name string) (connector.Connector, bool)
	Enqueue(sender, receiver, action string, payload any)
}

type TokenInitializer interface {
	InitAccessToken(ctx context.Context, code string) (string, error)
}

type Validator interface {
	ValidateOAuthCode(code string) error
	ValidateBusRequest(receiver, action string, payload json.RawMessage) error
}

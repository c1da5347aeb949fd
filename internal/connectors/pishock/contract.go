//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package pishock

import (
	"context"

	pishock_client "github.com/s21platform/stream-hub/internal/client/pishock"
)

type API interface {
	UserInfo(ctx context.Context) (*pishock_client.UserInfo, error)
	Devices(ctx context.Context, userID int64) ([]pishock_client.Device, error)
}

//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package reward

import (
	"context"
)

type Rewarder interface {
	RewardPresent(ctx context.Context) error
}

type Gateway interface {
	Connected() bool
}

//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package infra

import (
	"github.com/s21platform/stream-hub/internal/model"
)

type TokenValidator interface {
	ValidateAdminToken(tokenString string) (*model.AdminClaims, error)
}

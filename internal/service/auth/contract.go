//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package auth

import (
	"context"

	"github.com/s21platform/stream-hub/internal/model"
)

type DBRepo interface {
	GetAccessTokenForUpdate(ctx context.Context, channelID string) (*model.AccessToken, error)
	SaveAccessToken(ctx context.Context, token *model.AccessToken) error
	GetOrCreateChannel(ctx context.Context, channelID string) (*model.Channel, error)
	GetOrCreateUser(ctx context.Context, username string) (*model.User, error)
	UpdateChannel(ctx context.Context, channel *model.Channel) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type JoystickClient interface {
	ExchangeCode(ctx context.Context, code string) (*model.AccessData, error)
	RefreshToken(ctx context.Context, refreshToken string) (*model.AccessData, error)
	StreamSettings(ctx context.Context, accessToken string) (*model.StreamSettings, error)
}

type Secret interface {
	Encrypt(plain string) (string, error)
	Decrypt(token string) (string, error)
}

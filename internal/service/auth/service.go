package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/model"
)

const refreshLeeway = 24 * time.Hour

var (
	ErrTokenNotFound = errors.New("no access token for channel")
	ErrTokenRefresh  = errors.New("failed to refresh access token")
	ErrOAuthInit     = errors.New("access token initialization failed")
)

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service hands out per-channel OAuth access tokens.
//
// Refresh tokens are single use, so a refreshed pair is committed in its own transaction
// before the access token is returned. Callers must not hold a transaction of their own.
type Service struct {
	repo   DBRepo
	client JoystickClient
	secret Secret
	now    func() time.Time
}

func New(repo DBRepo, client JoystickClient, secret Secret, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		client: client,
		secret: secret,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GetAccessToken(ctx context.Context, channelID string) (string, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	var accessToken string
	err := s.repo.WithTx(ctx, func(ctx context.Context) error {
		token, err := s.repo.GetAccessTokenForUpdate(ctx, channelID)
		if err != nil {
			return err
		}
		if token == nil {
			logger.Warn(fmt.Sprintf("no access token for channel %s", channelID))
			return fmt.Errorf("%w %s, please initialize it first", ErrTokenNotFound, channelID)
		}

		now := s.now().UTC()
		if token.ExpiresAt.Sub(now) >= refreshLeeway {
			accessToken, err = s.secret.Decrypt(token.AccessTokenEncrypted)
			return err
		}

		refreshToken, err := s.secret.Decrypt(token.RefreshTokenEncrypted)
		if err != nil {
			return err
		}
		data, err := s.client.RefreshToken(ctx, refreshToken)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to refresh access token of channel %s: %v", channelID, err))
			return fmt.Errorf("%w: %v", ErrTokenRefresh, err)
		}

		if err = s.seal(token, data, now); err != nil {
			return err
		}
		if err = s.repo.SaveAccessToken(ctx, token); err != nil {
			return err
		}

		logger.Info(fmt.Sprintf("refreshed access token of channel %s, expires at %s", channelID, token.ExpiresAt))
		accessToken = data.AccessToken
		return nil
	})
	if err != nil {
		return "", err
	}
	return accessToken, nil
}

// InitAccessToken completes the OAuth flow for a streamer and returns the id of their channel.
func (s *Service) InitAccessToken(ctx context.Context, code string) (string, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	data, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get access token: %v", err))
		return "", fmt.Errorf("%w: %v", ErrOAuthInit, err)
	}

	settings, err := s.client.StreamSettings(ctx, data.AccessToken)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get stream settings: %v", err))
		return "", fmt.Errorf("%w: %v", ErrOAuthInit, err)
	}

	err = s.repo.WithTx(ctx, func(ctx context.Context) error {
		channel, err := s.repo.GetOrCreateChannel(ctx, settings.ChannelID)
		if err != nil {
			return err
		}

		owner, err := s.repo.GetOrCreateUser(ctx, settings.Username)
		if err != nil {
			return err
		}
		if channel.OwnerID == nil || *channel.OwnerID != owner.ID {
			channel.OwnerID = &owner.ID
			if err = s.repo.UpdateChannel(ctx, channel); err != nil {
				return err
			}
		}

		token := &model.AccessToken{ChannelPK: channel.ID}
		if err = s.seal(token, data, s.now().UTC()); err != nil {
			return err
		}
		return s.repo.SaveAccessToken(ctx, token)
	})
	if err != nil {
		return "", err
	}

	logger.Info(fmt.Sprintf("initialized access token of channel %s owned by %s", settings.ChannelID, settings.Username))
	return settings.ChannelID, nil
}

// StreamLive asks the platform for the current stream state of the channel.
func (s *Service) StreamLive(ctx context.Context, channelID string) (bool, error) {
	accessToken, err := s.GetAccessToken(ctx, channelID)
	if err != nil {
		return false, err
	}

	settings, err := s.client.StreamSettings(ctx, accessToken)
	if err != nil {
		return false, err
	}
	return settings.Live, nil
}

func (s *Service) seal(token *model.AccessToken, data *model.AccessData, now time.Time) error {
	accessEnc, err := s.secret.Encrypt(data.AccessToken)
	if err != nil {
		return err
	}
	refreshEnc, err := s.secret.Encrypt(data.RefreshToken)
	if err != nil {
		return err
	}

	token.AccessTokenEncrypted = accessEnc
	token.RefreshTokenEncrypted = refreshEnc
	token.ExpiresAt = data.ExpiresAt.UTC()
	token.RefreshedAt = now
	return nil
}

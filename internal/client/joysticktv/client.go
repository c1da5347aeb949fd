package joysticktv

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/model"
)

const (
	tokenPath          = "/api/oauth/token"
	streamSettingsPath = "/api/users/stream-settings"

	maxErrorBody = 512
)

type Client struct {
	baseURL    string
	basicAuth  string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.JoystickTV.Host, "/"),
		basicAuth: BasicToken(cfg.JoystickTV.ClientID, cfg.JoystickTV.ClientSecret),
		httpClient: &http.Client{
			Timeout: cfg.JoystickTV.Timeout,
		},
	}
}

// BasicToken is the base64 client credential used both for OAuth and for the gateway socket.
func BasicToken(clientID, clientSecret string) string {
	return base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret))
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// ExchangeCode trades an OAuth authorization code for a token pair.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*model.AccessData, error) {
	form := url.Values{
		"redirect_uri": {"unused"},
		"code":         {code},
		"grant_type":   {"authorization_code"},
	}
	data, err := c.token(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}
	return data, nil
}

// RefreshToken uses the single-use refresh token to obtain a new pair.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*model.AccessData, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}
	data, err := c.token(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh access token: %w", err)
	}
	return data, nil
}

func (c *Client) StreamSettings(ctx context.Context, accessToken string) (*model.StreamSettings, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+streamSettingsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	var settings model.StreamSettings
	if err = c.do(req, &settings); err != nil {
		return nil, fmt.Errorf("failed to fetch stream settings: %w", err)
	}
	return &settings, nil
}

func (c *Client) token(ctx context.Context, form url.Values) (*model.AccessData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Basic "+c.basicAuth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var data model.AccessData
	if err = c.do(req, &data); err != nil {
		return nil, err
	}
	if data.AccessToken == "" || data.RefreshToken == "" {
		return nil, fmt.Errorf("token response without tokens")
	}
	data.ExpiresAt = time.Unix(data.ExpiresIn, 0).UTC()
	return &data, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("unexpected status code: %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

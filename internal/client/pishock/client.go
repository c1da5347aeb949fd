package pishock

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/s21platform/stream-hub/internal/config"
)

const maxErrorBody = 512

type UserInfo struct {
	UserID int64 `json:"UserId"`
}

type Shocker struct {
	Name      string `json:"name"`
	ShockerID int64  `json:"shockerId"`
	IsPaused  bool   `json:"isPaused"`
}

func (s Shocker) Available() bool {
	return !s.IsPaused
}

type Device struct {
	ClientID int64     `json:"clientId"`
	Name     string    `json:"name"`
	UserID   int64     `json:"userId"`
	Username string    `json:"username"`
	Shockers []Shocker `json:"shockers"`
}

type Client struct {
	authURL    string
	apiURL     string
	username   string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		authURL:  strings.TrimRight(cfg.PiShock.AuthURL, "/"),
		apiURL:   strings.TrimRight(cfg.PiShock.APIURL, "/"),
		username: cfg.PiShock.Username,
		apiKey:   cfg.PiShock.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.PiShock.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// UserInfo validates the API key and resolves the numeric user id.
func (c *Client) UserInfo(ctx context.Context) (*UserInfo, error) {
	params := url.Values{
		"apikey":   {c.apiKey},
		"username": {c.username},
	}

	var info UserInfo
	if err := c.get(ctx, c.authURL+"/GetUserIfAPIKeyValid", params, &info); err != nil {
		return nil, fmt.Errorf("failed to fetch user id: %w", err)
	}
	if info.UserID == 0 {
		return nil, fmt.Errorf("failed to fetch user id: empty response")
	}
	return &info, nil
}

func (c *Client) Devices(ctx context.Context, userID int64) ([]Device, error) {
	params := url.Values{
		"UserId": {strconv.FormatInt(userID, 10)},
		"Token":  {c.apiKey},
		"api":    {"true"},
	}

	var devices []Device
	if err := c.get(ctx, c.apiURL+"/GetUserDevices", params, &devices); err != nil {
		return nil, fmt.Errorf("failed to fetch devices: %w", err)
	}
	return devices, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

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

package model

import (
	"time"
)

// AccessToken is the stored OAuth token pair of a channel. Both tokens are kept encrypted.
type AccessToken struct {
	ChannelPK             int64     `db:"channel_id"`
	AccessTokenEncrypted  string    `db:"access_token_encrypted"`
	RefreshTokenEncrypted string    `db:"refresh_token_encrypted"`
	ExpiresAt             time.Time `db:"expires_at"`
	RefreshedAt           time.Time `db:"refreshed_at"`
}

type AccessData struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"-"`
	// ExpiresIn is an absolute unix timestamp despite its name
	ExpiresIn int64 `json:"expires_in"`
}

type StreamSettings struct {
	Username           string   `json:"username"`
	StreamTitle        *string  `json:"stream_title"`
	ChatWelcomeMessage *string  `json:"chat_welcome_message"`
	BannedChatWords    []string `json:"banned_chat_words"`
	DeviceActive       bool     `json:"device_active"`
	PhotoURL           *string  `json:"photo_url"`
	Live               bool     `json:"live"`
	NumberOfFollowers  int      `json:"number_of_followers"`
	ChannelID          string   `json:"channel_id"`
}

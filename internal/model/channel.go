package model

import (
	"time"
)

// Channel is one streaming channel. Live state is "last toggle wins": the channel is live when
// LiveAt is strictly after OfflineAt.
type Channel struct {
	ID        int64     `db:"id" json:"-"`
	ChannelID string    `db:"channel_id" json:"channel_id"`
	OwnerID   *int64    `db:"owner_id" json:"-"`
	LiveAt    time.Time `db:"live_at" json:"live_at"`
	OfflineAt time.Time `db:"offline_at" json:"offline_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func NewChannel(channelID string, now time.Time) *Channel {
	now = now.UTC()
	return &Channel{
		ChannelID: channelID,
		LiveAt:    now,
		OfflineAt: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *Channel) IsLive() bool {
	return c.LiveAt.After(c.OfflineAt)
}

// SetLive is a no-op when the channel is already live.
func (c *Channel) SetLive(at time.Time) {
	if c.IsLive() {
		return
	}
	c.LiveAt = at.UTC()
}

// SetOffline is a no-op when the channel is already offline.
func (c *Channel) SetOffline(at time.Time) {
	if !c.IsLive() {
		return
	}
	c.OfflineAt = at.UTC()
}

// ForceOffline marks the channel offline at the given time regardless of its state and clamps
// LiveAt so that it never lies after OfflineAt.
func (c *Channel) ForceOffline(at time.Time) {
	c.OfflineAt = at.UTC()
	if c.LiveAt.After(c.OfflineAt) {
		c.LiveAt = c.OfflineAt
	}
}

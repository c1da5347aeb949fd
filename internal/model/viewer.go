package model

import (
	"time"
)

type User struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Viewer joins a User to a Channel. JoinCount tracks concurrent sessions of the same user.
type Viewer struct {
	ID           int64      `db:"id" json:"-"`
	UserID       int64      `db:"user_id" json:"-"`
	ChannelID    int64      `db:"channel_id" json:"-"`
	Username     string     `db:"username" json:"username"`
	JoinCount    int        `db:"join_count" json:"join_count"`
	JoinedAt     time.Time  `db:"joined_at" json:"joined_at"`
	LeftAt       time.Time  `db:"left_at" json:"left_at"`
	RewardedAt   time.Time  `db:"rewarded_at" json:"rewarded_at"`
	WatchTime    int64      `db:"watch_time" json:"watch_time"`
	Points       float64    `db:"points" json:"points"`
	ChattedAt    *time.Time `db:"chatted_at" json:"chatted_at,omitempty"`
	FollowedAt   *time.Time `db:"followed_at" json:"followed_at,omitempty"`
	SubscribedAt *time.Time `db:"subscribed_at" json:"subscribed_at,omitempty"`
	TippedAt     *time.Time `db:"tipped_at" json:"tipped_at,omitempty"`
}

func NewViewer(user *User, channel *Channel, now time.Time) *Viewer {
	now = now.UTC()
	return &Viewer{
		UserID:     user.ID,
		ChannelID:  channel.ID,
		Username:   user.Username,
		JoinedAt:   now,
		LeftAt:     now,
		RewardedAt: now,
	}
}

func (v *Viewer) IsPresent() bool {
	return v.JoinCount > 0
}

func (v *Viewer) Join(at time.Time) {
	v.JoinCount++
	v.JoinedAt = at.UTC()
}

// Leave closes one session. LeftAt is recorded only when the last session closes.
func (v *Viewer) Leave(at time.Time) {
	if v.JoinCount > 0 {
		v.JoinCount--
	}
	if v.JoinCount == 0 {
		v.LeftAt = at.UTC()
	}
}

// ForceOffline drops every session at once. Used only when recovering from an outage.
func (v *Viewer) ForceOffline(at time.Time) {
	v.JoinCount = 0
	v.LeftAt = at.UTC()
	if v.JoinedAt.After(v.LeftAt) {
		v.JoinedAt = v.LeftAt
	}
}

package command

import (
	"sync"
	"time"
)

type cooldownKey struct {
	command   string
	channelID string
	username  string
}

// Cooldowns remembers until when a command is blocked per channel and per viewer.
type Cooldowns struct {
	now func() time.Time

	mu    sync.Mutex
	until map[cooldownKey]time.Time
}

func NewCooldowns(now func() time.Time) *Cooldowns {
	if now == nil {
		now = time.Now
	}
	return &Cooldowns{
		now:   now,
		until: make(map[cooldownKey]time.Time),
	}
}

// Remaining returns how long cmd stays blocked for the viewer, zero when it may run.
func (c *Cooldowns) Remaining(cmd *Command, channelID, username string) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var remaining time.Duration
	for _, key := range cooldownKeys(cmd, channelID, username) {
		if d := c.until[key].Sub(now); d > remaining {
			remaining = d
		}
	}
	return remaining
}

// Start blocks cmd for its configured cooldowns.
func (c *Cooldowns) Start(cmd *Command, channelID, username string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, until := range c.until {
		if !until.After(now) {
			delete(c.until, key)
		}
	}

	if d := cmd.Settings.ChannelCooldown; d > 0 {
		c.until[cooldownKey{command: cmd.Key, channelID: channelID}] = now.Add(d)
	}
	if d := cmd.Settings.ViewerCooldown; d > 0 {
		c.until[cooldownKey{command: cmd.Key, channelID: channelID, username: username}] = now.Add(d)
	}
}

func cooldownKeys(cmd *Command, channelID, username string) []cooldownKey {
	return []cooldownKey{
		{command: cmd.Key, channelID: channelID},
		{command: cmd.Key, channelID: channelID, username: username},
	}
}

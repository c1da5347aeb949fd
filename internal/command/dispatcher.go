package command

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/model"
	"github.com/s21platform/stream-hub/internal/presence"
)

// Request is a chat message that carries a bot command.
type Request struct {
	ChannelID string
	Username  string
	Command   string
	Arg       string
	// AccessLevel is derived from the chat roles of the author. Following is looked up here.
	AccessLevel model.AccessLevel
}

type DispatcherOption func(*Dispatcher)

func WithCooldowns(c *Cooldowns) DispatcherOption {
	return func(d *Dispatcher) {
		d.cooldowns = c
	}
}

// Dispatcher resolves chat commands and enforces access level, cooldowns and point costs.
type Dispatcher struct {
	registry  *Registry
	store     PointsStore
	bus       Bus
	peers     Peers
	cooldowns *Cooldowns
}

func NewDispatcher(registry *Registry, store PointsStore, bus Bus, peers Peers, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		store:    store,
		bus:      bus,
		peers:    peers,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.cooldowns == nil {
		d.cooldowns = NewCooldowns(time.Now)
	}
	return d
}

func (d *Dispatcher) Dispatch(ctx context.Context, req Request) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	alias := strings.ToLower(req.Command)
	if alias == "" {
		return nil
	}

	cmd, ok := d.registry.ByAlias(alias)
	if !ok {
		d.fallback(req, alias)
		return nil
	}

	viewer, err := d.store.Points(ctx, req.ChannelID, req.Username)
	if err != nil {
		return fmt.Errorf("failed to load viewer: %w", err)
	}

	level := req.AccessLevel
	if level < model.AccessFollower && viewer.FollowedAt != nil {
		level = model.AccessFollower
	}

	inv := &Invocation{
		ChannelID:   req.ChannelID,
		Username:    req.Username,
		Alias:       alias,
		Arg:         strings.TrimSpace(req.Arg),
		AccessLevel: level,
		Viewer:      viewer,
		Bus:         d.bus,
		Peers:       d.peers,
	}

	if level < cmd.Settings.MinAccessLevel {
		inv.Reply(fmt.Sprintf("You do not have the necessary permissions to use the %s command", alias), true)
		return nil
	}

	if remaining := d.cooldowns.Remaining(cmd, req.ChannelID, req.Username); remaining > 0 {
		inv.Reply(fmt.Sprintf("!%s is on cooldown for another %ds", alias, int(math.Ceil(remaining.Seconds()))), true)
		return nil
	}

	if cost := cmd.Settings.PointCost; cost > 0 {
		viewer, err = d.store.Spend(ctx, req.ChannelID, req.Username, cost)
		if errors.Is(err, presence.ErrInsufficientPoints) {
			inv.Reply(fmt.Sprintf("!%s costs %d points, you have %d", alias, int(cost), int(viewer.Points)), true)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to spend points: %w", err)
		}
		inv.Viewer = viewer
	}

	handled, err := cmd.Handle(ctx, inv)
	if err != nil {
		return fmt.Errorf("failed to handle %s: %w", cmd.Key, err)
	}
	if !handled {
		logger.Info(fmt.Sprintf("%s did not handle !%s", cmd.Key, alias))
		d.fallback(req, alias)
		return nil
	}

	d.cooldowns.Start(cmd, req.ChannelID, req.Username)
	return nil
}

// fallback hands unknown commands to the avatar as OnChatCmd [command, args...].
func (d *Dispatcher) fallback(req Request, alias string) {
	args := append([]string{alias}, strings.Fields(req.Arg)...)
	d.bus.Enqueue(model.PeerJoystickTV, model.PeerWarudo, "action", model.WarudoAction{Action: "OnChatCmd", Data: args})
}

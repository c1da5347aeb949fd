// Package joysticktv is the JoystickTV gateway peer: an ActionCable channel carrying chat,
// presence and stream events in and chat messages out.
package joysticktv

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/command"
	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/connector"
	"github.com/s21platform/stream-hub/internal/model"
)

const (
	ActionChat    = "chat"
	ActionWhisper = "whisper"

	Subprotocol = "actioncable-v1-json"
	Identifier  = `{"channel":"GatewayChannel"}`

	Greeting = "おはよう世界 Good Morning World <3"

	tipDisable  = 180 * time.Second
	tipGoalStep = 100
)

var emoteRe = regexp.MustCompile(`:[\w-]+:`)

// GatewayURL is the gateway socket address authenticated with the basic client token.
func GatewayURL(apiHost, token string) string {
	return apiHost + "?token=" + url.QueryEscape(token)
}

type Connector struct {
	*connector.WebSocket

	hooks      connector.LoggingHooks
	presence   Presence
	events     EventRunner
	dispatcher Dispatcher
	bus        Bus
	vips       map[string]struct{}
	send       func(ctx context.Context, v any) (bool, error)

	rejected atomic.Bool

	mu   sync.Mutex
	live map[string]struct{}
}

func New(
	addr string,
	presence Presence,
	events EventRunner,
	dispatcher Dispatcher,
	bus Bus,
	vips []string,
	opts ...connector.Option,
) *Connector {
	c := &Connector{
		hooks:      connector.LoggingHooks{Name: model.PeerJoystickTV},
		presence:   presence,
		events:     events,
		dispatcher: dispatcher,
		bus:        bus,
		vips:       map[string]struct{}{},
		live:       map[string]struct{}{},
	}
	for _, vip := range vips {
		if vip = strings.ToLower(strings.TrimSpace(vip)); vip != "" {
			c.vips[vip] = struct{}{}
		}
	}
	c.WebSocket = connector.NewWebSocket(model.PeerJoystickTV, addr, c,
		connector.WithSubprotocols(Subprotocol),
		connector.WithLifecycle(opts...),
	)
	c.send = c.WebSocket.Send
	return c
}

// LiveChannels returns the sorted ids of the channels known to be live.
func (c *Connector) LiveChannels() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]string, 0, len(c.live))
	for id := range c.live {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *Connector) Deliver(ctx context.Context, msg connector.Message) (bool, error) {
	if handled, err := c.WebSocket.Deliver(ctx, msg); handled || err != nil {
		return handled, err
	}

	switch msg.Action {
	case ActionChat:
		chat, err := connector.PayloadAs[model.ChatMessage](msg)
		if err != nil {
			return true, err
		}
		return true, c.sendChat(ctx, chat)

	case ActionWhisper:
		chat, err := connector.PayloadAs[model.ChatMessage](msg)
		if err != nil {
			return true, err
		}
		if chat.At == "" {
			return true, fmt.Errorf("%s: whisper without a recipient", msg)
		}
		return true, c.sendWhisper(ctx, chat)
	}
	return false, nil
}

// OnConnected subscribes to the gateway, reconciles presence and greets every live channel.
func (c *Connector) OnConnected(ctx context.Context) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	if err := c.hooks.OnConnected(ctx); err != nil {
		return err
	}
	c.rejected.Store(false)

	logger.Info(fmt.Sprintf("%s: subscribing to gateway", c.Name()))
	if _, err := c.send(ctx, cableCommand{Command: "subscribe", Identifier: Identifier}); err != nil {
		return err
	}

	live, err := c.presence.Reconcile(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("%s: failed to reconcile presence: %v", c.Name(), err))
	}

	c.mu.Lock()
	c.live = map[string]struct{}{}
	for _, id := range live {
		c.live[id] = struct{}{}
	}
	c.mu.Unlock()

	for _, id := range c.LiveChannels() {
		c.bus.Enqueue(c.Name(), c.Name(), ActionChat, model.ChatMessage{ChannelID: id, Text: Greeting})
	}
	return nil
}

// OnDisconnected pays the viewers of live channels up to now. Presence is reconciled on reconnect.
func (c *Connector) OnDisconnected(ctx context.Context) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	c.hooks.OnDisconnected(ctx)
	if err := c.presence.RewardPresent(ctx); err != nil {
		logger.Error(fmt.Sprintf("%s: failed to reward viewers on disconnect: %v", c.Name(), err))
	}
}

func (c *Connector) OnError(ctx context.Context, err error) {
	c.hooks.OnError(ctx, err)
}

func (c *Connector) OnMessage(ctx context.Context, data json.RawMessage) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	if err := c.presence.TouchLastEvent(ctx); err != nil {
		logger.Warn(fmt.Sprintf("%s: %v", c.Name(), err))
	}

	var frame cableFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return fmt.Errorf("failed to decode frame: %w", err)
	}

	switch frame.Type {
	case "welcome", "ping":
		return nil
	case "confirm_subscription":
		logger.Info(fmt.Sprintf("%s: subscription confirmed", c.Name()))
		return nil
	case "reject_subscription":
		logger.Error(fmt.Sprintf("%s: subscription rejected", c.Name()))
		c.rejected.Store(true)
		c.Suspend()
		return nil
	case "disconnect":
		return connector.NewReconnectError("gateway asked to disconnect", nil)
	}

	if c.rejected.Load() || len(frame.Message) == 0 {
		return nil
	}

	var msg gatewayMessage
	if err := json.Unmarshal(frame.Message, &msg); err != nil {
		return fmt.Errorf("failed to decode gateway message: %w", err)
	}
	logger.Info(fmt.Sprintf("%s: received %s in %s", c.Name(), msg.Type, msg.ChannelID))

	return c.handle(ctx, &msg)
}

func (c *Connector) handle(ctx context.Context, msg *gatewayMessage) error {
	if msg.ChannelID == "" {
		return nil
	}

	switch msg.Type {
	case command.EventStarted:
		c.setLive(msg.ChannelID, true)
		return c.presence.StreamStarted(ctx, msg.ChannelID)

	case command.EventStreamResuming:
		c.setLive(msg.ChannelID, true)
		return c.presence.StreamResuming(ctx, msg.ChannelID)

	case command.EventEnded:
		c.setLive(msg.ChannelID, false)
		return c.presence.StreamEnded(ctx, msg.ChannelID)

	case command.EventNewMessage:
		return c.onChat(ctx, msg)

	case command.EventEnterStream:
		if msg.Text == "" {
			return nil
		}
		if err := c.presence.EnterStream(ctx, msg.ChannelID, msg.Text); err != nil {
			return err
		}
		c.runEvents(ctx, msg, msg.Text)
		return nil

	case command.EventLeaveStream:
		if msg.Text == "" {
			return nil
		}
		if err := c.presence.LeaveStream(ctx, msg.ChannelID, msg.Text); err != nil {
			return err
		}
		c.runEvents(ctx, msg, msg.Text)
		return nil

	case command.EventFollowed, command.EventSubscribed, command.EventTipped, command.EventTipGoalIncreased,
		command.EventMilestoneCompleted, command.EventTipGoalMet, command.EventStreamDroppedIn:
		var meta metadata
		if err := json.Unmarshal([]byte(msg.Metadata), &meta); err != nil {
			return fmt.Errorf("invalid %s metadata %q: %w", msg.Type, msg.Metadata, err)
		}
		if err := c.onMetadata(ctx, msg, &meta); err != nil {
			return err
		}
		c.runEvents(ctx, msg, meta.Who)
		return nil
	}
	return nil
}

func (c *Connector) onChat(ctx context.Context, msg *gatewayMessage) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	if msg.Author == nil || msg.Author.Username == "" {
		return nil
	}
	username := msg.Author.Username

	if _, err := c.presence.Chatted(ctx, msg.ChannelID, username); err != nil {
		logger.Error(fmt.Sprintf("%s: failed to record chat of %s: %v", c.Name(), username, err))
	}

	if !c.runEvents(ctx, msg, username) || msg.BotCommand == "" {
		return nil
	}

	return c.dispatcher.Dispatch(ctx, command.Request{
		ChannelID:   msg.ChannelID,
		Username:    username,
		Command:     msg.BotCommand,
		Arg:         msg.BotCommandArg,
		AccessLevel: c.accessLevel(msg),
	})
}

func (c *Connector) onMetadata(ctx context.Context, msg *gatewayMessage, meta *metadata) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	reward := func(kind string, fn func() (float64, error)) {
		if meta.Who == "" {
			return
		}
		if _, err := fn(); err != nil {
			logger.Error(fmt.Sprintf("%s: failed to reward %s of %s: %v", c.Name(), kind, meta.Who, err))
		}
	}

	switch msg.Type {
	case command.EventFollowed:
		reward("follow", func() (float64, error) {
			return c.presence.Followed(ctx, msg.ChannelID, meta.Who)
		})
		c.warudo("OnFollowed", meta.NumberOfFollowers)

	case command.EventSubscribed:
		reward("subscription", func() (float64, error) {
			return c.presence.Subscribed(ctx, msg.ChannelID, meta.Who)
		})
		c.warudo("OnSubscribed", meta.Who)

	case command.EventTipped:
		reward("tip", func() (float64, error) {
			return c.presence.Tipped(ctx, msg.ChannelID, meta.Who, meta.HowMuch)
		})
		c.warudo("OnTipped", meta.HowMuch)
		c.bus.Enqueue(c.Name(), model.PeerButtplug, "disable", tipDisable)
		if meta.TipMenuItem != "" {
			c.warudo("OnRedeemed", meta.TipMenuItem)
		}

	case command.EventTipGoalIncreased:
		c.warudo("OnTipGoalIncreased", []int{meta.Current, meta.Previous})
		if steps := meta.Current/tipGoalStep - meta.Previous/tipGoalStep; steps > 0 {
			c.warudo("OnTipGoalPeriodicStep", steps)
		}

	case command.EventMilestoneCompleted:
		c.warudo("OnMilestoneCompleted", meta.Amount)

	case command.EventTipGoalMet:
		c.warudo("OnTipGoalMet", meta.Amount)

	case command.EventStreamDroppedIn:
		reward("raid", func() (float64, error) {
			return c.presence.Raided(ctx, msg.ChannelID, meta.Who, meta.NumberOfViewers)
		})
		c.warudo("OnStreamDroppedIn", meta.NumberOfViewers)
	}
	return nil
}

// runEvents reports whether the command lookup should go on.
func (c *Connector) runEvents(ctx context.Context, msg *gatewayMessage, username string) bool {
	return c.events.Run(ctx, &command.Event{
		Type:      msg.Type,
		ChannelID: msg.ChannelID,
		Username:  username,
		Text:      msg.Text,
		Emotes:    emoteRe.FindAllString(msg.Text, -1),
		Bus:       c.bus,
	})
}

func (c *Connector) accessLevel(msg *gatewayMessage) model.AccessLevel {
	a := msg.Author
	_, vip := c.vips[strings.ToLower(a.Username)]

	switch {
	case a.IsStreamer, msg.Streamer != nil && a.Slug != "" && a.Slug == msg.Streamer.Slug:
		return model.AccessBroadcaster
	case a.IsModerator:
		return model.AccessModerator
	case vip:
		return model.AccessVIP
	case a.IsSubscriber:
		return model.AccessSubscriber
	}
	return model.AccessViewer
}

func (c *Connector) setLive(channelID string, live bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if live {
		c.live[channelID] = struct{}{}
		return
	}
	delete(c.live, channelID)
}

func (c *Connector) warudo(action string, data any) {
	c.bus.Enqueue(c.Name(), model.PeerWarudo, "action", model.WarudoAction{Action: action, Data: data})
}

// sendChat posts every non-empty line of the message. The first line mentions At.
func (c *Connector) sendChat(ctx context.Context, chat model.ChatMessage) error {
	for i, line := range strings.Split(chat.Text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}
		if i == 0 && chat.At != "" {
			line = "@" + chat.At + " " + line
		}

		if err := c.perform(ctx, sendMessage{Action: "send_message", Text: html.EscapeString(line), ChannelID: chat.ChannelID}); err != nil {
			return err
		}
	}
	return nil
}

func (c *Connector) sendWhisper(ctx context.Context, chat model.ChatMessage) error {
	text := strings.TrimSpace(chat.Text)
	if text == "" {
		return nil
	}
	return c.perform(ctx, sendWhisper{Action: "send_whisper", Username: chat.At, Text: html.EscapeString(text), ChannelID: chat.ChannelID})
}

// perform runs an ActionCable action on the gateway channel.
func (c *Connector) perform(ctx context.Context, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal action: %w", err)
	}
	_, err = c.send(ctx, cableCommand{Command: "message", Identifier: Identifier, Data: string(payload)})
	return err
}

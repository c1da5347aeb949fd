// Package command holds the chat commands and chat event handlers of the JoystickTV gateway.
package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/model"
)

var (
	ErrDuplicateCommand = errors.New("command already registered")
	ErrInvalidCommand   = errors.New("invalid command")
)

type Settings struct {
	MinAccessLevel  model.AccessLevel
	PointCost       float64
	ChannelCooldown time.Duration
	ViewerCooldown  time.Duration
}

// HandleFunc runs a command. Returning false means the command did not apply and the message
// falls through to the default chat command handling.
type HandleFunc func(ctx context.Context, inv *Invocation) (bool, error)

type Command struct {
	Key         string
	Title       string
	Description string
	Aliases     []string
	Settings    Settings
	Handle      HandleFunc
}

// Invocation is one use of a command in chat.
type Invocation struct {
	ChannelID   string
	Username    string
	Alias       string
	Arg         string
	AccessLevel model.AccessLevel
	Viewer      *model.Viewer

	Bus   Bus
	Peers Peers
}

func (i *Invocation) Args() []string {
	return strings.Fields(i.Arg)
}

// Reply sends text to the channel chat, mentioning the author when mention is set.
func (i *Invocation) Reply(text string, mention bool) {
	msg := model.ChatMessage{ChannelID: i.ChannelID, Text: text}
	if mention {
		msg.At = i.Username
	}
	i.Bus.Enqueue(model.PeerJoystickTV, model.PeerJoystickTV, "chat", msg)
}

// Whisper sends text to the author only.
func (i *Invocation) Whisper(text string) {
	i.Bus.Enqueue(model.PeerJoystickTV, model.PeerJoystickTV, "whisper", model.ChatMessage{
		ChannelID: i.ChannelID,
		Text:      text,
		At:        i.Username,
	})
}

func (i *Invocation) Warudo(action string, data any) {
	i.Bus.Enqueue(model.PeerJoystickTV, model.PeerWarudo, "action", model.WarudoAction{Action: action, Data: data})
}

// Registry maps command keys and aliases to commands. It is filled at startup and read only after.
type Registry struct {
	byKey   map[string]*Command
	byAlias map[string]*Command
	order   []*Command
}

func NewRegistry() *Registry {
	return &Registry{
		byKey:   make(map[string]*Command),
		byAlias: make(map[string]*Command),
	}
}

// Add registers cmd. Aliases are case folded and the first command to claim an alias keeps it.
func (r *Registry) Add(cmd Command) error {
	if cmd.Key == "" || cmd.Handle == nil {
		return fmt.Errorf("%w: %q", ErrInvalidCommand, cmd.Key)
	}
	if _, ok := r.byKey[cmd.Key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.Key)
	}

	c := &cmd
	r.byKey[c.Key] = c
	r.order = append(r.order, c)
	for _, alias := range c.Aliases {
		alias = strings.ToLower(alias)
		if _, ok := r.byAlias[alias]; !ok {
			r.byAlias[alias] = c
		}
	}
	return nil
}

func (r *Registry) Get(key string) (*Command, bool) {
	c, ok := r.byKey[key]
	return c, ok
}

func (r *Registry) ByAlias(alias string) (*Command, bool) {
	c, ok := r.byAlias[strings.ToLower(alias)]
	return c, ok
}

// Commands returns the commands in registration order.
func (r *Registry) Commands() []*Command {
	res := make([]*Command, len(r.order))
	copy(res, r.order)
	return res
}

// Register adds cmds in order, logging the rejected ones and the aliases lost to earlier commands.
func Register(ctx context.Context, r *Registry, cmds []Command) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	for _, cmd := range cmds {
		if err := r.Add(cmd); err != nil {
			logger.Warn(fmt.Sprintf("skipping command: %v", err))
			continue
		}
		for _, alias := range cmd.Aliases {
			if owner, _ := r.ByAlias(alias); owner.Key != cmd.Key {
				logger.Warn(fmt.Sprintf("alias %q of %s is already used by %s", alias, cmd.Key, owner.Key))
			}
		}
	}
	logger.Info(fmt.Sprintf("registered %d commands", len(r.order)))
}

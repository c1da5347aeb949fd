package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/s21platform/stream-hub/internal/connectors/buttplug"
	"github.com/s21platform/stream-hub/internal/connectors/pishock"
	"github.com/s21platform/stream-hub/internal/connectors/warudo"
	"github.com/s21platform/stream-hub/internal/model"
	"github.com/s21platform/stream-hub/internal/pkg/dsl"
)

const (
	headPetsReply = "Pet that fluff-ball <3"
	clipCooldown  = 30 * time.Second
	petEmote      = ":felizpet:"
)

type warudoCommand struct {
	key, title, action string
	aliases            []string
}

// avatar animations that need nothing but the trigger
var warudoCommands = []warudoCommand{
	{"feliz.noseboop", "NoseBoop", "Boop", []string{"boop", "boops"}},
	{"feliz.noselick", "NoseLick", "NoseLick", []string{"lick", "licks", "noselick", "noselicks", "kiss", "kisses"}},
	{"feliz.earlick", "EarLick", "EarLick", []string{"earlick", "earlicks"}},
	{"feliz.bellylick", "BellyLick", "BellyLick", []string{"bellylick", "bellylicks"}},
	{"feliz.bonk", "Bonk", "Bonk", []string{"bonk"}},
	{"feliz.hearts", "Hearts", "Hearts", []string{"hearts"}},
	{"feliz.love", "Love", "Love", []string{"love"}},
	{"feliz.balls", "Balls", "Balls", []string{"balls"}},
	{"feliz.feed", "Feed", "Feed", []string{"feed", "food"}},
	{"feliz.hydrate", "Hydrate", "Hydrate", []string{"hydrate", "water"}},
	{"feliz.pie", "Pie", "Pie", []string{"pie"}},
}

// headpet variants by alias
var headPets = map[string]string{
	"pet":   "HeadPets",
	"pets":  "HeadPets",
	"pat":   "HeadPets",
	"pats":  "HeadPets",
	"pet1":  "HeadPets1",
	"pets1": "HeadPets1",
	"pat1":  "HeadPets1",
	"pats1": "HeadPets1",
	"pet2":  "HeadPets2",
	"pets2": "HeadPets2",
	"pat2":  "HeadPets2",
	"pats2": "HeadPets2",
	"pet3":  "HeadPets3",
	"pets3": "HeadPets3",
	"pat3":  "HeadPets3",
	"pats3": "HeadPets3",
}

// Builtin lists the bundled commands. rnd drives the random picks of the commands.
func Builtin(rnd dsl.Random) []Command {
	cmds := []Command{
		{
			Key:         "feliz.points",
			Title:       "Points",
			Description: "Check your points",
			Aliases:     []string{"points", "p"},
			Handle:      handlePoints,
		},
		{
			Key:         "feliz.headpets",
			Title:       "HeadPets",
			Description: "Give headpets in Warudo <3",
			Aliases: []string{
				"pet", "pets", "pat", "pats",
				"pet1", "pets1", "pat1", "pats1",
				"pet2", "pets2", "pat2", "pats2",
				"pet3", "pets3", "pat3", "pats3",
			},
			Handle: handleHeadPets,
		},
		{
			Key:         "feliz.shock.send",
			Title:       "Shock",
			Description: "Send shocks using PiShock",
			Aliases:     []string{"shock"},
			Settings:    Settings{MinAccessLevel: model.AccessBroadcaster},
			Handle:      handleShock,
		},
		{
			Key:         "feliz.vibe.send",
			Title:       "Vibe",
			Description: "Send vibes using Buttplug",
			Aliases:     []string{"vibe"},
			Settings:    Settings{MinAccessLevel: model.AccessFollower},
			Handle:      handleVibe,
		},
		{
			Key:         "feliz.vibe.clear",
			Title:       "Vibe Clear",
			Description: "Clear all buttplug vibes",
			Aliases:     []string{"vibe_clear", "vibe_stop"},
			Settings:    Settings{MinAccessLevel: model.AccessModerator},
			Handle: func(_ context.Context, inv *Invocation) (bool, error) {
				inv.Bus.Enqueue(model.PeerJoystickTV, model.PeerButtplug, "stop", nil)
				return true, nil
			},
		},
		{
			Key:         "feliz.vibe.delay",
			Title:       "Vibe Delay",
			Description: "Delay buttplug vibes for the specified number of seconds",
			Aliases:     []string{"vibe_delay", "vibe_disable"},
			Settings:    Settings{MinAccessLevel: model.AccessModerator},
			Handle:      handleVibeDelay,
		},
		{
			Key:         "feliz.clip",
			Title:       "Clip",
			Description: "Create a clip by saving the replay buffer of OBS",
			Aliases:     []string{"clip"},
			Settings:    Settings{ChannelCooldown: clipCooldown},
			Handle: func(_ context.Context, inv *Invocation) (bool, error) {
				inv.Bus.Enqueue(model.PeerJoystickTV, model.PeerOBS, "clip", nil)
				inv.Reply("Creating a clip of the last 2 minutes", false)
				return true, nil
			},
		},
		{
			Key:         "feliz.viewersign",
			Title:       "ViewerSign",
			Description: "Show a sign with your text in Warudo",
			Aliases:     []string{"viewersign", "sign", "showsign"},
			Settings:    Settings{MinAccessLevel: model.AccessFollower},
			Handle: func(_ context.Context, inv *Invocation) (bool, error) {
				if inv.Arg == "" {
					inv.Reply(fmt.Sprintf("Usage: !%s <TEXT>", inv.Alias), true)
					return true, nil
				}
				inv.Warudo("ViewerSign", inv.Arg)
				return true, nil
			},
		},
		{
			Key:         "feliz.plushify",
			Title:       "Plushify",
			Description: "Turn yourself into a plush in Warudo",
			Aliases:     []string{"plush", "plushify"},
			Settings:    Settings{MinAccessLevel: model.AccessFollower},
			Handle: func(_ context.Context, inv *Invocation) (bool, error) {
				animal := warudo.RandomAnimal(rnd)
				inv.Reply(fmt.Sprintf("has been plushified into a %s", animal.Name), true)
				inv.Warudo("Plushify", []string{inv.Username, animal.Prop})
				return true, nil
			},
		},
	}

	for _, wc := range warudoCommands {
		action := wc.action
		cmds = append(cmds, Command{
			Key:         wc.key,
			Title:       wc.title,
			Description: fmt.Sprintf("%s in Warudo", wc.title),
			Aliases:     wc.aliases,
			Handle: func(_ context.Context, inv *Invocation) (bool, error) {
				inv.Warudo(action, nil)
				return true, nil
			},
		})
	}
	return cmds
}

func handlePoints(_ context.Context, inv *Invocation) (bool, error) {
	inv.Whisper(fmt.Sprintf("You have %d points", int(inv.Viewer.Points)))
	return true, nil
}

func handleHeadPets(_ context.Context, inv *Invocation) (bool, error) {
	action, ok := headPets[inv.Alias]
	if !ok {
		action = "HeadPets"
	}
	inv.Reply(headPetsReply, false)
	inv.Warudo(action, nil)
	return true, nil
}

func handleShock(_ context.Context, inv *Invocation) (bool, error) {
	if !inv.Peers.Ready(model.PeerPiShock) {
		inv.Reply("No shockers available", false)
		return false, nil
	}

	example := fmt.Sprintf("Example: !%s 10%% 0.3s", inv.Alias)
	if inv.Arg == "" {
		inv.Reply(example, true)
		return true, nil
	}
	frames, err := pishock.ParseShocks(inv.Arg)
	if err != nil {
		inv.Reply(usage(err, example), true)
		return true, nil
	}

	inv.Bus.Enqueue(model.PeerJoystickTV, model.PeerPiShock, "shock", pishock.ShockGroup{
		Frames:    frames,
		ChannelID: inv.ChannelID,
		Username:  inv.Username,
	})
	inv.Reply(fmt.Sprintf("Sent shock command: %s", frames[0]), false)
	return true, nil
}

func handleVibe(_ context.Context, inv *Invocation) (bool, error) {
	if !inv.Peers.Ready(model.PeerButtplug) {
		inv.Reply("No vibrators available", true)
		return false, nil
	}

	frames, err := buttplug.ParseVibes(inv.Arg)
	if err != nil {
		inv.Reply(usage(err, fmt.Sprintf(
			"Examples: !%[1]s 20%% 5s; !%[1]s 5s 10%% 50%% 100%%; !%[1]s 0.5s 50%% 0%% 5r", inv.Alias)), true)
		return true, nil
	}

	inv.Bus.Enqueue(model.PeerJoystickTV, model.PeerButtplug, "vibe", buttplug.VibeGroup{
		Frames:    frames,
		ChannelID: inv.ChannelID,
		Username:  inv.Username,
	})
	return true, nil
}

func handleVibeDelay(_ context.Context, inv *Invocation) (bool, error) {
	seconds, err := strconv.ParseFloat(inv.Arg, 64)
	if err != nil || seconds < 0 {
		inv.Reply(fmt.Sprintf("Usage: !%s [SECONDS]", inv.Alias), true)
		return true, nil
	}
	inv.Bus.Enqueue(model.PeerJoystickTV, model.PeerButtplug, "disable", time.Duration(seconds*float64(time.Second)))
	return true, nil
}

// usage prefixes the example line with the parse error, if there is one to show.
func usage(err error, example string) string {
	var perr *dsl.ParseError
	if errors.As(err, &perr) {
		return strings.TrimSpace(perr.Error() + "\n" + example)
	}
	return example
}

// BuiltinEvents lists the bundled chat event handlers.
func BuiltinEvents() []EventHandler {
	return []EventHandler{
		NewEventHandler("feliz.headpets.emote", []string{EventNewMessage}, func(_ context.Context, ev *Event) (bool, error) {
			for _, code := range ev.Emotes {
				if code == petEmote {
					ev.Warudo("HeadPets", nil)
					break
				}
			}
			return true, nil
		}, WithPriority(0), WithTitle("HeadPets")),
		chatTrigger("feliz.trobbio", "Trobbio!", "trobbio", "Trobbio"),
		chatTrigger("feliz.blahaj", "Blahaj!", "blahaj", "Blahaj"),
	}
}

// chatTrigger plays action whenever a chat message mentions word.
func chatTrigger(key, title, word, action string) EventHandler {
	return NewEventHandler(key, []string{EventNewMessage}, func(_ context.Context, ev *Event) (bool, error) {
		if strings.Contains(strings.ToLower(ev.Text), word) {
			ev.Warudo(action, nil)
		}
		return true, nil
	}, WithPriority(0), WithTitle(title))
}

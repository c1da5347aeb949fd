package pishock

import (
	"fmt"
	"strings"
	"time"

	"github.com/s21platform/stream-hub/internal/pkg/dsl"
)

type ShockMode string

const (
	ModeVibrate ShockMode = "v"
	ModeShock   ShockMode = "s"
	ModeBeep    ShockMode = "b"
)

const DefaultShockDuration = 300 * time.Millisecond

var modeNames = map[string]ShockMode{
	"vibrate": ModeVibrate,
	"vibe":    ModeVibrate,
	"v":       ModeVibrate,
	"shock":   ModeShock,
	"s":       ModeShock,
	"beep":    ModeBeep,
	"b":       ModeBeep,
}

type ShockFrame struct {
	Mode      ShockMode     `json:"mode"`
	Duration  time.Duration `json:"duration"`
	Intensity int           `json:"intensity"`
}

func (f ShockFrame) DurationMS() int64 {
	return f.Duration.Milliseconds()
}

func (f ShockFrame) String() string {
	return fmt.Sprintf("<ShockFrame %s %s %d%%>", f.Mode, f.Duration, f.Intensity)
}

// ShockGroup is one request sent to the shock connector.
type ShockGroup struct {
	Frames    []ShockFrame `json:"frames"`
	ChannelID string       `json:"channel_id"`
	Username  string       `json:"username"`
}

// ParseShocks reads one mode name, one "N%" or "N-M%" intensity and one "Ns" or "a-bs"
// duration in any order. Missing values default to a 0.3s shock at a random 1-10%.
func ParseShocks(text string) ([]ShockFrame, error) {
	return parseShocks(text, dsl.DefaultRandom)
}

func parseShocks(text string, rnd dsl.Random) ([]ShockFrame, error) {
	var (
		mode      ShockMode
		duration  time.Duration
		intensity int
	)

	for _, token := range dsl.Tokens(text) {
		switch {
		case !dsl.StartsWithDigit(token):
			if mode != "" {
				return nil, dsl.NewParseError("Currently only one mode can be specified", token)
			}
			m, ok := modeNames[strings.ToLower(token)]
			if !ok {
				return nil, dsl.NewParseError("Invalid mode", token)
			}
			mode = m

		case strings.HasSuffix(token, "%"):
			if intensity != 0 {
				return nil, dsl.NewParseError("Currently only one intensity can be specified", token)
			}
			if n, ok := dsl.Percent(token); ok {
				intensity = n
				continue
			}
			if low, high, ok := dsl.PercentRange(token); ok {
				intensity = dsl.IntBetween(rnd, low, high)
				continue
			}
			return nil, dsl.NewParseError("Invalid intensity format", token)

		case strings.HasSuffix(token, "s"):
			if duration != 0 {
				return nil, dsl.NewParseError("Currently only one duration can be specified", token)
			}
			if f, ok := dsl.Seconds(token); ok {
				duration = seconds(f)
				continue
			}
			if low, high, ok := dsl.SecondsRange(token); ok {
				duration = seconds(dsl.Uniform(rnd, low, high))
				continue
			}
			return nil, dsl.NewParseError("Invalid duration format", token)

		default:
			return nil, dsl.NewParseError("Invalid argument", token)
		}
	}

	if mode == "" {
		mode = ModeShock
	}
	if duration <= 0 {
		duration = DefaultShockDuration
	}
	if intensity <= 0 {
		intensity = dsl.IntBetween(rnd, 1, 10)
	}

	return []ShockFrame{{Mode: mode, Duration: duration, Intensity: intensity}}, nil
}

func seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}

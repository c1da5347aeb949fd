package buttplug

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/s21platform/stream-hub/internal/pkg/dsl"
)

const (
	DefaultVibeDuration = 30 * time.Second
	DefaultVibeValue    = 0.5

	rampValueStep = 0.05
	rampTimeStep  = 0.2
	maxRampSteps  = 100
	maxRepeat     = 100
)

// VibeFrame drives every device at Value (0..1) for Duration.
type VibeFrame struct {
	Duration time.Duration `json:"duration"`
	Value    float64       `json:"value"`
}

func (f VibeFrame) String() string {
	return fmt.Sprintf("<VibeFrame %s to %.2f>", f.Duration, f.Value)
}

// VibeGroup is one queued request, played back frame by frame.
type VibeGroup struct {
	Frames    []VibeFrame `json:"frames"`
	ChannelID string      `json:"channel_id"`
	Username  string      `json:"username"`
}

func (g VibeGroup) Duration() time.Duration {
	var total time.Duration
	for _, f := range g.Frames {
		total += f.Duration
	}
	return total
}

func (g VibeGroup) String() string {
	return fmt.Sprintf("<VibeGroup %d items for %s>", len(g.Frames), g.Duration())
}

// ParseVibes turns the arguments of the vibe chat command into frames.
//
// Tokens are "N%", "N-M%" (random in range), "N..M%" (ramp), "Ns", "a-bs" (random in range)
// and "Nr" (repeat the last section N times). A percent and a time pair into one action;
// a second percent or time starts a new action, inheriting what was not given from the
// previous one.
func ParseVibes(text string) ([]VibeFrame, error) {
	return parseVibes(text, dsl.DefaultRandom)
}

type vibeParser struct {
	prev     VibeFrame
	start    *float64
	stop     *float64
	time     *float64
	section  []VibeFrame
	sections [][]VibeFrame
}

func parseVibes(text string, rnd dsl.Random) ([]VibeFrame, error) {
	p := &vibeParser{prev: VibeFrame{Duration: DefaultVibeDuration, Value: DefaultVibeValue}}

	for _, token := range dsl.Tokens(text) {
		switch {
		case !dsl.StartsWithDigit(token):
			return nil, dsl.NewParseError("Invalid argument", token)

		case strings.HasSuffix(token, "%"):
			if p.start != nil {
				p.flushAction()
			}
			if n, ok := dsl.Percent(token); ok {
				p.start = ptr(float64(n) / 100)
				continue
			}
			if low, high, ok := dsl.PercentRange(token); ok {
				p.start = ptr(dsl.Uniform(rnd, float64(low)/100, float64(high)/100))
				continue
			}
			if from, to, ok := dsl.PercentRamp(token); ok {
				p.start = ptr(float64(from) / 100)
				p.stop = ptr(float64(to) / 100)
				continue
			}
			return nil, dsl.NewParseError("Invalid percent format", token)

		case strings.HasSuffix(token, "s"):
			if p.time != nil {
				p.flushAction()
			}
			if f, ok := dsl.Seconds(token); ok {
				p.time = ptr(f)
				continue
			}
			if low, high, ok := dsl.SecondsRange(token); ok {
				p.time = ptr(dsl.Uniform(rnd, low, high))
				continue
			}
			return nil, dsl.NewParseError("Invalid time format", token)

		case strings.HasSuffix(token, "r"):
			p.flushSection()
			if len(p.sections) == 0 {
				continue
			}
			repeat := 1
			if len(token) > 1 {
				n, err := strconv.Atoi(strings.TrimSuffix(token, "r"))
				if err != nil {
					return nil, dsl.NewParseError("Invalid repeat format", token)
				}
				repeat = n
			}
			last := p.sections[len(p.sections)-1]
			for range min(maxRepeat, repeat) {
				p.sections = append(p.sections, last)
			}

		default:
			return nil, dsl.NewParseError("Invalid argument", token)
		}
	}
	p.flushSection()

	var frames []VibeFrame
	for _, section := range p.sections {
		frames = append(frames, section...)
	}
	if len(frames) == 0 {
		return nil, dsl.ErrEmpty
	}
	return frames, nil
}

func (p *vibeParser) flushAction() bool {
	if p.start == nil && p.time == nil {
		return false
	}

	start := p.prev.Value
	if p.start != nil {
		start = math.Abs(*p.start)
	}
	stop := start
	if p.stop != nil {
		stop = math.Abs(*p.stop)
	}
	seconds := p.prev.Duration.Seconds()
	if p.time != nil {
		seconds = math.Abs(*p.time)
	}

	count := int(math.Min(math.Abs(stop-start)/rampValueStep+1, seconds/rampTimeStep))
	count = max(1, min(maxRampSteps, count))

	step := 0.0
	if count > 1 {
		step = (stop - start) / float64(count-1)
	}
	if step == 0 {
		start = (start + stop) / 2
	}
	stepTime := time.Duration(seconds / float64(count) * float64(time.Second))

	for i := range count {
		p.prev = VibeFrame{Duration: stepTime, Value: start + step*float64(i)}
		p.section = append(p.section, p.prev)
	}

	p.start, p.stop, p.time = nil, nil, nil
	return true
}

func (p *vibeParser) flushSection() bool {
	p.flushAction()
	if len(p.section) == 0 {
		return false
	}
	p.sections = append(p.sections, p.section)
	p.section = nil
	return true
}

func ptr(f float64) *float64 {
	return &f
}

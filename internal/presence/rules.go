package presence

import (
	"math"
	"time"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/model"
)

// Rules holds the reward constants. Only whole intervals of overlap between a live channel and a
// present viewer earn watch time points.
type Rules struct {
	Interval        time.Duration
	PointsPerMinute float64
	RecoveryWindow  time.Duration

	ChattedOnce     float64
	ChattedFixed    float64
	FollowedOnce    float64
	FollowedFixed   float64
	SubscribedOnce  float64
	SubscribedFixed float64
	TippedFixed     float64
	TippedPerToken  float64
	RaidedFixed     float64
	RaidedPerViewer float64
}

func DefaultRules() Rules {
	return Rules{
		Interval:        300 * time.Second,
		PointsPerMinute: 2.0,
		RecoveryWindow:  300 * time.Second,
		ChattedOnce:     100,
		FollowedOnce:    100,
	}
}

func RulesFromConfig(cfg config.Reward) Rules {
	return Rules{
		Interval:        cfg.Interval,
		PointsPerMinute: cfg.PointsPerMinute,
		RecoveryWindow:  cfg.RecoveryWindow,
		ChattedOnce:     cfg.ChattedOnce,
		ChattedFixed:    cfg.ChattedFixed,
		FollowedOnce:    cfg.FollowedOnce,
		FollowedFixed:   cfg.FollowedFixed,
		SubscribedOnce:  cfg.SubscribedOnce,
		SubscribedFixed: cfg.SubscribedFixed,
		TippedFixed:     cfg.TippedFixed,
		TippedPerToken:  cfg.TippedPerToken,
		RaidedFixed:     cfg.RaidedFixed,
		RaidedPerViewer: cfg.RaidedPerViewer,
	}
}

// Reward credits the viewer for whole intervals of overlap between the channel being live and
// the viewer being present, bounded by now. RewardedAt advances by the credited time only, so the
// sub-interval remainder carries over to the next call. Channel and viewer state must be current.
func (r Rules) Reward(now time.Time, channel *model.Channel, viewer *model.Viewer) float64 {
	if r.Interval <= 0 {
		return 0
	}

	start := latest(channel.LiveAt, viewer.JoinedAt, viewer.RewardedAt)

	end := now
	if !viewer.IsPresent() {
		end = earliest(end, viewer.LeftAt)
	}
	if !channel.IsLive() {
		end = earliest(end, channel.OfflineAt)
	}
	if !end.After(start) {
		return 0
	}

	delta := (end.Sub(start) / r.Interval) * r.Interval
	if delta <= 0 {
		return 0
	}

	points := math.Max(0, delta.Seconds()/60*r.PointsPerMinute)

	viewer.RewardedAt = start.Add(delta).UTC()
	viewer.WatchTime += int64(delta / time.Second)
	viewer.Points += points

	return points
}

func (r Rules) ChatBonus(viewer *model.Viewer) float64 {
	if viewer.ChattedAt == nil {
		return math.Max(0, r.ChattedOnce)
	}
	return math.Max(0, r.ChattedFixed)
}

func (r Rules) FollowBonus(viewer *model.Viewer) float64 {
	points := r.FollowedFixed
	if viewer.FollowedAt == nil {
		points += r.FollowedOnce
	}
	return math.Max(0, points)
}

func (r Rules) SubscribeBonus(viewer *model.Viewer) float64 {
	points := r.SubscribedFixed
	if viewer.SubscribedAt == nil {
		points += r.SubscribedOnce
	}
	return math.Max(0, points)
}

func (r Rules) TipBonus(amount float64) float64 {
	return math.Max(0, r.TippedFixed+r.TippedPerToken*amount)
}

func (r Rules) RaidBonus(viewers int) float64 {
	return math.Max(0, r.RaidedFixed+r.RaidedPerViewer*float64(viewers))
}

func latest(first time.Time, rest ...time.Time) time.Time {
	res := first
	for _, t := range rest {
		if t.After(res) {
			res = t
		}
	}
	return res
}

func earliest(first time.Time, rest ...time.Time) time.Time {
	res := first
	for _, t := range rest {
		if t.Before(res) {
			res = t
		}
	}
	return res
}

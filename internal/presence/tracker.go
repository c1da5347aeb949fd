package presence

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/model"
	"github.com/s21platform/stream-hub/internal/pkg/tx"
)

const (
	touchThrottle    = time.Second
	statusFetchLimit = 8
)

var ErrInsufficientPoints = errors.New("insufficient points")

type TrackerOption func(*Tracker)

func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		t.now = now
	}
}

// Tracker keeps channel live state and viewer presence and points in sync with gateway events.
// Every hook runs in its own transaction and hooks never run concurrently.
type Tracker struct {
	repo   DBRepo
	status StatusFetcher
	rules  Rules
	now    func() time.Time

	mu        sync.Mutex
	lastTouch time.Time
}

func New(repo DBRepo, status StatusFetcher, rules Rules, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		repo:   repo,
		status: status,
		rules:  rules,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Rules() Rules {
	return t.rules
}

// Reconcile re-derives channel and viewer state after a (re)connect and returns the ids of the
// channels that are live. Within the recovery window fetched statuses are applied as is. After a
// longer gap every present viewer is forced offline at the last moment the state can be vouched for.
func (t *Tracker) Reconcile(ctx context.Context) ([]string, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	t.mu.Lock()
	defer t.mu.Unlock()

	channels, err := t.repo.GetChannels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get channels: %w", err)
	}
	if len(channels) == 0 {
		return nil, nil
	}

	live := t.fetchLive(ctx, channels)

	var liveIDs []string
	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		now := t.now().UTC()

		last, err := t.repo.GetLastEventReceivedAt(ctx)
		if err != nil {
			return err
		}

		trusted := false
		gap := "never"
		var cutoff time.Time
		if last != nil {
			elapsed := now.Sub(*last)
			trusted = elapsed <= t.rules.RecoveryWindow
			gap = elapsed.Truncate(time.Second).String()
			cutoff = earliest(now, last.Add(t.rules.RecoveryWindow))
		}

		for i := range channels {
			channel := &channels[i]
			isLive := live[i]
			if isLive {
				liveIDs = append(liveIDs, channel.ChannelID)
			}

			if trusted {
				if isLive {
					channel.SetLive(now)
				} else {
					channel.SetOffline(now)
				}
				if err = t.repo.UpdateChannel(ctx, channel); err != nil {
					return err
				}
				continue
			}

			if isLive != channel.IsLive() {
				if isLive {
					channel.SetLive(now)
				} else {
					channel.ForceOffline(latest(channel.LiveAt, cutoff))
				}
			}
			if err = t.repo.UpdateChannel(ctx, channel); err != nil {
				return err
			}

			viewers, err := t.repo.GetPresentViewers(ctx, channel.ID)
			if err != nil {
				return err
			}
			if len(viewers) == 0 {
				continue
			}

			logger.Info(fmt.Sprintf("cannot reconcile viewer presence of channel %s after a gap of %s, marking %d viewers offline",
				channel.ChannelID, gap, len(viewers)))

			for j := range viewers {
				viewer := &viewers[j]
				viewer.ForceOffline(latest(viewer.JoinedAt, cutoff))
				t.rules.Reward(now, channel, viewer)
				if err = t.repo.UpdateViewer(ctx, viewer); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile channels: %w", err)
	}

	return liveIDs, nil
}

// fetchLive asks for the status of every channel concurrently. A failed fetch counts as offline.
func (t *Tracker) fetchLive(ctx context.Context, channels []model.Channel) []bool {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	live := make([]bool, len(channels))

	g := &errgroup.Group{}
	g.SetLimit(statusFetchLimit)
	for i := range channels {
		g.Go(func() error {
			isLive, err := t.status.StreamLive(ctx, channels[i].ChannelID)
			if err != nil {
				logger.Warn(fmt.Sprintf("failed to fetch status of channel %s: %v", channels[i].ChannelID, err))
				return nil
			}
			live[i] = isLive
			return nil
		})
	}
	_ = g.Wait()

	return live
}

// RewardPresent credits every present viewer of every live channel up to now. Nobody is marked
// offline: a lost connection does not prove that viewers left.
func (t *Tracker) RewardPresent(ctx context.Context) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	t.mu.Lock()
	defer t.mu.Unlock()

	return tx.TxExecute(ctx, func(ctx context.Context) error {
		now := t.now().UTC()

		channels, err := t.repo.GetLiveChannels(ctx)
		if err != nil {
			return err
		}

		rewarded := 0
		for i := range channels {
			channel := &channels[i]
			viewers, err := t.repo.GetPresentViewers(ctx, channel.ID)
			if err != nil {
				return err
			}
			for j := range viewers {
				if t.rules.Reward(now, channel, &viewers[j]) <= 0 {
					continue
				}
				if err = t.repo.UpdateViewer(ctx, &viewers[j]); err != nil {
					return err
				}
				rewarded++
			}
		}

		if rewarded > 0 {
			logger.Info(fmt.Sprintf("rewarded %d present viewers", rewarded))
		}
		return nil
	})
}

func (t *Tracker) StreamStarted(ctx context.Context, channelID string) error {
	return t.setLive(ctx, channelID)
}

func (t *Tracker) StreamResuming(ctx context.Context, channelID string) error {
	return t.setLive(ctx, channelID)
}

func (t *Tracker) setLive(ctx context.Context, channelID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return tx.TxExecute(ctx, func(ctx context.Context) error {
		channel, err := t.repo.GetOrCreateChannel(ctx, channelID)
		if err != nil {
			return err
		}
		channel.SetLive(t.now())
		return t.repo.UpdateChannel(ctx, channel)
	})
}

// StreamEnded marks the channel offline and credits viewers up to the end of the stream. Presence
// is kept until the viewers leave or the next reconcile.
func (t *Tracker) StreamEnded(ctx context.Context, channelID string) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	t.mu.Lock()
	defer t.mu.Unlock()

	return tx.TxExecute(ctx, func(ctx context.Context) error {
		now := t.now().UTC()

		channel, err := t.repo.GetOrCreateChannel(ctx, channelID)
		if err != nil {
			return err
		}
		channel.SetOffline(now)
		if err = t.repo.UpdateChannel(ctx, channel); err != nil {
			return err
		}

		viewers, err := t.repo.GetPresentViewers(ctx, channel.ID)
		if err != nil {
			return err
		}
		if len(viewers) > 0 {
			logger.Info(fmt.Sprintf("stream %s ended with %d viewers, rewarding them up until now", channelID, len(viewers)))
		}

		for i := range viewers {
			if t.rules.Reward(now, channel, &viewers[i]) <= 0 {
				continue
			}
			if err = t.repo.UpdateViewer(ctx, &viewers[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// EnterStream marks the viewer present. Rewards are paid on leave, stream end or reconcile.
func (t *Tracker) EnterStream(ctx context.Context, channelID, username string) error {
	return t.withViewer(ctx, channelID, username, func(ctx context.Context, now time.Time, _ *model.Channel, viewer *model.Viewer) error {
		viewer.Join(now)
		return t.repo.UpdateViewer(ctx, viewer)
	})
}

func (t *Tracker) LeaveStream(ctx context.Context, channelID, username string) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	return t.withViewer(ctx, channelID, username, func(ctx context.Context, now time.Time, channel *model.Channel, viewer *model.Viewer) error {
		if !viewer.IsPresent() {
			logger.Info(fmt.Sprintf("viewer %s already left channel %s at %s, ignoring", username, channelID, viewer.LeftAt))
			return nil
		}

		viewer.Leave(now)
		t.rules.Reward(now, channel, viewer)
		return t.repo.UpdateViewer(ctx, viewer)
	})
}

// Chatted pays the chat bonus and marks a viewer that was not known to be present as present.
func (t *Tracker) Chatted(ctx context.Context, channelID, username string) (float64, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	var points float64
	err := t.withViewer(ctx, channelID, username, func(ctx context.Context, now time.Time, _ *model.Channel, viewer *model.Viewer) error {
		points = t.rules.ChatBonus(viewer)
		if points > 0 {
			logger.Info(fmt.Sprintf("user %s chatted in channel %s, rewarding %.0f points", username, channelID, points))
		}

		viewer.ChattedAt = &now
		viewer.Points += points

		if !viewer.IsPresent() {
			logger.Info(fmt.Sprintf("offline viewer %s chatted in channel %s, marking as present", username, channelID))
			viewer.Join(now)
		}
		return t.repo.UpdateViewer(ctx, viewer)
	})
	if err != nil {
		return 0, err
	}
	return points, nil
}

func (t *Tracker) Followed(ctx context.Context, channelID, username string) (float64, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	var points float64
	err := t.withViewer(ctx, channelID, username, func(ctx context.Context, now time.Time, _ *model.Channel, viewer *model.Viewer) error {
		points = t.rules.FollowBonus(viewer)
		if points > 0 {
			logger.Info(fmt.Sprintf("user %s followed channel %s, rewarding %.0f points", username, channelID, points))
		}

		viewer.Points += points
		if viewer.FollowedAt == nil {
			viewer.FollowedAt = &now
		}
		return t.repo.UpdateViewer(ctx, viewer)
	})
	if err != nil {
		return 0, err
	}
	return points, nil
}

func (t *Tracker) Subscribed(ctx context.Context, channelID, username string) (float64, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	var points float64
	err := t.withViewer(ctx, channelID, username, func(ctx context.Context, now time.Time, _ *model.Channel, viewer *model.Viewer) error {
		points = t.rules.SubscribeBonus(viewer)
		if points > 0 {
			logger.Info(fmt.Sprintf("user %s subscribed to channel %s, rewarding %.0f points", username, channelID, points))
		}

		viewer.Points += points
		if viewer.SubscribedAt == nil {
			viewer.SubscribedAt = &now
		}
		return t.repo.UpdateViewer(ctx, viewer)
	})
	if err != nil {
		return 0, err
	}
	return points, nil
}

func (t *Tracker) Tipped(ctx context.Context, channelID, username string, amount float64) (float64, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	points := t.rules.TipBonus(amount)
	if points <= 0 {
		return 0, nil
	}

	err := t.withViewer(ctx, channelID, username, func(ctx context.Context, now time.Time, _ *model.Channel, viewer *model.Viewer) error {
		logger.Info(fmt.Sprintf("user %s tipped %.0f tokens to channel %s, rewarding %.0f points", username, amount, channelID, points))

		viewer.Points += points
		viewer.TippedAt = &now
		return t.repo.UpdateViewer(ctx, viewer)
	})
	if err != nil {
		return 0, err
	}
	return points, nil
}

func (t *Tracker) Raided(ctx context.Context, channelID, username string, viewers int) (float64, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	points := t.rules.RaidBonus(viewers)
	if points <= 0 {
		return 0, nil
	}

	err := t.withViewer(ctx, channelID, username, func(ctx context.Context, _ time.Time, _ *model.Channel, viewer *model.Viewer) error {
		logger.Info(fmt.Sprintf("user %s raided channel %s with %d viewers, rewarding %.0f points", username, channelID, viewers, points))

		viewer.Points += points
		return t.repo.UpdateViewer(ctx, viewer)
	})
	if err != nil {
		return 0, err
	}
	return points, nil
}

// Points credits the viewer up to now and returns the up to date row.
func (t *Tracker) Points(ctx context.Context, channelID, username string) (*model.Viewer, error) {
	var res *model.Viewer
	err := t.withViewer(ctx, channelID, username, func(ctx context.Context, now time.Time, channel *model.Channel, viewer *model.Viewer) error {
		res = viewer
		if t.rules.Reward(now, channel, viewer) <= 0 {
			return nil
		}
		return t.repo.UpdateViewer(ctx, viewer)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Spend credits the viewer up to now and deducts cost. On ErrInsufficientPoints the balance is
// left untouched and the returned viewer carries the current balance.
func (t *Tracker) Spend(ctx context.Context, channelID, username string, cost float64) (*model.Viewer, error) {
	var res *model.Viewer
	insufficient := false
	err := t.withViewer(ctx, channelID, username, func(ctx context.Context, now time.Time, channel *model.Channel, viewer *model.Viewer) error {
		res = viewer
		t.rules.Reward(now, channel, viewer)
		if viewer.Points < cost {
			insufficient = true
		} else {
			viewer.Points -= cost
		}
		return t.repo.UpdateViewer(ctx, viewer)
	})
	if err != nil {
		return nil, err
	}
	if insufficient {
		return res, ErrInsufficientPoints
	}
	return res, nil
}

// TouchLastEvent records that the gateway is alive. Writes closer than a second apart are skipped.
func (t *Tracker) TouchLastEvent(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now().UTC()
	if !t.lastTouch.IsZero() && now.Sub(t.lastTouch) < touchThrottle {
		return nil
	}

	if err := t.repo.SetLastEventReceivedAt(ctx, now); err != nil {
		return fmt.Errorf("failed to touch last event time: %w", err)
	}
	t.lastTouch = now
	return nil
}

func (t *Tracker) withViewer(
	ctx context.Context,
	channelID, username string,
	cb func(ctx context.Context, now time.Time, channel *model.Channel, viewer *model.Viewer) error,
) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return tx.TxExecute(ctx, func(ctx context.Context) error {
		now := t.now().UTC()

		channel, err := t.repo.GetOrCreateChannel(ctx, channelID)
		if err != nil {
			return err
		}
		viewer, err := t.repo.GetOrCreateViewer(ctx, channel, username)
		if err != nil {
			return err
		}
		return cb(ctx, now, channel, viewer)
	})
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/model"
)

var viewerColumns = []string{
	"v.id",
	"v.user_id",
	"v.channel_id",
	"u.username",
	"v.join_count",
	"v.joined_at",
	"v.left_at",
	"v.rewarded_at",
	"v.watch_time",
	"v.points",
	"v.chatted_at",
	"v.followed_at",
	"v.subscribed_at",
	"v.tipped_at",
}

var channelColumns = []string{
	"id",
	"channel_id",
	"owner_id",
	"live_at",
	"offline_at",
	"created_at",
	"updated_at",
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) GetOrCreateChannel(ctx context.Context, channelID string) (*model.Channel, error) {
	now := time.Now().UTC()

	query, args, err := sq.Insert("channels").
		Columns("channel_id", "live_at", "offline_at", "created_at", "updated_at").
		Values(channelID, now, now, now, now).
		Suffix("ON CONFLICT (channel_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to create channel: %v", err)
	}

	return r.GetChannel(ctx, channelID)
}

func (r *Repository) GetChannel(ctx context.Context, channelID string) (*model.Channel, error) {
	query, args, err := sq.Select(channelColumns...).
		From("channels").
		Where(sq.Eq{"channel_id": channelID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var channel model.Channel
	if err = r.Chk(ctx).GetContext(ctx, &channel, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get channel %s: %v", channelID, err)
	}

	return &channel, nil
}

func (r *Repository) GetChannels(ctx context.Context) ([]model.Channel, error) {
	query, args, err := sq.Select(channelColumns...).
		From("channels").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var channels []model.Channel
	if err = r.Chk(ctx).SelectContext(ctx, &channels, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get channels: %v", err)
	}

	return channels, nil
}

func (r *Repository) GetLiveChannels(ctx context.Context) ([]model.Channel, error) {
	query, args, err := sq.Select(channelColumns...).
		From("channels").
		Where("live_at > offline_at").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var channels []model.Channel
	if err = r.Chk(ctx).SelectContext(ctx, &channels, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get live channels: %v", err)
	}

	return channels, nil
}

func (r *Repository) UpdateChannel(ctx context.Context, channel *model.Channel) error {
	query, args, err := sq.Update("channels").
		Set("live_at", channel.LiveAt).
		Set("offline_at", channel.OfflineAt).
		Set("owner_id", channel.OwnerID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": channel.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update channel %s: %v", channel.ChannelID, err)
	}

	return nil
}

func (r *Repository) GetOrCreateUser(ctx context.Context, username string) (*model.User, error) {
	query, args, err := sq.Insert("users").
		Columns("username").
		Values(username).
		Suffix("ON CONFLICT (username) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}

	query, args, err = sq.Select("id", "username", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"username": username}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.User
	if err = r.Chk(ctx).GetContext(ctx, &user, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get user %s: %v", username, err)
	}

	return &user, nil
}

func (r *Repository) GetOrCreateViewer(ctx context.Context, channel *model.Channel, username string) (*model.Viewer, error) {
	user, err := r.GetOrCreateUser(ctx, username)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	query, args, err := sq.Insert("viewers").
		Columns("user_id", "channel_id", "joined_at", "left_at", "rewarded_at").
		Values(user.ID, channel.ID, now, now, now).
		Suffix("ON CONFLICT (user_id, channel_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to create viewer: %v", err)
	}

	query, args, err = sq.Select(viewerColumns...).
		From("viewers v").
		Join("users u ON u.id = v.user_id").
		Where(sq.Eq{"v.user_id": user.ID, "v.channel_id": channel.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var viewer model.Viewer
	if err = r.Chk(ctx).GetContext(ctx, &viewer, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get viewer %s: %v", username, err)
	}

	return &viewer, nil
}

func (r *Repository) GetPresentViewers(ctx context.Context, channelPK int64) ([]model.Viewer, error) {
	query, args, err := sq.Select(viewerColumns...).
		From("viewers v").
		Join("users u ON u.id = v.user_id").
		Where(sq.Eq{"v.channel_id": channelPK}).
		Where(sq.Gt{"v.join_count": 0}).
		OrderBy("v.id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var viewers []model.Viewer
	if err = r.Chk(ctx).SelectContext(ctx, &viewers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get present viewers: %v", err)
	}

	return viewers, nil
}

func (r *Repository) UpdateViewer(ctx context.Context, viewer *model.Viewer) error {
	query, args, err := sq.Update("viewers").
		SetMap(map[string]interface{}{
			"join_count":    viewer.JoinCount,
			"joined_at":     viewer.JoinedAt,
			"left_at":       viewer.LeftAt,
			"rewarded_at":   viewer.RewardedAt,
			"watch_time":    viewer.WatchTime,
			"points":        viewer.Points,
			"chatted_at":    viewer.ChattedAt,
			"followed_at":   viewer.FollowedAt,
			"subscribed_at": viewer.SubscribedAt,
			"tipped_at":     viewer.TippedAt,
		}).
		Where(sq.Eq{"id": viewer.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update viewer %s: %v", viewer.Username, err)
	}

	return nil
}

func (r *Repository) GetLastEventReceivedAt(ctx context.Context) (*time.Time, error) {
	query, args, err := sq.Select("last_event_received_at").
		From("connection_state").
		Where(sq.Eq{"id": model.ConnectionStateID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var lastEventAt *time.Time
	err = r.Chk(ctx).GetContext(ctx, &lastEventAt, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get connection state: %v", err)
	}

	return lastEventAt, nil
}

func (r *Repository) SetLastEventReceivedAt(ctx context.Context, at time.Time) error {
	query, args, err := sq.Insert("connection_state").
		Columns("id", "last_event_received_at").
		Values(model.ConnectionStateID, at.UTC()).
		Suffix("ON CONFLICT (id) DO UPDATE SET last_event_received_at = EXCLUDED.last_event_received_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update connection state: %v", err)
	}

	return nil
}

// GetAccessTokenForUpdate locks the token row of the channel for the rest of the transaction.
// It returns nil when the channel has no token yet.
func (r *Repository) GetAccessTokenForUpdate(ctx context.Context, channelID string) (*model.AccessToken, error) {
	query, args, err := sq.Select(
		"t.channel_id",
		"t.access_token_encrypted",
		"t.refresh_token_encrypted",
		"t.expires_at",
		"t.refreshed_at",
	).
		From("access_tokens t").
		Join("channels c ON c.id = t.channel_id").
		Where(sq.Eq{"c.channel_id": channelID}).
		Suffix("FOR UPDATE OF t").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var token model.AccessToken
	err = r.Chk(ctx).GetContext(ctx, &token, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %v", err)
	}

	return &token, nil
}

func (r *Repository) SaveAccessToken(ctx context.Context, token *model.AccessToken) error {
	query, args, err := sq.Insert("access_tokens").
		Columns("channel_id", "access_token_encrypted", "refresh_token_encrypted", "expires_at", "refreshed_at").
		Values(token.ChannelPK, token.AccessTokenEncrypted, token.RefreshTokenEncrypted, token.ExpiresAt.UTC(), token.RefreshedAt.UTC()).
		Suffix("ON CONFLICT (channel_id) DO UPDATE SET " +
			"access_token_encrypted = EXCLUDED.access_token_encrypted, " +
			"refresh_token_encrypted = EXCLUDED.refresh_token_encrypted, " +
			"expires_at = EXCLUDED.expires_at, " +
			"refreshed_at = EXCLUDED.refreshed_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save access token: %v", err)
	}

	return nil
}

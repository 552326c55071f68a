package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/models"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/storage"
)

// Subscribe создаёт ребро subscriber->channel.
// Существующее ребро — no-op, несуществующие пользователи — ErrNotFound.
func (s *Storage) Subscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	const op = "storage.postgres.Subscribe"

	query := `
		INSERT INTO subscriptions(subscriber_id, channel_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (subscriber_id, channel_id) DO NOTHING
	`

	_, err := s.db.Exec(ctx, query, subscriberID, channelID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Unsubscribe удаляет ребро. Отсутствующее ребро — no-op.
func (s *Storage) Unsubscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	const op = "storage.postgres.Unsubscribe"

	query := `
		DELETE FROM subscriptions
		WHERE subscriber_id = $1 AND channel_id = $2
	`

	if _, err := s.db.Exec(ctx, query, subscriberID, channelID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ChannelProfile возвращает профиль канала по username с агрегатами подписок.
// viewerID == uuid.Nil означает анонимного зрителя (is_subscribed = false).
func (s *Storage) ChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*models.ChannelProfile, error) {
	const op = "storage.postgres.ChannelProfile"

	query := `
		SELECT u.id, u.username, u.full_name, u.avatar_url, u.cover_url, u.created_at,
			(SELECT COUNT(*) FROM subscriptions WHERE channel_id = u.id)    AS subscribers,
			(SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = u.id) AS subscribed_to,
			EXISTS (
				SELECT 1 FROM subscriptions
				WHERE channel_id = u.id AND subscriber_id = $2
			) AS is_subscribed
		FROM users u
		WHERE u.username = $1
	`

	var profile models.ChannelProfile
	var subscribers, subscribedTo int64

	err := s.db.QueryRow(ctx, query, username, viewerID).Scan(
		&profile.UserID,
		&profile.Username,
		&profile.FullName,
		&profile.AvatarURL,
		&profile.CoverURL,
		&profile.CreatedAt,
		&subscribers,
		&subscribedTo,
		&profile.IsSubscribed,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if subscribers > 0 {
		profile.Subscribers = uint64(subscribers)
	}
	if subscribedTo > 0 {
		profile.SubscribedTo = uint64(subscribedTo)
	}

	return &profile, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/models"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/storage"
)

// RecordWatch фиксирует просмотр видео пользователем.
// Повторный просмотр того же видео обновляет watched_at (upsert).
func (s *Storage) RecordWatch(ctx context.Context, userID, videoID uuid.UUID, watchedAt time.Time) error {
	const op = "storage.postgres.RecordWatch"

	query := `
		INSERT INTO watch_history(user_id, video_id, watched_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = EXCLUDED.watched_at
	`

	_, err := s.db.Exec(ctx, query, userID, videoID, watchedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// WatchHistory возвращает последние просмотры пользователя (новые первыми),
// включая метаданные видео и владельца канала.
func (s *Storage) WatchHistory(ctx context.Context, userID uuid.UUID, limit int) ([]models.WatchEntry, error) {
	const op = "storage.postgres.WatchHistory"

	query := `
		SELECT v.id, v.title, v.thumbnail_url, v.duration_seconds,
			o.id, o.username, o.avatar_url,
			h.watched_at
		FROM watch_history h
		JOIN videos v ON v.id = h.video_id
		JOIN users o  ON o.id = v.owner_id
		WHERE h.user_id = $1
		ORDER BY h.watched_at DESC
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var entries []models.WatchEntry
	for rows.Next() {
		var e models.WatchEntry
		var duration int32

		if err := rows.Scan(
			&e.VideoID,
			&e.Title,
			&e.ThumbnailURL,
			&duration,
			&e.OwnerID,
			&e.OwnerUsername,
			&e.OwnerAvatarURL,
			&e.WatchedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if duration > 0 {
			e.DurationSeconds = uint32(duration)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return entries, nil
}

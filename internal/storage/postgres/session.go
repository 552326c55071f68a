package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/storage"
)

// SetSession перезаписывает сессионный слот пользователя.
// Запись узко скоупирована: затрагиваются только refresh_token_hash и
// refresh_expires_at, прочие атрибуты пользователя не трогаются.
func (s *Storage) SetSession(ctx context.Context, userID uuid.UUID, refreshHash string, expiresAt time.Time) error {
	const op = "storage.postgres.SetSession"

	query := `
		UPDATE users
		SET refresh_token_hash = $2, refresh_expires_at = $3
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query, userID, refreshHash, expiresAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ClearSession сбрасывает сессионный слот. Повторный вызов — no-op
// (слот уже пуст), но неизвестный пользователь — ErrNotFound.
func (s *Storage) ClearSession(ctx context.Context, userID uuid.UUID) error {
	const op = "storage.postgres.ClearSession"

	query := `
		UPDATE users
		SET refresh_token_hash = NULL, refresh_expires_at = NULL
		WHERE id = $1
	`

	cmdTag, err := s.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SessionByUserID возвращает хэш активного refresh-токена и срок действия.
// Пустой слот и неизвестный пользователь неразличимы для вызывающего — ErrNotFound.
func (s *Storage) SessionByUserID(ctx context.Context, userID uuid.UUID) (string, time.Time, error) {
	const op = "storage.postgres.SessionByUserID"

	query := `
		SELECT refresh_token_hash, refresh_expires_at
		FROM users
		WHERE id = $1 AND refresh_token_hash IS NOT NULL
	`

	var hash string
	var expiresAt time.Time
	err := s.db.QueryRow(ctx, query, userID).Scan(&hash, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return hash, expiresAt, nil
}

// ClearExpiredSessions сбрасывает слоты с истёкшим refresh-токеном.
func (s *Storage) ClearExpiredSessions(ctx context.Context, now time.Time) error {
	const op = "storage.postgres.ClearExpiredSessions"

	query := `
		UPDATE users
		SET refresh_token_hash = NULL, refresh_expires_at = NULL
		WHERE refresh_expires_at IS NOT NULL AND refresh_expires_at <= $1
	`

	if _, err := s.db.Exec(ctx, query, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/models"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/pkg/log"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/storage"
)

// UpdateDetailsInput — частичное обновление профиля.
// Обновляются только поля с ненулевыми указателями.
type UpdateDetailsInput struct {
	Email    *string
	FullName *string
}

// Ограничения выборки истории просмотров.
const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// CurrentUser возвращает пользователя по идентификатору.
func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	const op = "service/users/CurrentUser"

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdateDetails выполняет частичное обновление профиля (email/full name).
//
// Валидация:
//   - email, если задан, нормализуется и проверяется на формат;
//   - fullName, если задан, не должен быть пустым после TrimSpace;
//   - хотя бы одно поле должно быть задано.
func (s *Service) UpdateDetails(ctx context.Context, userID uuid.UUID, input UpdateDetailsInput) (*models.User, error) {
	const op = "service/users/UpdateDetails"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	update := storage.UserUpdate{}

	if input.Email != nil {
		email, err := validateEmail(*input.Email)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		update.Email = &email
	}

	if input.FullName != nil {
		fullName := strings.TrimSpace(*input.FullName)
		if fullName == "" {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
		update.FullName = &fullName
	}

	if update.Email == nil && update.FullName == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UpdateUserDetails(ctx, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("email already taken")

			return nil, fmt.Errorf("%s: %w", op, ErrUserTaken)
		default:
			lg.Error("storage error on UpdateUserDetails", "err", err)

			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return user, nil
}

// ChannelProfile возвращает публичный профиль канала по username
// с агрегатами подписок относительно зрителя viewerID (uuid.Nil — аноним).
func (s *Service) ChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*models.ChannelProfile, error) {
	const op = "service/users/ChannelProfile"

	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	profile, err := s.storage.ChannelProfile(ctx, username, viewerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return profile, nil
}

// Subscribe подписывает subscriberID на канал channelUsername.
// Подписка на себя запрещена; повторная подписка — no-op.
func (s *Service) Subscribe(ctx context.Context, subscriberID uuid.UUID, channelUsername string) error {
	const op = "service/users/Subscribe"

	channel, err := s.channelByUsername(ctx, op, channelUsername)
	if err != nil {
		return err
	}

	if channel.ID == subscriberID {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.Subscribe(ctx, subscriberID, channel.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Unsubscribe отписывает subscriberID от канала channelUsername.
// Отсутствующая подписка — no-op.
func (s *Service) Unsubscribe(ctx context.Context, subscriberID uuid.UUID, channelUsername string) error {
	const op = "service/users/Unsubscribe"

	channel, err := s.channelByUsername(ctx, op, channelUsername)
	if err != nil {
		return err
	}

	if err := s.storage.Unsubscribe(ctx, subscriberID, channel.ID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RecordWatch фиксирует просмотр видео в истории пользователя.
func (s *Service) RecordWatch(ctx context.Context, userID, videoID uuid.UUID) error {
	const op = "service/users/RecordWatch"

	if userID == uuid.Nil || videoID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.RecordWatch(ctx, userID, videoID, time.Now().UTC()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// WatchHistory возвращает последние просмотры пользователя (новые первыми).
// limit <= 0 заменяется дефолтом, верхняя граница — maxHistoryLimit.
func (s *Service) WatchHistory(ctx context.Context, userID uuid.UUID, limit int) ([]models.WatchEntry, error) {
	const op = "service/users/WatchHistory"

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	entries, err := s.storage.WatchHistory(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return entries, nil
}

// channelByUsername — общий lookup канала для Subscribe/Unsubscribe.
func (s *Service) channelByUsername(ctx context.Context, op, username string) (*models.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	channel, err := s.storage.UserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return channel, nil
}

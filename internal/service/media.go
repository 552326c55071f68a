package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/models"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/pkg/log"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/storage"
)

// MediaUploadURLInput — запрос presigned PUT для аватара/обложки.
type MediaUploadURLInput struct {
	UserID        uuid.UUID
	Kind          string
	ContentType   string
	ContentLength int64
}

// ConfirmMediaUploadInput — подтверждение загрузки по ключу.
type ConfirmMediaUploadInput struct {
	UserID uuid.UUID
	Kind   string
	Key    string
}

// MediaUploadURL выдаёт presigned PUT URL для загрузки изображения профиля.
// Сама загрузка выполняется клиентом напрямую в S3/MinIO; сервис лишь
// подписывает URL и фиксирует ограничения (тип/размер).
func (s *Service) MediaUploadURL(ctx context.Context, input MediaUploadURLInput) (*storage.UploadInfo, error) {
	const op = "service/media/MediaUploadURL"

	lg := log.From(ctx).With("op", op, "user_id", input.UserID.String())

	if input.UserID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	info, err := s.media.MediaUploadURL(ctx, input.UserID, input.Kind, input.ContentType, input.ContentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidObject) {
			lg.Warn("invalid upload request",
				"kind", input.Kind,
				"content_type", input.ContentType,
				"content_length", input.ContentLength,
			)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		lg.Error("presign failed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// ConfirmMediaUpload проверяет факт загрузки объекта и фиксирует
// key/публичный URL в записи пользователя.
func (s *Service) ConfirmMediaUpload(ctx context.Context, input ConfirmMediaUploadInput) (*models.User, error) {
	const op = "service/media/ConfirmMediaUpload"

	lg := log.From(ctx).With("op", op, "user_id", input.UserID.String())

	if input.UserID == uuid.Nil || input.Key == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	publicURL, err := s.media.CheckMediaUpload(ctx, input.UserID, input.Kind, input.Key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidObject):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		case errors.Is(err, storage.ErrNotFoundObject):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("check upload failed", "err", err)

			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	user, err := s.storage.ConfirmMediaUpload(ctx, input.UserID, input.Kind, input.Key, publicURL)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

package minio

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/storage"
)

// kindPrefix возвращает префикс ключей бакета для вида изображения.
func kindPrefix(kind string) (string, bool) {
	switch kind {
	case storage.MediaKindAvatar:
		return "avatars", true
	case storage.MediaKindCover:
		return "covers", true
	default:
		return "", false
	}
}

// MediaUploadURL генерирует presigned PUT URL для загрузки изображения.
// Валидирует kind/contentType/contentLength согласно конфигу, формирует ключ
// вида "<kind>s/<userID>/<uuid>.<ext>" и возвращает также набор заголовков,
// которые клиент должен передать при PUT (будут проверены при подтверждении).
func (s *MediaStorage) MediaUploadURL(ctx context.Context, userID uuid.UUID, kind, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "storage/minio/media/MediaUploadURL"

	prefix, ok := kindPrefix(kind)
	if !ok {
		return nil, storage.ErrInvalidObject
	}

	if contentLength <= 0 || contentLength > s.cfg.Media.MaxSizeBytes {
		return nil, storage.ErrInvalidObject
	}

	if !isAllowedContentType(s.cfg.Media.AllowedContentTypes, contentType) {
		return nil, storage.ErrInvalidObject
	}

	var ext string
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	}

	key := path.Join(prefix, userID.String(), uuid.NewString()+ext)

	url, err := s.client.PresignedPutObject(ctx, s.cfg.S3.Bucket, key, s.cfg.S3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info := &storage.UploadInfo{
		UploadURL: url.String(),
		Key:       key,
		Expires:   s.cfg.S3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": fmt.Sprintf("%d", contentLength),
		},
	}

	return info, nil
}

// CheckMediaUpload подтверждает факт загрузки по key:
// проверяет, что ключ принадлежит пользователю и виду, объект существует
// и удовлетворяет ограничениям размера/типа.
// Возвращает публичный URL (если PublicBaseURL задан), иначе — пустую строку.
func (s *MediaStorage) CheckMediaUpload(ctx context.Context, userID uuid.UUID, kind, key string) (publicURL string, err error) {
	const op = "storage/minio/media/CheckMediaUpload"

	prefix, ok := kindPrefix(kind)
	if !ok {
		return "", storage.ErrInvalidObject
	}

	if !strings.HasPrefix(key, prefix+"/"+userID.String()+"/") {
		return "", storage.ErrInvalidObject
	}

	objInfo, err := s.client.StatObject(ctx, s.cfg.S3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return "", storage.ErrNotFoundObject
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if objInfo.Size <= 0 || objInfo.Size > s.cfg.Media.MaxSizeBytes {
		return "", storage.ErrInvalidObject
	}

	if ct := objInfo.ContentType; ct != "" && !isAllowedContentType(s.cfg.Media.AllowedContentTypes, ct) {
		return "", storage.ErrInvalidObject
	}

	if s.cfg.S3.PublicBaseURL == "" {
		return "", nil
	}

	base := strings.TrimRight(s.cfg.S3.PublicBaseURL, "/")

	return base + "/" + key, nil
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}

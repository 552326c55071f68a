package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFoundObject — объект (ключ) отсутствует в бакете.
	ErrNotFoundObject = errors.New("object not found")
	// ErrInvalidObject — нарушены ограничения загрузки (тип/размер/ключ).
	ErrInvalidObject = errors.New("invalid object")
)

// Виды загружаемых изображений.
const (
	MediaKindAvatar = "avatar"
	MediaKindCover  = "cover"
)

// UploadInfo — информация для клиента о presigned PUT загрузке.
//   - UploadURL: конечный URL для PUT-запроса;
//   - Key: ключ (путь) будущего объекта в бакете;
//   - Expires: время жизни подписи;
//   - RequiredHeader: заголовки, которые клиент обязан передать при PUT.
type UploadInfo struct {
	UploadURL      string
	Key            string
	Expires        time.Duration
	RequiredHeader map[string]string
}

// Media — контракт генерации presigned URL и подтверждения факта загрузки.
type Media interface {
	// MediaUploadURL генерирует presigned PUT для kind (avatar|cover).
	// Внутри — валидация contentType и contentLength.
	MediaUploadURL(ctx context.Context, userID uuid.UUID, kind, contentType string, contentLength int64) (*UploadInfo, error)
	// CheckMediaUpload проверяет факт загрузки по key (наличие, тип, размер)
	// и возвращает публичный URL (если сконфигурирован PublicBaseURL).
	CheckMediaUpload(ctx context.Context, userID uuid.UUID, kind, key string) (publicURL string, err error)
}

// MediaStorage — алиас-обёртка для внедрения зависимости.
type MediaStorage interface {
	Media
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// WatchEntry — элемент истории просмотров: метаданные видео плюс момент
// последнего просмотра. Повторный просмотр сдвигает WatchedAt, не дублируя запись.
type WatchEntry struct {
	VideoID         uuid.UUID
	Title           string
	ThumbnailURL    string
	DurationSeconds uint32
	OwnerID         uuid.UUID
	OwnerUsername   string
	OwnerAvatarURL  string
	WatchedAt       time.Time
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// ChannelProfile — публичный профиль канала с агрегатами по подпискам.
// IsSubscribed вычисляется относительно зрителя, запросившего профиль.
type ChannelProfile struct {
	UserID       uuid.UUID
	Username     string
	FullName     string
	AvatarURL    string
	CoverURL     string
	Subscribers  uint64
	SubscribedTo uint64
	IsSubscribed bool
	CreatedAt    time.Time
}

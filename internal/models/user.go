// models содержит доменные сущности accounts-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — модель пользователя (канала) в системе.
//
// RefreshTokenHash — единственный слот активной сессии: хранится sha256-хэш
// текущего refresh-токена (base64url) либо пустая строка, если сессии нет.
// Повторный логин перезаписывает слот и тем самым вытесняет прежнюю сессию.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	AvatarKey    string
	AvatarURL    string
	CoverKey     string
	CoverURL     string
	// RefreshTokenHash — хэш активного refresh-токена; "" = LoggedOut.
	RefreshTokenHash string
	// RefreshExpiresAt — момент истечения активного refresh-токена (UTC).
	// Нулевое время, если сессии нет.
	RefreshExpiresAt time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

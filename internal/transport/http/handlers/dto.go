package handlers

import (
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/models"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/storage"
)

// Запрос на регистрацию.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// Запрос на вход; login — username или email.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Запрос на refresh. Токен опционален: браузер передаёт его cookie,
// мобильные клиенты — телом запроса.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Запрос на смену пароля.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Запрос на изменение реквизитов профиля; поля опциональные.
type UpdateDetailsRequest struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
}

// Пресайн на загрузку изображения профиля (avatar|cover).
type MediaPresignRequest struct {
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
}

type MediaPresignResponse struct {
	UploadURL      string            `json:"upload_url"`
	Key            string            `json:"key"`
	ExpiresSeconds uint32            `json:"expires_seconds"`
	RequiredHeader map[string]string `json:"required_headers"`
}

// Подтверждение загрузки по ключу.
type MediaConfirmRequest struct {
	Key string `json:"key"`
}

// Запрос на запись просмотра в историю.
type RecordWatchRequest struct {
	VideoID string `json:"video_id"`
}

// Профиль текущего пользователя (приватное представление).
type User struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	CoverURL  string `json:"cover_url,omitempty"`
	CreatedAt int64  `json:"created_at"` // Unix UTC
	UpdatedAt int64  `json:"updated_at"` // Unix UTC
}

// Ответ register/login/refresh: пользователь плюс пара токенов.
type AuthResponse struct {
	User            User   `json:"user"`
	AccessToken     string `json:"access_token"`
	RefreshToken    string `json:"refresh_token"`
	AccessExpiresAt int64  `json:"access_expires_at"` // Unix UTC
}

// Публичный профиль канала.
type ChannelProfile struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	CoverURL     string `json:"cover_url,omitempty"`
	Subscribers  uint64 `json:"subscribers"`
	SubscribedTo uint64 `json:"subscribed_to"`
	IsSubscribed bool   `json:"is_subscribed"`
	CreatedAt    int64  `json:"created_at"` // Unix UTC
}

// Элемент истории просмотров.
type WatchEntry struct {
	VideoID         string `json:"video_id"`
	Title           string `json:"title"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
	DurationSeconds uint32 `json:"duration_seconds"`
	OwnerID         string `json:"owner_id"`
	OwnerUsername   string `json:"owner_username"`
	OwnerAvatarURL  string `json:"owner_avatar_url,omitempty"`
	WatchedAt       int64  `json:"watched_at"` // Unix UTC
}

func userFromModel(u *models.User) User {
	return User{
		UserID:    u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		CoverURL:  u.CoverURL,
		CreatedAt: u.CreatedAt.Unix(),
		UpdatedAt: u.UpdatedAt.Unix(),
	}
}

func authResponseFromModel(pair *models.TokenPair, u *models.User) AuthResponse {
	return AuthResponse{
		User:            userFromModel(u),
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		AccessExpiresAt: pair.AccessExpiresAt.Unix(),
	}
}

func channelFromModel(p *models.ChannelProfile) ChannelProfile {
	return ChannelProfile{
		UserID:       p.UserID.String(),
		Username:     p.Username,
		FullName:     p.FullName,
		AvatarURL:    p.AvatarURL,
		CoverURL:     p.CoverURL,
		Subscribers:  p.Subscribers,
		SubscribedTo: p.SubscribedTo,
		IsSubscribed: p.IsSubscribed,
		CreatedAt:    p.CreatedAt.Unix(),
	}
}

func presignFromInfo(info *storage.UploadInfo) MediaPresignResponse {
	return MediaPresignResponse{
		UploadURL:      info.UploadURL,
		Key:            info.Key,
		ExpiresSeconds: uint32(info.Expires.Seconds()),
		RequiredHeader: info.RequiredHeader,
	}
}

func watchEntriesFromModel(entries []models.WatchEntry) []WatchEntry {
	out := make([]WatchEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, WatchEntry{
			VideoID:         e.VideoID.String(),
			Title:           e.Title,
			ThumbnailURL:    e.ThumbnailURL,
			DurationSeconds: e.DurationSeconds,
			OwnerID:         e.OwnerID.String(),
			OwnerUsername:   e.OwnerUsername,
			OwnerAvatarURL:  e.OwnerAvatarURL,
			WatchedAt:       e.WatchedAt.Unix(),
		})
	}
	return out
}

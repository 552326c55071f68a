// storage содержит контракты слоя хранилищ accounts-service.
//
// storage.go — работа с пользователями, сессионным слотом, подписками
// и историей просмотров в БД.
// media.go — контракт для загрузки аватаров/обложек в S3/MinIO.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/видео/сессия).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (username/email).
	ErrAlreadyExists = errors.New("already exists")
)

// UserUpdate — частичный апдейт профиля.
// Обновляются только поля с ненулевыми указателями.
type UserUpdate struct {
	Email    *string
	FullName *string
}

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создаёт нового пользователя в БД.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UserByLogin находит пользователя по username или email (после нормализации).
	UserByLogin(ctx context.Context, login string) (*models.User, error)
	// UpdateUserDetails выполняет частичное обновление полей из update.
	// Реализация должна обновить updated_at.
	UpdateUserDetails(ctx context.Context, id uuid.UUID, update UserUpdate) (*models.User, error)
	// UpdatePasswordHash заменяет хэш пароля.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	// ConfirmMediaUpload фиксирует key и публичный URL аватара (kind="avatar")
	// или обложки (kind="cover") в записи пользователя.
	ConfirmMediaUpload(ctx context.Context, id uuid.UUID, kind, key, publicURL string) (*models.User, error)
}

// SessionStorage управляет единственным сессионным слотом пользователя.
// Все записи узко скоупированы: затрагиваются только сессионные колонки,
// остальные атрибуты пользователя не перечитываются и не валидируются.
type SessionStorage interface {
	// SetSession перезаписывает хэш refresh-токена и срок его действия.
	// Повторный вызов вытесняет предыдущую сессию.
	SetSession(ctx context.Context, userID uuid.UUID, refreshHash string, expiresAt time.Time) error
	// ClearSession сбрасывает сессионный слот. Идемпотентна: отсутствие
	// активной сессии ошибкой не считается (но ErrNotFound для неизвестного id).
	ClearSession(ctx context.Context, userID uuid.UUID) error
	// SessionByUserID возвращает хэш активного refresh-токена и срок действия.
	// ErrNotFound — пользователь неизвестен либо слот пуст.
	SessionByUserID(ctx context.Context, userID uuid.UUID) (string, time.Time, error)
	// ClearExpiredSessions сбрасывает слоты с истёкшим refresh-токеном.
	ClearExpiredSessions(ctx context.Context, now time.Time) error
}

// SubscriptionStorage выполняет операции над рёбрами подписок.
type SubscriptionStorage interface {
	// Subscribe создаёт ребро subscriber->channel. Существующее ребро — no-op.
	Subscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error
	// Unsubscribe удаляет ребро. Отсутствующее ребро — no-op.
	Unsubscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error
	// ChannelProfile возвращает профиль канала по username с агрегатами
	// подписок; viewerID может быть uuid.Nil (аноним).
	ChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*models.ChannelProfile, error)
}

// HistoryStorage выполняет операции над историей просмотров.
type HistoryStorage interface {
	// RecordWatch фиксирует просмотр видео; повторный просмотр обновляет
	// watched_at. ErrNotFound — видео не существует.
	RecordWatch(ctx context.Context, userID, videoID uuid.UUID, watchedAt time.Time) error
	// WatchHistory возвращает последние просмотры пользователя (новые первыми).
	WatchHistory(ctx context.Context, userID uuid.UUID, limit int) ([]models.WatchEntry, error)
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	UserStorage
	SessionStorage
	SubscriptionStorage
	HistoryStorage
	Close()
}

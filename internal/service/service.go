// service содержит бизнес-логику accounts-сервиса:
// регистрацию/аутентификацию пользователей, жизненный цикл пары токенов
// (выпуск, ротация, отзыв, проверка), операции над профилем, подписками,
// историей просмотров и медиа — через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданные хранилища потокобезопасны.
//   - Сессия пользователя — единственный перезаписываемый слот: повторный
//     логин вытесняет прежнюю сессию, ротация refresh делает предыдущий
//     токен навсегда непригодным.
//   - Ошибки возвращаются как обёрнутые sentinel-значения и далее маппятся
//     транспортом на HTTP-статусы (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/cache"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/config"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен (access/refresh) некорректен по формату/подписи
	// либо ссылается на несуществующего пользователя. Транспорт: HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrSessionRevoked — предъявленный refresh-токен не совпадает с активным
	// слотом сессии (logout, ротация или вытеснение повторным логином) и
	// недействителен независимо от срока. Транспорт: HTTP 401.
	ErrSessionRevoked = errors.New("session revoked")

	// ErrUserTaken — username или e-mail уже заняты другим пользователем.
	// Транспорт: HTTP 409.
	ErrUserTaken = errors.New("username or email already taken")

	// ErrNotFound — сущность (пользователь/канал/видео) не найдена.
	// Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrInvalidUsername — username не проходит политику валидации.
	// Транспорт: HTTP 400.
	ErrInvalidUsername = errors.New("invalid username format")

	// ErrInvalidEmail — e-mail имеет некорректный формат. Транспорт: HTTP 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword — пароль не удовлетворяет политикам сложности.
	// Транспорт: HTTP 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmptyPassword — пароль пустой. Транспорт: HTTP 400.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrInvalidArgument — прочие некорректные входные данные. Транспорт: HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Service описывает бизнес-логику accounts-сервиса.
type Service struct {
	storage storage.Storage
	media   storage.MediaStorage
	cfg     *config.Config
	scache  cache.SessionCache // может быть nil, если кэш не сконфигурирован
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, media storage.MediaStorage, cfg *config.Config) *Service {
	return &Service{
		storage: storage,
		media:   media,
		cfg:     cfg,
	}
}

// SetSessionCache устанавливает кэш сессионных слотов (опционально).
func (s *Service) SetSessionCache(c cache.SessionCache) {
	s.scache = c
}

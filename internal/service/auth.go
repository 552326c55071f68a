package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/cache"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/models"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/pkg/log"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/pkg/redact"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/storage"
)

// RegisterInput — входные данные регистрации.
type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Password string
}

// RegisterUser регистрирует нового пользователя и сразу открывает сессию
// (возвращает первую пару токенов — контракт «регистрация = вход»).
func (s *Service) RegisterUser(ctx context.Context, input RegisterInput) (*models.TokenPair, *models.User, error) {
	const op = "service.auth.RegisterUser"

	username, err := validateUsername(input.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	email, err := validateEmail(input.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validatePassword(input.Password); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	// Pre-check обоих уникальных полей; гонка с параллельной регистрацией
	// закрывается уникальными индексами (SaveUser -> ErrAlreadyExists).
	for _, login := range []string{username, email} {
		_, err := s.storage.UserByLogin(ctx, login)
		if err == nil {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrUserTaken)
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrUserTaken)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, user, nil
}

// LoginUser выполняет вход по username-или-email + пароль.
// Всегда перезаписывает сессионный слот: повторный логин с другого
// устройства молча вытесняет предыдущую сессию.
func (s *Service) LoginUser(ctx context.Context, login, password string) (*models.TokenPair, *models.User, error) {
	const op = "service.auth.LoginUser"

	login = strings.ToLower(strings.TrimSpace(login))
	if login == "" || len(password) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	// Неизвестный идентификатор отличим от неверного пароля: промах
	// поиска — NotFound, Unauthorized зарезервирован за несовпадением пароля.
	user, err := s.storage.UserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		log.From(ctx).Warn("login_password_mismatch",
			slog.String("op", op),
			slog.String("login", redact.Login(login)),
		)
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, user, nil
}

// RefreshSession обновляет пару токенов по refresh-токену (ротация):
// предъявленный токен сверяется «байт в байт» (по хэшу) с активным слотом,
// после чего слот перезаписывается новым токеном — прежний становится
// навсегда непригодным, даже если его срок не истёк.
func (s *Service) RefreshSession(ctx context.Context, refreshToken string) (*models.TokenPair, *models.User, error) {
	const op = "service.auth.RefreshSession"

	lg := log.From(ctx)

	if refreshToken == "" {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	userID, err := s.parseRefreshToken(refreshToken)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	presentedHash := hashToken(refreshToken)

	// Быстрый отказ по кэшу: заведомо вытесненный токен не ходит в БД.
	if s.scache != nil {
		if entry, ok, cerr := s.scache.Get(ctx, userID); cerr == nil && ok {
			if entry.RefreshHash != presentedHash {
				lg.Warn("refresh_superseded_cache",
					slog.String("op", op),
					slog.String("user_id", userID.String()),
				)
				return nil, nil, fmt.Errorf("%s: %w", op, ErrSessionRevoked)
			}
		} else if cerr != nil {
			lg.Warn("session_cache_get_failed",
				slog.String("op", op),
				slog.String("err", cerr.Error()),
			)
		}
	}

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	// Источник истины — слот в БД: пустой слот или любое расхождение с
	// предъявленным токеном означает logout/ротацию/вытеснение.
	slotHash, _, err := s.storage.SessionByUserID(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if slotHash == "" || slotHash != presentedHash {
		lg.Warn("refresh_superseded",
			slog.String("op", op),
			slog.String("user_id", userID.String()),
		)
		return nil, nil, fmt.Errorf("%s: %w", op, ErrSessionRevoked)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, user, nil
}

// LogoutUser закрывает активную сессию пользователя.
// Идемпотентна: повторный logout уже разлогиненного пользователя — не ошибка.
func (s *Service) LogoutUser(ctx context.Context, userID uuid.UUID) error {
	const op = "service.auth.LogoutUser"

	if userID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.ClearSession(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if s.scache != nil {
		if err := s.scache.Del(ctx, userID); err != nil {
			log.From(ctx).Warn("session_cache_del_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	return nil
}

// ChangePassword меняет пароль после проверки старого.
// Активную сессию намеренно не отзывает: refresh-токен остаётся в силе,
// явный путь отзыва — LogoutUser.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	const op = "service.auth.ChangePassword"

	if userID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := validatePassword(newPassword); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, oldPassword) {
		return fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	hashedPassword, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdatePasswordHash(ctx, userID, hashedPassword); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AuthorizeAccess проверяет access-токен и возвращает актуального пользователя.
// Пользователь перечитывается из БД: токен на удалённую запись недействителен.
func (s *Service) AuthorizeAccess(ctx context.Context, accessToken string) (*models.User, error) {
	const op = "service.auth.AuthorizeAccess"

	uid, _, err := s.validateAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// issueTokenPair выпускает новую пару access+refresh и атомарно (в смысле
// одного UPDATE) перезаписывает сессионный слот. Если запись слота не удалась,
// свежевыпущенные токены отбрасываются и наружу уходит ошибка хранилища:
// клиент не должен получить токен, которого нет в слоте.
func (s *Service) issueTokenPair(ctx context.Context, user *models.User) (*models.TokenPair, error) {
	const op = "service.auth.issueTokenPair"

	now := time.Now().UTC()

	accessToken, err := s.generateAccessToken(ctx, user.ID, user.Username, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, refreshExpiresAt, err := s.generateRefreshToken(ctx, user.ID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshHash := hashToken(refreshToken)

	if err := s.storage.SetSession(ctx, user.ID, refreshHash, refreshExpiresAt); err != nil {
		log.From(ctx).Error("set_session_failed",
			slog.String("op", op),
			slog.String("user_id", user.ID.String()),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.scache != nil {
		entry := &cache.SessionEntry{RefreshHash: refreshHash, ExpiresAt: refreshExpiresAt}
		if err := s.scache.Set(ctx, user.ID, entry, time.Until(refreshExpiresAt)); err != nil {
			log.From(ctx).Warn("session_cache_set_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	return &models.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		AccessExpiresAt: now.Add(s.cfg.Auth.AccessTokenTTL),
	}, nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var usernameRe = regexp.MustCompile(`^[a-z0-9_.]{3,32}$`)

// validateUsername нормализует username (trim + lower) и проверяет формат.
func validateUsername(raw string) (string, error) {
	const op = "service.auth.validateUsername"

	username := strings.ToLower(strings.TrimSpace(raw))
	if !usernameRe.MatchString(username) {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidUsername)
	}

	return username, nil
}

// validateEmail проверяет базовый формат email и обрезает пробелы снаружи.
func validateEmail(raw string) (string, error) {
	const op = "service.auth.validateEmail"

	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	return strings.ToLower(email), nil
}

// validatePassword проверяет минимальные требования к паролю.
// Политика по умолчанию: длина >= 8, хотя бы одна строчная, заглавная, цифра и спецсимвол.
func validatePassword(pw string) error {
	const op = "service.auth.validatePassword"

	if len(pw) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyPassword)
	}

	if len([]rune(pw)) < 8 {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !(hasLower && hasUpper && hasDigit && hasSpecial) {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	return nil
}

package service

// Тесты сервисного слоя accounts-service (internal/service/auth.go).
//
//  Проверяем:
//  - валидацию входов (Register/Login/Refresh/Logout/ChangePassword);
//  - маппинг ошибок storage -> service;
//  - жизненный цикл сессионного слота: выдача, ротация при refresh,
//    вытеснение повторным логином, отзыв при logout;
//  - сохранность сессии при смене пароля.
//
// Подготовка окружения:
//   # 1) Сгенерировать моки интерфейсов хранилища и кэша:
//   mockgen -source=./internal/storage/storage.go -destination=./mocks/storage.go -package=mocks
//   mockgen -source=./internal/storage/media.go -destination=./mocks/media.go -package=mocks
//   mockgen -source=./internal/cache/cache.go -destination=./mocks/cache.go -package=mocks
//
//   # 2) Запустить тесты:
//   go test ./internal/service -v -race -count=1

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/cache"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/models"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/storage"
	"github.com/pribylovaa/go-video-hosting/accounts-service/mocks"
)

func newSvc(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc := New(st, mocks.NewMockMediaStorage(ctrl), testCfg())
	return svc, st, ctrl
}

func mustHashPW(t *testing.T, pw string) string {
	t.Helper()
	h, err := hashPassword(pw)
	require.NoError(t, err)
	return h
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Username: "channel_one",
		Email:    "user@example.com",
		FullName: "Channel One",
		Password: "Abcdef1!",
	}
}

func TestRegisterUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	in := validRegisterInput()

	st.EXPECT().UserByLogin(gomock.Any(), "channel_one").Return(nil, storage.ErrNotFound)
	st.EXPECT().UserByLogin(gomock.Any(), "user@example.com").Return(nil, storage.ErrNotFound)

	var saved *models.User
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		})
	st.EXPECT().SetSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	pair, user, err := svc.RegisterUser(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotEqual(t, uuid.Nil, user.ID)
	require.Equal(t, "channel_one", user.Username)
	require.Equal(t, "user@example.com", user.Email)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.WithinDuration(t, time.Now().Add(svc.cfg.Auth.AccessTokenTTL), pair.AccessExpiresAt, 2*time.Second)

	// Пароль не хранится открытым текстом.
	require.NotEqual(t, in.Password, saved.PasswordHash)
	require.True(t, checkPassword(saved.PasswordHash, in.Password))
}

func TestRegisterUser_NormalizesUsernameAndEmail(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	in := validRegisterInput()
	in.Username = "  Channel_One "
	in.Email = " User@Example.COM "

	st.EXPECT().UserByLogin(gomock.Any(), "channel_one").Return(nil, storage.ErrNotFound)
	st.EXPECT().UserByLogin(gomock.Any(), "user@example.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().SetSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, user, err := svc.RegisterUser(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "channel_one", user.Username)
	require.Equal(t, "user@example.com", user.Email)
}

func TestRegisterUser_InvalidInputs(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	in := validRegisterInput()
	in.Username = "ab"
	_, _, err := svc.RegisterUser(ctx, in)
	require.ErrorIs(t, err, ErrInvalidUsername)

	in = validRegisterInput()
	in.Email = "not-an-email"
	_, _, err = svc.RegisterUser(ctx, in)
	require.ErrorIs(t, err, ErrInvalidEmail)

	in = validRegisterInput()
	in.Password = ""
	_, _, err = svc.RegisterUser(ctx, in)
	require.ErrorIs(t, err, ErrEmptyPassword)

	in = validRegisterInput()
	in.Password = "short1!"
	_, _, err = svc.RegisterUser(ctx, in)
	require.ErrorIs(t, err, ErrWeakPassword)

	in = validRegisterInput()
	in.Password = "abcdefg1!"
	_, _, err = svc.RegisterUser(ctx, in)
	require.ErrorIs(t, err, ErrWeakPassword)

	in = validRegisterInput()
	in.FullName = "   "
	_, _, err = svc.RegisterUser(ctx, in)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRegisterUser_Taken_OnLookup(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByLogin(gomock.Any(), "channel_one").
		Return(&models.User{ID: uuid.New(), Username: "channel_one"}, nil)

	_, _, err := svc.RegisterUser(context.Background(), validRegisterInput())
	require.ErrorIs(t, err, ErrUserTaken)
}

func TestRegisterUser_SaveUserAlreadyExists_MapsToUserTaken(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByLogin(gomock.Any(), "channel_one").Return(nil, storage.ErrNotFound)
	st.EXPECT().UserByLogin(gomock.Any(), "user@example.com").Return(nil, storage.ErrNotFound)
	// Параллельная регистрация успела первой: уникальный индекс сработал.
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	_, _, err := svc.RegisterUser(context.Background(), validRegisterInput())
	require.ErrorIs(t, err, ErrUserTaken)
}

func TestRegisterUser_StorageErrors_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByLogin(gomock.Any(), "channel_one").
		Return(nil, errors.New("db down"))

	_, _, err := svc.RegisterUser(context.Background(), validRegisterInput())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUserTaken)
}

func TestLoginUser_OK_ByUsernameOrEmail(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	pw := "Abcdef1!"
	user := &models.User{
		ID:           uuid.New(),
		Username:     "channel_one",
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, pw),
	}

	st.EXPECT().UserByLogin(gomock.Any(), "channel_one").Return(user, nil)
	st.EXPECT().SetSession(gomock.Any(), user.ID, gomock.Any(), gomock.Any()).Return(nil)

	pair, got, err := svc.LoginUser(context.Background(), "Channel_One", pw)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	st.EXPECT().UserByLogin(gomock.Any(), "user@example.com").Return(user, nil)
	st.EXPECT().SetSession(gomock.Any(), user.ID, gomock.Any(), gomock.Any()).Return(nil)

	_, _, err = svc.LoginUser(context.Background(), " User@Example.com ", pw)
	require.NoError(t, err)
}

func TestLoginUser_EmptyInputs(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, _, err := svc.LoginUser(context.Background(), "", "Abcdef1!")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.LoginUser(context.Background(), "channel_one", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_UserNotFound_OrWrongPassword(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Промах поиска идентификатора — NotFound; Unauthorized
	// зарезервирован за несовпадением пароля.
	st.EXPECT().UserByLogin(gomock.Any(), "channel_one").
		Return(nil, storage.ErrNotFound)

	_, _, err := svc.LoginUser(context.Background(), "channel_one", "Abcdef1!")
	require.ErrorIs(t, err, ErrNotFound)

	user := &models.User{ID: uuid.New(), Username: "channel_one", PasswordHash: mustHashPW(t, "Abcdef1!")}
	st.EXPECT().UserByLogin(gomock.Any(), "channel_one").Return(user, nil)

	_, _, err = svc.LoginUser(context.Background(), "channel_one", "Wrong1!x")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_SetSessionFails_NoTokensIssued(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	pw := "Abcdef1!"
	user := &models.User{ID: uuid.New(), Username: "channel_one", PasswordHash: mustHashPW(t, pw)}

	st.EXPECT().UserByLogin(gomock.Any(), "channel_one").Return(user, nil)
	st.EXPECT().SetSession(gomock.Any(), user.ID, gomock.Any(), gomock.Any()).
		Return(errors.New("db write failed"))

	pair, _, err := svc.LoginUser(context.Background(), "channel_one", pw)
	require.Error(t, err)
	require.Nil(t, pair)
}

func TestRefreshSession_OK_WithRotation(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Username: "channel_one"}

	oldToken, expiresAt, err := svc.generateRefreshToken(ctx, user.ID, time.Now().UTC())
	require.NoError(t, err)

	var rotatedHash string
	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	st.EXPECT().SessionByUserID(gomock.Any(), user.ID).
		Return(hashToken(oldToken), expiresAt, nil)
	st.EXPECT().SetSession(gomock.Any(), user.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string, _ time.Time) error {
			rotatedHash = hash
			return nil
		})

	pair, got, err := svc.RefreshSession(ctx, oldToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.NotEmpty(t, pair.AccessToken)

	// Ротация: слот перезаписан хэшем нового токена, прежний токен ему
	// больше не соответствует.
	require.Equal(t, hashToken(pair.RefreshToken), rotatedHash)
	require.NotEqual(t, oldToken, pair.RefreshToken)
	require.NotEqual(t, hashToken(oldToken), rotatedHash)
}

func TestRefreshSession_ReplayAfterRotation_Rejected(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Username: "channel_one"}

	oldToken, _, err := svc.generateRefreshToken(ctx, user.ID, time.Now().UTC())
	require.NoError(t, err)
	newToken, expiresAt, err := svc.generateRefreshToken(ctx, user.ID, time.Now().UTC())
	require.NoError(t, err)

	// Слот уже перезаписан более поздним токеном.
	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	st.EXPECT().SessionByUserID(gomock.Any(), user.ID).
		Return(hashToken(newToken), expiresAt, nil)

	_, _, err = svc.RefreshSession(ctx, oldToken)
	require.ErrorIs(t, err, ErrSessionRevoked)
}

func TestRefreshSession_EmptySlot_AfterLogout(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Username: "channel_one"}

	token, _, err := svc.generateRefreshToken(ctx, user.ID, time.Now().UTC())
	require.NoError(t, err)

	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	st.EXPECT().SessionByUserID(gomock.Any(), user.ID).
		Return("", time.Time{}, storage.ErrNotFound)

	_, _, err = svc.RefreshSession(ctx, token)
	require.ErrorIs(t, err, ErrSessionRevoked)
}

func TestRefreshSession_InvalidInputs(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	_, _, err := svc.RefreshSession(ctx, "")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = svc.RefreshSession(ctx, "garbage")
	require.ErrorIs(t, err, ErrInvalidToken)

	// Токен подписан и валиден, но пользователя уже нет.
	uid := uuid.New()
	token, _, err := svc.generateRefreshToken(ctx, uid, time.Now().UTC())
	require.NoError(t, err)

	st.EXPECT().UserByID(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

	_, _, err = svc.RefreshSession(ctx, token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshSession_CacheFastReject(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	sc := mocks.NewMockSessionCache(ctrl)
	svc.SetSessionCache(sc)

	ctx := context.Background()
	uid := uuid.New()

	token, _, err := svc.generateRefreshToken(ctx, uid, time.Now().UTC())
	require.NoError(t, err)

	// Кэш знает про более свежий слот: отказ без похода в БД
	// (UserByID не ожидается — gomock поймает лишний вызов).
	sc.EXPECT().Get(gomock.Any(), uid).
		Return(&cache.SessionEntry{RefreshHash: "other-hash", ExpiresAt: time.Now().Add(time.Hour)}, true, nil)

	_, _, err = svc.RefreshSession(ctx, token)
	require.ErrorIs(t, err, ErrSessionRevoked)
}

func TestRefreshSession_CacheMiss_FallsThroughToDB(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	sc := mocks.NewMockSessionCache(ctrl)
	svc.SetSessionCache(sc)

	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Username: "channel_one"}

	token, expiresAt, err := svc.generateRefreshToken(ctx, user.ID, time.Now().UTC())
	require.NoError(t, err)

	sc.EXPECT().Get(gomock.Any(), user.ID).Return(nil, false, nil)
	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	st.EXPECT().SessionByUserID(gomock.Any(), user.ID).
		Return(hashToken(token), expiresAt, nil)
	st.EXPECT().SetSession(gomock.Any(), user.ID, gomock.Any(), gomock.Any()).Return(nil)
	sc.EXPECT().Set(gomock.Any(), user.ID, gomock.Any(), gomock.Any()).Return(nil)

	_, _, err = svc.RefreshSession(ctx, token)
	require.NoError(t, err)
}

func TestLogoutUser_OK_AndIdempotent(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()

	// Первый logout закрывает сессию, второй — no-op: слот уже пуст,
	// ClearSession идемпотентна для известного пользователя.
	st.EXPECT().ClearSession(gomock.Any(), uid).Return(nil).Times(2)

	require.NoError(t, svc.LogoutUser(context.Background(), uid))
	require.NoError(t, svc.LogoutUser(context.Background(), uid))
}

func TestLogoutUser_NilID(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	err := svc.LogoutUser(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLogoutUser_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	st.EXPECT().ClearSession(gomock.Any(), uid).Return(storage.ErrNotFound)

	err := svc.LogoutUser(context.Background(), uid)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLogoutUser_DropsCacheEntry(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	sc := mocks.NewMockSessionCache(ctrl)
	svc.SetSessionCache(sc)

	uid := uuid.New()
	st.EXPECT().ClearSession(gomock.Any(), uid).Return(nil)
	sc.EXPECT().Del(gomock.Any(), uid).Return(nil)

	require.NoError(t, svc.LogoutUser(context.Background(), uid))
}

func TestChangePassword_OK_KeepsSession(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	oldPW, newPW := "Abcdef1!", "Ghijkl2@"
	user := &models.User{ID: uid, Username: "channel_one", PasswordHash: mustHashPW(t, oldPW)}

	var newHash string
	st.EXPECT().UserByID(gomock.Any(), uid).Return(user, nil)
	st.EXPECT().UpdatePasswordHash(gomock.Any(), uid, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
			newHash = hash
			return nil
		})
	// ClearSession/SetSession не ожидаются: смена пароля не трогает
	// сессионный слот — gomock упадёт на любом лишнем вызове.

	require.NoError(t, svc.ChangePassword(context.Background(), uid, oldPW, newPW))
	require.True(t, checkPassword(newHash, newPW))
	require.False(t, checkPassword(newHash, oldPW))
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	user := &models.User{ID: uid, PasswordHash: mustHashPW(t, "Abcdef1!")}

	st.EXPECT().UserByID(gomock.Any(), uid).Return(user, nil)

	err := svc.ChangePassword(context.Background(), uid, "Wrong1!x", "Ghijkl2@")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword_InvalidInputs(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	err := svc.ChangePassword(context.Background(), uuid.Nil, "Abcdef1!", "Ghijkl2@")
	require.ErrorIs(t, err, ErrInvalidArgument)

	err = svc.ChangePassword(context.Background(), uuid.New(), "Abcdef1!", "weak")
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestChangePassword_UserNotFound(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	uid := uuid.New()
	st.EXPECT().UserByID(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

	err := svc.ChangePassword(context.Background(), uid, "Abcdef1!", "Ghijkl2@")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAuthorizeAccess_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := &models.User{ID: uuid.New(), Username: "channel_one"}

	at, err := svc.generateAccessToken(ctx, user.ID, user.Username, time.Now().UTC())
	require.NoError(t, err)

	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)

	got, err := svc.AuthorizeAccess(ctx, at)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
}

func TestAuthorizeAccess_InvalidToken_OrDeletedUser(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	_, err := svc.AuthorizeAccess(ctx, "garbage")
	require.ErrorIs(t, err, ErrInvalidToken)

	uid := uuid.New()
	at, err := svc.generateAccessToken(ctx, uid, "channel_one", time.Now().UTC())
	require.NoError(t, err)

	st.EXPECT().UserByID(gomock.Any(), uid).Return(nil, storage.ErrNotFound)

	_, err = svc.AuthorizeAccess(ctx, at)
	require.ErrorIs(t, err, ErrInvalidToken)
}

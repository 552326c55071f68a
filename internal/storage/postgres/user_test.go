package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/models"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Файл интеграционных тестов для пакета postgres (репозиторий user.go):
// - поднимает реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// - применяет миграции из ./migrations (users, subscriptions, videos, watch_history);
// - проверяет happy-path (создание и поиск по username/email/ID), CITEXT-уникальность,
//   частичный апдейт профиля, смену пароля и фиксацию медиа;
// - валидирует сценарии отсутствия записей (storage.ErrNotFound).
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций в каталоге ./migrations независимо от текущего рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает временный экземпляр PostgreSQL через testcontainers-go,
// применяет все миграции и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	for _, name := range []string{
		"1_init_users.up.sql",
		"2_init_subscriptions.up.sql",
		"3_init_videos.up.sql",
		"4_init_watch_history.up.sql",
	} {
		_, err = pool.Exec(ctx, readMigration(t, name))
		require.NoError(t, err, "apply migration %s", name)
	}

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// mustSaveUser — создаёт пользователя с заданными username/email и возвращает его.
func mustSaveUser(t *testing.T, st *Storage, username, email string) *models.User {
	t.Helper()

	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		FullName:     "Full Name",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.SaveUser(context.Background(), u))
	return u
}

func strptr(s string) *string { return &s }

// TestIntegration_SaveUser_And_LookupByLogin_And_ByID_OK — happy-path:
// сохранение пользователя и последующий поиск по username, email и ID;
// проверка CITEXT (регистронезависимо) и таймстемпов.
func TestIntegration_SaveUser_And_LookupByLogin_And_ByID_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := mustSaveUser(t, st, "channel_one", "user@example.com")

	gotByUsername, err := st.UserByLogin(context.Background(), "Channel_One")
	require.NoError(t, err)
	require.Equal(t, u.ID, gotByUsername.ID)
	require.Equal(t, u.Username, gotByUsername.Username)
	require.WithinDuration(t, u.CreatedAt, gotByUsername.CreatedAt, time.Second)
	require.WithinDuration(t, u.UpdatedAt, gotByUsername.UpdatedAt, time.Second)

	gotByEmail, err := st.UserByLogin(context.Background(), "User@Example.Com")
	require.NoError(t, err)
	require.Equal(t, u.ID, gotByEmail.ID)

	gotByID, err := st.UserByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, u.ID, gotByID.ID)
	// сессионный слот новой записи пуст.
	require.Empty(t, gotByID.RefreshTokenHash)
}

// TestIntegration_SaveUser_Unique_CaseInsensitive_Violation — конфликт уникальности
// по username и email с разным регистром должен мапиться в storage.ErrAlreadyExists.
func TestIntegration_SaveUser_Unique_CaseInsensitive_Violation(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	mustSaveUser(t, st, "channel_one", "user@example.com")

	now := time.Now().UTC()
	dupUsername := &models.User{
		ID:           uuid.New(),
		Username:     "Channel_One",
		Email:        "other@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := st.SaveUser(context.Background(), dupUsername)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	dupEmail := &models.User{
		ID:           uuid.New(),
		Username:     "channel_two",
		Email:        "USER@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = st.SaveUser(context.Background(), dupEmail)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

// TestIntegration_UserLookup_NotFound — поиск несуществующих записей.
func TestIntegration_UserLookup_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.UserByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = st.UserByLogin(context.Background(), "ghost")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_UpdateUserDetails_Partial — частичный апдейт обновляет только
// заданные поля и сдвигает updated_at.
func TestIntegration_UpdateUserDetails_Partial(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := mustSaveUser(t, st, "channel_one", "user@example.com")

	got, err := st.UpdateUserDetails(context.Background(), u.ID, storage.UserUpdate{
		FullName: strptr("New Name"),
	})
	require.NoError(t, err)
	require.Equal(t, "New Name", got.FullName)
	require.Equal(t, strings.ToLower(u.Email), strings.ToLower(got.Email))
	require.True(t, got.UpdatedAt.After(u.UpdatedAt) || got.UpdatedAt.Equal(u.UpdatedAt))

	got, err = st.UpdateUserDetails(context.Background(), u.ID, storage.UserUpdate{
		Email: strptr("new@example.com"),
	})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", strings.ToLower(got.Email))
	require.Equal(t, "New Name", got.FullName)
}

// TestIntegration_UpdateUserDetails_EmailTaken — смена email на занятый чужой —
// storage.ErrAlreadyExists (регистронезависимо, CITEXT).
func TestIntegration_UpdateUserDetails_EmailTaken(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	mustSaveUser(t, st, "channel_one", "first@example.com")
	second := mustSaveUser(t, st, "channel_two", "second@example.com")

	_, err := st.UpdateUserDetails(context.Background(), second.ID, storage.UserUpdate{
		Email: strptr("First@Example.Com"),
	})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

// TestIntegration_UpdateUserDetails_NotFound — апдейт несуществующего пользователя.
func TestIntegration_UpdateUserDetails_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.UpdateUserDetails(context.Background(), uuid.New(), storage.UserUpdate{
		FullName: strptr("Name"),
	})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_UpdatePasswordHash — замена хэша пароля и ErrNotFound
// для неизвестного пользователя.
func TestIntegration_UpdatePasswordHash(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := mustSaveUser(t, st, "channel_one", "user@example.com")

	require.NoError(t, st.UpdatePasswordHash(context.Background(), u.ID, "new-hash"))

	got, err := st.UserByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, "new-hash", got.PasswordHash)

	err = st.UpdatePasswordHash(context.Background(), uuid.New(), "hash")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_ConfirmMediaUpload — фиксация аватара и обложки обновляет
// соответствующую пару key/url, не задевая другую; неизвестный kind — ErrInvalidObject.
func TestIntegration_ConfirmMediaUpload(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := mustSaveUser(t, st, "channel_one", "user@example.com")

	got, err := st.ConfirmMediaUpload(context.Background(), u.ID,
		storage.MediaKindAvatar, "avatars/a.png", "https://cdn.example.com/avatars/a.png")
	require.NoError(t, err)
	require.Equal(t, "avatars/a.png", got.AvatarKey)
	require.Equal(t, "https://cdn.example.com/avatars/a.png", got.AvatarURL)
	require.Empty(t, got.CoverKey)

	got, err = st.ConfirmMediaUpload(context.Background(), u.ID,
		storage.MediaKindCover, "covers/c.png", "https://cdn.example.com/covers/c.png")
	require.NoError(t, err)
	require.Equal(t, "covers/c.png", got.CoverKey)
	require.Equal(t, "https://cdn.example.com/covers/c.png", got.CoverURL)
	require.Equal(t, "avatars/a.png", got.AvatarKey)

	_, err = st.ConfirmMediaUpload(context.Background(), u.ID, "banner", "k", "u")
	require.ErrorIs(t, err, storage.ErrInvalidObject)

	_, err = st.ConfirmMediaUpload(context.Background(), uuid.New(),
		storage.MediaKindAvatar, "k", "u")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

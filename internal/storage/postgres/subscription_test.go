package postgres

import (
	"context"
	"testing"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Интеграционные тесты подписок и профиля канала (subscription.go):
// создание/удаление ребра, идемпотентность, агрегаты subscribers/subscribed_to
// и флаг is_subscribed относительно зрителя.

// TestIntegration_Subscribe_And_ChannelProfile — подписка отражается в агрегатах
// профиля; повторная подписка — no-op.
func TestIntegration_Subscribe_And_ChannelProfile(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	channel := mustSaveUser(t, st, "channel_one", "one@example.com")
	viewer := mustSaveUser(t, st, "viewer", "viewer@example.com")
	other := mustSaveUser(t, st, "other", "other@example.com")

	require.NoError(t, st.Subscribe(context.Background(), viewer.ID, channel.ID))
	require.NoError(t, st.Subscribe(context.Background(), other.ID, channel.ID))
	// идемпотентность.
	require.NoError(t, st.Subscribe(context.Background(), viewer.ID, channel.ID))

	profile, err := st.ChannelProfile(context.Background(), "channel_one", viewer.ID)
	require.NoError(t, err)
	require.Equal(t, channel.ID, profile.UserID)
	require.Equal(t, "channel_one", profile.Username)
	require.EqualValues(t, 2, profile.Subscribers)
	require.EqualValues(t, 0, profile.SubscribedTo)
	require.True(t, profile.IsSubscribed)

	// у зрителя одна исходящая подписка.
	viewerProfile, err := st.ChannelProfile(context.Background(), "viewer", channel.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, viewerProfile.Subscribers)
	require.EqualValues(t, 1, viewerProfile.SubscribedTo)
	require.False(t, viewerProfile.IsSubscribed)
}

// TestIntegration_ChannelProfile_Anonymous — анонимный зритель (uuid.Nil):
// is_subscribed всегда false, агрегаты считаются как обычно.
func TestIntegration_ChannelProfile_Anonymous(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	channel := mustSaveUser(t, st, "channel_one", "one@example.com")
	viewer := mustSaveUser(t, st, "viewer", "viewer@example.com")
	require.NoError(t, st.Subscribe(context.Background(), viewer.ID, channel.ID))

	profile, err := st.ChannelProfile(context.Background(), "channel_one", uuid.Nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, profile.Subscribers)
	require.False(t, profile.IsSubscribed)
}

// TestIntegration_ChannelProfile_NotFound — неизвестный username.
func TestIntegration_ChannelProfile_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.ChannelProfile(context.Background(), "ghost", uuid.Nil)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_Subscribe_UnknownUsers — FK-нарушение мапится в ErrNotFound.
func TestIntegration_Subscribe_UnknownUsers(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	channel := mustSaveUser(t, st, "channel_one", "one@example.com")

	err := st.Subscribe(context.Background(), uuid.New(), channel.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	err = st.Subscribe(context.Background(), channel.ID, uuid.New())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_Unsubscribe — удаление ребра и идемпотентность.
func TestIntegration_Unsubscribe(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	channel := mustSaveUser(t, st, "channel_one", "one@example.com")
	viewer := mustSaveUser(t, st, "viewer", "viewer@example.com")
	require.NoError(t, st.Subscribe(context.Background(), viewer.ID, channel.ID))

	require.NoError(t, st.Unsubscribe(context.Background(), viewer.ID, channel.ID))

	profile, err := st.ChannelProfile(context.Background(), "channel_one", viewer.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, profile.Subscribers)
	require.False(t, profile.IsSubscribed)

	// отсутствующее ребро — no-op.
	require.NoError(t, st.Unsubscribe(context.Background(), viewer.ID, channel.ID))
}

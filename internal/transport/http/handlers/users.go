package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/service"
	apierrors "github.com/pribylovaa/go-video-hosting/accounts-service/internal/transport/http/errors"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/transport/http/middleware"
)

// CurrentUser — GET /users/me. Требует аутентификации.
func (h *Handlers) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	out, err := h.service.CurrentUser(r.Context(), user.ID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(out))
}

// UpdateDetails — PATCH /users/me. Требует аутентификации.
func (h *Handlers) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in UpdateDetailsRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	out, err := h.service.UpdateDetails(r.Context(), user.ID, service.UpdateDetailsInput{
		Email:    in.Email,
		FullName: in.FullName,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(out))
}

// ChannelProfile — GET /channels/{username}.
// Доступен анонимно; is_subscribed считается относительно аутентифицированного
// зрителя, если он есть.
func (h *Handlers) ChannelProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	viewerID := uuid.Nil
	if viewer, ok := middleware.UserFrom(r.Context()); ok {
		viewerID = viewer.ID
	}

	profile, err := h.service.ChannelProfile(r.Context(), username, viewerID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, channelFromModel(profile))
}

// Subscribe — POST /channels/{username}/subscribe. Требует аутентификации.
func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	if err := h.service.Subscribe(r.Context(), user.ID, chi.URLParam(r, "username")); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "subscribed"})
}

// Unsubscribe — DELETE /channels/{username}/subscribe. Требует аутентификации.
// Повторный вызов безопасен (no-op).
func (h *Handlers) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	if err := h.service.Unsubscribe(r.Context(), user.ID, chi.URLParam(r, "username")); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "unsubscribed"})
}

// RecordWatch — POST /users/me/history. Требует аутентификации.
func (h *Handlers) RecordWatch(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in RecordWatchRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	videoID, err := uuid.Parse(in.VideoID)
	if err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.service.RecordWatch(r.Context(), user.ID, videoID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

// WatchHistory — GET /users/me/history?limit=N. Требует аутентификации.
func (h *Handlers) WatchHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}
		limit = v
	}

	entries, err := h.service.WatchHistory(r.Context(), user.ID, limit)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"history": watchEntriesFromModel(entries)})
}

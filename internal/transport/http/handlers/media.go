package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/service"
	apierrors "github.com/pribylovaa/go-video-hosting/accounts-service/internal/transport/http/errors"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/transport/http/middleware"
)

// MediaPresign — POST /users/me/media/{kind}/presign. Требует аутентификации.
// kind: avatar|cover. Возвращает presigned PUT URL: клиент грузит файл
// напрямую в объектное хранилище, минуя сервис.
func (h *Handlers) MediaPresign(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in MediaPresignRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	info, err := h.service.MediaUploadURL(r.Context(), service.MediaUploadURLInput{
		UserID:        user.ID,
		Kind:          chi.URLParam(r, "kind"),
		ContentType:   in.ContentType,
		ContentLength: in.ContentLength,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, presignFromInfo(info))
}

// MediaConfirm — POST /users/me/media/{kind}/confirm. Требует аутентификации.
// Проверяет факт загрузки объекта и фиксирует его в профиле.
func (h *Handlers) MediaConfirm(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in MediaConfirmRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	out, err := h.service.ConfirmMediaUpload(r.Context(), service.ConfirmMediaUploadInput{
		UserID: user.ID,
		Kind:   chi.URLParam(r, "kind"),
		Key:    in.Key,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userFromModel(out))
}

package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/service"
	apierrors "github.com/pribylovaa/go-video-hosting/accounts-service/internal/transport/http/errors"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/transport/http/middleware"
)

// RegisterUser — POST /auth/register.
// Создаёт пользователя и сразу открывает сессию: пара токенов уходит
// и в HTTP-only cookie, и в теле ответа.
func (h *Handlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var in RegisterRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	pair, user, err := h.service.RegisterUser(r.Context(), service.RegisterInput{
		Username: in.Username,
		Email:    in.Email,
		FullName: in.FullName,
		Password: in.Password,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	setAuthCookies(w, h.cookies, pair.AccessToken, pair.RefreshToken)
	writeJSON(w, http.StatusCreated, authResponseFromModel(pair, user))
}

// LoginUser — POST /auth/login.
func (h *Handlers) LoginUser(w http.ResponseWriter, r *http.Request) {
	var in LoginRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	pair, user, err := h.service.LoginUser(r.Context(), in.Login, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	setAuthCookies(w, h.cookies, pair.AccessToken, pair.RefreshToken)
	writeJSON(w, http.StatusOK, authResponseFromModel(pair, user))
}

// RefreshSession — POST /auth/refresh.
// Refresh-токен берётся из cookie, при её отсутствии — из тела запроса.
// Успешный вызов ротирует сессию: прежний refresh-токен перестаёт действовать.
func (h *Handlers) RefreshSession(w http.ResponseWriter, r *http.Request) {
	var in RefreshRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := decodeStrict(r, &in); err != nil {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}
	}

	token := in.RefreshToken
	if c, err := r.Cookie(refreshCookieName); err == nil && c.Value != "" {
		token = c.Value
	}

	pair, user, err := h.service.RefreshSession(r.Context(), token)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	setAuthCookies(w, h.cookies, pair.AccessToken, pair.RefreshToken)
	writeJSON(w, http.StatusOK, authResponseFromModel(pair, user))
}

// LogoutUser — POST /auth/logout. Требует аутентификации.
// Закрывает сессию на сервере и сбрасывает cookie; повторный вызов безопасен.
func (h *Handlers) LogoutUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	if err := h.service.LogoutUser(r.Context(), user.ID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	clearAuthCookies(w, h.cookies)
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// ChangePassword — POST /auth/change-password. Требует аутентификации.
// Активная сессия при смене пароля сохраняется.
func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidToken)
		return
	}

	var in ChangePasswordRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.service.ChangePassword(r.Context(), user.ID, in.OldPassword, in.NewPassword); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "password_changed"})
}

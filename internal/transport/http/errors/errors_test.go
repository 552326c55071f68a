package errors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/service"
)

func TestToHTTP_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"nil is internal", nil, http.StatusInternalServerError, "internal"},
		{"invalid argument", service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"invalid username", service.ErrInvalidUsername, http.StatusBadRequest, "invalid_argument"},
		{"invalid email", service.ErrInvalidEmail, http.StatusBadRequest, "invalid_argument"},
		{"weak password", service.ErrWeakPassword, http.StatusBadRequest, "invalid_argument"},
		{"empty password", service.ErrEmptyPassword, http.StatusBadRequest, "invalid_argument"},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "unauthenticated"},
		{"invalid token", service.ErrInvalidToken, http.StatusUnauthorized, "unauthenticated"},
		{"token expired", service.ErrTokenExpired, http.StatusUnauthorized, "unauthenticated"},
		{"session revoked", service.ErrSessionRevoked, http.StatusUnauthorized, "unauthenticated"},
		{"not found", service.ErrNotFound, http.StatusNotFound, "not_found"},
		{"user taken", service.ErrUserTaken, http.StatusConflict, "already_exists"},
		{"unknown is internal", fmt.Errorf("db down"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_WrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("service.auth.LoginUser: %w", service.ErrInvalidCredentials)
	status, resp := ToHTTP(wrapped)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "unauthenticated", resp.Error.Code)
}

func TestWriteError_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Request-Id", "req-123")
	w := httptest.NewRecorder()

	WriteError(w, r, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.Contains(t, w.Body.String(), `"request_id":"req-123"`)
	require.Contains(t, w.Body.String(), `"code":"not_found"`)
}

func TestWriteError_NoDetailsLeak(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	WriteError(w, r, fmt.Errorf("pgx: connection refused host=10.0.0.1"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "pgx")
	require.NotContains(t, w.Body.String(), "10.0.0.1")
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/models"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/service"
	apierrors "github.com/pribylovaa/go-video-hosting/accounts-service/internal/transport/http/errors"
)

type ctxKeyUser struct{}

// UserFrom возвращает аутентифицированного пользователя из контекста запроса.
func UserFrom(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(ctxKeyUser{}).(*models.User)
	return u, ok
}

// Authenticate извлекает access-токен (cookie accessToken, иначе Authorization:
// Bearer), валидирует его через сервис и кладёт пользователя в контекст.
//
// Поведение:
//   - токена нет — запрос идёт дальше анонимно (решение принимает RequireUser
//     или сам хендлер);
//   - токен есть, но невалиден/просрочен — 401 сразу, чтобы клиент не получал
//     "анонимные" ответы с протухшей cookie.
func Authenticate(svc *service.Service) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := svc.AuthorizeAccess(r.Context(), token)
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser отклоняет запрос 401-м, если Authenticate не положил
// пользователя в контекст.
func RequireUser() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserFrom(r.Context()); !ok {
				apierrors.WriteError(w, r, service.ErrInvalidToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractToken достаёт access-токен: cookie имеет приоритет над заголовком.
func extractToken(r *http.Request) string {
	if c, err := r.Cookie("accessToken"); err == nil && c.Value != "" {
		return c.Value
	}

	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if strings.HasPrefix(auth, prefix) && len(auth) > len(prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}

	return ""
}

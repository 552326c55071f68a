// transport/http собирает HTTP-поверхность accounts-service: роутер chi,
// цепочку middleware и регистрацию REST-эндпоинтов.
// Маппинг данных и ошибок доменного слоя выполняют пакеты handlers и errors;
// вся валидация и бизнес-логика находятся в пакете service.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/service"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/transport/http/handlers"
	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api/v1"; если пустой — роуты регистрируются на корне.
	Cookies  handlers.CookieOptions
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),              // безопасно ловим паники
		middleware.RequestID(),            // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger),   // кладём request-scoped логгер в контекст и логируем
		middleware.Authenticate(svc),      // валидируем access-токен и кладём пользователя в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc, opts.Cookies)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	requireUser := middleware.RequireUser()

	// auth
	r.Post("/auth/register", h.RegisterUser)
	r.Post("/auth/login", h.LoginUser)
	r.Post("/auth/refresh", h.RefreshSession)
	r.With(requireUser).Post("/auth/logout", h.LogoutUser)
	r.With(requireUser).Post("/auth/change-password", h.ChangePassword)

	// users
	r.With(requireUser).Get("/users/me", h.CurrentUser)
	r.With(requireUser).Patch("/users/me", h.UpdateDetails)
	r.With(requireUser).Get("/users/me/history", h.WatchHistory)
	r.With(requireUser).Post("/users/me/history", h.RecordWatch)
	r.With(requireUser).Post("/users/me/media/{kind}/presign", h.MediaPresign)
	r.With(requireUser).Post("/users/me/media/{kind}/confirm", h.MediaConfirm)

	// channels
	r.Get("/channels/{username}", h.ChannelProfile)
	r.With(requireUser).Post("/channels/{username}/subscribe", h.Subscribe)
	r.With(requireUser).Delete("/channels/{username}/subscribe", h.Unsubscribe)
}

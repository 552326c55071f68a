package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pribylovaa/go-video-hosting/accounts-service/internal/service"
)

// Handlers агрегирует зависимости HTTP-хендлеров.
type Handlers struct {
	service *service.Service
	cookies CookieOptions
}

func New(svc *service.Service, cookies CookieOptions) *Handlers {
	return &Handlers{service: svc, cookies: cookies}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — вспомогалка: локальная ошибка парсинга -> ErrInvalidArgument.
func errInvalidArgument() error {
	return fmt.Errorf("bad request: %w", service.ErrInvalidArgument)
}

package middleware

import (
	"net/http"
)

// Middleware — стандартный net/http мидлвар.
type Middleware func(http.Handler) http.Handler

// Chain оборачивает h мидлварами: первый из mws становится внешним
// и отрабатывает раньше остальных.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	wrapped := h
	for i := len(mws) - 1; i >= 0; i-- {
		wrapped = mws[i](wrapped)
	}

	return wrapped
}

// loggedResponse перехватывает статус ответа и число записанных байт
// для access-лога.
type loggedResponse struct {
	http.ResponseWriter
	code  int
	bytes int
}

func wrapResponse(w http.ResponseWriter) *loggedResponse {
	return &loggedResponse{ResponseWriter: w}
}

func (w *loggedResponse) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// Write фиксирует неявный 200, если WriteHeader не вызывали.
func (w *loggedResponse) Write(p []byte) (int, error) {
	if w.code == 0 {
		w.code = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

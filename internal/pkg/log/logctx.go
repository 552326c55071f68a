// log реализует передачу request-scoped логгера через context.
// Транспортный слой кладёт логгер (обычно с полем request_id) в контекст
// запроса; сервисный и storage-слои достают его через From, не зная
// о транспорте.
package log

import (
	"context"
	"log/slog"
)

// loggerKey — приватный тип ключа, исключает коллизии с чужими значениями.
type loggerKey struct{}

// Into возвращает контекст с привязанным логгером l.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// From возвращает логгер запроса либо slog.Default(),
// если в контексте его нет (или лежит не *slog.Logger).
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}

	return slog.Default()
}

// cache содержит опциональный Redis-кэш сессионных слотов.
// Кэш снимает чтение users-строки с горячего пути Refresh: по user_id
// хранится хэш активного refresh-токена и срок его действия.
// Источник истины — PostgreSQL; промах кэша всегда уходит в БД.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionEntry — данные сессионного слота, которые мы храним в Redis.
type SessionEntry struct {
	RefreshHash string
	ExpiresAt   time.Time
}

// SessionCache — минимальный контракт кэша сессий.
type SessionCache interface {
	// Get возвращает запись и признак её наличия в кэше.
	Get(ctx context.Context, userID uuid.UUID) (*SessionEntry, bool, error)
	// Set сохраняет запись с TTL (обычно ExpiresAt-now).
	Set(ctx context.Context, userID uuid.UUID, e *SessionEntry, ttl time.Duration) error
	// Del удаляет запись (logout/ротация с ошибкой записи в БД).
	Del(ctx context.Context, userID uuid.UUID) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "accounts:sess:".
func NewRedisCache(redisURL, prefix string) (SessionCache, error) {
	if prefix == "" {
		prefix = "accounts:sess:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(userID uuid.UUID) string { return c.prefix + userID.String() }

// Храним как Redis Hash с полями: rth (хэш refresh-токена), exp (unix).
func (c *redisCache) Get(ctx context.Context, userID uuid.UUID) (*SessionEntry, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(userID)).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	expUnix, err := strconv.ParseInt(m["exp"], 10, 64)
	if err != nil {
		return nil, false, err
	}

	return &SessionEntry{
		RefreshHash: m["rth"],
		ExpiresAt:   time.Unix(expUnix, 0).UTC(),
	}, true, nil
}

func (c *redisCache) Set(ctx context.Context, userID uuid.UUID, e *SessionEntry, ttl time.Duration) error {
	kv := map[string]string{
		"rth": e.RefreshHash,
		"exp": strconv.FormatInt(e.ExpiresAt.Unix(), 10),
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key(userID), kv)
	pipe.Expire(ctx, c.key(userID), ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Del(ctx context.Context, userID uuid.UUID) error {
	return c.rdb.Del(ctx, c.key(userID)).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }

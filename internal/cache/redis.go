package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis кэш поверх Redis; ошибки чтения трактуются как промах
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis создает кэш для сервера по адресу addr
func NewRedis(addr string) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Redis{client: rdb, prefix: "fintech:"}
}

// Ping проверяет доступность сервера
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *Redis) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, r.prefix+key, value, ttl).Err()
}

// Close закрывает соединения с сервером
func (r *Redis) Close() error {
	return r.client.Close()
}

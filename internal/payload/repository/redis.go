package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisRepo stores the document as a plain Redis string under a single key
// with no expiry.
type RedisRepo struct {
	client *redis.Client
	key    string
}

// NewRedisRepo creates a Redis-based repository. The key is prefix+name.
func NewRedisRepo(client *redis.Client, prefix, name string) *RedisRepo {
	return &RedisRepo{client: client, key: prefix + name}
}

func (r *RedisRepo) Load(ctx context.Context) ([]byte, error) {
	b, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *RedisRepo) Replace(ctx context.Context, data []byte) error {
	return r.client.Set(ctx, r.key, data, 0).Err()
}

func (r *RedisRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

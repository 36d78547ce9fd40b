package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces every key written by RedisStateRepo.
const DefaultRedisPrefix = "cramgames:state:"

// RedisOptions configures the optional Redis state backend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// RedisStateRepo implements StateRepo on a Redis server, for players who
// want their progress shared between machines.
type RedisStateRepo struct {
	client *redis.Client
	prefix string
}

// DialRedis connects to Redis and verifies the connection with PING.
func DialRedis(ctx context.Context, opts RedisOptions) (*RedisStateRepo, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", opts.Addr, err)
	}
	return NewRedisStateRepo(client, opts.Prefix), nil
}

// NewRedisStateRepo wraps an existing client. An empty prefix uses DefaultRedisPrefix.
func NewRedisStateRepo(client *redis.Client, prefix string) *RedisStateRepo {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStateRepo{client: client, prefix: prefix}
}

func (r *RedisStateRepo) key(k string) string {
	return r.prefix + k
}

func (r *RedisStateRepo) Get(ctx context.Context, key string, v any) (bool, error) {
	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get state %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode state %q: %w", key, err)
	}
	return true, nil
}

func (r *RedisStateRepo) Put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode state %q: %w", key, err)
	}
	if err := r.client.Set(ctx, r.key(key), raw, 0).Err(); err != nil {
		return fmt.Errorf("put state %q: %w", key, err)
	}
	return nil
}

func (r *RedisStateRepo) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("delete state %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (r *RedisStateRepo) Close() error {
	return r.client.Close()
}

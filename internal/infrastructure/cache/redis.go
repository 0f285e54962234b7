package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
)

const keyPrefix = "relief:"

// RedisStore is a Store backed by Redis
type RedisStore struct {
	Client *redis.Client
}

// NewRedisStore connects to the configured Redis and pings it
func NewRedisStore(ctx context.Context, cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisStore{Client: client}, nil
}

// 1 Get reads a raw value
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.Client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return val, err
}

// 2 Set writes a raw value with expiration
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.Client.Set(ctx, keyPrefix+key, value, ttl).Err()
}

// 3 Delete removes a key
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.Client.Del(ctx, keyPrefix+key).Err()
}

// 4 DeletePrefix removes every key under prefix
func (s *RedisStore) DeletePrefix(ctx context.Context, prefix string) error {
	iter := s.Client.Scan(ctx, 0, keyPrefix+prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// 5 Close releases the connection pool
func (s *RedisStore) Close() error {
	return s.Client.Close()
}

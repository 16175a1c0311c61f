package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/padhoai/backend/internal/models"
	"go.uber.org/zap"
)

const redisKeyPrefix = "padho"

// RedisStore keeps values as plain Redis strings under "padho:<namespace>:<key>"
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore creates a store on top of an existing Redis client
func NewRedisStore(client *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		logger: logger,
	}
}

func redisKey(namespace, key string) string {
	return fmt.Sprintf("%s:%s:%s", redisKeyPrefix, namespace, key)
}

func (s *RedisStore) Get(ctx context.Context, namespace, key string) (string, error) {
	value, err := s.client.Get(ctx, redisKey(namespace, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", models.ErrKeyNotFound
	}
	if err != nil {
		s.logger.Error("failed to get value from redis", zap.Error(err), zap.String("namespace", namespace), zap.String("key", key))
		return "", fmt.Errorf("failed to get value: %w", err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, namespace, key, value string) error {
	if err := s.client.Set(ctx, redisKey(namespace, key), value, 0).Err(); err != nil {
		s.logger.Error("failed to set value in redis", zap.Error(err), zap.String("namespace", namespace), zap.String("key", key))
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, namespace, key string) error {
	if err := s.client.Del(ctx, redisKey(namespace, key)).Err(); err != nil {
		s.logger.Error("failed to delete value from redis", zap.Error(err), zap.String("namespace", namespace), zap.String("key", key))
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

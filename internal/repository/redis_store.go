package repository

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// keyPrefix 避免与同一 Redis 实例上的其他应用撞键
const keyPrefix = "study_tracker:"

// RedisStore Redis 实现：持久化契约本身就是字符串 KV，直接映射
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.Client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	return s.Client.Set(ctx, keyPrefix+key, value, 0).Err()
}

func (s *RedisStore) Erase(ctx context.Context, key string) error {
	return s.Client.Del(ctx, keyPrefix+key).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.Client.Close()
}

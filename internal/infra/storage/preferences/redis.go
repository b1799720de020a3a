package preferences

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStorage хранит предпочтения клиентов в Redis
// Ключ: <prefix>:<client_id>:<key>, без TTL
type RedisStorage struct {
	client RedisClient
	prefix string
}

// NewRedisClient создает клиента go-redis
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// NewRedisStorage создает хранилище поверх клиента Redis
func NewRedisStorage(client RedisClient, prefix string) *RedisStorage {
	return &RedisStorage{
		client: client,
		prefix: prefix,
	}
}

// Get возвращает сохраненное значение ключа клиента
func (s *RedisStorage) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(clientID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: Get - %s: %v", ErrReadStorage, key, err)
	}
	return value, true, nil
}

// Set сохраняет значение ключа клиента
func (s *RedisStorage) Set(ctx context.Context, clientID, key, value string) error {
	if err := s.client.Set(ctx, s.key(clientID, key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: Set - %s: %v", ErrWriteStorage, key, err)
	}
	return nil
}

func (s *RedisStorage) key(clientID, key string) string {
	return fmt.Sprintf("%s:%s:%s", s.prefix, clientID, key)
}

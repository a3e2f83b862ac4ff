// Package redis содержит реализацию хранилища блобов на Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"mapmemo/internal/notes/ports/repositories"
	"mapmemo/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodGet   = "get"
	LogMethodSet   = "set"
	LogMethodClose = "close"

	ErrorFailedToGet   = "failed to get value from redis"
	ErrorFailedToSet   = "failed to set value in redis"
	ErrorFailedToClose = "failed to close redis connection"
)

// BlobStore хранит блобы в Redis без срока жизни.
type BlobStore struct {
	client *redis.Client
	prefix string
}

// NewBlobStore создает хранилище поверх готового клиента.
// Ко всем ключам добавляется prefix.
func NewBlobStore(client *redis.Client, prefix string) repositories.BlobStore {
	return &BlobStore{
		client: client,
		prefix: prefix,
	}
}

// Get получает значение по ключу. Отсутствующий ключ дает (nil, nil).
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodGet), zap.String("key", s.prefix+key))

	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		log.Error(ctx, ErrorFailedToGet, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	return value, nil
}

// Set записывает значение без TTL.
func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodSet), zap.String("key", s.prefix+key))

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		log.Error(ctx, ErrorFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

// Close закрывает соединение с Redis.
func (s *BlobStore) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}

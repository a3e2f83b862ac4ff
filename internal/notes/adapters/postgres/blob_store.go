// Package postgres provides a PostgreSQL implementation of the blob storage port.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"mapmemo/internal/notes/ports/repositories"
	"mapmemo/pkg/logger"
)

// Pool - подмножество pgxpool.Pool, которое нужно хранилищу.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

const (
	selectValueSQL = `SELECT value FROM preferences WHERE key = $1`
	upsertValueSQL = `INSERT INTO preferences (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

// Константы для сообщений об ошибках.
const (
	ErrGetValue = "failed to get preference value"
	ErrSetValue = "failed to set preference value"
)

// BlobStore хранит блобы в таблице preferences.
type BlobStore struct {
	pool Pool
}

// NewBlobStore создает хранилище поверх пула соединений.
func NewBlobStore(pool Pool) repositories.BlobStore {
	return &BlobStore{pool: pool}
}

// Get читает значение по ключу. Отсутствующий ключ дает (nil, nil).
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.Log(ctx).With(zap.String("method", "BlobStore.Get"), zap.String("key", key))

	var value []byte
	err := s.pool.QueryRow(ctx, selectValueSQL, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "preference not found")
			return nil, nil
		}
		log.Error(ctx, ErrGetValue, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrGetValue, err)
	}

	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// Set записывает значение, заменяя предыдущее.
func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	log := logger.Log(ctx).With(zap.String("method", "BlobStore.Set"), zap.String("key", key))

	if _, err := s.pool.Exec(ctx, upsertValueSQL, key, value); err != nil {
		log.Error(ctx, ErrSetValue, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrSetValue, err)
	}

	log.Debug(ctx, "preference stored", zap.Int("size", len(value)))
	return nil
}

// Close закрывает пул соединений.
func (s *BlobStore) Close() error {
	s.pool.Close()
	return nil
}

// Package repositories defines storage ports for the note store.
package repositories

import "context"

// BlobStore хранит непрозрачные значения по строковому ключу.
// Get возвращает (nil, nil), если ключа нет.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

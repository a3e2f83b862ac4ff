package storage

import (
	"mapmemo/internal/notes/ports/repositories"
)

// ownedStore - хранилище, чье соединение принадлежит Open.
// Close освобождает соединение через его владельца, а не через адаптер.
type ownedStore struct {
	repositories.BlobStore
	close func() error
}

func withCloser(store repositories.BlobStore, closeFn func() error) repositories.BlobStore {
	return &ownedStore{BlobStore: store, close: closeFn}
}

// Close закрывает соединение хранилища.
func (s *ownedStore) Close() error {
	return s.close()
}

package postgres

import (
	"mapmemo/internal/notes/ports/repositories"
)

// RepositoryFactory создает репозитории поверх одного пула.
type RepositoryFactory struct {
	pool Pool
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool Pool) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// BlobStore возвращает хранилище блобов.
func (f *RepositoryFactory) BlobStore() repositories.BlobStore {
	return NewBlobStore(f.pool)
}

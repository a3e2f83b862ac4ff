// Package storage выбирает бэкенд хранилища блобов по конфигурации.
package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mapmemo/internal/notes/adapters/file"
	"mapmemo/internal/notes/adapters/postgres"
	redisadapter "mapmemo/internal/notes/adapters/redis"
	"mapmemo/internal/notes/config"
	"mapmemo/internal/notes/db"
	"mapmemo/internal/notes/ports/repositories"
	"mapmemo/pkg/db/redis"
	"mapmemo/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogOpenStorage = "opening notes storage"
	ErrOpenStorage = "failed to open notes storage"
)

// Open создает хранилище блобов для бэкенда cfg.Storage.Backend.
// Вызывающий закрывает его через Close.
func Open(ctx context.Context, cfg *config.Config) (repositories.BlobStore, error) {
	log := logger.Log(ctx).With(zap.String("backend", cfg.Storage.Backend))
	log.Debug(ctx, LogOpenStorage)

	switch cfg.Storage.Backend {
	case config.BackendFile:
		return file.NewBlobStore(cfg.Storage.Dir), nil

	case config.BackendRedis:
		client, err := redis.NewClient(ctx, redis.NewConfig(&cfg.Redis))
		if err != nil {
			log.Error(ctx, ErrOpenStorage, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrOpenStorage, err)
		}
		return withCloser(redisadapter.NewBlobStore(client.RawClient(), cfg.Redis.KeyPrefix), client.Close), nil

	case config.BackendPostgres:
		database, err := db.New(ctx, &cfg.Postgres)
		if err != nil {
			log.Error(ctx, ErrOpenStorage, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrOpenStorage, err)
		}
		closeCtx := context.WithoutCancel(ctx)
		return withCloser(postgres.NewRepositoryFactory(database.Pool()).BlobStore(), func() error {
			database.Close(closeCtx)
			return nil
		}), nil

	default:
		return nil, fmt.Errorf("%s: %s: %q", ErrOpenStorage, config.ErrUnknownBackend, cfg.Storage.Backend)
	}
}

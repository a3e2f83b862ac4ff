// Package config содержит конфигурацию хранилища заметок.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "mapmemo/pkg/config"
	"mapmemo/pkg/logger"
)

// ServiceName используется в логах загрузки конфигурации.
const ServiceName = "mapmemo"

// Константы сообщений.
const (
	LogConfigLoaded     = "configuration loaded"
	ErrFailedLoadConfig = "failed to load mapmemo configuration"
	ErrUnknownBackend   = "unknown storage backend"
	ErrInvalidTimeout   = "storage timeout must be positive"
)

// Config - полная конфигурация приложения.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Load загружает конфигурацию из окружения и, если envFile не пуст, из .env файла.
func Load(ctx context.Context, envFile string) (*Config, error) {
	log := logger.Log(ctx)

	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, envFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if err := cfg.Storage.Validate(); err != nil {
		log.Error(ctx, ErrFailedLoadConfig, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	log.Debug(ctx, LogConfigLoaded,
		zap.String("storage_backend", cfg.Storage.Backend),
		zap.String("storage_key", cfg.Storage.Key),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode))

	return cfg, nil
}

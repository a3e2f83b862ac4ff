package config

import (
	"fmt"
	"time"
)

// Поддерживаемые бэкенды хранилища.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// StorageConfig выбирает бэкенд и ключ, под которым лежит коллекция заметок.
type StorageConfig struct {
	Backend string        `yaml:"backend" env:"MAPMEMO_STORAGE_BACKEND" env-default:"file"`
	Key     string        `yaml:"key" env:"MAPMEMO_STORAGE_KEY" env-default:"notes"`
	Dir     string        `yaml:"dir" env:"MAPMEMO_STORAGE_DIR" env-default:".mapmemo"`
	Timeout time.Duration `yaml:"timeout" env:"MAPMEMO_STORAGE_TIMEOUT" env-default:"5s"`
}

// Validate проверяет, что бэкенд известен, а timeout положителен.
func (s *StorageConfig) Validate() error {
	switch s.Backend {
	case BackendFile, BackendRedis, BackendPostgres:
	default:
		return fmt.Errorf("%s: %q", ErrUnknownBackend, s.Backend)
	}

	if s.Timeout <= 0 {
		return fmt.Errorf("%s: %s", ErrInvalidTimeout, s.Timeout)
	}

	return nil
}

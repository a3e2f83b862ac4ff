// Package redis предоставляет общую реализацию клиента Redis.
package redis

import (
	"fmt"
	"time"
)

// Значения по умолчанию. Должны совпадать с env-default в RedisConfig приложения.
const (
	DefaultHost     = "localhost"
	DefaultPort     = 6379
	DefaultPoolSize = 10
	DefaultTimeout  = 5 * time.Second
)

// Config содержит настройки подключения к Redis.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
	Timeout  time.Duration
}

// Addr возвращает адрес host:port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Settings - источник настроек Redis, например конфигурация приложения.
type Settings interface {
	GetHost() string
	GetPort() int
	GetPassword() string
	GetDB() int
	GetPoolSize() int
	GetTimeout() time.Duration
}

// NewConfig создает конфигурацию из settings. Нулевые значения заменяются значениями по умолчанию.
func NewConfig(settings Settings) *Config {
	cfg := &Config{
		Host:     settings.GetHost(),
		Port:     settings.GetPort(),
		Password: settings.GetPassword(),
		DB:       settings.GetDB(),
		PoolSize: settings.GetPoolSize(),
		Timeout:  settings.GetTimeout(),
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = DefaultPoolSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}

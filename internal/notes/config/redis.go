package config

import "time"

// RedisConfig содержит настройки подключения к Redis.
type RedisConfig struct {
	Host      string        `yaml:"host" env:"MAPMEMO_REDIS_HOST" env-default:"localhost"`
	Port      int           `yaml:"port" env:"MAPMEMO_REDIS_PORT" env-default:"6379"`
	Password  string        `yaml:"password" env:"MAPMEMO_REDIS_PASSWORD" env-default:""`
	DB        int           `yaml:"db" env:"MAPMEMO_REDIS_DB" env-default:"0"`
	PoolSize  int           `yaml:"pool_size" env:"MAPMEMO_REDIS_POOL_SIZE" env-default:"10"`
	Timeout   time.Duration `yaml:"timeout" env:"MAPMEMO_REDIS_TIMEOUT" env-default:"5s"`
	KeyPrefix string        `yaml:"key_prefix" env:"MAPMEMO_REDIS_KEY_PREFIX" env-default:"mapmemo:"`
}

func (c *RedisConfig) GetHost() string           { return c.Host }
func (c *RedisConfig) GetPort() int              { return c.Port }
func (c *RedisConfig) GetPassword() string       { return c.Password }
func (c *RedisConfig) GetDB() int                { return c.DB }
func (c *RedisConfig) GetPoolSize() int          { return c.PoolSize }
func (c *RedisConfig) GetTimeout() time.Duration { return c.Timeout }

package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapmemo/pkg/config"
)

type sampleConfig struct {
	Name  string `env:"SAMPLE_NAME" env-default:"default-name"`
	Count int    `env:"SAMPLE_COUNT" env-default:"3"`
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults from tags", func(t *testing.T) {
		t.Setenv("SAMPLE_NAME", "")
		require.NoError(t, os.Unsetenv("SAMPLE_NAME"))

		cfg, err := config.Load[sampleConfig](ctx, "sample", "")
		require.NoError(t, err)
		assert.Equal(t, "default-name", cfg.Name)
		assert.Equal(t, 3, cfg.Count)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("SAMPLE_NAME", "from-env")
		t.Setenv("SAMPLE_COUNT", "7")

		cfg, err := config.Load[sampleConfig](ctx, "sample", "")
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Name)
		assert.Equal(t, 7, cfg.Count)
	})

	t.Run("reads env file", func(t *testing.T) {
		t.Setenv("SAMPLE_NAME", "")
		require.NoError(t, os.Unsetenv("SAMPLE_NAME"))
		t.Setenv("SAMPLE_COUNT", "")
		require.NoError(t, os.Unsetenv("SAMPLE_COUNT"))

		path := filepath.Join(t.TempDir(), "sample.env")
		require.NoError(t, os.WriteFile(path, []byte("SAMPLE_NAME=from-file\nSAMPLE_COUNT=11\n"), 0o600))
		t.Cleanup(func() {
			_ = os.Unsetenv("SAMPLE_NAME")
			_ = os.Unsetenv("SAMPLE_COUNT")
		})

		cfg, err := config.Load[sampleConfig](ctx, "sample", path)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Name)
		assert.Equal(t, 11, cfg.Count)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("SAMPLE_COUNT", "many")

		cfg, err := config.Load[sampleConfig](ctx, "sample", "")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "failed to load configuration")
	})

	t.Run("missing env file", func(t *testing.T) {
		cfg, err := config.Load[sampleConfig](ctx, "sample", filepath.Join(t.TempDir(), "absent.env"))
		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}

package db_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapmemo/internal/notes/config"
	"mapmemo/internal/notes/db"
	"mapmemo/pkg/logger"
)

func TestMigrationsURL(t *testing.T) {
	t.Run("absolute path", func(t *testing.T) {
		dir := t.TempDir()

		url, err := db.MigrationsURL(dir)
		require.NoError(t, err)
		assert.Equal(t, "file://"+dir, url)
	})

	t.Run("relative path is resolved", func(t *testing.T) {
		url, err := db.MigrationsURL(filepath.Join("migrations", "notes"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "file:///"), url)
		assert.True(t, strings.HasSuffix(url, filepath.Join("migrations", "notes")), url)
	})
}

func TestNew_MissingMigrations(t *testing.T) {
	ctx := logger.NewContext(context.Background(), logger.NewNop())
	cfg := &config.PostgresConfig{
		Host:          "localhost",
		Port:          5432,
		User:          "postgres",
		Password:      "postgres",
		Database:      "mapmemo",
		MinConn:       1,
		MaxConn:       2,
		MigrationsDir: filepath.Join(t.TempDir(), "absent"),
	}

	database, err := db.New(ctx, cfg)
	require.Error(t, err)
	assert.Nil(t, database)
	assert.Contains(t, err.Error(), db.ErrDBMigrations)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[Database]\nAddr = \"db:5432\"\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "db:5432", cfg.Database.Addr)
		assert.Equal(t, 8080, cfg.App.Port)
		assert.Equal(t, time.Minute, cfg.Settings.TTL.Duration)
		assert.Equal(t, Uploads{Dir: "uploads", BaseURL: "/uploads"}, cfg.Uploads)
		assert.False(t, cfg.DB.Migrate)
	})

	t.Run("Example", func(t *testing.T) {
		cfg, err := Load(filepath.Join("..", "config.toml.dist"))
		require.NoError(t, err)

		assert.Equal(t, "hotel_portal", cfg.Database.Database)
		assert.True(t, cfg.DB.Migrate)
		assert.Equal(t, "Genel", cfg.Content.Category)
		assert.Equal(t, time.Minute, cfg.Settings.TTL.Duration)
	})

	t.Run("InvalidDuration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[Settings]\nTTL = \"soon\"\n"), 0o600))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func TestConfig_ApplyDatabaseURL(t *testing.T) {
	t.Run("Override", func(t *testing.T) {
		cfg := Config{}
		cfg.Database.Addr = "localhost:5432"
		cfg.Database.PoolSize = 7

		require.NoError(t, cfg.ApplyDatabaseURL("postgres://hotel:secret@db:5433/hotel?sslmode=disable"))

		assert.Equal(t, "db:5433", cfg.Database.Addr)
		assert.Equal(t, "hotel", cfg.Database.User)
		assert.Equal(t, "secret", cfg.Database.Password)
		assert.Equal(t, "hotel", cfg.Database.Database)
		assert.Equal(t, 7, cfg.Database.PoolSize)
		assert.Equal(t, 3, cfg.Database.MaxRetries)
	})

	t.Run("Empty", func(t *testing.T) {
		cfg := Config{}
		cfg.Database.Addr = "localhost:5432"

		require.NoError(t, cfg.ApplyDatabaseURL(""))
		assert.Equal(t, "localhost:5432", cfg.Database.Addr)
	})

	t.Run("Invalid", func(t *testing.T) {
		cfg := Config{}
		assert.Error(t, cfg.ApplyDatabaseURL("mysql://localhost/db"))
	})
}

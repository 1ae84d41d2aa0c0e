package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"PORT", "DB_DRIVER", "STORAGE_DRIVER", "ICON_MAX_BYTES", "ADMIN_TOKEN_TTL", "ADMIN_JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "local", cfg.StorageDriver)
	assert.Equal(t, "static/images/categories", cfg.IconDir)
	assert.Equal(t, int64(5*1024*1024), cfg.IconMaxBytes)
	assert.Equal(t, 24*time.Hour, cfg.AdminTokenTTL)
	assert.Empty(t, cfg.AdminJWTSecret)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/cards.db")
	t.Setenv("STORAGE_DRIVER", "minio")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("ICON_MAX_BYTES", "1024")
	t.Setenv("ADMIN_JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_TOKEN_TTL", "90m")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/cards.db", cfg.SQLitePath)
	assert.Equal(t, "minio", cfg.StorageDriver)
	assert.True(t, cfg.MinIOUseSSL)
	assert.Equal(t, int64(1024), cfg.IconMaxBytes)
	assert.Equal(t, "s3cret", cfg.AdminJWTSecret)
	assert.Equal(t, 90*time.Minute, cfg.AdminTokenTTL)
}

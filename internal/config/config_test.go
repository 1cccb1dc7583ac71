package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "portfolio")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_ACCESS_KEY", "minio")
	t.Setenv("MINIO_SECRET_KEY", "minio123")
	t.Setenv("MINIO_BUCKET", "media")
}

func TestLoadConfig_Complete(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_PORT", "3000")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "portfolio", cfg.MongoDatabase)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.False(t, cfg.MinioSSL)
	assert.Equal(t, 60*time.Minute, cfg.SessionTTL, "default session TTL")
}

func TestLoadConfig_MissingMongo(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MONGO_URI", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_MissingMinio(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MINIO_BUCKET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_InvalidMinioSSL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MINIO_SSL", "maybe")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_SessionTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  string
		want time.Duration
	}{
		{"explicit", "15", 15 * time.Minute},
		{"unparsable falls back to default", "soon", 60 * time.Minute},
		{"non-positive falls back to default", "0", 60 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("SESSION_TTL_MINUTES", tt.ttl)

			cfg, err := LoadConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.SessionTTL)
		})
	}
}

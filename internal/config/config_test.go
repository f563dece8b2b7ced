package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "autoserve-images", cfg.S3Bucket)
	assert.Equal(t, "us-east-1", cfg.S3Region)
	assert.Equal(t, "https://exp.host/--/api/v2/push/send", cfg.ExpoPushURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("S3_BUCKET", "my-bucket")
	t.Setenv("S3_PUBLIC_URL", "https://cdn.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "supersecret", cfg.JWTSecret)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "my-bucket", cfg.S3Bucket)
	assert.Equal(t, "https://cdn.example.com", cfg.S3PublicURL)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("CHON_GATEWAY_URL", "")

	cfg := Load()
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "chon", cfg.MongoDB)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Empty(t, cfg.GatewayURL, "local gateway by default")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CHON_GATEWAY_URL", "https://archive.example.com")

	cfg := Load()
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "https://archive.example.com", cfg.GatewayURL)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REDIS_URI", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "interviewdb", cfg.MongoDB)
	assert.False(t, cfg.RedisEnabled())
	assert.Equal(t, 2*time.Minute, cfg.CleanupLockTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("REDIS_URI", "redis://cache:6379")
	t.Setenv("CLEANUP_LOCK_TTL", "30s")

	cfg := Load()
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "cache:6379", cfg.RedisURI)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 30*time.Second, cfg.CleanupLockTTL)
}

func TestAIConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("AI_TIMEOUT_MS", "1500")
	t.Setenv("GEMINI_MODEL_EVAL", "gemini-test")

	cfg := DefaultAIConfig()
	assert.False(t, cfg.IsEnabled())
	assert.Equal(t, "gemini-test", cfg.Models.Evaluate)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout())

	cfg.TimeoutMS = 0
	assert.Equal(t, 30*time.Second, cfg.Timeout())
}

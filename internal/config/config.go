package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds process-level settings read from the environment
type Config struct {
	Port               string
	MongoURI           string
	MongoDB            string
	RedisURI           string
	CORSAllowedOrigins string
	LogLevel           string
	LogPretty          bool
	CleanupLockTTL     time.Duration
}

// Load reads .env (when present) and the environment
func Load() *Config {
	// .env is optional; production sets real environment variables
	_ = godotenv.Load()

	v := env()
	return &Config{
		Port:               v.GetString("PORT"),
		MongoURI:           v.GetString("MONGO_URI"),
		MongoDB:            v.GetString("MONGO_DB"),
		RedisURI:           strings.TrimPrefix(v.GetString("REDIS_URI"), "redis://"),
		CORSAllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogPretty:          v.GetBool("LOG_PRETTY"),
		CleanupLockTTL:     v.GetDuration("CLEANUP_LOCK_TTL"),
	}
}

// RedisEnabled reports whether Redis-backed features (leaderboard, cleanup lock) are on
func (c *Config) RedisEnabled() bool {
	return c.RedisURI != ""
}

func env() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "interviewdb")
	v.SetDefault("REDIS_URI", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("CLEANUP_LOCK_TTL", "2m")

	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL_QUESTIONS", "gemini-2.0-flash")
	v.SetDefault("GEMINI_MODEL_EVAL", "gemini-2.0-flash")
	v.SetDefault("GEMINI_MODEL_SUMMARY", "gemini-2.0-flash")
	v.SetDefault("AI_TIMEOUT_MS", 30000)
	v.SetDefault("AI_TEMPERATURE", 0.4)
	return v
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/anonto42/socialwall/backend/pkg/logger"
	"github.com/joho/godotenv"
)

const (
	SeedSourceMemory   = "memory"
	SeedSourceDatabase = "database"
)

type Config struct {
	Port            string
	Env             string
	LogLevel        string
	SeedSource      string
	PostgresConnStr string
	MongoURI        string
	MongoDatabase   string
	TranslateDelay  time.Duration
	LoadDelay       time.Duration
	ScrollThreshold int
	MaxImageBytes   int64
	SessionCapacity int
	CurrentUserID   string
}

// Load reads the configuration from the environment, after applying a
// .env file when one exists. Malformed values fall back to defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		SeedSource:      getEnv("SEED_SOURCE", SeedSourceMemory),
		PostgresConnStr: getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDatabase:   getEnv("MONGO_DATABASE", "socialmedia"),
		TranslateDelay:  getDuration("TRANSLATE_LATENCY", 600*time.Millisecond),
		LoadDelay:       getDuration("LOAD_LATENCY", 1500*time.Millisecond),
		ScrollThreshold: getInt("SCROLL_THRESHOLD", 300),
		MaxImageBytes:   int64(getInt("MAX_IMAGE_BYTES", 5<<20)),
		SessionCapacity: getInt("SESSION_CAPACITY", 1024),
		CurrentUserID:   getEnv("CURRENT_USER_ID", "1"),
	}
}

// IsProduction reports whether ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		logger.Log.WithField("key", key).WithField("value", value).Warn("invalid integer, using default")
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		logger.Log.WithField("key", key).WithField("value", value).Warn("invalid duration, using default")
		return defaultValue
	}
	return d
}

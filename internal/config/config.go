package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port     string
	Env      string
	LogLevel string

	// Session slot
	RedisURL   string
	SessionTTL time.Duration

	// Uploads
	MaxUploadMB int

	// Charts
	DefaultTitle string
	ChartWidth   int
	ChartHeight  int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port:         getEnvOrDefault("PORT", "8080"),
		Env:          getEnvOrDefault("ENV", "development"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		RedisURL:     getEnvOrDefault("REDIS_URL", ""),
		SessionTTL:   time.Duration(getEnvAsIntOrDefault("SESSION_TTL_MINUTES", 60)) * time.Minute,
		MaxUploadMB:  getEnvAsIntOrDefault("MAX_UPLOAD_MB", 200),
		DefaultTitle: getEnvOrDefault("DEFAULT_TITLE", "My Chart"),
		ChartWidth:   getEnvAsIntOrDefault("CHART_WIDTH", 1024),
		ChartHeight:  getEnvAsIntOrDefault("CHART_HEIGHT", 500),
	}
}

// MaxUploadBytes is the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i <= 0 {
		return defaultVal
	}
	return i
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	TextDatabaseURL  string
	FilesDatabaseURL string
	RedisURL         string
	ServerAddr       string
	PublicBaseURL    string
	DBMaxConns       int32
	CleanupInterval  time.Duration
	LogLevel         zerolog.Level
}

func Load() *Config {
	// A missing .env file is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := &Config{
		TextDatabaseURL:  os.Getenv("TEXT_DATABASE_URL"),
		FilesDatabaseURL: os.Getenv("FILES_DATABASE_URL"),
		RedisURL:         envOrDefault("REDIS_URL", "redis://localhost:6379"),
		ServerAddr:       envOrDefault("SERVER_ADDR", ":8080"),
		PublicBaseURL:    envOrDefault("PUBLIC_BASE_URL", "http://localhost:8080"),
		DBMaxConns:       int32(envInt("DB_MAX_CONNS", 10)),
		CleanupInterval:  envDuration("CLEANUP_INTERVAL", 24*time.Hour),
		LogLevel:         parseLogLevel(os.Getenv("LOG_LEVEL")),
	}

	var missing []string
	if cfg.TextDatabaseURL == "" {
		missing = append(missing, "TEXT_DATABASE_URL")
	}
	if cfg.FilesDatabaseURL == "" {
		missing = append(missing, "FILES_DATABASE_URL")
	}
	if len(missing) > 0 {
		panic(fmt.Sprintf("required environment variables not set: %s", strings.Join(missing, ", ")))
	}

	return cfg
}

func parseLogLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

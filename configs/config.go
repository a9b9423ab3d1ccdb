package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	SERVER_PORT            string
	SERVICE_NAME           string
	LOG_LEVEL              string
	RATE_LIMIT_CAPACITY    int
	RATE_LIMIT_REFILL_SECS int
	REDIS_ADDR             string
	REDIS_PASSWORD         string
	REDIS_DB               int
	REDIS_ENABLED          bool
	CACHE_TTL_MINUTES      int
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// LoadEnv loads the environment variables from a .env file if present.
func LoadEnv() error {
	// Missing .env is fine, real deployments inject the environment.
	_ = godotenv.Load()

	LoadEnvValues()

	return nil
}

func LoadEnvValues() {
	SERVER_PORT = GetEnv("SERVER_PORT", "8080")
	SERVICE_NAME = GetEnv("SERVICE_NAME", "loanestimator")
	LOG_LEVEL = GetEnv("LOG_LEVEL", "INFO")
	RATE_LIMIT_CAPACITY, _ = strconv.Atoi(GetEnv("RATE_LIMIT_CAPACITY", "5"))
	RATE_LIMIT_REFILL_SECS, _ = strconv.Atoi(GetEnv("RATE_LIMIT_REFILL_SECS", "60"))
	REDIS_ADDR = GetEnv("REDIS_ADDR", "localhost:6379")
	REDIS_PASSWORD = GetEnv("REDIS_PASSWORD", "")
	REDIS_DB, _ = strconv.Atoi(GetEnv("REDIS_DB", "0"))
	REDIS_ENABLED, _ = strconv.ParseBool(GetEnv("REDIS_ENABLED", "false"))
	CACHE_TTL_MINUTES, _ = strconv.Atoi(GetEnv("CACHE_TTL_MINUTES", "60"))
}

// GetRedisConfig returns a RedisConfig populated from environment variables.
func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:     REDIS_ADDR,
		Password: REDIS_PASSWORD,
		DB:       REDIS_DB,
		TTL:      time.Duration(CACHE_TTL_MINUTES) * time.Minute,
	}
}

// GetEnv fetches the value of an environment variable or returns a default value.
func GetEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

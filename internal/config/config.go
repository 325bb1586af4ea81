package config

import (
	"os"
	"strconv"
	"time"
)

// Authorization policies for account routes.
const (
	// PolicyAnyToken lets any authenticated user reach account routes.
	PolicyAnyToken = "any"
	// PolicyOwner additionally requires the token subject to match the
	// target account id on per-account routes.
	PolicyOwner = "owner"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	Environment     string
	MySQLDSN        string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	TokenTTL        time.Duration
	AuthPolicy      string
	ExchangeRateURL string
	ExchangeTTL     time.Duration
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "4000"),
		Environment:     getEnv("APP_ENV", "development"),
		MySQLDSN:        getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/investpro?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret"),
		TokenTTL:        getEnvDuration("TOKEN_TTL", time.Hour),
		AuthPolicy:      getEnv("AUTH_POLICY", PolicyAnyToken),
		ExchangeRateURL: getEnv("EXCHANGE_RATE_URL", "https://economia.awesomeapi.com.br/json/last/USD-BRL"),
		ExchangeTTL:     getEnvDuration("EXCHANGE_CACHE_TTL", time.Minute),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}

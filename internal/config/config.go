package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret     string
	TokenTTLHours int

	ServerPort string
	BaseURL    string

	RateLimitMaxAttempts   int
	RateLimitWindowSeconds int
	RateLimitBlockSeconds  int
}

func Load() *Config {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "davaquiz"),

		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-me"),
		TokenTTLHours: getEnvInt("JWT_TTL_HOURS", 24),

		ServerPort: getEnv("SERVER_PORT", "8080"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:8080"),

		RateLimitMaxAttempts:   getEnvInt("RATE_LIMIT_MAX_ATTEMPTS", 5),
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 900),
		RateLimitBlockSeconds:  getEnvInt("RATE_LIMIT_BLOCK_SECONDS", 900),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

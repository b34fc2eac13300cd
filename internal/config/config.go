// Package config resolves the host-level settings. Only this package and
// cmd/server read the environment; the core takes everything as explicit
// arguments.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server binary needs to start.
type Config struct {
	Addr           string
	DataFile       string
	LogLevel       string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads dotenv files (without overriding environment provided by
// the runtime) and resolves settings with their defaults.
func Load() Config {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	addr := getEnv("APP_ADDR", "")
	if addr == "" {
		addr = ":" + getEnv("PORT", "8000")
	}

	return Config{
		Addr:           addr,
		DataFile:       getEnv("DATA_FILE", "data/data.json"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),
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
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

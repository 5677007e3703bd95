package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	GinMode   string
}

func Load() *Config {
	// A missing .env file is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "4000"),
		DBPath:    getEnv("DB_PATH", ":memory:"),
		JWTSecret: getEnv("JWT_SECRET", "devsecret-change-me"),
		GinMode:   getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

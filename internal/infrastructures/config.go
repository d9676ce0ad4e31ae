package infrastructures

import (
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	PORT               string
	DATABASE_URL       string
	REDIS_ADDRESS      string
	REDIS_PASSWORD     string
	WALLET_BASE_URL    string
	NOTIFY_WEBHOOK_URL string
}

var Config *AppConfig

func LoadConfig() *AppConfig {
	godotenv.Load()

	Config = &AppConfig{
		PORT:               getEnv("PORT", "8080"),
		DATABASE_URL:       os.Getenv("DATABASE_URL"),
		REDIS_ADDRESS:      os.Getenv("REDIS_ADDRESS"),
		REDIS_PASSWORD:     os.Getenv("REDIS_PASSWORD"),
		WALLET_BASE_URL:    os.Getenv("WALLET_BASE_URL"),
		NOTIFY_WEBHOOK_URL: os.Getenv("NOTIFY_WEBHOOK_URL"),
	}

	return Config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Package config loads runtime configuration from the environment, with a
// .env file picked up when present.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/jortega87/restaurant-booking/internal/platform/database"
)

type Config struct {
	HTTPAddr  string
	RedisAddr string
	Database  database.Config
}

// Load reads configuration, falling back to local-development defaults for
// anything unset.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using OS environment")
	}

	return Config{
		HTTPAddr:  ":" + getenv("APP_PORT", "8080"),
		RedisAddr: getenv("REDIS_HOST", "localhost") + ":" + getenv("REDIS_PORT", "6379"),
		Database: database.Config{
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     getenv("DB_USER", "postgres"),
			Password: getenv("DB_PASSWORD", ""),
			DBName:   getenv("DB_NAME", "restaurant_booking"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Redis (draft slot and auth sessions)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Catalog documents
	DestinationsURL   string
	AccommodationsURL string

	// Export
	ExportPath string

	// Server
	ServerPort string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "spacepass123"),
		DBName:     getEnv("DB_NAME", "spacebookings"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		DestinationsURL:   getEnv("DESTINATIONS_URL", "http://localhost:9000/destinations.json"),
		AccommodationsURL: getEnv("ACCOMMODATIONS_URL", "http://localhost:9000/accommodations.json"),

		ExportPath: getEnv("EXPORT_PATH", "./exports"),

		ServerPort: getEnv("SERVER_PORT", "8080"),
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

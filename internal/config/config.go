package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	MongoURL     string // Document store connection string
	DatabaseName string // Database holding the users and service_requests collections
	HTTPAddr     string // Listen address for the HTTP server
}

// Load reads configuration from the environment, after loading a .env file
// if one is present.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		MongoURL:     getEnv("MONGODB_URL", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DATABASE_NAME", "eldercare_db"),
		HTTPAddr:     getEnv("HTTP_ADDR", ":8000"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server
	Port string

	// MongoDB
	MongoURI      string
	MongoDatabase string

	// Logging
	LogLevel string
	GinMode  string
}

// Load reads configuration from the environment, loading .env first if present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	return &Config{
		Port:          getEnv("PORT", "3000"),
		MongoURI:      getEnv("MONGO_URL", ""),
		MongoDatabase: getEnv("MONGO_DB", "expense_tracker"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		GinMode:       getEnv("GIN_MODE", "release"),
	}
}

// Validate returns an error if the configuration cannot run the server.
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URL environment variable not set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

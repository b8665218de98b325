package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string

	// MongoDB configuration
	MongoURI    string
	MongoDBName string

	// JWT configuration
	JWTSecret string

	// CORS configuration
	AllowedOrigins []string

	// S3 configuration (optional; image uploads are disabled without it)
	S3Bucket  string
	AWSRegion string
}

// LoadConfig creates a new Config instance from environment variables, with
// localhost defaults outside production.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	cfg := &Config{
		ServerPort:     getEnv("PORT", "5000"),
		MongoURI:       os.Getenv("MONGODB_URI"),
		MongoDBName:    getEnv("MONGODB_DB", "recipe_db"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
		S3Bucket:       os.Getenv("S3_BUCKET_NAME"),
		AWSRegion:      os.Getenv("AWS_REGION"),
	}

	if env != Production {
		if cfg.MongoURI == "" {
			cfg.MongoURI = "mongodb://localhost:27017"
		}
		if cfg.JWTSecret == "" {
			cfg.JWTSecret = "dev-insecure-jwt-secret"
		}
	}

	if err := ValidateConfig(cfg, env); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

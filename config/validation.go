package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable in the given
// environment. Production has no fallbacks: the Mongo URI and a real JWT
// secret are required.
func ValidateConfig(cfg *Config, env Environment) error {
	if cfg.ServerPort == "" {
		return ValidationError{Field: "PORT", Message: "server port must not be empty"}
	}
	if cfg.MongoDBName == "" {
		return ValidationError{Field: "MONGODB_DB", Message: "database name must not be empty"}
	}

	if env == Production {
		if cfg.MongoURI == "" {
			return ValidationError{Field: "MONGODB_URI", Message: "required in production"}
		}
		if cfg.JWTSecret == "" {
			return ValidationError{Field: "JWT_SECRET", Message: "required in production"}
		}
		if strings.HasPrefix(cfg.JWTSecret, "dev-") {
			return ValidationError{Field: "JWT_SECRET", Message: "development secret is not allowed in production"}
		}
	}

	if cfg.S3Bucket != "" && cfg.AWSRegion == "" {
		return ValidationError{Field: "AWS_REGION", Message: "required when S3_BUCKET_NAME is set"}
	}

	return nil
}

// Package config resolves application settings from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the application reads from the environment.
// Consumers receive resolved values; nothing below this package touches
// env vars directly.
type Config struct {
	// S3 settings for the diagram bucket.
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	S3Bucket           string
	S3Prefix           string

	// BankPath is the local question bank file. Empty means none
	// configured; the default path is still probed at startup.
	BankPath string

	// DBPath overrides the results history location.
	DBPath string

	// LogPath and LogLevel configure the file logger.
	LogPath  string
	LogLevel string
}

// Load reads configuration from the environment with the historical
// defaults. A .env file is loaded first when present.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getEnv("AWS_DEFAULT_REGION", "us-west-2"),
		S3Bucket:           getEnv("S3_BUCKET", "images-questionbank"),
		S3Prefix:           getEnv("S3_PREFIX", "Diagrams/Physics/images/"),
		BankPath:           getEnv("PHYSIQ_BANK", "questions.json"),
		DBPath:             os.Getenv("PHYSIQ_DB"),
		LogPath:            os.Getenv("PHYSIQ_LOG"),
		LogLevel:           getEnv("PHYSIQ_LOG_LEVEL", "info"),
	}
}

// HasAWSCredentials reports whether explicit S3 credentials are present.
// S3-backed features require them; the file bank does not.
func (c *Config) HasAWSCredentials() bool {
	return c.AWSAccessKeyID != "" && c.AWSSecretAccessKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values from environment.
type Config struct {
	AppPort       string
	MongoURI      string
	MongoDatabase string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioSSL       bool

	// Admin credentials seed the admin_users collection on first start.
	AdminUsername string
	AdminPassword string
	SessionTTL    time.Duration
}

// LoadConfig loads configuration from environment variables, reading an
// optional .env file first.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	minioSSL := false
	if sslEnv := os.Getenv("MINIO_SSL"); sslEnv != "" {
		val, err := strconv.ParseBool(sslEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid MINIO_SSL value: %v", err)
		}
		minioSSL = val
	}
	sessionTTL := 60 * time.Minute
	if ttlEnv := os.Getenv("SESSION_TTL_MINUTES"); ttlEnv != "" {
		val, err := strconv.Atoi(ttlEnv)
		if err == nil && val > 0 {
			sessionTTL = time.Duration(val) * time.Minute
		}
	}
	cfg := &Config{
		AppPort:        os.Getenv("APP_PORT"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDatabase:  os.Getenv("MONGO_DB"),
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    os.Getenv("MINIO_BUCKET"),
		MinioSSL:       minioSSL,
		AdminUsername:  os.Getenv("ADMIN_USERNAME"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		SessionTTL:     sessionTTL,
	}
	// Basic validation for required fields
	if cfg.MongoURI == "" || cfg.MongoDatabase == "" {
		return nil, fmt.Errorf("mongo configuration is incomplete")
	}
	if cfg.MinioEndpoint == "" || cfg.MinioAccessKey == "" || cfg.MinioSecretKey == "" || cfg.MinioBucket == "" {
		return nil, fmt.Errorf("minio configuration is incomplete")
	}
	return cfg, nil
}

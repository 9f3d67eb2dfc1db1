// Package config collects service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"credcheck/inference"
)

// Config holds everything main needs to wire the service.
type Config struct {
	Port             string
	JWTSecret        string
	InferenceURL     string
	InferenceTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// KafkaBrokers empty means event publishing is disabled.
	KafkaBrokers []string
	KafkaTopic   string

	// S3Bucket empty means analysis archival is disabled.
	S3Bucket       string
	S3Region       string
	S3Prefix       string
	S3Profile      string
	S3UsePathStyle bool
}

// Load reads configuration from environment variables, applying defaults
// for everything except JWT_SECRET, which has no safe default.
func Load() (Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is not defined")
	}

	cfg := Config{
		Port:             getEnvOrDefault("PORT", "5000"),
		JWTSecret:        secret,
		InferenceURL:     getEnvOrDefault("INFERENCE_URL", "http://127.0.0.1:8000"),
		InferenceTimeout: inference.DefaultTimeout,
		RedisAddr:        getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASS"),
		KafkaTopic:       os.Getenv("KAFKA_TOPIC"),
		S3Region:         strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Profile:        strings.TrimSpace(os.Getenv("S3_PROFILE")),
		S3UsePathStyle:   strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	}

	if v := os.Getenv("INFERENCE_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.InferenceTimeout = time.Duration(secs) * time.Second
		}
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil && db >= 0 {
			cfg.RedisDB = db
		}
	}

	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		for _, broker := range strings.Split(v, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
			}
		}
	}

	cfg.S3Bucket = strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if prefix := strings.TrimSpace(os.Getenv("S3_PREFIX")); prefix != "" {
		cfg.S3Prefix = strings.Trim(prefix, "/") + "/"
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

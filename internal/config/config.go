package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	HTTPPort       string
	PostgresDSN    string
	JWTSecret      string
	TokenTTL       time.Duration
	RedisURL       string
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPass       string
	BlobEndpoint   string
	BlobAccessKey  string
	BlobSecretKey  string
	BlobBucket     string
	BlobUseSSL     bool
	ResumeURLTTL   time.Duration
	OpenAIKey      string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnMaxIdle  time.Duration
	DBConnMaxLife  time.Duration
	RequestTimeout time.Duration
}

const devSecret = "dev-only-insecure-secret"

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Env:            getEnv("APP_ENV", "production"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		PostgresDSN:    getEnv("DATABASE_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenTTL:       getDuration("TOKEN_TTL", 2*time.Hour),
		RedisURL:       getEnv("REDIS_URL", ""),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getInt("SMTP_PORT", 587),
		SMTPUser:       getEnv("SMTP_USER", ""),
		SMTPPass:       getEnv("SMTP_PASS", ""),
		BlobEndpoint:   getEnv("BLOB_ENDPOINT", ""),
		BlobAccessKey:  getEnv("BLOB_ACCESS_KEY", ""),
		BlobSecretKey:  getEnv("BLOB_SECRET_KEY", ""),
		BlobBucket:     getEnv("BLOB_BUCKET", "resumes"),
		BlobUseSSL:     getBool("BLOB_USE_SSL", true),
		ResumeURLTTL:   getDuration("RESUME_URL_TTL", time.Hour),
		OpenAIKey:      getEnv("OPENAI_API_KEY", ""),
		DBMaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getInt("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxIdle:  getDuration("DB_CONN_MAX_IDLE", 5*time.Minute),
		DBConnMaxLife:  getDuration("DB_CONN_MAX_LIFE", 30*time.Minute),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
	}

	if cfg.PostgresDSN == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			log.Fatal("JWT_SECRET is required outside development")
		}
		log.Println("JWT_SECRET not set, using insecure development secret")
		cfg.JWTSecret = devSecret
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

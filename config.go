package main

import (
	"os"
	"strconv"
	"time"
)

// Config holds all environment-driven settings with their defaults.
type Config struct {
	Addr        string // listen address, from PORT
	DatabaseURL string // Postgres DSN, from DATABASE_URL

	SecretKey string        // token signing secret, from SECRET_KEY
	Algorithm string        // HMAC signing algorithm, from ALGORITHM
	TokenTTL  time.Duration // from ACCESS_TOKEN_EXPIRE_MINUTES

	AdminName     string // bootstrap admin, from ADMIN_NAME
	AdminEmail    string // from ADMIN_EMAIL
	AdminPassword string // from ADMIN_PASSWORD
	AdminDocument string // from ADMIN_DOCUMENTO

	EnforceAuthorizedDocs bool   // from AUTHORIZED_DOCS_ENFORCE
	ImportWatchDir        string // from IMPORT_WATCH_DIR; empty disables the watcher
	RedisAddr             string // from REDIS_ADDR; empty selects the in-memory throttle
}

var cfg Config

func loadConfig() Config {
	minutes := getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60)
	return Config{
		Addr:        ":" + getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		SecretKey: getEnv("SECRET_KEY", "dev-insecure-secret-change"),
		Algorithm: getEnv("ALGORITHM", "HS256"),
		TokenTTL:  time.Duration(minutes) * time.Minute,

		AdminName:     getEnv("ADMIN_NAME", "Administrador"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		AdminDocument: getEnv("ADMIN_DOCUMENTO", "00000000000"),

		EnforceAuthorizedDocs: getEnvBool("AUTHORIZED_DOCS_ENFORCE", false),
		ImportWatchDir:        os.Getenv("IMPORT_WATCH_DIR"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

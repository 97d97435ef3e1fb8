package main

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"boletoapi/pkg/logging"
	"boletoapi/pkg/throttle"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var loginLimiter throttle.Limiter

func main() {
	// Auto-load ./.env if present (no external dependency) before reading vars.
	loadDotEnv()
	logging.Setup()
	cfg = loadConfig()

	// Lightweight migrate command: `./boletoapi migrate` runs AutoMigrate and
	// seeding then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		slog.Info("migration and seeding completed")
		return
	}

	initDB()
	loginLimiter = buildLoginLimiter(cfg)

	if cfg.ImportWatchDir != "" {
		if err := startImportWatcher(cfg.ImportWatchDir); err != nil {
			slog.Error("import watcher failed to start", "dir", cfg.ImportWatchDir, "error", err)
		}
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), metricsMiddleware())
	setupRoutes(r)

	slog.Info("listening", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// buildLoginLimiter picks the Redis fixed window when REDIS_ADDR is set,
// otherwise a per-process token bucket.
func buildLoginLimiter(cfg Config) throttle.Limiter {
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return throttle.NewRedis(rdb, 10, time.Minute)
	}
	return throttle.NewMemory(0.2, 5)
}

// loadDotEnv loads key=value pairs from a local .env file into the environment
// without overwriting variables that are already set. Lines starting with # are ignored.
func loadDotEnv() {
	path := ".env"
	if _, err := os.Stat(path); err != nil {
		return // no .env file
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// split on first '='
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			val := strings.TrimSpace(line[eq+1:])
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}

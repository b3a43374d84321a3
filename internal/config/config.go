package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the process-level knobs. Everything has a sane default;
// a .env file or real environment variables override it.
type Config struct {
	ListenAddr     string
	ResetPassword  string
	DatabaseURL    string
	BanTimeout     time.Duration
	RoundCountdown time.Duration
}

func Load() (Config, error) {
	// Missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:     envOr("LISTEN_ADDR", ":8080"),
		ResetPassword:  envOr("RESET_PASSWORD", "boom"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		BanTimeout:     90 * time.Second,
		RoundCountdown: 120 * time.Second,
	}

	var err error
	if cfg.BanTimeout, err = envSeconds("BAN_TIMEOUT_SEC", cfg.BanTimeout); err != nil {
		return Config{}, err
	}
	if cfg.RoundCountdown, err = envSeconds("ROUND_COUNTDOWN_SEC", cfg.RoundCountdown); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envSeconds(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("config: %s must be a positive integer, got %q", key, v)
	}
	return time.Duration(n) * time.Second, nil
}

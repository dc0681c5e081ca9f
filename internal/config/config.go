// Package config reads service settings from the environment, with an
// optional .env file in the working directory.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host            string
	Port            string
	MaxUploadBytes  int64
	LogLevel        string
	LogFormat       string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Addr is the listen address, host:port.
func (c Config) Addr() string { return net.JoinHostPort(c.Host, c.Port) }

// Load reads .env if present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Host:      getenv("HOST", "0.0.0.0"),
		Port:      getenv("PORT", "8001"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),
	}

	if _, err := strconv.ParseUint(cfg.Port, 10, 16); err != nil {
		return Config{}, fmt.Errorf("PORT: invalid port %q", cfg.Port)
	}

	mb, err := strconv.ParseInt(getenv("MAX_UPLOAD_MB", "64"), 10, 64)
	if err != nil || mb <= 0 {
		return Config{}, fmt.Errorf("MAX_UPLOAD_MB: must be a positive integer")
	}
	cfg.MaxUploadBytes = mb << 20

	durations := []struct {
		key string
		def string
		dst *time.Duration
	}{
		{"READ_TIMEOUT", "30s", &cfg.ReadTimeout},
		{"WRITE_TIMEOUT", "60s", &cfg.WriteTimeout},
		{"IDLE_TIMEOUT", "120s", &cfg.IdleTimeout},
		{"SHUTDOWN_TIMEOUT", "10s", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(getenv(d.key, d.def))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = v
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

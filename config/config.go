package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Store    string // memory or sqlite
	SeedFile string
	Menu     MenuConfig
	Log      LogConfig
	HTTP     HTTPConfig
}

type MenuConfig struct {
	MaxAttempts int // re-prompts before a menu gives up on an input
}

type LogConfig struct {
	Level  string
	Output string
}

type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file from the working directory and then the
// HOTEL_* environment variables. Variables already set win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(), nil
}

// FromEnv builds the config from the environment only.
func FromEnv() *Config {
	return &Config{
		Store:    getEnv("HOTEL_STORE", "memory"),
		SeedFile: getEnv("HOTEL_SEED_FILE", ""),
		Menu: MenuConfig{
			MaxAttempts: getInt("HOTEL_MENU_MAX_ATTEMPTS", 3),
		},
		Log: LogConfig{
			Level:  getEnv("HOTEL_LOG_LEVEL", "info"),
			Output: getEnv("HOTEL_LOG_OUTPUT", "stderr"),
		},
		HTTP: HTTPConfig{
			Addr:            getEnv("HOTEL_HTTP_ADDR", "0.0.0.0:8080"),
			ReadTimeout:     getDuration("HOTEL_HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDuration("HOTEL_HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getDuration("HOTEL_HTTP_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDuration("HOTEL_SHUTDOWN_TIMEOUT", 20*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

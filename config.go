package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultInactiveRoomTimeout = 10 * time.Minute
	defaultCleanupInterval     = 5 * time.Minute
)

type Config struct {
	Port                string
	AllowedOrigins      []string
	InactiveRoomTimeout time.Duration
	CleanupInterval     time.Duration
}

func MustLoadConfig() *Config {
	godotenv.Load()
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	origins := []string{"*"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}
	return &Config{
		Port:                port,
		AllowedOrigins:      origins,
		InactiveRoomTimeout: envMilliseconds("INACTIVE_ROOM_TIMEOUT", defaultInactiveRoomTimeout),
		CleanupInterval:     envMilliseconds("ROOM_CLEANUP_INTERVAL", defaultCleanupInterval),
	}
}

func envMilliseconds(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

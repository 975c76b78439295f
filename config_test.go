package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("INACTIVE_ROOM_TIMEOUT", "")
	t.Setenv("ROOM_CLEANUP_INTERVAL", "")

	config := MustLoadConfig()

	assert.Equal(t, "3001", config.Port)
	assert.Equal(t, []string{"*"}, config.AllowedOrigins)
	assert.Equal(t, defaultInactiveRoomTimeout, config.InactiveRoomTimeout)
	assert.Equal(t, defaultCleanupInterval, config.CleanupInterval)
}

func TestConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("INACTIVE_ROOM_TIMEOUT", "1000")
	t.Setenv("ROOM_CLEANUP_INTERVAL", "2500")

	config := MustLoadConfig()

	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, config.AllowedOrigins)
	assert.Equal(t, time.Second, config.InactiveRoomTimeout)
	assert.Equal(t, 2500*time.Millisecond, config.CleanupInterval)
}

func TestConfigRejectsMalformedTimeout(t *testing.T) {
	t.Setenv("INACTIVE_ROOM_TIMEOUT", "soon")

	config := MustLoadConfig()

	assert.Equal(t, defaultInactiveRoomTimeout, config.InactiveRoomTimeout)
}

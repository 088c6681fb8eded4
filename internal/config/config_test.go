package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	for _, key := range []string{
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "HTTP_ADDR", "DISCORD_TOKEN",
		"APPLICATION_ID", "GUILD_ID", "STARTING_LIVES", "RANDOM_SEED", "LOG_LEVEL", "DEV_LOGGING",
	} {
		// Setenv restores the original value after the test
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 2, cfg.StartingLives)
	assert.Equal(t, int64(0), cfg.RandomSeed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DiscordEnabled())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("STARTING_LIVES", "3")
	t.Setenv("RANDOM_SEED", "99")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("APPLICATION_ID", "app")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEV_LOGGING", "true")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 3, cfg.StartingLives)
	assert.Equal(t, int64(99), cfg.RandomSeed)
	assert.True(t, cfg.DiscordEnabled())
	assert.True(t, cfg.DevLogging)

	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "zero lives", env: map[string]string{"STARTING_LIVES": "0"}},
		{name: "non numeric lives", env: map[string]string{"STARTING_LIVES": "many"}},
		{name: "token without application", env: map[string]string{"DISCORD_TOKEN": "t", "APPLICATION_ID": ""}},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

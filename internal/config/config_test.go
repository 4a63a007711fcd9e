package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv снимает переменную на время теста
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "") // восстановит прежнее значение после теста
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // без .env файла
	unsetEnv(t, "HTTP_PORT", "OPERATOR_NAME", "REDIS_ADDR", "WEBHOOK_MAX_RETRIES",
		"MAP_WINDOW_WIDTH", "MAP_WINDOW_HEIGHT", "MAP_PANEL_WIDTH", "PANEL_TRANSITION")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "Duty Officer", cfg.OperatorName)
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
	assert.Equal(t, 1440, cfg.MapWindowWidth)
	assert.Equal(t, 380, cfg.MapPanelWidth)
	assert.Equal(t, 300*time.Millisecond, cfg.PanelTransition)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OPERATOR_NAME", "Captain Reyes")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("WEBHOOK_BASE_DELAY", "250ms")
	t.Setenv("MAP_WINDOW_WIDTH", "1920")
	t.Setenv("MAP_PANEL_WIDTH", "400")
	t.Setenv("WEBHOOK_MAX_RETRIES", "5")
	unsetEnv(t, "MAP_WINDOW_HEIGHT", "PANEL_TRANSITION")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "Captain Reyes", cfg.OperatorName)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, 250*time.Millisecond, cfg.WebhookBaseDelay)
	assert.Equal(t, 1920, cfg.MapWindowWidth)
	assert.Equal(t, 5, cfg.WebhookMaxRetries)
}

func TestGetEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("CFG_TEST_INT", "abc")
	t.Setenv("CFG_TEST_DURATION", "soon")

	assert.Equal(t, 7, getEnvAsInt("CFG_TEST_INT", 7))
	assert.Equal(t, time.Minute, getEnvAsDuration("CFG_TEST_DURATION", time.Minute))
	assert.Equal(t, "x", getEnv("CFG_TEST_MISSING", "x"))
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			OperatorName:      "Duty Officer",
			MapWindowWidth:    1440,
			MapWindowHeight:   900,
			MapPanelWidth:     380,
			PanelTransition:   300 * time.Millisecond,
			WebhookMaxRetries: 3,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty operator", mutate: func(c *Config) { c.OperatorName = "" }, wantErr: "OPERATOR_NAME"},
		{name: "zero window", mutate: func(c *Config) { c.MapWindowHeight = 0 }, wantErr: "window size"},
		{name: "panel wider than window", mutate: func(c *Config) { c.MapPanelWidth = 1440 }, wantErr: "MAP_PANEL_WIDTH"},
		{name: "negative transition", mutate: func(c *Config) { c.PanelTransition = -time.Second }, wantErr: "PANEL_TRANSITION"},
		{name: "no retries", mutate: func(c *Config) { c.WebhookMaxRetries = 0 }, wantErr: "WEBHOOK_MAX_RETRIES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

package config

import (
	"testing"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoad(t *testing.T) (*Config, error) {
	t.Helper()
	return load(aconfig.Config{
		EnvPrefix: "SHOPTUI",
		SkipFlags: true,
		SkipFiles: true,
	})
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := testLoad(t)
	require.NoError(t, err)

	assert.Equal(t, "https://dummyjson.com", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, float64(5), cfg.RPS)
	assert.Equal(t, 5, cfg.Burst)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, "8080", cfg.MCP.Port)
	assert.False(t, cfg.MCP.Stateless)
	assert.Equal(t, 15*time.Minute, cfg.MCP.SessionTimeout)
	assert.Equal(t, float64(2), cfg.MCP.RPS)
	assert.Equal(t, 5, cfg.MCP.Burst)
	assert.Empty(t, cfg.MCP.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SHOPTUI_BASE_URL", " http://localhost:9000/ ")
	t.Setenv("SHOPTUI_TIMEOUT", "3s")
	t.Setenv("SHOPTUI_LOG_LEVEL", "debug")
	t.Setenv("SHOPTUI_MCP_PORT", "9090")
	t.Setenv("SHOPTUI_MCP_STATELESS", "true")
	t.Setenv("SHOPTUI_MCP_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := testLoad(t)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "9090", cfg.MCP.Port)
	assert.True(t, cfg.MCP.Stateless)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.MCP.AllowedOrigins)
}

func TestLoadFallbackLimits(t *testing.T) {
	t.Setenv("SHOPTUI_RPS", "-1")
	t.Setenv("SHOPTUI_BURST", "0")
	t.Setenv("SHOPTUI_MCP_RPS", "0")
	t.Setenv("SHOPTUI_MCP_BURST", "-3")

	cfg, err := testLoad(t)
	require.NoError(t, err)

	assert.Equal(t, float64(defaultRPS), cfg.RPS)
	assert.Equal(t, defaultBurst, cfg.Burst)
	assert.Equal(t, float64(defaultMCPRPS), cfg.MCP.RPS)
	assert.Equal(t, defaultMCPBurst, cfg.MCP.Burst)
}

func TestLoadRejectsEmptyBaseURL(t *testing.T) {
	t.Setenv("SHOPTUI_BASE_URL", "/")

	_, err := testLoad(t)
	require.Error(t, err)
}

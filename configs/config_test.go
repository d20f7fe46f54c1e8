package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "8081", cfg.Server.OpsPort)
	assert.Equal(t, "http://localhost:5000", cfg.Fund.URL)
	assert.Equal(t, 5*time.Second, cfg.Fund.PollInterval)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Zero(t, cfg.Guard.DrawdownLimit)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FUND_ENGINE_URL", "http://fund:5000")
	t.Setenv("POLL_INTERVAL", "2s")
	t.Setenv("GUARD_DRAWDOWN_LIMIT", "-7.5")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://dash.local")
	t.Setenv("LOG_PRETTY", "false")

	cfg := Load()

	assert.Equal(t, "http://fund:5000", cfg.Fund.URL)
	assert.Equal(t, 2*time.Second, cfg.Fund.PollInterval)
	assert.Equal(t, -7.5, cfg.Guard.DrawdownLimit)
	assert.Equal(t, []string{"http://localhost:3000", "http://dash.local"}, cfg.Server.CORSOrigins)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "soon")
	t.Setenv("GUARD_DRAWDOWN_LIMIT", "steep")

	cfg := Load()

	assert.Equal(t, 5*time.Second, cfg.Fund.PollInterval)
	assert.Zero(t, cfg.Guard.DrawdownLimit)
}

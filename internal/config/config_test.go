package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/gatehouse/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SURREAL_URL", "ws://localhost:8000")
	t.Setenv("SURREAL_NS", "app")
	t.Setenv("SURREAL_DB", "main")
}

func TestNewAppliesDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ADDR", "")
	t.Setenv("SURREAL_ACCESS", "")

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "account", cfg.DBAccess)
	assert.Equal(t, "ws://localhost:8000", cfg.DBUrl)
}

func TestNewReadsOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ADDR", ":9999")
	t.Setenv("SURREAL_ACCESS", "member")

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "member", cfg.DBAccess)
}

func TestNewRequiresSessionSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_SECRET", "")

	_, err := config.New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestNewRequiresDatabaseSettings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SURREAL_URL", "")

	_, err := config.New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SURREAL_URL")
}

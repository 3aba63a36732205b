package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "orders", cfg.Database.Name)
	assert.Equal(t, 100, cfg.Ledger.PageSize)
	assert.Empty(t, cfg.Ledger.SecretKey)
	assert.Equal(t, "reports", cfg.Archive.Bucket)
	assert.Equal(t, "reconciliation", cfg.Archive.Prefix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 60, cfg.Reconcile.TimeoutSeconds)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("LEDGER_SECRET_KEY", "sk_test_123")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RECONCILE_TIMEOUT_SECONDS", "5")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "sk_test_123", cfg.Ledger.SecretKey)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Reconcile.TimeoutSeconds)
}

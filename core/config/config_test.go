package config_test

import (
	"testing"

	"mirrorcheck/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mirrorcheck.txt", cfg.Ledger.Path)
	assert.Equal(t, 16384, cfg.Transport.ChunkSize)
	assert.Equal(t, 30, cfg.Transport.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.False(t, cfg.Storage.UseSSL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LEDGER_PATH", "/var/lib/mirrorcheck/ledger.txt")
	t.Setenv("TRANSPORT_CHUNK_SIZE", "65536")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("STORAGE_USE_SSL", "true")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/mirrorcheck/ledger.txt", cfg.Ledger.Path)
	assert.Equal(t, 65536, cfg.Transport.ChunkSize)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Storage.UseSSL)
}

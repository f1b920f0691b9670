package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadDefault()
	require.NoError(t, err)

	require.Equal(t, "http://127.0.0.1:8047", cfg.Server.URL)
	require.Equal(t, 30*time.Second, cfg.Server.Timeout)
	require.Equal(t, 20, cfg.Inbox.DefaultLimit)
	require.Equal(t, "warn", cfg.Logging.Level)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GRAM_SERVER_URL", "http://10.0.0.5:9000")
	t.Setenv("GRAM_LOGGING_LEVEL", "debug")

	cfg, err := LoadDefault()
	require.NoError(t, err)
	require.Equal(t, "http://10.0.0.5:9000", cfg.Server.URL)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  url: http://bridge:8047\ninbox:\n  default_limit: 5\n"), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "http://bridge:8047", cfg.Server.URL)
	require.Equal(t, 5, cfg.Inbox.DefaultLimit)
}

func TestLoadFromMissingFileFails(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Inbox.DefaultLimit = 0
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Server.URL = ""
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Server.Timeout = 0
	require.Error(t, cfg.Validate())
}

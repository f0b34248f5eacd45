package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ryvens/repdash/internal/core/grouping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.SnapshotPath)
	assert.Equal(t, 500, cfg.MinRefreshMS)
	assert.Equal(t, grouping.DefaultNestingExceptions, cfg.NestingExceptions)
	assert.True(t, cfg.Color)
	assert.Equal(t, 500*time.Millisecond, cfg.MinRefreshInterval())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"snapshot_path: /data/export.json\n"+
			"min_refresh_ms: 1500\n"+
			"nesting_exceptions:\n  - Winterpelt Furbolg\n"+
			"color: false\n",
	), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/export.json", cfg.SnapshotPath)
	assert.Equal(t, 1500, cfg.MinRefreshMS)
	assert.Equal(t, []string{"Winterpelt Furbolg"}, cfg.NestingExceptions)
	assert.False(t, cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep their defaults")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snapshot_path: /from/file.json\n"), 0644))

	t.Setenv("REPDASH_SNAPSHOT_PATH", "/from/env.json")
	t.Setenv("REPDASH_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/from/env.json", cfg.SnapshotPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().SnapshotPath, cfg.SnapshotPath)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snapshot_path: \"\"\n"), 0644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot_path")

	require.NoError(t, os.WriteFile(path, []byte("min_refresh_ms: -1\n"), 0644))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_refresh_ms")
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlab-ai/groundcore/internal/config"
)

func TestDefaultConfigIsUsableUnmodified(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Greater(t, cfg.Limits.MaxParameterArity, int32(0))
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOfMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoadOverlaysOntoDefaultsLeavingAbsentKeysUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groundcore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "absent key should keep its default")
	assert.Equal(t, config.DefaultConfig().Limits, cfg.Limits, "absent section should keep its defaults")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groundcore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [not a mapping"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

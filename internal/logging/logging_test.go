package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlab-ai/groundcore/internal/config"
	"github.com/mrlab-ai/groundcore/internal/logging"
)

func TestGetBeforeInitReturnsANoOpLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		logging.Get(logging.Ground).Infow("pre-init message", "round", 0)
	})
}

func TestInitRejectsAnUnknownLevel(t *testing.T) {
	err := logging.Init(config.Logging{Level: "not-a-level", Format: "console"})
	assert.Error(t, err)
}

func TestInitAcceptsEveryConfiguredLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		require.NoError(t, logging.Init(config.Logging{Level: level, Format: "json"}))
	}
	logging.Get(logging.CLI).Infow("initialized", "level", "error")
	_ = logging.Sync() // syncing stdout can fail benignly on some platforms
}

// Package logging wires go.uber.org/zap into a small set of named
// categories — boot, prepare, ground, enumerate, cli — mirroring the
// categorized-logger idiom used elsewhere in the pack, but backed directly
// by zap rather than a bespoke file format: every category is a *zap.
// SugaredLogger sharing one core, scoped with a "category" field.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mrlab-ai/groundcore/internal/config"
)

// Category names one of the grounding core's logging surfaces.
type Category string

const (
	Boot      Category = "boot"
	Prepare   Category = "prepare"
	Ground    Category = "ground"
	Enumerate Category = "enumerate"
	CLI       Category = "cli"
)

// root is the process-wide base logger Init installs. A nil root is
// replaced by a no-op logger so Get is always safe to call, including from
// package init order that runs before main's Init.
var root *zap.Logger

// Init builds the process-wide zap core from cfg.Logging and must be
// called once, early in main, before any Get call that should honor
// configured level/format.
func Init(cfg config.Logging) error {
	zcfg := zap.NewProductionConfig()
	if cfg.Format == "console" || cfg.Format == "" {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(levelOrDefault(cfg.Level))); err != nil {
		return fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	root = logger
	return nil
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}

// Get returns the sugared logger for category, scoped with a "category"
// field. Safe to call before Init: falls back to a no-op logger.
func Get(category Category) *zap.SugaredLogger {
	base := root
	if base == nil {
		base = zap.NewNop()
	}
	return base.With(zap.String("category", string(category))).Sugar()
}

// Sync flushes every buffered log entry; call once, from main, via defer,
// after Init succeeds.
func Sync() error {
	if root == nil {
		return nil
	}
	return root.Sync()
}

// Package config loads the grounding core's runtime configuration: the
// limits that bound an otherwise unbounded semi-naive fixpoint, a bitset
// word width, and logging level/format. A YAML file overlays these onto DefaultConfig, matching the
// rest of the pack's config-loading idiom: missing keys keep their default,
// present keys overwrite it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits bounds a grounding run so a malformed or adversarial lifted
// description cannot run the process out of memory or spin forever.
type Limits struct {
	// MaxParameterArity rejects any rule whose parameter count exceeds
	// this, before a k-partite graph for it is ever built.
	MaxParameterArity int32 `yaml:"max_parameter_arity"`

	// MaxRounds stops Advance with an error once this many semi-naive
	// rounds have run without reaching a fixed point. Zero means
	// unbounded.
	MaxRounds int32 `yaml:"max_rounds"`

	// FactStoreCapacity is a per-group entry count for grouped stores. It
	// is loaded but no store consults it: interning is not limited by it.
	FactStoreCapacity int32 `yaml:"fact_store_capacity"`
}

// Bitset holds a bitset word width. It is loaded but nothing consults it:
// pkg/graph.Static keeps adjacency lists, and pkg/clique's bitsets use
// github.com/bits-and-blooms/bitset's fixed 64-bit words.
type Bitset struct {
	// WordBits is the configured bit width of one bitset word.
	WordBits int32 `yaml:"word_bits"`
}

// Logging configures internal/logging's zap core.
type Logging struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// Format is "console" or "json".
	Format string `yaml:"format"`
}

// Config is the grounding core's complete runtime configuration.
type Config struct {
	Limits  Limits  `yaml:"limits"`
	Bitset  Bitset  `yaml:"bitset"`
	Logging Logging `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file is given, and
// the base every loaded file overlays onto.
func DefaultConfig() *Config {
	return &Config{
		Limits: Limits{
			MaxParameterArity: 12,
			MaxRounds:         10000,
			FactStoreCapacity: 0,
		},
		Bitset: Bitset{
			WordBits: 64,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path as YAML and overlays it onto DefaultConfig. A missing
// file is not an error: Load returns the defaults unchanged, matching the
// pack's "config file optional" convention.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

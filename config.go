package styling

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/styling/dom/style/selector"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of an Engine.
type Config struct {
	MaxSelectorDepth int     `yaml:"max_selector_depth"` // ancestor chain length for styled nodes
	Cache            bool    `yaml:"cache"`              // cache merged declarations per selector
	Builtins         bool    `yaml:"builtins"`           // register the builtin properties
	TraceLevel       string  `yaml:"trace_level"`        // "error", "info" or "debug"; empty keeps the current levels
	Scale            float64 `yaml:"scale"`              // scale factor for dp and sp units
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxSelectorDepth: selector.MaxDepth,
		Cache:            true,
		Builtins:         true,
		Scale:            1,
	}
}

// LoadConfig reads a YAML configuration. Fields not present in the input
// keep their default values; unknown fields are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks a configuration for values out of range.
func (cfg Config) Validate() error {
	if cfg.MaxSelectorDepth < 1 || cfg.MaxSelectorDepth > selector.MaxDepth {
		return fmt.Errorf("max_selector_depth must be in 1…%d, is %d", selector.MaxDepth, cfg.MaxSelectorDepth)
	}
	if cfg.Scale <= 0 {
		return fmt.Errorf("scale must be positive, is %g", cfg.Scale)
	}
	if _, ok := traceLevel(cfg.TraceLevel); !ok {
		return fmt.Errorf("unknown trace level %q", cfg.TraceLevel)
	}
	return nil
}

func traceLevel(s string) (tracing.TraceLevel, bool) {
	switch strings.ToLower(s) {
	case "", "error":
		return tracing.LevelError, true
	case "info":
		return tracing.LevelInfo, true
	case "debug":
		return tracing.LevelDebug, true
	}
	return tracing.LevelError, false
}

// applyTraceLevel sets the trace level of every package of this module.
func (cfg Config) applyTraceLevel() {
	if cfg.TraceLevel == "" {
		return
	}
	level, _ := traceLevel(cfg.TraceLevel)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

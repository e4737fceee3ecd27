// Package config loads the tuning knobs for the bundled ecsdemo command:
// log level/format, update tick rate, and how many demo entities to spawn.
// Every field has an in-code default, so the config file itself is
// optional — ecsdemo runs fine against zero configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level ecsdemo configuration schema.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Demo   DemoConfig   `yaml:"demo"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig controls the structured logger installed for the run.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// JSON selects JSON output; when false, a human-readable console writer
	// is used instead.
	JSON bool `yaml:"json"`
}

// DemoConfig tunes the bundled demo App.
type DemoConfig struct {
	// TickRate is a duration between ticks (e.g. "16ms" for ~60Hz). ecsdemo
	// reports it in its startup log line; the default runner does not wait
	// between updates and is not throttled by it.
	TickRate time.Duration `yaml:"tick_rate"`
	// EntityCount is how many demo entities the startup system spawns.
	EntityCount int `yaml:"entity_count"`
	// Ticks is how many updates to run before the demo exits. Zero means
	// run forever (until interrupted).
	Ticks int `yaml:"ticks"`
}

// MetricsConfig controls the optional Prometheus HTTP endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Default returns the configuration ecsdemo runs with when no file is
// supplied, or when a supplied file leaves fields unset.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
		Demo: DemoConfig{
			TickRate:    16 * time.Millisecond,
			EntityCount: 50,
			Ticks:       0,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Addr:    ":9090",
		},
	}
}

// Load reads path and merges it over Default(). A missing file is not an
// error: the defaults are returned as-is, since the file is optional.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level must be one of debug/info/warn/error, got %q", cfg.Log.Level)
	}
	if cfg.Demo.EntityCount < 0 {
		return fmt.Errorf("config: demo.entity_count must be non-negative, got %d", cfg.Demo.EntityCount)
	}
	if cfg.Demo.TickRate < 0 {
		return fmt.Errorf("config: demo.tick_rate must be non-negative, got %s", cfg.Demo.TickRate)
	}
	if cfg.Demo.Ticks < 0 {
		return fmt.Errorf("config: demo.ticks must be non-negative, got %d", cfg.Demo.Ticks)
	}
	return nil
}

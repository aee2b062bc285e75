// Package benchcfg provides Moth-Bench CLI configuration management.
package benchcfg

import (
	"os"
	"path/filepath"

	"github.com/mothbench/mothbench/pkg/bench"
	appconfig "github.com/mothbench/mothbench/pkg/config"
)

// FileName is the configuration file looked up in the working directory and
// in the user's home directory, in that order.
const FileName = ".mothbench.yaml"

// Config is the main configuration for the Moth-Bench CLI.
type Config struct {
	Bench bench.Config `yaml:"bench"`

	// Refs is the reference leaderboard file; empty means benchmarks.json
	// next to the working directory.
	Refs string `yaml:"refs" env:"MOTHBENCH_REFS"`

	// Rubrics optionally overrides the built-in scoring rubrics.
	Rubrics string `yaml:"rubrics" env:"MOTHBENCH_RUBRICS"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Bench: bench.DefaultConfig(),
	}
}

// Load loads CLI configuration from the standard file locations.
func Load() (Config, error) {
	cfg := Default()

	// Project-level config wins over the home directory one.
	if _, err := os.Stat(FileName); err == nil {
		if err := appconfig.Load(FileName, &cfg); err != nil {
			return cfg, err
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		if err := appconfig.LoadOrDefault(filepath.Join(home, FileName), &cfg); err != nil {
			return cfg, err
		}
	}

	if v := os.Getenv("MOTHBENCH_ENDPOINT"); v != "" {
		cfg.Bench.BaseURL = v
	}

	cfg.Bench.Normalize()
	return cfg, nil
}

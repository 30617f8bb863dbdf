// Package config holds the TOML configuration of the sisacc tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// ParamsConfig is the public tuple the parameter set is generated from.
type ParamsConfig struct {
	Personalization string `toml:"Personalization"`
	M               uint32 `toml:"M"`
	N               uint32 `toml:"N"`
	Capacity        int    `toml:"Capacity"`
	Field           string `toml:"Field"`
	Hash            string `toml:"Hash"`
}

// DemoConfig drives the demo command.
type DemoConfig struct {
	Elements  int    `toml:"Elements"`
	Outsiders int    `toml:"Outsiders"`
	Seed      string `toml:"Seed"`
}

// ReportConfig drives the report command.
type ReportConfig struct {
	OutDir string `toml:"OutDir"`
}

// LogConfig sets the logger levels, e.g. "*:INFO,params:DEBUG".
type LogConfig struct {
	Level string `toml:"Level"`
}

// Config is the root of config.toml.
type Config struct {
	Params ParamsConfig `toml:"Params"`
	Demo   DemoConfig   `toml:"Demo"`
	Report ReportConfig `toml:"Report"`
	Log    LogConfig    `toml:"Log"`
}

// Default returns the reference configuration: m=32512, n=128,
// capacity=1024 over BN254 with Keccak-256 and personalization "hello".
func Default() *Config {
	return &Config{
		Params: ParamsConfig{
			Personalization: "hello",
			M:               32512,
			N:               128,
			Capacity:        1024,
			Field:           "bn254",
			Hash:            "keccak256",
		},
		Demo: DemoConfig{
			Elements:  10,
			Outsiders: 10,
			Seed:      "sisacc-demo",
		},
		Report: ReportConfig{OutDir: "reports"},
		Log:    LogConfig{Level: "*:INFO"},
	}
}

// Validate checks the values that do not depend on the field.
func (c *Config) Validate() error {
	if c.Params.M == 0 || c.Params.N == 0 {
		return fmt.Errorf("params: m=%d n=%d must be positive", c.Params.M, c.Params.N)
	}
	if c.Params.Capacity <= 0 {
		return fmt.Errorf("params: capacity=%d must be positive", c.Params.Capacity)
	}
	if c.Params.Field == "" || c.Params.Hash == "" {
		return errors.New("params: field and hash must be set")
	}
	if c.Demo.Elements < 0 || c.Demo.Outsiders < 0 {
		return errors.New("demo: element counts must be non-negative")
	}
	return nil
}

// applyDefaults copies the values of Default for every key missing from
// tree. Keys present in the file keep their value, zero included.
func (c *Config) applyDefaults(tree *toml.Tree) {
	d := Default()
	fill := func(key string, set func()) {
		if !tree.Has(key) {
			set()
		}
	}
	fill("Params.Personalization", func() { c.Params.Personalization = d.Params.Personalization })
	fill("Params.M", func() { c.Params.M = d.Params.M })
	fill("Params.N", func() { c.Params.N = d.Params.N })
	fill("Params.Capacity", func() { c.Params.Capacity = d.Params.Capacity })
	fill("Params.Field", func() { c.Params.Field = d.Params.Field })
	fill("Params.Hash", func() { c.Params.Hash = d.Params.Hash })
	fill("Demo.Elements", func() { c.Demo.Elements = d.Demo.Elements })
	fill("Demo.Outsiders", func() { c.Demo.Outsiders = d.Demo.Outsiders })
	fill("Demo.Seed", func() { c.Demo.Seed = d.Demo.Seed })
	fill("Report.OutDir", func() { c.Report.OutDir = d.Report.OutDir })
	fill("Log.Level", func() { c.Log.Level = d.Log.Level })
}

// Load decodes the TOML file at path, takes every missing key from Default
// and validates the result.
func Load(path string) (*Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tree, err := toml.LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	cfg := &Config{}
	if err := tree.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	cfg.applyDefaults(tree)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

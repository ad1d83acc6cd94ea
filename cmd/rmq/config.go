package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	rmq "github.com/ArayikKarapetyan/Algorithms-for-computational-biology"
)

// cliConfig holds the settings shared by every subcommand.
// Values come from defaults, then the YAML file, then flags.
type cliConfig struct {
	Format   string `yaml:"format"`
	Index    string `yaml:"index"`
	LogLevel string `yaml:"log_level"`
	Validate bool   `yaml:"validate"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		Format:   "json",
		Index:    "sparse",
		LogLevel: "info",
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// resolved is a cliConfig with every field parsed.
type resolved struct {
	format   rmq.Format
	index    rmq.IndexKind
	level    slog.Level
	validate bool
}

func (c cliConfig) resolve() (resolved, error) {
	var r resolved
	var err error
	if r.format, err = rmq.ParseFormat(c.Format); err != nil {
		return r, err
	}
	if r.index, err = rmq.ParseIndexKind(c.Index); err != nil {
		return r, err
	}
	if err = r.level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return r, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	r.validate = c.Validate
	return r, nil
}

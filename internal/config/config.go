// Package config loads the YAML compiler/workspace configuration: module
// search paths, target triple, code model, and optimization level. Decode
// style follows a typical Go YAML-backed config loader (gopkg.in/yaml.v3,
// tagged struct fields, a top-level Load(path) that opens and decodes in
// one step).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CodeModel mirrors the compiler CLI flag ("LARGE" default).
type CodeModel string

const (
	CodeModelSmall CodeModel = "SMALL"
	CodeModelLarge CodeModel = "LARGE"
)

// OptLevel is the optimization level selected on the CLI.
type OptLevel int

const (
	OptNone OptLevel = iota
	OptDefault
	OptAggressive
)

// Config is the on-disk compiler/workspace configuration.
type Config struct {
	// TargetTriple selects the compilation target, e.g. "x86_64-linux-gnu".
	TargetTriple string `yaml:"target_triple"`

	// CodeModel defaults to LARGE.
	CodeModel CodeModel `yaml:"code_model"`

	// OptLevel selects optimization aggressiveness.
	OptLevel OptLevel `yaml:"opt_level"`

	// StdlibPath points at the standard library module search root.
	StdlibPath string `yaml:"stdlib_path"`

	// SearchPaths are additional user module search directories, consulted
	// in order after StdlibPath.
	SearchPaths []string `yaml:"search_paths"`

	// WorkerCount sizes the parallel.Pool used for per-module phases.
	// 0 means "let the caller pick a default".
	WorkerCount int `yaml:"worker_count"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		CodeModel:   CodeModelLarge,
		OptLevel:    OptDefault,
		SearchPaths: []string{"."},
	}
}

// Load reads and decodes a YAML config file at path. Missing fields keep
// their Default() values by decoding onto a pre-populated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

package main

import "github.com/banjo-lang/banjoc/internal/config"

// loadConfig returns the config at path, or the default configuration if
// path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

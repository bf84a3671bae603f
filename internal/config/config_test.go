package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.CodeModel != CodeModelLarge {
		t.Fatalf("CodeModel = %v, want LARGE", cfg.CodeModel)
	}
	if len(cfg.SearchPaths) != 1 || cfg.SearchPaths[0] != "." {
		t.Fatalf("SearchPaths = %v", cfg.SearchPaths)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "banjoc.yaml")
	content := "target_triple: x86_64-linux-gnu\nsearch_paths:\n  - ./vendor\n  - ./lib\nworker_count: 4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TargetTriple != "x86_64-linux-gnu" {
		t.Fatalf("TargetTriple = %q", cfg.TargetTriple)
	}
	if len(cfg.SearchPaths) != 2 || cfg.SearchPaths[1] != "./lib" {
		t.Fatalf("SearchPaths = %v", cfg.SearchPaths)
	}
	if cfg.WorkerCount != 4 {
		t.Fatalf("WorkerCount = %d", cfg.WorkerCount)
	}
	// Untouched fields keep their Default() value.
	if cfg.CodeModel != CodeModelLarge {
		t.Fatalf("CodeModel = %v, want LARGE (default preserved)", cfg.CodeModel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

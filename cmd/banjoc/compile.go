package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/banjo-lang/banjoc/internal/config"
	"github.com/banjo-lang/banjoc/internal/sir"
	"github.com/banjo-lang/banjoc/internal/workspace"
)

// runCompile loads files and everything they use, runs semantic analysis,
// and prints every accumulated diagnostic. It returns the process exit
// code: 0 if analysis produced no ERROR-severity report, 1 otherwise.
// Object/executable emission is out of scope (SSA lowering from SIR has no
// specified algorithm to implement here — see DESIGN.md); --emit values
// past "report" only change what banjoc prints once analysis succeeds.
func runCompile(files []string, configPath, target, optLevel, emit string) int {
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		return 1
	}
	if target != "" {
		cfg.TargetTriple = target
	}
	if lvl, ok := parseOptLevel(optLevel); ok {
		cfg.OptLevel = lvl
	} else {
		fmt.Fprintf(os.Stderr, "%s: unknown optimization level %q\n", yellow("Warning"), optLevel)
	}

	entryPoints, err := addSearchPathsAndEntryPoints(cfg, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		return 1
	}

	ws := workspace.New(cfg, stubParse)
	defer ws.Close()
	fmt.Printf("%s Analyzing %d file(s)...\n", cyan("→"), len(files))
	if err := ws.Initialize(entryPoints); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		return 1
	}

	printReports(ws.Mgr.Reports.Reports())
	if !ws.Mgr.Reports.Valid() {
		fmt.Fprintf(os.Stderr, "%s analysis failed\n", red("✗"))
		return 1
	}

	fmt.Printf("%s No errors found\n", green("✓"))
	if emit != "" && emit != "report" {
		fmt.Printf("%s --emit=%s is out of scope: SSA/object/executable emission is not implemented\n", yellow("Note"), emit)
	}
	return 0
}

func parseOptLevel(s string) (config.OptLevel, bool) {
	switch s {
	case "", "default":
		return config.OptDefault, true
	case "none":
		return config.OptNone, true
	case "aggressive":
		return config.OptAggressive, true
	default:
		return config.OptDefault, false
	}
}

// addSearchPathsAndEntryPoints registers each file's containing directory
// as a module search path (so sibling `use`s resolve) and returns the
// sir.ModulePath each file's base name (without extension) names.
func addSearchPathsAndEntryPoints(cfg *config.Config, files []string) ([]sir.ModulePath, error) {
	seen := make(map[string]bool, len(cfg.SearchPaths))
	for _, sp := range cfg.SearchPaths {
		seen[sp] = true
	}

	var entryPoints []sir.ModulePath
	for _, file := range files {
		if !strings.HasSuffix(file, ".bnj") {
			fmt.Fprintf(os.Stderr, "%s: %s does not have a .bnj extension\n", yellow("Warning"), file)
		}
		abs, err := filepath.Abs(file)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", file, err)
		}
		dir := filepath.Dir(abs)
		if !seen[dir] {
			seen[dir] = true
			cfg.SearchPaths = append(cfg.SearchPaths, dir)
		}
		name := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
		entryPoints = append(entryPoints, sir.NewModulePath(name))
	}
	return entryPoints, nil
}

// Package symtab owns the module graph: loading source files into SIR
// module shells, resolving use-paths across module boundaries, and
// reloading a single module without re-loading the world (the incremental
// path the workspace/completion engine depends on). The cache/search-path/
// cycle-detection shape is ported from a typical Go module loader: an
// in-memory cache keyed by module identity, a load stack for cycle
// detection, and search-path resolution with a stdlib root consulted first.
package symtab

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/report"
	"github.com/banjo-lang/banjoc/internal/sir"
	"github.com/banjo-lang/banjoc/internal/source"
)

// ParseFunc parses one normalized source buffer into a File. The actual
// lexer/parser is supplied by the caller; this package only orchestrates
// loading order, caching, and dependency discovery.
type ParseFunc func(path string, content []byte) (*ast.File, error)

// Record pairs a loaded SIR module shell with the parsed file it was built
// from. NAME-stage analysis consumes File to populate Module.Root.
type Record struct {
	Module *sir.Module
	File   *ast.File
}

// ModuleManager loads and caches modules by path, in a Unit shared across
// an entire compilation or workspace session.
type ModuleManager struct {
	Unit *sir.Unit
	Reports *report.Manager

	parse       ParseFunc
	searchPaths []string
	stdlibPath  string

	mu        sync.RWMutex
	records   map[string]*Record // keyed by ModulePath.Key()
	loadStack []string
	subMods   map[string][]string // module path key -> direct sub-module path keys
}

// New creates a ModuleManager with the given search paths (stdlib first,
// consulted before searchPaths in resolvePath).
func New(parse ParseFunc, stdlibPath string, searchPaths []string) *ModuleManager {
	return &ModuleManager{
		Unit:        sir.NewUnit(),
		Reports:     report.NewManager(),
		parse:       parse,
		searchPaths: append([]string(nil), searchPaths...),
		stdlibPath:  stdlibPath,
		records:     make(map[string]*Record),
		subMods:     make(map[string][]string),
	}
}

// Load resolves path to a file, parses it, recursively loads its
// dependencies, and returns the resulting Record. A cached Record is
// returned as-is without re-parsing.
func (m *ModuleManager) Load(path sir.ModulePath) (*Record, error) {
	key := path.Key()

	m.mu.RLock()
	if rec, ok := m.records[key]; ok {
		m.mu.RUnlock()
		return rec, nil
	}
	m.mu.RUnlock()

	if err := m.checkCycle(key); err != nil {
		return nil, err
	}
	m.pushStack(key)
	defer m.popStack()

	filePath, err := m.resolvePath(path)
	if err != nil {
		return nil, m.moduleNotFoundError(path, err)
	}
	return m.loadFile(path, filePath)
}

// loadFile parses filePath as path and registers its sub-module link with
// any ancestor directory package already loaded.
func (m *ModuleManager) loadFile(path sir.ModulePath, filePath string) (*Record, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("symtab: reading %s: %w", filePath, err)
	}
	content := source.Normalize(raw)

	file, err := m.parse(filePath, content)
	if err != nil {
		return nil, fmt.Errorf("symtab: parsing %s: %w", filePath, err)
	}

	mod := sir.NewModule(path, filePath, m.Unit.Preamble.Root.Table)
	rec := &Record{Module: mod, File: file}

	m.mu.Lock()
	m.records[path.Key()] = rec
	m.mu.Unlock()
	m.Unit.Put(mod)
	m.linkSubModule(path)

	for _, use := range file.Uses {
		depPath := sir.NewModulePath(use.Path[:moduleSegmentCount(use)]...)
		if depPath.String() == "" {
			continue
		}
		if _, err := m.Load(depPath); err != nil {
			return nil, fmt.Errorf("loading dependency of %s: %w", path, err)
		}
	}

	return rec, nil
}

// moduleSegmentCount guesses how many leading path segments of a use item
// name a module (as opposed to a symbol within it): everything but the
// final segment, unless the whole path is a single segment (a same-level
// sibling module).
func moduleSegmentCount(use *ast.UseItem) int {
	if len(use.Path) <= 1 {
		return len(use.Path)
	}
	return len(use.Path) - 1
}

// linkSubModule records path as a sub-module of its parent directory
// package, if any parent is already tracked. This restores the
// sub-module-path bookkeeping the workspace/completion engine needs to
// offer "pkg.<sub>" completions even though the language has no explicit
// package manifest (original-source behavior the distilled pipeline
// dropped).
func (m *ModuleManager) linkSubModule(path sir.ModulePath) {
	parent, ok := path.Parent()
	if !ok {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key, childKey := parent.Key(), path.Key()
	for _, existing := range m.subMods[key] {
		if existing == childKey {
			return
		}
	}
	m.subMods[key] = append(m.subMods[key], childKey)
}

// SubModules returns the direct sub-module paths registered under path,
// e.g. SubModules("std") might return ["std.io", "std.optional"].
func (m *ModuleManager) SubModules(path sir.ModulePath) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.subMods[path.Key()]...)
}

// Reload re-parses the file backing path (if still loaded) and replaces its
// Record, without touching any other module's cache entry. Callers are
// responsible for re-running NAME-stage analysis on the returned Record and
// on any module whose use-resolution depended on declarations that may have
// shifted.
func (m *ModuleManager) Reload(path sir.ModulePath) (*Record, error) {
	m.mu.RLock()
	old, ok := m.records[path.Key()]
	m.mu.RUnlock()
	if !ok {
		return m.Load(path)
	}
	return m.loadFile(path, old.Module.FilePath)
}

// LoadForCompletion parses the file at filePath as path with a completion
// sentinel spliced in at cursorOffset, so the parser can emit a
// CompletionSentinel node in place of whatever (possibly malformed) syntax
// surrounds the cursor. The returned Record is a throwaway: it is not
// cached, not put into the Unit, and its dependencies are not loaded.
func (m *ModuleManager) LoadForCompletion(path sir.ModulePath, filePath string, cursorOffset int) (*Record, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("symtab: reading %s: %w", filePath, err)
	}
	if cursorOffset < 0 || cursorOffset > len(raw) {
		return nil, fmt.Errorf("symtab: cursor offset %d out of range for %s", cursorOffset, filePath)
	}
	spliced := spliceSentinel(raw, cursorOffset)
	content := source.Normalize(spliced)

	file, err := m.parse(filePath, content)
	if err != nil {
		return nil, fmt.Errorf("symtab: parsing %s for completion: %w", filePath, err)
	}

	mod := sir.NewModule(path, filePath, m.Unit.Preamble.Root.Table)
	return &Record{Module: mod, File: file}, nil
}

// sentinel is a byte sequence that cannot occur in valid source text (NUL
// bytes are rejected by any real lexer), used to mark the completion
// cursor's position for the parser.
const sentinel = "\x00COMPLETE\x00"

func spliceSentinel(content []byte, offset int) []byte {
	out := make([]byte, 0, len(content)+len(sentinel))
	out = append(out, content[:offset]...)
	out = append(out, sentinel...)
	out = append(out, content[offset:]...)
	return out
}

// Get returns the Record for an already-loaded module.
func (m *ModuleManager) Get(path sir.ModulePath) (*Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[path.Key()]
	return rec, ok
}

func (m *ModuleManager) checkCycle(key string) error {
	for i, id := range m.loadStack {
		if id == key {
			cycle := append(append([]string(nil), m.loadStack[i:]...), key)
			return m.circularDependencyError(cycle)
		}
	}
	return nil
}

func (m *ModuleManager) pushStack(key string) { m.loadStack = append(m.loadStack, key) }

func (m *ModuleManager) popStack() {
	if len(m.loadStack) > 0 {
		m.loadStack = m.loadStack[:len(m.loadStack)-1]
	}
}

// resolvePath turns a module path into a file path: the stdlib root is
// tried first, then each search path in order. Module path segments map to
// directory components and the file carries a ".bnj" extension.
func (m *ModuleManager) resolvePath(path sir.ModulePath) (string, error) {
	rel := filepath.Join(path.Segments...) + ".bnj"

	if m.stdlibPath != "" {
		candidate := filepath.Join(m.stdlibPath, rel)
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	for _, sp := range m.searchPaths {
		candidate := filepath.Join(sp, rel)
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("module not found in any search path: %s", path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (m *ModuleManager) moduleNotFoundError(path sir.ModulePath, cause error) error {
	rep := report.New(report.Error, report.PhaseLoader, report.LDR001ModuleNotFound).
		Message("module %q not found: %s", path.String(), cause).
		Build()
	m.Reports.Insert(rep)
	return report.WrapReport(rep)
}

func (m *ModuleManager) circularDependencyError(cycle []string) error {
	rep := report.New(report.Error, report.PhaseLoader, report.LDR002CircularDependency).
		Message("circular module dependency: %s", strings.Join(cycle, " -> ")).
		Build()
	m.Reports.Insert(rep)
	return report.WrapReport(rep)
}

// DependencyGraph returns, for every loaded module, the module paths it
// directly uses (derived from each Record's File.Uses).
func (m *ModuleManager) DependencyGraph() map[string][]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	graph := make(map[string][]string)
	for key, rec := range m.records {
		var deps []string
		for _, use := range rec.File.Uses {
			n := moduleSegmentCount(use)
			if n == 0 {
				continue
			}
			deps = append(deps, sir.NewModulePath(use.Path[:n]...).Key())
		}
		graph[key] = deps
	}
	return graph
}

// TopologicalSort orders loaded modules so that every module appears after
// its dependencies (Kahn's algorithm), returning an error if the graph has
// a cycle.
func (m *ModuleManager) TopologicalSort() ([]string, error) {
	graph := m.DependencyGraph()

	inDegree := make(map[string]int)
	dependents := make(map[string][]string)
	for node := range graph {
		if _, ok := inDegree[node]; !ok {
			inDegree[node] = 0
		}
	}
	for node, deps := range graph {
		inDegree[node] = len(deps)
		for _, dep := range deps {
			dependents[dep] = append(dependents[dep], node)
			if _, ok := inDegree[dep]; !ok {
				inDegree[dep] = 0
			}
		}
	}

	var queue []string
	for node, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, node)
		}
	}

	var result []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)
		for _, dependent := range dependents[node] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(result) != len(inDegree) {
		return nil, fmt.Errorf("symtab: circular dependency detected among loaded modules")
	}
	return result, nil
}

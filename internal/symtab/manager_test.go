package symtab

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/sir"
)

// stubParse maps file content of the form "uses: a.b, c" into a File with
// matching UseItems; everything else is treated as a dependency-free file.
// This stands in for the real lexer/parser during these tests.
func stubParse(path string, content []byte) (*ast.File, error) {
	f := &ast.File{Path: path}
	text := strings.TrimSpace(string(content))
	if rest, ok := strings.CutPrefix(text, "uses:"); ok {
		for _, dep := range strings.Split(rest, ",") {
			dep = strings.TrimSpace(dep)
			if dep == "" {
				continue
			}
			f.Uses = append(f.Uses, &ast.UseItem{Kind: ast.UseIdentKind, Path: strings.Split(dep, ".")})
		}
	}
	return f, nil
}

func writeModule(t *testing.T, root string, segments []string, content string) {
	t.Helper()
	path := filepath.Join(append([]string{root}, segments...)...) + ".bnj"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadResolvesDependencies(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, []string{"a"}, "uses: b")
	writeModule(t, dir, []string{"b"}, "")

	mgr := New(stubParse, "", []string{dir})
	rec, err := mgr.Load(sir.NewModulePath("a"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rec.File.Uses) != 1 {
		t.Fatalf("Uses = %v", rec.File.Uses)
	}
	if _, ok := mgr.Get(sir.NewModulePath("b")); !ok {
		t.Fatal("expected dependency b to be loaded transitively")
	}
}

func TestLoadDetectsCycle(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, []string{"a"}, "uses: b")
	writeModule(t, dir, []string{"b"}, "uses: a")

	mgr := New(stubParse, "", []string{dir})
	if _, err := mgr.Load(sir.NewModulePath("a")); err == nil {
		t.Fatal("expected a circular dependency error")
	}
}

func TestLoadMissingModule(t *testing.T) {
	dir := t.TempDir()
	mgr := New(stubParse, "", []string{dir})
	if _, err := mgr.Load(sir.NewModulePath("nope")); err == nil {
		t.Fatal("expected module-not-found error")
	}
	if mgr.Reports.Valid() {
		t.Fatal("expected Reports to latch invalid")
	}
}

func TestReloadReplacesRecordWithoutTouchingOthers(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, []string{"a"}, "")

	mgr := New(stubParse, "", []string{dir})
	first, err := mgr.Load(sir.NewModulePath("a"))
	if err != nil {
		t.Fatal(err)
	}

	writeModule(t, dir, []string{"a"}, "uses: b")
	writeModule(t, dir, []string{"b"}, "")

	second, err := mgr.Reload(sir.NewModulePath("a"))
	if err != nil {
		t.Fatal(err)
	}
	if second == first {
		t.Fatal("Reload should produce a fresh Record")
	}
	if len(second.File.Uses) != 1 {
		t.Fatalf("reloaded Uses = %v", second.File.Uses)
	}
}

func TestSubModuleTracking(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, []string{"std", "io"}, "")
	writeModule(t, dir, []string{"std", "optional"}, "")

	mgr := New(stubParse, "", []string{dir})
	if _, err := mgr.Load(sir.NewModulePath("std", "io")); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Load(sir.NewModulePath("std", "optional")); err != nil {
		t.Fatal(err)
	}

	subs := mgr.SubModules(sir.NewModulePath("std"))
	if len(subs) != 2 {
		t.Fatalf("SubModules(std) = %v", subs)
	}
}

func TestTopologicalSortOrdersDependenciesFirst(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, []string{"a"}, "uses: b")
	writeModule(t, dir, []string{"b"}, "uses: c")
	writeModule(t, dir, []string{"c"}, "")

	mgr := New(stubParse, "", []string{dir})
	if _, err := mgr.Load(sir.NewModulePath("a")); err != nil {
		t.Fatal(err)
	}

	order, err := mgr.TopologicalSort()
	if err != nil {
		t.Fatal(err)
	}
	pos := map[string]int{}
	for i, k := range order {
		pos[k] = i
	}
	if pos["c"] > pos["b"] || pos["b"] > pos["a"] {
		t.Fatalf("expected c before b before a, got %v", order)
	}
}

func TestLoadForCompletionSplicesSentinel(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, []string{"a"}, "hello world")

	var captured []byte
	capture := func(path string, content []byte) (*ast.File, error) {
		captured = content
		return stubParse(path, content)
	}

	mgr := New(capture, "", []string{dir})
	filePath := filepath.Join(dir, "a.bnj")
	if _, err := mgr.LoadForCompletion(sir.NewModulePath("a"), filePath, 5); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(captured), sentinel) {
		t.Fatalf("expected sentinel spliced into content, got %q", captured)
	}
}

package sema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/report"
	"github.com/banjo-lang/banjoc/internal/sir"
	"github.com/banjo-lang/banjoc/internal/symtab"
)

func newUseTestAnalyzer(t *testing.T, dir string) (*Analyzer, *sir.Module) {
	t.Helper()
	mgr := symtab.New(stubParse, "", []string{dir})
	mod := sir.NewModule(sir.NewModulePath("main"), "main.bnj", mgr.Unit.Preamble.Root.Table)
	mgr.Unit.Put(mod)
	reports := report.NewManager()
	a := New(mgr.Unit, mgr, reports, COMPILATION)
	return a, mod
}

func TestResolveUsesMemberMissReportsSEMA002(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.bnj"), []byte(""), 0o644))

	a, mod := newUseTestAnalyzer(t, dir)
	file := &ast.File{
		Uses: []*ast.UseItem{{Kind: ast.UseIdentKind, Path: []string{"a", "b"}}},
	}

	result := a.resolveUses(mod, file)
	assert.Equal(t, Error, result)

	errs := a.Reports.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, report.SEMA002SymbolNotFound, errs[0].Code)
	assert.Equal(t, report.Error, errs[0].Type)
	assert.Equal(t, "cannot find 'b' in 'a'", errs[0].Message)
}

func TestResolveUsesMissingModuleReportsSEMA003(t *testing.T) {
	dir := t.TempDir()
	a, mod := newUseTestAnalyzer(t, dir)
	file := &ast.File{
		Uses: []*ast.UseItem{{Kind: ast.UseIdentKind, Path: []string{"nope"}}},
	}

	result := a.resolveUses(mod, file)
	assert.Equal(t, Error, result)

	errs := a.Reports.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, report.SEMA003ModuleNotFound, errs[0].Code)
	assert.Equal(t, report.Error, errs[0].Type)
}

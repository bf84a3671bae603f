package workspace

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/config"
	"github.com/banjo-lang/banjoc/internal/sir"
)

func namedType(name string) *ast.NamedType {
	return &ast.NamedType{Path: []string{name}}
}

// baseFixture is the non-completion file content parsed for path: a struct
// with two fields plus a function building one, mirroring
// sema.TestAnalyzeModuleStructFieldAndFunc's fixture.
func baseFixture(path string) *ast.File {
	return &ast.File{
		Path: path,
		Decls: []ast.Decl{
			&ast.StructDecl{
				Name: "Point",
				Fields: []*ast.StructField{
					{Name: "x", Type: namedType("i32")},
					{Name: "y", Type: namedType("i32")},
				},
			},
			&ast.FuncDecl{
				Name:       "make",
				ReturnType: namedType("Point"),
				Body: &ast.Block{
					Stmts: []ast.Stmt{
						&ast.ExprStmt{Expr: &ast.StructLiteral{
							TypeName: "Point",
							Entries: []*ast.StructLiteralEntry{
								{Name: "x", Value: &ast.IntLiteral{Value: 0}},
								{Name: "y", Value: &ast.IntLiteral{Value: 0}},
							},
						}},
					},
				},
			},
		},
	}
}

// completionFixture is what a real parser would hand back for a buffer
// with the completion sentinel spliced into it: a function whose body
// declares a local then hits the cursor in statement position, which
// analyzeCompletionSentinel classifies as CompleteInBlock.
func completionFixture(path string) *ast.File {
	return &ast.File{
		Path: path,
		Decls: []ast.Decl{
			&ast.FuncDecl{
				Name: "f",
				Body: &ast.Block{
					Stmts: []ast.Stmt{
						&ast.LocalDeclStmt{Name: "p", Value: &ast.IntLiteral{Value: 0}},
						&ast.ExprStmt{Expr: &ast.CompletionSentinel{}},
					},
				},
			},
		},
	}
}

// testParse stands in for the external lexer/parser: it recognizes the
// sentinel ModuleManager.LoadForCompletion splices into the buffer and
// switches fixtures accordingly, the same stub-parser relaxation
// symtab's own tests use.
func testParse(path string, content []byte) (*ast.File, error) {
	if bytes.Contains(content, []byte("COMPLETE")) {
		return completionFixture(path), nil
	}
	return baseFixture(path), nil
}

func newTestWorkspace(t *testing.T) (*Workspace, string) {
	t.Helper()
	dir := t.TempDir()
	mainPath := filepath.Join(dir, "main.bnj")
	require.NoError(t, os.WriteFile(mainPath, []byte("placeholder source text"), 0o644))

	cfg := config.Default()
	cfg.SearchPaths = []string{dir}
	w := New(cfg, testParse)
	t.Cleanup(w.Close)
	return w, mainPath
}

func TestWorkspaceInitializeBuildsFilesAndIndex(t *testing.T) {
	w, mainPath := newTestWorkspace(t)

	require.NoError(t, w.Initialize([]sir.ModulePath{sir.NewModulePath("main")}))

	f, ok := w.FindFile(mainPath)
	require.True(t, ok)
	assert.Equal(t, "main", f.ModulePath.String())

	byPath, ok := w.FindByModulePath(f.ModulePath)
	require.True(t, ok)
	assert.Equal(t, mainPath, byPath.Path)

	require.NotNil(t, w.Index())
	mod, ok := w.Mgr.Unit.Get(f.ModulePath)
	require.True(t, ok)
	mi, ok := w.Index().Mods[mod]
	require.True(t, ok)
	assert.NotNil(t, mi)
}

func TestWorkspaceUpdateReanalyzesAfterReload(t *testing.T) {
	w, mainPath := newTestWorkspace(t)
	require.NoError(t, w.Initialize([]sir.ModulePath{sir.NewModulePath("main")}))

	require.NoError(t, os.WriteFile(mainPath, []byte("placeholder source text, edited"), 0o644))
	require.NoError(t, w.Update(mainPath))

	_, ok := w.FindFile(mainPath)
	assert.True(t, ok)
}

func TestWorkspaceCompleteInBlockOffersLocalAndModuleSymbols(t *testing.T) {
	w, mainPath := newTestWorkspace(t)
	require.NoError(t, w.Initialize([]sir.ModulePath{sir.NewModulePath("main")}))

	items, err := w.Complete(mainPath, 5)
	require.NoError(t, err)

	var labels []string
	for _, it := range items {
		labels = append(labels, it.Label)
	}
	assert.Contains(t, labels, "p")
	assert.Contains(t, labels, "make")
	assert.Contains(t, labels, "i32")
}

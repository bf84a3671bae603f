package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/sir"
	"github.com/banjo-lang/banjoc/internal/symtab"
)

func stubParse(path string, content []byte) (*ast.File, error) {
	return &ast.File{Path: path}, nil
}

func newTestUnit(t *testing.T) (*sir.Unit, *symtab.ModuleManager) {
	t.Helper()
	mgr := symtab.New(stubParse, "", nil)
	return mgr.Unit, mgr
}

func newFunc(name string, isMethod bool) *sir.FuncDefSymbol {
	f := &sir.FuncDefSymbol{IsMethod: isMethod}
	f.Name = name
	return f
}

func TestTryCollectItemOffersFuncAsCallTemplate(t *testing.T) {
	unit, mgr := newTestUnit(t)
	eng := NewEngine(unit, mgr)
	state := newCollectState()

	f := newFunc("greet", false)
	eng.tryCollectItem("greet", f, true, true, nil, state)

	require.Len(t, state.items, 1)
	assert.Equal(t, funcCallTemplate, state.items[0].Template)
	assert.Equal(t, "greet", state.items[0].Label)
}

func TestTryCollectItemOffersNonGenericStructAsBothSimpleAndLiteral(t *testing.T) {
	unit, mgr := newTestUnit(t)
	eng := NewEngine(unit, mgr)
	state := newCollectState()

	sd := &sir.StructDefSymbol{}
	sd.Name = "Point"
	eng.tryCollectItem("Point", sd, true, true, nil, state)

	require.Len(t, state.items, 2)
	assert.Equal(t, simpleItem, state.items[0].Template)
	assert.Equal(t, structLiteralTemplate, state.items[1].Template)
}

func TestTryCollectItemSkipsStructLiteralWhenValuesDisallowed(t *testing.T) {
	unit, mgr := newTestUnit(t)
	eng := NewEngine(unit, mgr)
	state := newCollectState()

	sd := &sir.StructDefSymbol{}
	sd.Name = "Point"
	eng.tryCollectItem("Point", sd, false, true, nil, state)

	require.Len(t, state.items, 1)
	assert.Equal(t, simpleItem, state.items[0].Template)
}

func TestTryCollectItemFlattensOverloadSet(t *testing.T) {
	unit, mgr := newTestUnit(t)
	eng := NewEngine(unit, mgr)
	state := newCollectState()

	a := newFunc("f", false)
	b := newFunc("f", false)
	set := &sir.OverloadSetSymbol{Funcs: []*sir.FuncDefSymbol{a, b}}
	eng.tryCollectItem("f", set, true, true, nil, state)

	require.Len(t, state.items, 2)
	assert.Same(t, a, state.items[0].Symbol)
	assert.Same(t, b, state.items[1].Symbol)
}

func TestTryCollectItemSkipsUseWhenUsesDisallowed(t *testing.T) {
	unit, mgr := newTestUnit(t)
	eng := NewEngine(unit, mgr)
	state := newCollectState()

	local := &sir.LocalSymbol{}
	local.Name = "x"
	use := sir.NewUseIdentSymbol("x", ast.Pos{}, local)
	eng.tryCollectItem("x", use, true, false, nil, state)

	assert.Empty(t, state.items)
}

func TestAddItemSuppressesGuardedSymbol(t *testing.T) {
	unit, mgr := newTestUnit(t)
	eng := NewEngine(unit, mgr)
	state := newCollectState()

	inner := &sir.LocalSymbol{}
	inner.Name = "x"
	guarded := &sir.GuardedSymbol{Inner: inner}
	eng.addItem(state, "x", guarded, simpleItem, nil)

	assert.Empty(t, state.items)
}

func TestAddItemDedupsBySymbolIdentity(t *testing.T) {
	unit, mgr := newTestUnit(t)
	eng := NewEngine(unit, mgr)
	state := newCollectState()

	sym := &sir.LocalSymbol{}
	sym.Name = "x"
	eng.addItem(state, "x", sym, simpleItem, nil)
	eng.addItem(state, "x", sym, simpleItem, nil)

	assert.Len(t, state.items, 1)
}

func TestCollectScopedClimbsAncestorsAndOtherModules(t *testing.T) {
	unit, mgr := newTestUnit(t)

	other := sir.NewModule(sir.NewModulePath("other"), "other.bnj", unit.Preamble.Root.Table)
	topFn := &sir.FuncDefSymbol{}
	topFn.Name = "helper"
	other.Root.Add("helper", topFn)
	unit.Put(other)

	cur := sir.NewModule(sir.NewModulePath("main"), "main.bnj", unit.Preamble.Root.Table)
	unit.Put(cur)

	block := sir.NewBlock(cur.Root.Table, sir.Pos{})
	local := &sir.LocalSymbol{}
	local.Name = "x"
	block.Table.Insert("x", local)

	eng := NewEngine(unit, mgr)
	state := newCollectState()
	eng.collectScoped(block.Table, cur, state)

	var labels []string
	for _, it := range state.items {
		labels = append(labels, it.Label)
	}
	assert.Contains(t, labels, "x")
	assert.Contains(t, labels, "helper")

	for _, it := range state.items {
		if it.Label == "helper" {
			assert.Same(t, other, it.FromModule)
		}
	}
}

func TestCollectValueMembersOffersFieldsThroughReference(t *testing.T) {
	unit, mgr := newTestUnit(t)
	eng := NewEngine(unit, mgr)
	state := newCollectState()

	sd := &sir.StructDefSymbol{}
	sd.Name = "Point"
	fx := &sir.StructFieldSymbol{}
	fx.Name = "x"
	fy := &sir.StructFieldSymbol{}
	fy.Name = "y"
	sd.Fields = []*sir.StructFieldSymbol{fx, fy}

	structType := &sir.SymbolExpr{Sym: sd}
	refType := &sir.UnaryExpr{Op: sir.OpRef, Operand: structType}

	eng.collectValueMembers(refType, state)

	require.Len(t, state.items, 2)
	assert.Equal(t, "x", state.items[0].Label)
	assert.Equal(t, "y", state.items[1].Label)
}

func TestCollectMissingFieldsSkipsAlreadySetFields(t *testing.T) {
	unit, mgr := newTestUnit(t)
	eng := NewEngine(unit, mgr)
	state := newCollectState()

	sd := &sir.StructDefSymbol{}
	sd.Name = "Point"
	fx := &sir.StructFieldSymbol{}
	fx.Name = "x"
	fy := &sir.StructFieldSymbol{}
	fy.Name = "y"
	sd.Fields = []*sir.StructFieldSymbol{fx, fy}

	lit := &sir.StructLiteralExpr{StructDef: sd, Entries: []sir.StructLiteralEntry{{Name: "x"}}}
	eng.collectMissingFields(lit, state)

	require.Len(t, state.items, 1)
	assert.Equal(t, "y", state.items[0].Label)
	assert.Equal(t, structFieldTemplate, state.items[0].Template)
}

func TestCollectUseRootsAndSubModules(t *testing.T) {
	dir := t.TempDir()
	writeStdModule(t, dir, []string{"std"}, "")
	writeStdModule(t, dir, []string{"std", "io"}, "")

	mgr := symtab.New(stubParse, "", []string{dir})
	_, err := mgr.Load(sir.NewModulePath("std"))
	require.NoError(t, err)
	_, err = mgr.Load(sir.NewModulePath("std", "io"))
	require.NoError(t, err)

	eng := NewEngine(mgr.Unit, mgr)
	state := newCollectState()
	eng.collectUseRoots(state)
	require.Len(t, state.items, 1)
	assert.Equal(t, "std", state.items[0].Label)

	state2 := newCollectState()
	eng.collectUseDotMembers(&ast.UseItem{Path: []string{"std"}}, state2)
	var labels []string
	for _, it := range state2.items {
		labels = append(labels, it.Label)
	}
	assert.Contains(t, labels, "io")
}

func writeStdModule(t *testing.T, root string, segments []string, content string) {
	t.Helper()
	path := filepath.Join(append([]string{root}, segments...)...) + ".bnj"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

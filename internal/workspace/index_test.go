package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/report"
	"github.com/banjo-lang/banjoc/internal/sema"
	"github.com/banjo-lang/banjoc/internal/sir"
)

func TestBuildIndexLinksUseToItsDef(t *testing.T) {
	unit, _ := newTestUnit(t)

	mod := sir.NewModule(sir.NewModulePath("main"), "main.bnj", unit.Preamble.Root.Table)
	unit.Put(mod)

	sym := &sir.ConstDefSymbol{}
	sym.Name = "X"
	defRange := sir.TextRange{Offset: 0, Length: 1}
	useRange := sir.TextRange{Offset: 10, Length: 1}

	extra := sema.NewExtraAnalysis()
	ma := &sema.ModuleAnalysis{
		SymbolDefs: []sema.SymbolDef{{Symbol: sym, Range: defRange}},
		SymbolUses: []sema.SymbolUse{{Symbol: sym, Range: useRange}},
	}
	extra.Mods[mod] = ma

	idx := buildIndex(unit.Modules(), extra, nil)

	mi, ok := idx.Mods[mod]
	require.True(t, ok)
	require.Len(t, mi.SymbolRefs, 2)

	var useRef *SymbolRef
	for i := range mi.SymbolRefs {
		if mi.SymbolRefs[i].Range == useRange {
			useRef = &mi.SymbolRefs[i]
		}
	}
	require.NotNil(t, useRef)
	assert.Same(t, mod, useRef.DefMod)
	assert.Equal(t, defRange, useRef.DefRange)
}

func TestBuildIndexModuleUseResolvesToModuleItself(t *testing.T) {
	unit, _ := newTestUnit(t)

	other := sir.NewModule(sir.NewModulePath("other"), "other.bnj", unit.Preamble.Root.Table)
	unit.Put(other)
	mod := sir.NewModule(sir.NewModulePath("main"), "main.bnj", unit.Preamble.Root.Table)
	unit.Put(mod)

	extra := sema.NewExtraAnalysis()
	extra.Mods[mod] = &sema.ModuleAnalysis{
		SymbolUses: []sema.SymbolUse{{Symbol: other.Sym, Range: sir.TextRange{Offset: 3, Length: 5}}},
	}

	idx := buildIndex(unit.Modules(), extra, nil)
	mi := idx.Mods[mod]
	require.Len(t, mi.SymbolRefs, 1)
	assert.Same(t, other, mi.SymbolRefs[0].DefMod)
}

func TestBuildIndexPartitionsReportsByModuleFile(t *testing.T) {
	unit, _ := newTestUnit(t)
	mod := sir.NewModule(sir.NewModulePath("main"), "main.bnj", unit.Preamble.Root.Table)
	unit.Put(mod)
	other := sir.NewModule(sir.NewModulePath("other"), "other.bnj", unit.Preamble.Root.Table)
	unit.Put(other)

	rep := report.New(report.Error, report.PhaseSema, report.SEMA001Redefinition).
		Message("boom").
		At(ast.Span{Start: ast.Pos{File: "main"}}).
		Build()

	idx := buildIndex(unit.Modules(), sema.NewExtraAnalysis(), []*report.Report{rep})
	assert.Len(t, idx.Mods[mod].Reports, 1)
	assert.Empty(t, idx.Mods[other].Reports)
}

func TestIndexReferencesToCollectsAcrossModules(t *testing.T) {
	idx := newIndex()
	sym := &sir.ConstDefSymbol{}
	sym.Name = "X"

	modA := &sir.Module{}
	modB := &sir.Module{}
	idx.Mods[modA] = &ModuleIndex{SymbolRefs: []SymbolRef{{Symbol: sym, Range: sir.TextRange{Offset: 0}}}}
	idx.Mods[modB] = &ModuleIndex{SymbolRefs: []SymbolRef{{Symbol: sym, Range: sir.TextRange{Offset: 5}}}}

	refs := idx.ReferencesTo(sym)
	assert.Len(t, refs, 2)
}

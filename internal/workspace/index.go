package workspace

import (
	"github.com/banjo-lang/banjoc/internal/report"
	"github.com/banjo-lang/banjoc/internal/sema"
	"github.com/banjo-lang/banjoc/internal/sir"
)

// SymbolRef is one recorded reference to a symbol at Range: either the
// declaration itself or a use of it, with DefMod/DefRange pointing at the
// declaration so textDocument/definition never has to re-run analysis.
type SymbolRef struct {
	Range    sir.TextRange
	Symbol   sir.Symbol
	DefMod   *sir.Module
	DefRange sir.TextRange
}

// ModuleIndex is everything textDocument/definition and
// textDocument/references need about one module, rebuilt whenever that
// module (or any module it depends on) is reanalyzed.
type ModuleIndex struct {
	Reports    []*report.Report
	SymbolRefs []SymbolRef
}

// Index is the whole-workspace view assembled by buildIndex, keyed by
// module identity (a *sir.Module pointer is stable for the module's
// lifetime, invalidated only by a reload swapping in a new *sir.Module).
type Index struct {
	Mods map[*sir.Module]*ModuleIndex
}

// newIndex returns an empty Index.
func newIndex() *Index {
	return &Index{Mods: make(map[*sir.Module]*ModuleIndex)}
}

// ReferencesTo returns every recorded reference (including the declaration
// itself) to sym, across every indexed module.
func (idx *Index) ReferencesTo(sym sir.Symbol) []SymbolRef {
	var out []SymbolRef
	for _, mi := range idx.Mods {
		for _, ref := range mi.SymbolRefs {
			if ref.Symbol == sym {
				out = append(out, ref)
			}
		}
	}
	return out
}

// buildIndex rebuilds idx from extra, the ExtraAnalysis an INDEXING-mode
// analysis run over every loaded module produced. Mirrors
// Workspace::build_index: reports are partitioned to the module whose
// source file they were raised against, defs are indexed first so uses can
// resolve DefMod/DefRange by looking a def up by symbol identity, and a use
// of a Module symbol resolves directly to that module rather than through
// the def map (a module has no SymbolDef of its own — it IS the
// declaration).
func buildIndex(mods []*sir.Module, extra sema.ExtraAnalysis, reports []*report.Report) *Index {
	idx := newIndex()
	defs := make(map[sir.Symbol]SymbolRef)

	for _, mod := range mods {
		mi := &ModuleIndex{}
		for _, rep := range reports {
			if rep.Span != nil && rep.Span.Start.File == mod.Path.String() {
				mi.Reports = append(mi.Reports, rep)
			}
		}
		idx.Mods[mod] = mi

		ma, ok := extra.Mods[mod]
		if !ok {
			continue
		}
		for _, def := range ma.SymbolDefs {
			ref := SymbolRef{Range: def.Range, Symbol: def.Symbol, DefMod: mod, DefRange: def.Range}
			mi.SymbolRefs = append(mi.SymbolRefs, ref)
			defs[def.Symbol] = ref
		}
	}

	for _, mod := range mods {
		ma, ok := extra.Mods[mod]
		if !ok {
			continue
		}
		mi := idx.Mods[mod]
		for _, use := range ma.SymbolUses {
			ref := SymbolRef{Range: use.Range, Symbol: use.Symbol}
			if modSym, ok := use.Symbol.(*sir.ModuleSymbol); ok {
				ref.DefMod = modSym.Mod
			} else if def, ok := defs[use.Symbol]; ok {
				ref.DefMod, ref.DefRange = def.DefMod, def.DefRange
			}
			mi.SymbolRefs = append(mi.SymbolRefs, ref)
		}
	}

	return idx
}

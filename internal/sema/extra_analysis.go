package sema

import (
	"github.com/banjo-lang/banjoc/internal/sir"
)

// SymbolDef records that sym was declared at Range (the identifier's own
// source span, not its whole declaration).
type SymbolDef struct {
	Symbol sir.Symbol
	Range  sir.TextRange
}

// SymbolUse records one reference to an already-resolved symbol.
type SymbolUse struct {
	Range  sir.TextRange
	Symbol sir.Symbol
}

// ModuleAnalysis accumulates SymbolDef/SymbolUse records for one module.
type ModuleAnalysis struct {
	SymbolDefs []SymbolDef
	SymbolUses []SymbolUse
}

// ExtraAnalysis is populated only in INDEXING mode: a full symbol
// definition/use index an editor can query without re-running the
// analyzer, keyed by the module it was collected from.
type ExtraAnalysis struct {
	Mods map[*sir.Module]*ModuleAnalysis
}

// NewExtraAnalysis returns an empty index.
func NewExtraAnalysis() ExtraAnalysis {
	return ExtraAnalysis{Mods: make(map[*sir.Module]*ModuleAnalysis)}
}

func (e *ExtraAnalysis) moduleAnalysis(mod *sir.Module) *ModuleAnalysis {
	ma, ok := e.Mods[mod]
	if !ok {
		ma = &ModuleAnalysis{}
		e.Mods[mod] = ma
	}
	return ma
}

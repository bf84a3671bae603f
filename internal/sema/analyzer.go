package sema

import (
	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/report"
	"github.com/banjo-lang/banjoc/internal/sir"
	"github.com/banjo-lang/banjoc/internal/specialize"
	"github.com/banjo-lang/banjoc/internal/symtab"
)

// Analyzer drives one sir.Unit through NAME, INTERFACE, BODY and RESOURCES.
// A single Analyzer instance is meant to be used for one analysis run (one
// compilation, one indexing pass, or one completion request); build a new
// one per run rather than resetting an existing one.
type Analyzer struct {
	Unit    *sir.Unit
	Mgr     *symtab.ModuleManager
	Reports *report.Manager
	Mode    Mode

	Extra      ExtraAnalysis
	Completion CompletionContext

	curMod *sir.Module
	scopes []scope

	// declStack detects definition cycles across ALIAS/INTERFACE-stage
	// resolution: a decl that (transitively) needs its own type resolved
	// before it can finish is a cycle, not infinite recursion.
	declStack []sir.Decl

	// moved tracks RESOURCES-stage local ownership: a *sir.LocalSymbol that
	// has already been moved out of, so a second use reports RES001.
	moved map[*sir.LocalSymbol]bool

	// declAST remembers the ast.Decl each top-level sir.Decl was built
	// from, so the INTERFACE and BODY passes can resolve the type/value
	// expressions the NAME pass deliberately left untouched.
	declAST map[sir.Decl]ast.Decl

	// specTable memoizes generic function/struct instantiations triggered
	// by a call site or struct literal naming explicit generic arguments,
	// shared across the whole analysis run so two call sites instantiating
	// the same generic with the same arguments reuse one clone.
	specTable *specialize.Table
}

// New creates an Analyzer over unit, using mgr for use resolution and
// preamble lookups and reports to accumulate diagnostics.
func New(unit *sir.Unit, mgr *symtab.ModuleManager, reports *report.Manager, mode Mode) *Analyzer {
	return &Analyzer{
		Unit:    unit,
		Mgr:     mgr,
		Reports: reports,
		Mode:    mode,
		Extra:     NewExtraAnalysis(),
		scopes:    []scope{{}},
		moved:     make(map[*sir.LocalSymbol]bool),
		specTable: specialize.New(),
	}
}

// AnalyzeModule runs the full NAME->INTERFACE->BODY->RESOURCES pipeline
// over one module, lowering file's AST declarations into mod's SIR as it
// goes.
func (a *Analyzer) AnalyzeModule(mod *sir.Module, file *ast.File) Result {
	a.curMod = mod
	symtab.InjectPreamble(a.Mgr)

	result := a.collectDecls(mod, file)
	return mergeResult(result, a.AnalyzeCollected(mod, file))
}

// AnalyzeCollected runs USE->INTERFACE->BODY->RESOURCES over mod, assuming
// its declarations are already collected: either by collectDecls earlier
// in this same Analyzer's AnalyzeModule, or merged in from a CollectModule
// result built on a private one. This is the half of the pipeline that
// needs the whole cross-module symbol graph (use resolution) and this
// Analyzer's own shared state (generic specialization memoization), so it
// always runs on the one Analyzer driving a whole analysis pass.
func (a *Analyzer) AnalyzeCollected(mod *sir.Module, file *ast.File) Result {
	a.curMod = mod
	symtab.InjectPreamble(a.Mgr)

	result := a.resolveUses(mod, file)
	for _, decl := range mod.Root.Decls {
		result = mergeResult(result, a.analyzeInterface(decl))
	}
	for _, decl := range mod.Root.Decls {
		result = mergeResult(result, a.analyzeBody(decl))
		if a.Mode == COMPLETION && a.Completion != nil {
			return result
		}
	}
	for _, decl := range mod.Root.Decls {
		result = mergeResult(result, a.analyzeResources(decl))
	}

	return result
}

// CollectResult is the NAME-stage output for one module, produced by
// CollectModule against a private Analyzer so many modules' declaration
// collection can run concurrently. MergeCollected folds it back into a
// shared Analyzer before the stages that need the whole module graph.
type CollectResult struct {
	declAST map[sir.Decl]ast.Decl
	extra   ExtraAnalysis
	reports *report.Manager
	result  Result
}

// CollectModule runs the NAME stage for mod in isolation against a
// throwaway Analyzer: it only touches mod's own SIR (building skeletons
// into mod.Root) plus analyzer-local bookkeeping (declAST, per-module
// Extra, its own report.Manager), never the cross-module symbol graph or
// the shared specialization table AnalyzeCollected's later stages use.
// That makes it safe to call from its own goroutine, one call per module,
// as long as the caller doesn't reuse a single Analyzer across calls.
func CollectModule(unit *sir.Unit, mgr *symtab.ModuleManager, mode Mode, mod *sir.Module, file *ast.File) *CollectResult {
	a := New(unit, mgr, report.NewManager(), mode)
	a.curMod = mod
	result := a.collectDecls(mod, file)
	return &CollectResult{declAST: a.declAST, extra: a.Extra, reports: a.Reports, result: result}
}

// MergeCollected folds cr, produced by CollectModule for mod, into a so
// the sequential stages AnalyzeCollected runs see mod's declarations
// exactly as if collectDecls had run on a directly. Must be called before
// a.AnalyzeCollected(mod, ...), and never concurrently with another
// MergeCollected/AnalyzeCollected call on the same Analyzer.
func (a *Analyzer) MergeCollected(mod *sir.Module, cr *CollectResult) Result {
	if a.declAST == nil {
		a.declAST = make(map[sir.Decl]ast.Decl)
	}
	for decl, declNode := range cr.declAST {
		a.declAST[decl] = declNode
	}
	if a.Mode == INDEXING {
		ma := a.Extra.moduleAnalysis(mod)
		if src, ok := cr.extra.Mods[mod]; ok {
			ma.SymbolDefs = append(ma.SymbolDefs, src.SymbolDefs...)
			ma.SymbolUses = append(ma.SymbolUses, src.SymbolUses...)
		}
	}
	a.Reports.MergeResult(cr.reports.Reports(), cr.reports.Valid())
	return cr.result
}

// newError starts an ERROR-severity Builder for code in phase; pass it to
// insert to record it in a.Reports and get the Error result back.
func (a *Analyzer) newError(phase, code string) *report.Builder {
	return report.New(report.Error, phase, code)
}

func (a *Analyzer) insert(b *report.Builder) Result {
	a.Reports.Insert(b.Build())
	return Error
}

func (a *Analyzer) addSymbolDef(sym sir.Symbol) {
	if a.Mode != INDEXING {
		return
	}
	ma := a.Extra.moduleAnalysis(a.curMod)
	ident := sym.GetIdent()
	ma.SymbolDefs = append(ma.SymbolDefs, SymbolDef{
		Symbol: sym,
		Range:  sir.TextRange{Offset: ident.Offset, Length: len(sym.GetName())},
	})
}

func (a *Analyzer) addSymbolUse(pos ast.Pos, sym sir.Symbol) {
	if a.Mode != INDEXING {
		return
	}
	ma := a.Extra.moduleAnalysis(a.curMod)
	ma.SymbolUses = append(ma.SymbolUses, SymbolUse{
		Range:  sir.TextRange{Offset: pos.Offset, Length: len(sym.GetName())},
		Symbol: sym,
	})
}

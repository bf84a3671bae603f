package workspace

import (
	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/sema"
	"github.com/banjo-lang/banjoc/internal/sir"
	"github.com/banjo-lang/banjoc/internal/symtab"
)

// template tags which of the four item shapes an Item renders as.
type template int

const (
	simpleItem template = iota
	funcCallTemplate
	structLiteralTemplate
	structFieldTemplate
)

// Item is one completion candidate before LSP serialization. Label is the
// name it should be offered under, which is not always Symbol.GetName():
// a `use foo as bar` rebinds a symbol under a local alias, and a submodule
// path item (e.g. "io" under module "std") has no backing Symbol at all.
type Item struct {
	Label      string
	Symbol     sir.Symbol // nil for a bare submodule-path item
	Template   template
	FromModule *sir.Module // non-nil when offering this item requires a `use`
	Field      *sir.StructFieldSymbol
}

// Engine synthesizes completion items from a resolved CompletionContext,
// grounded line-for-line on completion_engine.cpp: collect_items walks a
// symbol table (optionally climbing Parent), try_collect_item decides each
// symbol's item shape(s), and add_item suppresses GuardedSymbol entries and
// de-duplicates by symbol identity.
type Engine struct {
	Unit *sir.Unit
	Mgr  *symtab.ModuleManager
}

// NewEngine builds an Engine over the given workspace state.
func NewEngine(unit *sir.Unit, mgr *symtab.ModuleManager) *Engine {
	return &Engine{Unit: unit, Mgr: mgr}
}

// collectState threads the de-dup set through one Complete call.
type collectState struct {
	items []Item
	seen  map[seenKey]bool
}

// seenKey identifies one offered rendering of one symbol.
type seenKey struct {
	sym sir.Symbol
	tpl template
}

func newCollectState() *collectState {
	return &collectState{seen: make(map[seenKey]bool)}
}

// Complete dispatches on ctx's concrete type and returns the synthesized
// items in discovery order. A nil ctx (no completion sentinel reached)
// yields no items rather than an error: a client simply shows an empty
// completion list.
func (e *Engine) Complete(ctx sema.CompletionContext, curMod *sir.Module) []Item {
	state := newCollectState()

	switch c := ctx.(type) {
	case sema.CompleteInDeclBlock:
		e.collectScoped(c.DeclBlock.Table, curMod, state)
	case sema.CompleteInBlock:
		e.collectScoped(c.Block.Table, curMod, state)
	case sema.CompleteAfterDot:
		e.collectDotMembers(c.Lhs, state)
	case sema.CompleteAfterImplicitDot:
		e.collectValueMembers(c.Typ, state)
	case sema.CompleteInUse:
		e.collectUseRoots(state)
	case sema.CompleteAfterUseDot:
		e.collectUseDotMembers(c.Lhs, state)
	case sema.CompleteInStructLiteral:
		e.collectMissingFields(c.StructLiteral, state)
	}

	return state.items
}

// collectScoped handles CompleteInDeclBlock/CompleteInBlock: the in-scope
// table and every ancestor, preamble symbols (reached once the ancestor
// chain climbs past the module root into Unit.Preamble), and every other
// loaded module's top-level symbols tagged with their origin so a client
// can insert a `use`.
func (e *Engine) collectScoped(table *sir.SymbolTable, curMod *sir.Module, state *collectState) {
	for t := table; t != nil; t = t.Parent {
		e.collectItems(t, true, true, nil, state)
	}

	for _, mod := range e.Unit.Modules() {
		if mod == curMod {
			continue
		}
		e.collectItems(mod.Root.Table, true, false, mod, state)
	}
}

// collectItems walks one table's local bindings (never climbing Parent
// itself — callers that want ancestors loop table-by-table so each level
// can be tagged with a different fromMod) through tryCollectItem.
func (e *Engine) collectItems(table *sir.SymbolTable, allowValues, allowUses bool, fromMod *sir.Module, state *collectState) {
	table.Each(func(name string, sym sir.Symbol) {
		e.tryCollectItem(name, sym, allowValues, allowUses, fromMod, state)
	})
}

// tryCollectItem mirrors try_collect_item: an OverloadSet flattens into its
// member FuncDefs, a UseIdent/UseRebind is skipped unless uses are allowed
// here and otherwise collected under its own local name pointing at the
// unwrapped target, and a callable symbol is offered as
// FUNC_CALL_TEMPLATE instead of SIMPLE. A non-generic StructDef
// additionally gets a second STRUCT_LITERAL_TEMPLATE item when values are
// allowed in this position.
func (e *Engine) tryCollectItem(name string, sym sir.Symbol, allowValues, allowUses bool, fromMod *sir.Module, state *collectState) {
	switch v := sym.(type) {
	case *sir.OverloadSetSymbol:
		for _, f := range v.Funcs {
			e.tryCollectItem(f.Name, f, allowValues, allowUses, fromMod, state)
		}
		return
	case *sir.UseIdentSymbol:
		if !allowUses {
			return
		}
		e.addItem(state, name, v.Target, itemTemplateFor(v.Target), fromMod)
		return
	case *sir.UseRebindSymbol:
		if !allowUses {
			return
		}
		e.addItem(state, name, v.Target, itemTemplateFor(v.Target), fromMod)
		return
	}

	e.addItem(state, name, sym, itemTemplateFor(sym), fromMod)

	if allowValues {
		if sd, ok := sym.(*sir.StructDefSymbol); ok && !sd.IsGeneric() {
			e.addItem(state, name, sd, structLiteralTemplate, fromMod)
		}
	}
}

// itemTemplateFor picks SIMPLE vs FUNC_CALL_TEMPLATE by symbol kind; every
// other shape (STRUCT_LITERAL_TEMPLATE, STRUCT_FIELD_TEMPLATE) is only ever
// produced by a caller that already knows it wants that shape.
func itemTemplateFor(sym sir.Symbol) template {
	switch sym.(type) {
	case *sir.FuncDefSymbol, *sir.FuncDeclSymbol, *sir.NativeFuncDeclSymbol:
		return funcCallTemplate
	default:
		return simpleItem
	}
}

// addItem suppresses a GuardedSymbol-wrapped candidate (its declaration is
// still being analyzed, offering it would let a recursive definition look
// resolved) and de-duplicates by the symbol's own identity plus the item
// shape — the same symbol reached through two different scopes (e.g. a
// local shadowing a module-level symbol still reachable through the Parent
// chain) is only offered once per shape, first reached wins, while a
// struct's SIMPLE and STRUCT_LITERAL_TEMPLATE items are both kept.
func (e *Engine) addItem(state *collectState, label string, sym sir.Symbol, tpl template, fromMod *sir.Module) {
	if _, guarded := sym.(*sir.GuardedSymbol); guarded {
		return
	}
	key := seenKey{sym: sym, tpl: tpl}
	if state.seen[key] {
		return
	}
	state.seen[key] = true
	state.items = append(state.items, Item{Label: label, Symbol: sym, Template: tpl, FromModule: fromMod})
}

// collectDotMembers handles CompleteAfterDot: lhs names a module (offer its
// members, submodule-qualified) or a struct-typed value (offer its
// fields). structDefOf auto-derefs a `&T` reference type the same way
// analyzeDot's own structDefOf helper does.
func (e *Engine) collectDotMembers(lhs sir.Expr, state *collectState) {
	if se, ok := lhs.(*sir.SymbolExpr); ok {
		if modSym, ok := se.Sym.(*sir.ModuleSymbol); ok {
			e.collectSymbolMembers(modSym, state)
			return
		}
	}
	e.collectValueMembers(lhs.Type(), state)
}

// collectSymbolMembers mirrors collect_symbol_members: a Module offers its
// registered submodule paths plus its own top-level declarations; any
// other symbol with its own nested scope (struct/union/proto/enum, none of
// which currently expose one — see DESIGN.md) would recurse into it here.
func (e *Engine) collectSymbolMembers(sym sir.Symbol, state *collectState) {
	if modSym, ok := sym.(*sir.ModuleSymbol); ok {
		for _, sub := range e.Mgr.SubModules(modSym.Mod.Path) {
			label := sir.ParseModulePath(sub).Last()
			state.items = append(state.items, Item{Label: label, Template: simpleItem, FromModule: modSym.Mod})
		}
		e.collectItems(modSym.Mod.Root.Table, true, true, nil, state)
		return
	}
	if table := sym.GetSymbolTable(); table != nil {
		e.collectItems(table, true, true, nil, state)
	}
}

// collectValueMembers mirrors collect_value_members: struct fields become
// SIMPLE items. The original additionally offers method-only symbols from
// the struct's own body table; StructDefSymbol.GetSymbolTable always
// returns nil here (DotExpr never resolves to a method — see DESIGN.md),
// so that half has no equivalent to port.
func (e *Engine) collectValueMembers(typ sir.Expr, state *collectState) {
	sd := structDefOf(typ)
	if sd == nil {
		return
	}
	for _, f := range sd.Fields {
		e.addItem(state, f.Name, f, simpleItem, nil)
	}
}

// structDefOf unwraps a type expression to the StructDefSymbol it names,
// following through a `&T` reference indirection exactly like
// sema.analyzeDot's own unexported helper of the same name (pointer types
// have no separate representation in this SIR — see DESIGN.md).
func structDefOf(t sir.Expr) *sir.StructDefSymbol {
	switch v := t.(type) {
	case *sir.SymbolExpr:
		if sd, ok := v.Sym.(*sir.StructDefSymbol); ok {
			return sd
		}
	case *sir.UnaryExpr:
		if v.Op == sir.OpRef {
			return structDefOf(v.Operand)
		}
	}
	return nil
}

// collectUseRoots handles CompleteInUse: every loaded module's top-level
// path segment, offered as a plain name.
func (e *Engine) collectUseRoots(state *collectState) {
	seen := make(map[string]bool)
	for _, mod := range e.Unit.Modules() {
		if len(mod.Path.Segments) == 0 {
			continue
		}
		root := mod.Path.Segments[0]
		if seen[root] {
			continue
		}
		seen[root] = true
		state.items = append(state.items, Item{Label: root, Template: simpleItem})
	}
}

// collectUseDotMembers handles CompleteAfterUseDot: the submodules and
// top-level members of the module lhs already names.
func (e *Engine) collectUseDotMembers(lhs *ast.UseItem, state *collectState) {
	path := sir.NewModulePath(lhs.Path...)
	for _, sub := range e.Mgr.SubModules(path) {
		label := sir.ParseModulePath(sub).Last()
		state.items = append(state.items, Item{Label: label, Template: simpleItem})
	}
	if mod, ok := e.Unit.Get(path); ok {
		e.collectItems(mod.Root.Table, true, true, mod, state)
	}
}

// collectMissingFields handles CompleteInStructLiteral: every field of the
// literal's struct type not already set gets a STRUCT_FIELD_TEMPLATE item.
// Unreachable today (see DESIGN.md): no AST
// shape exists yet for a completion sentinel inside a struct literal's
// entry list, so analyzeCompletionSentinel never produces this context.
// Implemented anyway so Engine's dispatch already covers every context
// CompletionContext can name.
func (e *Engine) collectMissingFields(lit *sir.StructLiteralExpr, state *collectState) {
	if lit == nil || lit.StructDef == nil {
		return
	}
	set := make(map[string]bool, len(lit.Entries))
	for _, entry := range lit.Entries {
		set[entry.Name] = true
	}
	for _, f := range lit.StructDef.Fields {
		if set[f.Name] {
			continue
		}
		state.items = append(state.items, Item{Label: f.Name, Field: f, Template: structFieldTemplate})
	}
}

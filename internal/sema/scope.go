package sema

import "github.com/banjo-lang/banjoc/internal/sir"

// scope is one frame of the analyzer's scope stack. decl is the innermost
// enclosing declaration (nil only for a module's preamble-adjacent root
// scope), block is set while inside a statement block, and genericArgs
// binds a generic declaration's type parameters to concrete arguments
// while analyzing one of its specializations.
type scope struct {
	decl        sir.Decl
	table       *sir.SymbolTable
	block       *sir.Block
	genericArgs map[string]sir.Expr
}

// pushScope copies the current top frame, then overrides table (and
// optionally block), mirroring entering a nested lexical scope that still
// sees the enclosing declaration and any bound generic arguments.
func (a *Analyzer) pushScope(table *sir.SymbolTable) *scope {
	top := a.topScope()
	next := scope{decl: top.decl, table: table, block: top.block, genericArgs: top.genericArgs}
	a.scopes = append(a.scopes, next)
	return &a.scopes[len(a.scopes)-1]
}

// pushDeclScope enters a brand-new declaration scope: decl becomes the new
// innermost declaration and genericArgs starts out empty.
func (a *Analyzer) pushDeclScope(decl sir.Decl, table *sir.SymbolTable) *scope {
	a.scopes = append(a.scopes, scope{decl: decl, table: table})
	return &a.scopes[len(a.scopes)-1]
}

func (a *Analyzer) pushBlock(block *sir.Block) *scope {
	top := a.topScope()
	next := scope{decl: top.decl, table: block.Table, block: block, genericArgs: top.genericArgs}
	a.scopes = append(a.scopes, next)
	return &a.scopes[len(a.scopes)-1]
}

func (a *Analyzer) popScope() {
	a.scopes = a.scopes[:len(a.scopes)-1]
}

func (a *Analyzer) topScope() *scope {
	return &a.scopes[len(a.scopes)-1]
}

// declStack tracks the declarations currently being analyzed (ALIAS and
// INTERFACE stage resolution can recurse into another declaration's type),
// so a declaration that transitively refers back to itself is caught as a
// definition cycle instead of recursing forever.
func (a *Analyzer) enterDecl(decl sir.Decl) bool {
	for _, d := range a.declStack {
		if d == decl {
			return false
		}
	}
	a.declStack = append(a.declStack, decl)
	return true
}

func (a *Analyzer) exitDecl() {
	a.declStack = a.declStack[:len(a.declStack)-1]
}

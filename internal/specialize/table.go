// Package specialize instantiates a generic function or struct for one
// concrete argument list, memoizing the result so two call sites
// instantiating the same generic with structurally equal arguments share
// one clone instead of re-specializing it. It also refines the overload
// pick a call site resolved by arity alone during BODY analysis into the
// single best-assignable candidate, or reports why none qualifies.
package specialize

import "github.com/banjo-lang/banjoc/internal/sir"

// Table memoizes specializations across every generic declaration in a
// unit: one sir.SpecTable per generic Decl, keyed on that Decl's identity,
// scanned for structural argument equality before a new clone is built.
type Table struct {
	perDef map[sir.Decl]*sir.SpecTable
}

// New returns an empty specialization table.
func New() *Table {
	return &Table{perDef: make(map[sir.Decl]*sir.SpecTable)}
}

func (t *Table) tableFor(def sir.Decl) *sir.SpecTable {
	st, ok := t.perDef[def]
	if !ok {
		st = sir.NewSpecTable()
		t.perDef[def] = st
	}
	return st
}

// Lookup returns the existing specialization of def for args, if any.
func (t *Table) Lookup(def sir.Decl, args []sir.Expr) (*sir.Specialization, bool) {
	return t.tableFor(def).Lookup(args)
}

// Insert records spec as the specialization of def for spec.Args.
func (t *Table) Insert(def sir.Decl, spec *sir.Specialization) {
	t.tableFor(def).Insert(spec)
}

// Count reports how many distinct specializations def has accumulated.
func (t *Table) Count(def sir.Decl) int {
	st, ok := t.perDef[def]
	if !ok {
		return 0
	}
	return st.Len()
}

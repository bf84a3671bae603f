package sir

import "strings"

// Specialization records one instantiation of a generic FuncDef or
// StructDef: the concrete type arguments it was called/constructed with,
// and the cloned Decl produced for that argument list. Lookups are memoized on Key() so that two call sites
// instantiating the same generic with structurally equal arguments share
// one clone instead of analyzing it twice.
type Specialization struct {
	Args []Expr
	Def  Decl
}

// Key returns a string uniquely identifying Args by structural equality,
// suitable for use as a map key in a specialization table.
func (s *Specialization) Key() string {
	return SpecializationKey(s.Args)
}

// SpecializationKey computes the memoization key for a generic-argument
// list, independent of any particular Specialization record, so callers
// can probe the table before constructing one.
func SpecializationKey(args []Expr) string {
	var b strings.Builder
	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		writeExprKey(&b, a)
	}
	return b.String()
}

// writeExprKey appends a structural fingerprint of a resolved type
// expression. Only the node shapes that can legally appear as a generic
// argument are handled (symbol references and nested specializations);
// anything else is written as "?", so two such arguments of different
// shapes produce the same key.
func writeExprKey(b *strings.Builder, e Expr) {
	switch v := e.(type) {
	case *SymbolExpr:
		b.WriteString(v.Sym.GetName())
	case *CallExpr:
		writeExprKey(b, v.Callee)
		b.WriteByte('<')
		for i, a := range v.GenericArgs {
			if i > 0 {
				b.WriteByte(',')
			}
			writeExprKey(b, a)
		}
		b.WriteByte('>')
	case nil:
		b.WriteString("<nil>")
	default:
		b.WriteString("?")
	}
}

// SpecTable memoizes specializations for one generic Decl, keyed by
// SpecializationKey(args).
type SpecTable struct {
	entries map[string]*Specialization
}

// NewSpecTable creates an empty table.
func NewSpecTable() *SpecTable {
	return &SpecTable{entries: make(map[string]*Specialization)}
}

// Lookup returns the existing specialization for args, if any.
func (t *SpecTable) Lookup(args []Expr) (*Specialization, bool) {
	s, ok := t.entries[SpecializationKey(args)]
	return s, ok
}

// Insert records a new specialization, keyed by its own Args.
func (t *SpecTable) Insert(s *Specialization) {
	t.entries[s.Key()] = s
}

// Len reports the number of distinct specializations recorded.
func (t *SpecTable) Len() int { return len(t.entries) }

package sir

// SymbolTable is a single lexical scope: a name->Symbol map plus a link to
// the enclosing scope. A module's root table chains up to the preamble's
// root table, which is the only table with a nil Parent; block tables
// chain up to their owning module's root table.
type SymbolTable struct {
	symbols map[string]Symbol
	Parent  *SymbolTable
}

// NewSymbolTable creates an empty table chained to parent (nil for a table
// with no enclosing scope, such as the preamble's root table).
func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{symbols: make(map[string]Symbol), Parent: parent}
}

// Insert adds sym under name, returning false without modifying the table
// if name is already bound locally (the
// caller is expected to turn a false return into a SEMA001 report rather
// than silently overwrite).
func (t *SymbolTable) Insert(name string, sym Symbol) bool {
	if _, exists := t.symbols[name]; exists {
		return false
	}
	t.symbols[name] = sym
	return true
}

// Replace unconditionally (re)binds name, used when wrapping a symbol in a
// GuardedSymbol and when unwrapping it again.
func (t *SymbolTable) Replace(name string, sym Symbol) {
	t.symbols[name] = sym
}

// LookUpLocal resolves name only within t, without climbing to Parent.
func (t *SymbolTable) LookUpLocal(name string) (Symbol, bool) {
	sym, ok := t.symbols[name]
	return sym, ok
}

// Lookup resolves name in t, then climbs the parent chain through the
// module root up to the preamble. GuardedSymbol wrappers are returned as-is: it is the analyzer's
// responsibility to detect and report the cycle.
func (t *SymbolTable) Lookup(name string) (Symbol, bool) {
	for table := t; table != nil; table = table.Parent {
		if sym, ok := table.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Names returns the locally bound names in unspecified order, primarily for
// completion-item enumeration and tests.
func (t *SymbolTable) Names() []string {
	names := make([]string, 0, len(t.symbols))
	for name := range t.symbols {
		names = append(names, name)
	}
	return names
}

// Len reports the number of locally bound names.
func (t *SymbolTable) Len() int { return len(t.symbols) }

// Each calls fn once per locally bound (name, symbol) pair, in unspecified
// order, for callers that need both rather than just Names().
func (t *SymbolTable) Each(fn func(name string, sym Symbol)) {
	for name, sym := range t.symbols {
		fn(name, sym)
	}
}

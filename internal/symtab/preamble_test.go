package symtab

import "testing"

func TestInjectPreambleAddsBuiltins(t *testing.T) {
	mgr := New(stubParse, "", nil)
	InjectPreamble(mgr)

	table := mgr.Unit.Preamble.Root.Table
	for _, name := range []string{"i32", "bool", "string"} {
		sym, ok := table.LookUpLocal(name)
		if !ok {
			t.Fatalf("expected builtin %q in preamble", name)
		}
		if sym.GetName() != name {
			t.Fatalf("builtin %q has GetName() = %q", name, sym.GetName())
		}
	}
}

func TestInjectPreambleIdempotent(t *testing.T) {
	mgr := New(stubParse, "", nil)
	InjectPreamble(mgr)
	InjectPreamble(mgr)

	if mgr.Unit.Preamble.Root.Table.Len() != len(builtinTypeNames) {
		t.Fatalf("Len() = %d, want %d", mgr.Unit.Preamble.Root.Table.Len(), len(builtinTypeNames))
	}
}

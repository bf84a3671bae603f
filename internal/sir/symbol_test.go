package sir

import "testing"

func TestSymbolKindString(t *testing.T) {
	cases := map[SymbolKind]string{
		KindModule:        "Module",
		KindFuncDef:       "FuncDef",
		KindGuardedSymbol: "GuardedSymbol",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("SymbolKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestStructDefFieldByName(t *testing.T) {
	sd := &StructDefSymbol{
		symbolHeader: symbolHeader{Name: "Point"},
		Fields: []*StructFieldSymbol{
			{symbolHeader: symbolHeader{Name: "x"}},
			{symbolHeader: symbolHeader{Name: "y"}},
		},
	}
	if f := sd.FieldByName("y"); f == nil || f.Name != "y" {
		t.Fatalf("FieldByName(y) = %v", f)
	}
	if f := sd.FieldByName("z"); f != nil {
		t.Fatalf("FieldByName(z) = %v, want nil", f)
	}
}

func TestFuncDefIsGeneric(t *testing.T) {
	plain := &FuncDefSymbol{}
	if plain.IsGeneric() {
		t.Fatal("expected non-generic")
	}
	generic := &FuncDefSymbol{GenericParams: []*GenericParamSymbol{{}}}
	if !generic.IsGeneric() {
		t.Fatal("expected generic")
	}
}

func TestGuardedSymbolDelegatesSymbolTable(t *testing.T) {
	mod := NewModule(ParseModulePath("a"), "", nil)
	guard := &GuardedSymbol{Inner: mod.Sym}
	if guard.GetSymbolTable() != mod.Root.Table {
		t.Fatal("GuardedSymbol should delegate GetSymbolTable to Inner")
	}
}

func TestSemaStageMonotonic(t *testing.T) {
	if !StageName.CanAdvanceTo(StageBody) {
		t.Fatal("expected forward advance to be allowed")
	}
	if !StageBody.CanAdvanceTo(StageBody) {
		t.Fatal("re-entering the same stage should be allowed")
	}
	if StageBody.CanAdvanceTo(StageName) {
		t.Fatal("stages must not regress")
	}
}

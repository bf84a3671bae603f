package sir

import "testing"

func TestDeclBlockAddRejectsDuplicate(t *testing.T) {
	b := NewDeclBlock(nil)
	f1 := &FuncDefSymbol{symbolHeader: symbolHeader{Name: "f"}}
	f2 := &FuncDefSymbol{symbolHeader: symbolHeader{Name: "f"}}

	if !b.Add("f", f1) {
		t.Fatal("first Add should succeed")
	}
	if b.Add("f", f2) {
		t.Fatal("duplicate Add should fail")
	}
	if len(b.Decls) != 1 {
		t.Fatalf("Decls = %v, want 1 entry", b.Decls)
	}
}

func TestDeclStageSetters(t *testing.T) {
	var d Decl = &StructDefSymbol{symbolHeader: symbolHeader{Name: "S"}}
	if d.Stage() != StageNone {
		t.Fatalf("Stage() = %v, want StageNone", d.Stage())
	}
	d.SetStage(StageInterface)
	if d.Stage() != StageInterface {
		t.Fatalf("Stage() = %v, want StageInterface", d.Stage())
	}
}

func TestTypeAliasStageTracksResolved(t *testing.T) {
	alias := &TypeAliasSymbol{symbolHeader: symbolHeader{Name: "Id"}}
	if alias.Stage() != StageName {
		t.Fatalf("unresolved alias Stage() = %v", alias.Stage())
	}
	alias.SetStage(StageInterface)
	if !alias.Resolved {
		t.Fatal("SetStage(StageInterface) should mark Resolved")
	}
	if alias.Stage() != StageInterface {
		t.Fatalf("resolved alias Stage() = %v", alias.Stage())
	}
}

package sir

import "testing"

func TestModuleArenasCreateExprNodes(t *testing.T) {
	m := NewModule(ParseModulePath("a"), "", nil)
	a := m.Arena()

	lit := a.CreateIntLit(Pos{}, 42)
	if lit.Value != 42 {
		t.Fatalf("CreateIntLit value = %d", lit.Value)
	}

	sym := &LocalSymbol{symbolHeader: symbolHeader{Name: "x"}}
	symExpr := a.CreateSymbolExpr(Pos{}, sym)
	bin := a.CreateBinaryExpr(Pos{}, OpAdd, lit, symExpr)
	if bin.Left != lit || bin.Right != symExpr || bin.Op != OpAdd {
		t.Fatalf("CreateBinaryExpr wiring wrong: %+v", bin)
	}

	call := a.CreateCallExpr(Pos{}, symExpr, []Expr{lit}, nil)
	if len(call.Args) != 1 || call.Args[0] != lit {
		t.Fatalf("CreateCallExpr args = %v", call.Args)
	}
}

func TestModuleArenasCreateStringPreservesContents(t *testing.T) {
	m := NewModule(ParseModulePath("a"), "", nil)
	a := m.Arena()

	s1 := a.CreateString("hello")
	s2 := a.CreateString("hello")
	if s1 != s2 {
		t.Fatalf("expected equal contents, got %q vs %q", s1, s2)
	}
}

func TestModuleArenasCreateBlockAndStmt(t *testing.T) {
	m := NewModule(ParseModulePath("a"), "", nil)
	a := m.Arena()

	block := a.CreateBlock(m.Root.Table, Pos{})
	local := &LocalSymbol{symbolHeader: symbolHeader{Name: "x"}}
	decl := a.CreateLocalDeclStmt(Pos{}, local, a.CreateIntLit(Pos{}, 1))
	block.Stmts = append(block.Stmts, decl)

	if len(block.Stmts) != 1 {
		t.Fatalf("block.Stmts = %v", block.Stmts)
	}
	if block.Table.Parent != m.Root.Table {
		t.Fatal("block table should chain to the passed-in parent")
	}
}

package sir

import "github.com/banjo-lang/banjoc/internal/ast"

// Decl is the subset of Symbol kinds that can appear directly in a
// DeclBlock: top-level (or struct/union/proto-body) declarations that carry
// their own SemaStage progress.
type Decl interface {
	Symbol
	Position() ast.Pos
	Stage() SemaStage
	SetStage(SemaStage)
}

func (f *FuncDefSymbol) Position() ast.Pos     { return f.GetIdent() }
func (f *FuncDefSymbol) Stage() SemaStage      { return f.stage }
func (f *FuncDefSymbol) SetStage(s SemaStage)  { f.stage = s }

func (f *FuncDeclSymbol) Position() ast.Pos    { return f.GetIdent() }
func (f *FuncDeclSymbol) Stage() SemaStage     { return f.stage }
func (f *FuncDeclSymbol) SetStage(s SemaStage) { f.stage = s }

func (f *NativeFuncDeclSymbol) Position() ast.Pos    { return f.GetIdent() }
func (f *NativeFuncDeclSymbol) Stage() SemaStage     { return f.stage }
func (f *NativeFuncDeclSymbol) SetStage(s SemaStage) { f.stage = s }

func (s *StructDefSymbol) Position() ast.Pos    { return s.GetIdent() }
func (s *StructDefSymbol) Stage() SemaStage     { return s.stage }
func (s *StructDefSymbol) SetStage(v SemaStage) { s.stage = v }

func (u *UnionDefSymbol) Position() ast.Pos    { return u.GetIdent() }
func (u *UnionDefSymbol) Stage() SemaStage     { return u.stage }
func (u *UnionDefSymbol) SetStage(s SemaStage) { u.stage = s }

func (p *ProtoDefSymbol) Position() ast.Pos    { return p.GetIdent() }
func (p *ProtoDefSymbol) Stage() SemaStage     { return p.stage }
func (p *ProtoDefSymbol) SetStage(s SemaStage) { p.stage = s }

func (e *EnumDefSymbol) Position() ast.Pos    { return e.GetIdent() }
func (e *EnumDefSymbol) Stage() SemaStage     { return e.stage }
func (e *EnumDefSymbol) SetStage(s SemaStage) { e.stage = s }

func (c *ConstDefSymbol) Position() ast.Pos    { return c.GetIdent() }
func (c *ConstDefSymbol) Stage() SemaStage     { return c.stage }
func (c *ConstDefSymbol) SetStage(s SemaStage) { c.stage = s }

// TypeAliasSymbol has no independent stage counter: its Resolved flag
// already tracks whether ALIAS-stage resolution has run, so Stage derives
// from it instead of tracking a parallel field.
func (t *TypeAliasSymbol) Position() ast.Pos { return t.GetIdent() }
func (t *TypeAliasSymbol) Stage() SemaStage {
	if t.Resolved {
		return StageInterface
	}
	return StageName
}
func (t *TypeAliasSymbol) SetStage(s SemaStage) { t.Resolved = s >= StageInterface }

func (v *VarDeclSymbol) Position() ast.Pos    { return v.GetIdent() }
func (v *VarDeclSymbol) Stage() SemaStage     { return v.stage }
func (v *VarDeclSymbol) SetStage(s SemaStage) { v.stage = s }

func (v *NativeVarDeclSymbol) Position() ast.Pos    { return v.GetIdent() }
func (v *NativeVarDeclSymbol) Stage() SemaStage     { return v.stage }
func (v *NativeVarDeclSymbol) SetStage(s SemaStage) { v.stage = s }

// DeclBlock owns the declarations of a lexical unit that can hold them: a
// module body, a struct/union body (fields and methods), or a protocol
// body. Table scopes name resolution for everything declared in Decls.
type DeclBlock struct {
	Table *SymbolTable
	Decls []Decl
}

// NewDeclBlock creates an empty DeclBlock scoped under parent.
func NewDeclBlock(parent *SymbolTable) *DeclBlock {
	return &DeclBlock{Table: NewSymbolTable(parent)}
}

// Add appends decl to the block and inserts it (by name) into Table,
// reporting false if the name already exists locally.
func (b *DeclBlock) Add(name string, decl Decl) bool {
	if !b.Table.Insert(name, decl) {
		return false
	}
	b.Decls = append(b.Decls, decl)
	return true
}

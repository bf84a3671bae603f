package sir

import "github.com/banjo-lang/banjoc/internal/support/arena"

// moduleArenas owns every allocation made on behalf of one Module: SIR node
// structs, symbol tables, and interned strings. Nodes allocated from these
// arenas have addresses stable for the module's lifetime, which lets the
// analyzer and SSA builder hold raw pointers instead of indices.
type moduleArenas struct {
	symbolTables arena.Arena[SymbolTable]
	blocks       arena.Arena[Block]
	declBlocks   arena.Arena[DeclBlock]
	strings      arena.Arena[byte]

	intLits    arena.Arena[IntLit]
	floatLits  arena.Arena[FloatLit]
	stringLits arena.Arena[StringLit]
	boolLits   arena.Arena[BoolLit]
	nullLits   arena.Arena[NullLit]
	symbolExprs arena.Arena[SymbolExpr]
	binaryExprs arena.Arena[BinaryExpr]
	unaryExprs  arena.Arena[UnaryExpr]
	callExprs   arena.Arena[CallExpr]
	dotExprs    arena.Arena[DotExpr]
	ifExprs     arena.Arena[IfExpr]
	matchExprs  arena.Arena[MatchExpr]
	structLits  arena.Arena[StructLiteralExpr]
	completions arena.Arena[CompletionMarker]

	exprStmts  arena.Arena[ExprStmt]
	localDecls arena.Arena[LocalDeclStmt]
	returns    arena.Arena[ReturnStmt]
	assigns    arena.Arena[AssignStmt]
	whiles     arena.Arena[WhileStmt]
}

func newModuleArenas() moduleArenas { return moduleArenas{} }

// CreateSymbolTable allocates a new SymbolTable chained to parent.
func (a *moduleArenas) CreateSymbolTable(parent *SymbolTable) *SymbolTable {
	t := a.symbolTables.New()
	t.symbols = make(map[string]Symbol)
	t.Parent = parent
	return t
}

// CreateBlock allocates a new Block scoped under parent.
func (a *moduleArenas) CreateBlock(parent *SymbolTable, pos Pos) *Block {
	b := a.blocks.New()
	b.Pos = pos
	b.Table = a.CreateSymbolTable(parent)
	return b
}

// CreateDeclBlock allocates a new DeclBlock scoped under parent.
func (a *moduleArenas) CreateDeclBlock(parent *SymbolTable) *DeclBlock {
	d := a.declBlocks.New()
	d.Table = a.CreateSymbolTable(parent)
	return d
}

// CreateString copies s into the module's byte arena and returns a string
// with the same bytes. The string conversion makes its own copy, so the
// returned string does not alias the arena storage.
func (a *moduleArenas) CreateString(s string) string {
	buf := a.strings.NewSlice(len(s))
	copy(buf, s)
	return string(buf)
}

func (a *moduleArenas) CreateIntLit(pos Pos, v int64) *IntLit {
	e := a.intLits.New()
	e.Pos = pos
	e.Value = v
	return e
}

func (a *moduleArenas) CreateFloatLit(pos Pos, v float64) *FloatLit {
	e := a.floatLits.New()
	e.Pos = pos
	e.Value = v
	return e
}

func (a *moduleArenas) CreateStringLit(pos Pos, v string) *StringLit {
	e := a.stringLits.New()
	e.Pos = pos
	e.Value = a.CreateString(v)
	return e
}

func (a *moduleArenas) CreateBoolLit(pos Pos, v bool) *BoolLit {
	e := a.boolLits.New()
	e.Pos = pos
	e.Value = v
	return e
}

func (a *moduleArenas) CreateNullLit(pos Pos) *NullLit {
	e := a.nullLits.New()
	e.Pos = pos
	return e
}

func (a *moduleArenas) CreateSymbolExpr(pos Pos, sym Symbol) *SymbolExpr {
	e := a.symbolExprs.New()
	e.Pos = pos
	e.Sym = sym
	return e
}

func (a *moduleArenas) CreateBinaryExpr(pos Pos, op BinaryOp, left, right Expr) *BinaryExpr {
	e := a.binaryExprs.New()
	e.Pos, e.Op, e.Left, e.Right = pos, op, left, right
	return e
}

func (a *moduleArenas) CreateUnaryExpr(pos Pos, op UnaryOp, operand Expr) *UnaryExpr {
	e := a.unaryExprs.New()
	e.Pos, e.Op, e.Operand = pos, op, operand
	return e
}

func (a *moduleArenas) CreateCallExpr(pos Pos, callee Expr, args, genericArgs []Expr) *CallExpr {
	e := a.callExprs.New()
	e.Pos, e.Callee, e.Args, e.GenericArgs = pos, callee, args, genericArgs
	return e
}

func (a *moduleArenas) CreateDotExpr(pos Pos, left Expr, name string) *DotExpr {
	e := a.dotExprs.New()
	e.Pos, e.Left, e.Name = pos, left, a.CreateString(name)
	return e
}

func (a *moduleArenas) CreateIfExpr(pos Pos, cond Expr, then, els *Block) *IfExpr {
	e := a.ifExprs.New()
	e.Pos, e.Cond, e.Then, e.Else = pos, cond, then, els
	return e
}

func (a *moduleArenas) CreateMatchExpr(pos Pos, subject Expr, cases []MatchCase) *MatchExpr {
	e := a.matchExprs.New()
	e.Pos, e.Subject, e.Cases = pos, subject, cases
	return e
}

func (a *moduleArenas) CreateStructLiteral(pos Pos, def *StructDefSymbol, entries []StructLiteralEntry) *StructLiteralExpr {
	e := a.structLits.New()
	e.Pos, e.StructDef, e.Entries = pos, def, entries
	return e
}

func (a *moduleArenas) CreateCompletionMarker(pos Pos, afterDot Expr) *CompletionMarker {
	e := a.completions.New()
	e.Pos, e.AfterDot = pos, afterDot
	return e
}

func (a *moduleArenas) CreateExprStmt(pos Pos, value Expr) *ExprStmt {
	s := a.exprStmts.New()
	s.Pos, s.Value = pos, value
	return s
}

func (a *moduleArenas) CreateLocalDeclStmt(pos Pos, local *LocalSymbol, value Expr) *LocalDeclStmt {
	s := a.localDecls.New()
	s.Pos, s.Local, s.Value = pos, local, value
	return s
}

func (a *moduleArenas) CreateReturnStmt(pos Pos, value Expr) *ReturnStmt {
	s := a.returns.New()
	s.Pos, s.Value = pos, value
	return s
}

func (a *moduleArenas) CreateAssignStmt(pos Pos, target, value Expr) *AssignStmt {
	s := a.assigns.New()
	s.Pos, s.Target, s.Value = pos, target, value
	return s
}

func (a *moduleArenas) CreateWhileStmt(pos Pos, cond Expr, body *Block) *WhileStmt {
	s := a.whiles.New()
	s.Pos, s.Cond, s.Body = pos, cond, body
	return s
}

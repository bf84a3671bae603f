package sir

import "github.com/banjo-lang/banjoc/internal/ast"

// Stmt is a resolved statement node.
type Stmt interface {
	Position() ast.Pos
	stmtNode()
}

// StmtBase is embedded by every concrete Stmt.
type StmtBase struct {
	Pos Pos
}

func (s *StmtBase) Position() ast.Pos { return s.Pos.toAST() }
func (*StmtBase) stmtNode()           {}

// ExprStmt evaluates an expression for its side effects.
type ExprStmt struct {
	StmtBase
	Value Expr
}

// LocalDeclStmt introduces a LocalSymbol into the enclosing Block's table.
type LocalDeclStmt struct {
	StmtBase
	Local *LocalSymbol
	Value Expr // optional initializer
}

// ReturnStmt returns from the enclosing FuncDef. Value is nil for a bare
// return in a function with no return type.
type ReturnStmt struct {
	StmtBase
	Value Expr
}

// AssignStmt assigns Value to Target (a resolved lvalue: SymbolExpr,
// DotExpr, or UnaryExpr with OpDeref).
type AssignStmt struct {
	StmtBase
	Target Expr
	Value  Expr
}

// WhileStmt is a pre-condition loop.
type WhileStmt struct {
	StmtBase
	Cond Expr
	Body *Block
}

// Block is a lexical block: its own SymbolTable (for locals declared within
// it) plus an ordered statement list. The last ExprStmt's value is the
// block's value when used in expression position (IfExpr/MatchCase arms).
type Block struct {
	Pos   Pos
	Table *SymbolTable
	Stmts []Stmt
}

// NewBlock creates an empty block scoped under parent.
func NewBlock(parent *SymbolTable, pos Pos) *Block {
	return &Block{Pos: pos, Table: NewSymbolTable(parent)}
}

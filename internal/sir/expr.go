package sir

import "github.com/banjo-lang/banjoc/internal/ast"

// Expr is a name-resolved, typed expression node. Every Expr carries its
// own resolved type as another Expr (types are themselves
// expressions over symbols, so "int" resolves to a SymbolExpr naming a
// builtin StructDef and a generic instantiation is a CallExpr carrying
// GenericArgs).
// Typ is nil until the BODY stage assigns it.
type Expr interface {
	Position() ast.Pos
	Type() Expr
	SetType(t Expr)
	exprNode()
}

// ExprBase is embedded by every concrete Expr.
type ExprBase struct {
	Pos Pos
	Typ Expr
}

func (e *ExprBase) Position() ast.Pos { return e.Pos.toAST() }
func (e *ExprBase) Type() Expr        { return e.Typ }
func (e *ExprBase) SetType(t Expr)    { e.Typ = t }
func (*ExprBase) exprNode()           {}

// Pos is the SIR-local position record, carrying a module path alongside
// the textual position so diagnostics survive across module boundaries.
type Pos struct {
	Module ModulePath
	Line   int
	Column int
	Offset int
}

func (p Pos) toAST() ast.Pos {
	return ast.Pos{File: p.Module.String(), Line: p.Line, Column: p.Column, Offset: p.Offset}
}

// IntLit is an integer literal. Typ starts nil and is finalized to a
// concrete or default integer type during literal coercion.
type IntLit struct {
	ExprBase
	Value int64
}

// FloatLit is a floating-point literal.
type FloatLit struct {
	ExprBase
	Value float64
}

// StringLit is a string literal.
type StringLit struct {
	ExprBase
	Value string
}

// BoolLit is a boolean literal.
type BoolLit struct {
	ExprBase
	Value bool
}

// NullLit is the null literal, coercible to any pointer or optional type.
type NullLit struct {
	ExprBase
}

// SymbolExpr names a resolved Symbol (a variable, function, type, etc.).
type SymbolExpr struct {
	ExprBase
	Sym Symbol
}

// BinaryOp enumerates binary operators surviving into the SIR.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
)

// BinaryExpr is a binary operation, resolved to an operator overload if the
// operand types require one.
type BinaryExpr struct {
	ExprBase
	Op       BinaryOp
	Left     Expr
	Right    Expr
	Resolved *FuncDefSymbol // set if this binds to an overloaded operator func
}

// UnaryOp enumerates unary operators.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpNot
	OpDeref
	OpRef
)

// UnaryExpr is a unary operation.
type UnaryExpr struct {
	ExprBase
	Op      UnaryOp
	Operand Expr
}

// CallExpr is a resolved call: Callee has already been disambiguated from
// any OverloadSetSymbol down to a single FuncDef/FuncDecl/NativeFuncDecl
// overload resolution, and GenericArgs are the specialization
// arguments used to look up or create a Specialization when Callee is
// generic.
type CallExpr struct {
	ExprBase
	Callee      Expr
	Args        []Expr
	GenericArgs []Expr
}

// DotExpr is a resolved field or method access.
type DotExpr struct {
	ExprBase
	Left Expr
	Name string
	// Field is set when this resolves to a struct field access. The analyzer
	// never sets Method: a dot access is only resolved against struct
	// fields, and Field stays nil when that lookup fails.
	Field  *StructFieldSymbol
	Method *FuncDefSymbol
}

// CompletionMarker stands in for the cursor position during INDEXING and
// COMPLETION analysis, carrying the partially-resolved left-hand expression
// (or use/struct-literal context) so the workspace engine can synthesize
// completion items without the parse having produced a complete AST node
// request.
type CompletionMarker struct {
	ExprBase
	AfterDot Expr // non-nil for CompleteAfterDot / CompleteAfterImplicitDot
}

// StructLiteralEntry is one `name: value` pair in a StructLiteralExpr.
type StructLiteralEntry struct {
	Name  string
	Value Expr
	Field *StructFieldSymbol
}

// StructLiteralExpr constructs a value of a resolved struct type.
type StructLiteralExpr struct {
	ExprBase
	StructDef *StructDefSymbol
	Entries   []StructLiteralEntry
}

// IfExpr is an if/else used in expression position; Else may be nil.
type IfExpr struct {
	ExprBase
	Cond Expr
	Then *Block
	Else *Block
}

// MatchCase is one arm of a MatchExpr.
type MatchCase struct {
	Pattern Pattern
	Guard   Expr // optional
	Body    *Block
}

// MatchExpr is a pattern match over a union value.
type MatchExpr struct {
	ExprBase
	Subject Expr
	Cases   []MatchCase
}

// Pattern is a resolved match pattern.
type Pattern interface {
	Position() ast.Pos
	patternNode()
}

// PatternBase is embedded by every concrete Pattern.
type PatternBase struct {
	Pos Pos
}

func (p *PatternBase) Position() ast.Pos { return p.Pos.toAST() }
func (*PatternBase) patternNode()        {}

// WildcardPattern matches anything, binding nothing.
type WildcardPattern struct {
	PatternBase
}

// BindPattern matches anything, binding it to a new Local.
type BindPattern struct {
	PatternBase
	Local *LocalSymbol
}

// ConstructorPattern matches a specific UnionCase, destructuring its fields.
type ConstructorPattern struct {
	PatternBase
	Case   *UnionCaseSymbol
	Fields []Pattern
}

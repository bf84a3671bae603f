// Package ast defines the minimal post-parse syntax tree that the (external,
// out-of-scope) lexer/parser is assumed to hand to SIR construction. It is
// intentionally thin: only the shapes that internal/sir needs to walk are
// represented here. Full grammar, precedence, and recovery behavior live in
// the parser, which this repository does not implement.
package ast

import "fmt"

// Pos is a single point in a source file.
type Pos struct {
	File   string
	Line   int
	Column int
	Offset int // byte offset into the UTF-8 source buffer
}

func (p Pos) String() string { return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column) }

// TextRange is a (offset, length) pair over the UTF-8 byte buffer of a file.
type TextRange struct {
	Offset int
	Length int
}

func (r TextRange) End() int { return r.Offset + r.Length }

// Span pairs a start and end position for diagnostics.
type Span struct {
	Start Pos
	End   Pos
}

// Node is the base interface for every syntax tree element.
type Node interface {
	Position() Pos
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is any top-level or block-level declaration.
type Decl interface {
	Node
	declNode()
	DeclName() string
}

// TypeExpr is a type annotation in source position.
type TypeExpr interface {
	Node
	typeNode()
}

// Pattern is a pattern-match pattern.
type Pattern interface {
	Node
	patternNode()
}

// File is a single parsed source file.
type File struct {
	Path    string
	ModPath []string // dot-separated module path segments, e.g. ["std","optional"]
	Uses    []*UseItem
	Decls   []Decl
	Pos     Pos
}

func (f *File) Position() Pos { return f.Pos }

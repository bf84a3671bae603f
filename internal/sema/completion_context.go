package sema

import (
	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/sir"
)

// CompletionContext identifies the syntactic position a COMPLETE sentinel
// sits in, once the analyzer reached it. The zero value (nil) means the
// sentinel was never found in this analysis run.
type CompletionContext interface {
	completionContext()
}

// CompleteInDeclBlock: the cursor sits at a position a new top-level (or
// struct/union/proto body) declaration could start.
type CompleteInDeclBlock struct {
	DeclBlock *sir.DeclBlock
}

// CompleteInBlock: the cursor sits inside a statement block.
type CompleteInBlock struct {
	Block *sir.Block
}

// CompleteAfterDot: the cursor follows `lhs.`, where lhs has already been
// typed. Completion items are the members of lhs's type.
type CompleteAfterDot struct {
	Lhs sir.Expr
}

// CompleteAfterImplicitDot: the cursor follows a bare `.` whose receiver
// type is inferred from context rather than written out (an enum-variant
// shorthand like `let c: Color = .`). Never produced by
// analyzeCompletionSentinel today: internal/ast's CompletionSentinel, a
// deliberately minimal parser stand-in, has no field carrying an inferred
// expected type at the sentinel position, only AfterDot/InUse/AfterUseDot.
// The variant is kept so internal/workspace.Engine's dispatch already
// covers it, ready for the day CompletionSentinel grows that field.
type CompleteAfterImplicitDot struct {
	Typ sir.Expr
}

// CompleteInUse: the cursor sits inside a bare `use` clause with no dot
// typed yet. Completion items are top-level module names.
type CompleteInUse struct{}

// CompleteAfterUseDot: the cursor follows a dot inside a `use` clause.
// Completion items are the submodules/members of Lhs.
type CompleteAfterUseDot struct {
	Lhs *ast.UseItem
}

// CompleteInStructLiteral: the cursor sits inside a `Name { ... }` literal.
// Completion items are the struct's fields not already set.
type CompleteInStructLiteral struct {
	StructLiteral *sir.StructLiteralExpr
}

func (CompleteInDeclBlock) completionContext()      {}
func (CompleteInBlock) completionContext()          {}
func (CompleteAfterDot) completionContext()         {}
func (CompleteAfterImplicitDot) completionContext() {}
func (CompleteInUse) completionContext()            {}
func (CompleteAfterUseDot) completionContext()      {}
func (CompleteInStructLiteral) completionContext()  {}

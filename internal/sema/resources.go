package sema

import (
	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/report"
	"github.com/banjo-lang/banjoc/internal/sir"
)

// analyzeResources is the RESOURCES stage: a simplified use-after-move
// check over a function's body. Passing a local of struct type into a call
// or a struct literal by value moves it; moving it that way a second time
// is an error. Other later uses of a moved local (a field access, taking
// its address) are not checked. Locals of pointer or primitive type are
// never considered moved, matching the rest of this analyzer treating
// pointers/primitives as freely copyable.
func (a *Analyzer) analyzeResources(decl sir.Decl) Result {
	if decl.Stage() >= sir.StageResources {
		return Success
	}
	fn, ok := decl.(*sir.FuncDefSymbol)
	if !ok || fn.Body == nil {
		decl.SetStage(sir.StageResources)
		return Success
	}
	result := a.checkBlockMoves(fn.Body)
	decl.SetStage(sir.StageResources)
	return result
}

func (a *Analyzer) checkBlockMoves(b *sir.Block) Result {
	result := Success
	for _, stmt := range b.Stmts {
		result = mergeResult(result, a.checkStmtMoves(stmt))
	}
	return result
}

func (a *Analyzer) checkStmtMoves(stmt sir.Stmt) Result {
	switch v := stmt.(type) {
	case *sir.ExprStmt:
		return a.checkExprMoves(v.Value)
	case *sir.LocalDeclStmt:
		return a.checkExprMoves(v.Value)
	case *sir.ReturnStmt:
		return a.checkExprMoves(v.Value)
	case *sir.AssignStmt:
		return mergeResult(a.checkExprMoves(v.Target), a.checkExprMoves(v.Value))
	case *sir.WhileStmt:
		result := a.checkExprMoves(v.Cond)
		if v.Body != nil {
			result = mergeResult(result, a.checkBlockMoves(v.Body))
		}
		return result
	default:
		return Success
	}
}

func (a *Analyzer) checkExprMoves(e sir.Expr) Result {
	if e == nil {
		return Success
	}
	result := Success
	switch v := e.(type) {
	case *sir.CallExpr:
		result = mergeResult(result, a.checkExprMoves(v.Callee))
		for _, arg := range v.Args {
			result = mergeResult(result, a.checkMoveOf(arg))
			result = mergeResult(result, a.checkExprMoves(arg))
		}
	case *sir.BinaryExpr:
		result = mergeResult(result, a.checkExprMoves(v.Left))
		result = mergeResult(result, a.checkExprMoves(v.Right))
	case *sir.UnaryExpr:
		result = mergeResult(result, a.checkExprMoves(v.Operand))
	case *sir.DotExpr:
		result = mergeResult(result, a.checkExprMoves(v.Left))
	case *sir.IfExpr:
		result = mergeResult(result, a.checkExprMoves(v.Cond))
		if v.Then != nil {
			result = mergeResult(result, a.checkBlockMoves(v.Then))
		}
		if v.Else != nil {
			result = mergeResult(result, a.checkBlockMoves(v.Else))
		}
	case *sir.MatchExpr:
		result = mergeResult(result, a.checkExprMoves(v.Subject))
		for _, c := range v.Cases {
			if c.Guard != nil {
				result = mergeResult(result, a.checkExprMoves(c.Guard))
			}
			if c.Body != nil {
				result = mergeResult(result, a.checkBlockMoves(c.Body))
			}
		}
	case *sir.StructLiteralExpr:
		for _, entry := range v.Entries {
			result = mergeResult(result, a.checkMoveOf(entry.Value))
			result = mergeResult(result, a.checkExprMoves(entry.Value))
		}
	}
	return result
}

// checkMoveOf flags e as moved-from if it's a bare reference to a local of
// non-pointer struct type, reporting RES001 if it was already moved.
func (a *Analyzer) checkMoveOf(e sir.Expr) Result {
	se, ok := e.(*sir.SymbolExpr)
	if !ok {
		return Success
	}
	local, ok := se.Sym.(*sir.LocalSymbol)
	if !ok || structDefOf(local.Type) == nil {
		return Success
	}
	if a.moved[local] {
		return a.insert(a.newError(report.PhaseResources, report.RES001UseAfterMove).
			Message("use of %q after it was moved", local.Name).
			At(ast.Span{Start: se.Position(), End: se.Position()}))
	}
	a.moved[local] = true
	return Success
}

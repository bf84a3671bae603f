package sema

import (
	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/report"
	"github.com/banjo-lang/banjoc/internal/sir"
	"github.com/banjo-lang/banjoc/internal/symtab"
)

// resolveTypeExpr turns a type annotation from the AST into a SIR type
// expression: a SymbolExpr naming the resolved type, a CallExpr wrapping it
// when instantiated with generic arguments, or a UnaryExpr(OpRef, ...) for
// a pointer type — types are themselves expressions over symbols, so a
// pointer-to-T type reuses the same "reference of" node a `&x` expression
// produces rather than introducing a parallel type-only node shape.
func (a *Analyzer) resolveTypeExpr(s *scope, t ast.TypeExpr) (sir.Expr, Result) {
	switch v := t.(type) {
	case *ast.NamedType:
		return a.resolveNamedType(s, v)
	case *ast.PointerType:
		base, result := a.resolveTypeExpr(s, v.Base)
		if !result.ok() {
			return nil, result
		}
		return a.curMod.Arena().CreateUnaryExpr(toSirPos(a.curMod, v.Pos), sir.OpRef, base), Success
	case *ast.FuncType:
		params := make([]*sir.ParamSymbol, len(v.Params))
		result := Success
		for i, pt := range v.Params {
			pe, r := a.resolveTypeExpr(s, pt)
			result = mergeResult(result, r)
			params[i] = &sir.ParamSymbol{Type: pe}
		}
		ret, r := a.resolveTypeExpr(s, v.Return)
		result = mergeResult(result, r)
		if !result.ok() {
			return nil, result
		}
		fn := &sir.FuncDeclSymbol{Params: params, ReturnType: ret}
		return a.curMod.Arena().CreateSymbolExpr(toSirPos(a.curMod, v.Pos), fn), Success
	default:
		return nil, a.insert(a.newError(report.PhaseSema, report.SEMA002SymbolNotFound).
			Message("unsupported type expression"))
	}
}

func (a *Analyzer) resolveNamedType(s *scope, v *ast.NamedType) (sir.Expr, Result) {
	var sym sir.Symbol

	if len(v.Path) == 1 {
		found, ok := s.table.Lookup(v.Path[0])
		if !ok {
			return nil, a.insert(a.newError(report.PhaseSema, report.SEMA002SymbolNotFound).
				Message("undefined type %q", v.Path[0]).
				At(ast.Span{Start: v.Pos, End: v.Pos}))
		}
		sym = found
	} else {
		found, err := symtab.ResolveUse(a.Mgr, &ast.UseItem{Kind: ast.UseDotExprKind, Path: v.Path, Pos: v.Pos})
		if err != nil {
			return nil, a.insert(a.newError(report.PhaseSema, report.SEMA003ModuleNotFound).
				Message("%s", err.Error()).
				At(ast.Span{Start: v.Pos, End: v.Pos}))
		}
		sym = found
	}

	if guarded, ok := sym.(*sir.GuardedSymbol); ok {
		a.insert(a.newError(report.PhaseSema, report.SEMA008DefCycle).
			Message("definition cycle involving %q", sym.GetName()).
			At(ast.Span{Start: v.Pos, End: v.Pos}))
		sym = guarded.Inner
		a.addSymbolUse(v.Pos, sym)
		base := a.curMod.Arena().CreateSymbolExpr(toSirPos(a.curMod, v.Pos), sym)
		return base, DefCycle
	}

	// A reference to a declaration whose own interface hasn't been resolved
	// yet is resolved right now rather than left for the top-level driver
	// loop to reach later: this makes declaration order irrelevant, and —
	// because analyzeInterface guards the name being resolved — is what
	// turns a chain of aliases that loops back on itself into a def-cycle
	// report instead of infinite recursion.
	if d, ok := sym.(sir.Decl); ok && d.Stage() < sir.StageInterface {
		if r := a.analyzeInterface(d); r == DefCycle {
			a.addSymbolUse(v.Pos, sym)
			base := a.curMod.Arena().CreateSymbolExpr(toSirPos(a.curMod, v.Pos), sym)
			return base, DefCycle
		}
	}

	a.addSymbolUse(v.Pos, sym)
	base := a.curMod.Arena().CreateSymbolExpr(toSirPos(a.curMod, v.Pos), sym)
	if len(v.Args) == 0 {
		return base, Success
	}

	result := Success
	args := make([]sir.Expr, len(v.Args))
	for i, argType := range v.Args {
		argExpr, r := a.resolveTypeExpr(s, argType)
		result = mergeResult(result, r)
		args[i] = argExpr
	}
	if !result.ok() {
		return base, result
	}
	return a.curMod.Arena().CreateCallExpr(toSirPos(a.curMod, v.Pos), base, nil, args), Success
}

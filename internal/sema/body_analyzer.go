package sema

import (
	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/sir"
)

// analyzeBody is the BODY stage for one top-level declaration: it types a
// function's statements, a const's value, or a var's initializer. Struct,
// union, proto, enum, type-alias, and forward-declared (FuncDecl,
// NativeFuncDecl, NativeVarDecl) declarations carry no body and pass
// through untouched.
func (a *Analyzer) analyzeBody(decl sir.Decl) Result {
	if decl.Stage() >= sir.StageBody {
		return Success
	}
	result := a.resolveDeclBody(decl)
	decl.SetStage(sir.StageBody)
	return result
}

func (a *Analyzer) resolveDeclBody(decl sir.Decl) Result {
	switch v := decl.(type) {
	case *sir.FuncDefSymbol:
		d := a.declAST[decl].(*ast.FuncDecl)
		if d.Body == nil {
			return Success
		}
		table := a.curMod.Arena().CreateSymbolTable(a.curMod.Root.Table)
		for _, p := range v.Params {
			table.Insert(p.Name, p)
		}
		s := &scope{decl: v, table: table}
		body, result := a.analyzeBlock(s, d.Body, v.ReturnType)
		v.Body = body
		return result

	case *sir.ConstDefSymbol:
		d := a.declAST[decl].(*ast.ConstDecl)
		s := &scope{decl: v, table: a.curMod.Root.Table}
		val, result := a.analyzeExpr(s, d.Value, v.Type)
		v.Value = val
		if v.Type == nil && val != nil {
			v.Type = val.Type()
		}
		return result

	case *sir.VarDeclSymbol:
		d := a.declAST[decl].(*ast.VarDecl)
		if d.Value == nil {
			return Success
		}
		s := &scope{decl: v, table: a.curMod.Root.Table}
		val, result := a.analyzeExpr(s, d.Value, v.Type)
		v.Value = val
		if v.Type == nil && val != nil {
			v.Type = val.Type()
		}
		return result

	default:
		return Success
	}
}

// analyzeBlock types every statement of b in order, threading a fresh
// child scope so locals declared earlier in the block are visible to later
// statements. expected only constrains the last statement, mirroring a
// block's value in expression position being its trailing expression.
func (a *Analyzer) analyzeBlock(s *scope, b *ast.Block, expected sir.Expr) (*sir.Block, Result) {
	pos := toSirPos(a.curMod, b.Pos)
	blk := a.curMod.Arena().CreateBlock(s.table, pos)
	inner := &scope{decl: s.decl, table: blk.Table, block: blk, genericArgs: s.genericArgs}

	result := Success
	for i, stmt := range b.Stmts {
		var want sir.Expr
		if i == len(b.Stmts)-1 {
			want = expected
		}
		sstmt, r := a.analyzeStmt(inner, stmt, want)
		result = mergeResult(result, r)
		if sstmt != nil {
			blk.Stmts = append(blk.Stmts, sstmt)
		}
	}
	return blk, result
}

func (a *Analyzer) analyzeStmt(s *scope, stmt ast.Stmt, expected sir.Expr) (sir.Stmt, Result) {
	pos := toSirPos(a.curMod, stmt.Position())

	switch v := stmt.(type) {
	case *ast.ExprStmt:
		val, result := a.analyzeExpr(s, v.Expr, expected)
		return a.curMod.Arena().CreateExprStmt(pos, val), result

	case *ast.LocalDeclStmt:
		var typ sir.Expr
		result := Success
		if v.Type != nil {
			var r Result
			typ, r = a.resolveTypeExpr(s, v.Type)
			result = mergeResult(result, r)
		}
		val, r := a.analyzeExpr(s, v.Value, typ)
		result = mergeResult(result, r)
		if typ == nil && val != nil {
			typ = val.Type()
		}

		local := &sir.LocalSymbol{Type: typ, Value: val}
		local.Name, local.Ident = v.Name, v.Pos
		s.table.Insert(v.Name, local)
		a.addSymbolDef(local)

		return a.curMod.Arena().CreateLocalDeclStmt(pos, local, val), result

	case *ast.ReturnStmt:
		if v.Value == nil {
			return a.curMod.Arena().CreateReturnStmt(pos, nil), Success
		}
		var expectedRet sir.Expr
		if fn, ok := s.decl.(*sir.FuncDefSymbol); ok {
			expectedRet = fn.ReturnType
		}
		val, result := a.analyzeExpr(s, v.Value, expectedRet)
		return a.curMod.Arena().CreateReturnStmt(pos, val), result

	case *ast.AssignStmt:
		target, result := a.analyzeExpr(s, v.Target, nil)
		var expectedVal sir.Expr
		if target != nil {
			expectedVal = target.Type()
		}
		val, r := a.analyzeExpr(s, v.Value, expectedVal)
		result = mergeResult(result, r)
		return a.curMod.Arena().CreateAssignStmt(pos, target, val), result

	case *ast.WhileStmt:
		cond, result := a.analyzeExpr(s, v.Cond, a.preambleType("bool"))
		body, r := a.analyzeBlock(s, v.Body, nil)
		result = mergeResult(result, r)
		return a.curMod.Arena().CreateWhileStmt(pos, cond, body), result

	default:
		return nil, Success
	}
}

package sema

import (
	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/sir"
)

// toSirPos attaches mod's path to an ast.Pos, producing the sir.Pos every
// SIR expression/statement node position is recorded in. Symbol identifier
// positions (symbolHeader.Ident) stay plain ast.Pos instead, since Symbol
// only promises GetIdent() ast.Pos.
func toSirPos(mod *sir.Module, p ast.Pos) sir.Pos {
	return sir.Pos{Module: mod.Path, Line: p.Line, Column: p.Column, Offset: p.Offset}
}

func newParamSkeletons(n int) []*sir.ParamSymbol {
	params := make([]*sir.ParamSymbol, n)
	for i := range params {
		params[i] = &sir.ParamSymbol{}
	}
	return params
}

func newFuncDeclSkeleton(name string, pos ast.Pos, paramCount int) *sir.FuncDeclSymbol {
	f := &sir.FuncDeclSymbol{}
	f.Name, f.Ident = name, pos
	f.Params = newParamSkeletons(paramCount)
	return f
}

func newNativeFuncDeclSkeleton(name string, pos ast.Pos, paramCount int) *sir.NativeFuncDeclSymbol {
	f := &sir.NativeFuncDeclSymbol{}
	f.Name, f.Ident = name, pos
	f.Params = newParamSkeletons(paramCount)
	return f
}

func newFuncDefSkeleton(name string, pos ast.Pos, paramCount int, isMethod bool) *sir.FuncDefSymbol {
	f := &sir.FuncDefSymbol{}
	f.Name, f.Ident = name, pos
	f.IsMethod = isMethod
	f.Params = newParamSkeletons(paramCount)
	return f
}

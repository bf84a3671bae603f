package sema

import (
	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/report"
	"github.com/banjo-lang/banjoc/internal/sir"
)

// analyzeInterface is the INTERFACE stage for one top-level declaration: it
// resolves every type reference the declaration's own signature carries
// (struct field types, function parameter/return types, a type alias's
// target, ...) without looking at any function body. Running this stage
// fully for every declaration before BODY begins is what lets a function
// call another function declared later in the same file.
func (a *Analyzer) analyzeInterface(decl sir.Decl) Result {
	if decl.Stage() >= sir.StageInterface {
		return Success
	}
	if !a.enterDecl(decl) {
		decl.SetStage(sir.StageInterface)
		return DefCycle
	}
	defer a.exitDecl()

	if isGuardable(decl) {
		name := decl.GetName()
		sym := decl.(sir.Symbol)
		guard := &sir.GuardedSymbol{Inner: sym}
		guard.Name, guard.Ident = sym.GetName(), sym.GetIdent()
		a.curMod.Root.Table.Replace(name, guard)
		defer a.curMod.Root.Table.Replace(name, sym)
	}

	s := &scope{table: a.curMod.Root.Table, decl: decl}
	result := a.resolveDeclInterface(s, decl)
	decl.SetStage(sir.StageInterface)
	return result
}

// isGuardable reports whether decl can be the target of a NamedType
// reference cycle: type aliases, structs, unions, protocols, and enums all
// introduce a name usable in a type position, unlike a function or
// variable. Wrapping decl's table slot in a GuardedSymbol while its
// interface is being resolved is what lets a cyclic chain (A's alias
// target is B, B's is A) be caught via the lookup inside B's own
// resolution finding A still wrapped, instead of recursing forever.
func isGuardable(decl sir.Decl) bool {
	switch decl.(type) {
	case *sir.TypeAliasSymbol, *sir.StructDefSymbol, *sir.UnionDefSymbol, *sir.ProtoDefSymbol, *sir.EnumDefSymbol:
		return true
	default:
		return false
	}
}

func (a *Analyzer) resolveDeclInterface(s *scope, decl sir.Decl) Result {
	switch v := decl.(type) {
	case *sir.TypeAliasSymbol:
		d := a.declAST[decl].(*ast.TypeAliasDecl)
		target, result := a.resolveTypeExpr(s, d.Target)
		v.Target = target
		return result

	case *sir.FuncDefSymbol:
		d := a.declAST[decl].(*ast.FuncDecl)
		return a.resolveFuncSignature(s, d, v.Params, &v.ReturnType)

	case *sir.FuncDeclSymbol:
		d := a.declAST[decl].(*ast.FuncDecl)
		return a.resolveFuncSignature(s, d, v.Params, &v.ReturnType)

	case *sir.NativeFuncDeclSymbol:
		d := a.declAST[decl].(*ast.FuncDecl)
		return a.resolveFuncSignature(s, d, v.Params, &v.ReturnType)

	case *sir.StructDefSymbol:
		d := a.declAST[decl].(*ast.StructDecl)
		result := Success
		for i, f := range d.Fields {
			typ, r := a.resolveTypeExpr(s, f.Type)
			result = mergeResult(result, r)
			v.Fields[i].Type = typ
			v.Fields[i].Size = sizeOf(typ)
		}
		v.Size = structSize(v.Fields)
		return result

	case *sir.UnionDefSymbol:
		d := a.declAST[decl].(*ast.UnionDecl)
		result := Success
		for ci, c := range d.Cases {
			for fi, f := range c.Fields {
				typ, r := a.resolveTypeExpr(s, f.Type)
				result = mergeResult(result, r)
				v.Cases[ci].Fields[fi].Type = typ
				v.Cases[ci].Fields[fi].Size = sizeOf(typ)
			}
		}
		return result

	case *sir.ProtoDefSymbol:
		d := a.declAST[decl].(*ast.ProtoDecl)
		result := Success
		for i, m := range d.Methods {
			result = mergeResult(result, a.resolveFuncSignature(s, &ast.FuncDecl{Params: m.Params, ReturnType: m.ReturnType}, v.Methods[i].Params, &v.Methods[i].ReturnType))
		}
		return result

	case *sir.EnumDefSymbol:
		d := a.declAST[decl].(*ast.EnumDecl)
		result := Success
		next := int64(0)
		for i, variant := range d.Variants {
			if variant.Value != nil {
				lit, ok := variant.Value.(*ast.IntLiteral)
				if !ok {
					result = mergeResult(result, a.insert(a.newError(report.PhaseSema, report.SEMA004TypeMismatch).
						Message("enum variant discriminant must be an integer literal").
						At(ast.Span{Start: variant.Pos, End: variant.Pos})))
					continue
				}
				next = lit.Value
			}
			v.Variants[i].Value = next
			next++
		}
		return result

	case *sir.ConstDefSymbol:
		d := a.declAST[decl].(*ast.ConstDecl)
		if d.Type == nil {
			return Success
		}
		typ, result := a.resolveTypeExpr(s, d.Type)
		v.Type = typ
		return result

	case *sir.VarDeclSymbol:
		d := a.declAST[decl].(*ast.VarDecl)
		typ, result := a.resolveTypeExpr(s, d.Type)
		v.Type = typ
		return result

	case *sir.NativeVarDeclSymbol:
		d := a.declAST[decl].(*ast.VarDecl)
		typ, result := a.resolveTypeExpr(s, d.Type)
		v.Type = typ
		return result

	default:
		return Success
	}
}

// resolveFuncSignature resolves a function's parameter and return types in
// place, shared by FuncDef/FuncDecl/NativeFuncDecl and protocol methods.
func (a *Analyzer) resolveFuncSignature(s *scope, d *ast.FuncDecl, params []*sir.ParamSymbol, ret *sir.Expr) Result {
	result := Success
	for i, p := range d.Params {
		params[i].Name, params[i].Ident = p.Name, p.Pos
		params[i].IsSelf = p.IsSelf
		if p.IsSelf {
			continue
		}
		typ, r := a.resolveTypeExpr(s, p.Type)
		result = mergeResult(result, r)
		params[i].Type = typ
	}
	if d.ReturnType != nil {
		typ, r := a.resolveTypeExpr(s, d.ReturnType)
		result = mergeResult(result, r)
		*ret = typ
	}
	return result
}

package sema

import (
	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/report"
	"github.com/banjo-lang/banjoc/internal/sir"
)

// collectDecls is the NAME stage: it walks file's top-level declarations,
// allocates the matching SIR symbol for each, and binds it into mod.Root's
// table. Field and parameter *types* are left unresolved (sir.Expr nil)
// until the INTERFACE stage; only names and shapes are fixed here, which is
// what the rest of the file needs to forward-reference a declaration that
// appears later in the same module.
func (a *Analyzer) collectDecls(mod *sir.Module, file *ast.File) Result {
	if a.declAST == nil {
		a.declAST = make(map[sir.Decl]ast.Decl)
	}

	result := Success
	for _, d := range file.Decls {
		decl := a.buildSkeleton(mod, d)
		if decl == nil {
			continue
		}
		a.declAST[decl] = d
		if !a.bindDecl(mod, d.DeclName(), decl) {
			result = mergeResult(result, a.redefinitionError(d))
		} else {
			a.addSymbolDef(decl)
		}
	}
	return result
}

// buildSkeleton allocates the SIR symbol for one top-level ast.Decl without
// resolving any type reference it carries.
func (a *Analyzer) buildSkeleton(mod *sir.Module, d ast.Decl) sir.Decl {
	pos := d.Position()

	switch v := d.(type) {
	case *ast.FuncDecl:
		if v.IsNative {
			return newNativeFuncDeclSkeleton(v.Name, pos, len(v.Params))
		}
		if v.Body == nil {
			return newFuncDeclSkeleton(v.Name, pos, len(v.Params))
		}
		return newFuncDefSkeleton(v.Name, pos, len(v.Params), v.IsMethod)
	case *ast.StructDecl:
		s := &sir.StructDefSymbol{}
		s.Name, s.Ident = v.Name, pos
		for _, f := range v.Fields {
			field := &sir.StructFieldSymbol{}
			field.Name, field.Ident = f.Name, f.Pos
			s.Fields = append(s.Fields, field)
		}
		return s
	case *ast.UnionDecl:
		u := &sir.UnionDefSymbol{}
		u.Name, u.Ident = v.Name, pos
		for _, c := range v.Cases {
			uc := &sir.UnionCaseSymbol{Union: u}
			uc.Name, uc.Ident = c.Name, c.Pos
			for _, f := range c.Fields {
				field := &sir.StructFieldSymbol{}
				field.Name, field.Ident = f.Name, f.Pos
				uc.Fields = append(uc.Fields, field)
			}
			u.Cases = append(u.Cases, uc)
		}
		return u
	case *ast.ProtoDecl:
		p := &sir.ProtoDefSymbol{}
		p.Name, p.Ident = v.Name, pos
		for _, m := range v.Methods {
			p.Methods = append(p.Methods, newFuncDeclSkeleton(m.Name, m.Pos, len(m.Params)))
		}
		return p
	case *ast.EnumDecl:
		e := &sir.EnumDefSymbol{}
		e.Name, e.Ident = v.Name, pos
		for _, variant := range v.Variants {
			ev := &sir.EnumVariantSymbol{Enum: e}
			ev.Name, ev.Ident = variant.Name, variant.Pos
			e.Variants = append(e.Variants, ev)
		}
		return e
	case *ast.ConstDecl:
		c := &sir.ConstDefSymbol{}
		c.Name, c.Ident = v.Name, pos
		return c
	case *ast.TypeAliasDecl:
		t := &sir.TypeAliasSymbol{}
		t.Name, t.Ident = v.Name, pos
		return t
	case *ast.VarDecl:
		if v.IsNative {
			nv := &sir.NativeVarDeclSymbol{}
			nv.Name, nv.Ident = v.Name, pos
			return nv
		}
		vd := &sir.VarDeclSymbol{}
		vd.Name, vd.Ident = v.Name, pos
		return vd
	default:
		return nil
	}
}

// bindDecl inserts decl under name into mod.Root, merging same-named
// FuncDefSymbols into an OverloadSetSymbol instead of rejecting the second
// one outright: banjo allows overloading on parameter arity/types, which
// internal/specialize disambiguates at call sites.
func (a *Analyzer) bindDecl(mod *sir.Module, name string, decl sir.Decl) bool {
	fn, isFunc := decl.(*sir.FuncDefSymbol)
	existing, exists := mod.Root.Table.LookUpLocal(name)
	if !exists {
		return mod.Root.Add(name, decl)
	}
	if !isFunc {
		return false
	}

	switch e := existing.(type) {
	case *sir.FuncDefSymbol:
		set := &sir.OverloadSetSymbol{Funcs: []*sir.FuncDefSymbol{e, fn}}
		set.Name = name
		mod.Root.Table.Replace(name, set)
		mod.Root.Decls = append(mod.Root.Decls, decl)
		return true
	case *sir.OverloadSetSymbol:
		e.Funcs = append(e.Funcs, fn)
		mod.Root.Decls = append(mod.Root.Decls, decl)
		return true
	default:
		return false
	}
}

func (a *Analyzer) redefinitionError(d ast.Decl) Result {
	return a.insert(a.newError(report.PhaseSema, report.SEMA001Redefinition).
		Message("redefinition of %q", d.DeclName()).
		At(ast.Span{Start: d.Position(), End: d.Position()}))
}

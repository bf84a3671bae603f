package specialize

import "github.com/banjo-lang/banjoc/internal/sir"

// substituteType replaces any reference to one of params appearing in t
// with the correspondingly-indexed concrete arg, leaving every other node
// untouched. Only the shapes a resolved type expression can take —
// SymbolExpr, UnaryExpr(OpRef, ...), CallExpr (nested generic
// instantiation) — are walked; anything else (a literal, a call, a block)
// never appears in type position and is returned as-is.
func substituteType(t sir.Expr, params []*sir.GenericParamSymbol, args []sir.Expr) sir.Expr {
	if t == nil {
		return nil
	}
	switch v := t.(type) {
	case *sir.SymbolExpr:
		for i, p := range params {
			if v.Sym == p && i < len(args) {
				return args[i]
			}
		}
		return v
	case *sir.UnaryExpr:
		inner := substituteType(v.Operand, params, args)
		if inner == v.Operand {
			return v
		}
		clone := *v
		clone.Operand = inner
		return &clone
	case *sir.CallExpr:
		callee := substituteType(v.Callee, params, args)
		changed := callee != v.Callee
		genArgs := make([]sir.Expr, len(v.GenericArgs))
		for i, a := range v.GenericArgs {
			genArgs[i] = substituteType(a, params, args)
			changed = changed || genArgs[i] != a
		}
		if !changed {
			return v
		}
		clone := *v
		clone.Callee = callee
		clone.GenericArgs = genArgs
		return &clone
	default:
		return t
	}
}

// InstantiateFunc builds (or returns the memoized) Specialization of a
// generic def for concrete args, substituting every GenericParamSymbol
// reference in its parameter and return types. The clone's body is left
// shared with def's own and is not analyzed again: the calling sema code
// reads only the clone's ReturnType, so literals inside the body keep the
// types they got when def itself was analyzed.
func InstantiateFunc(table *Table, def *sir.FuncDefSymbol, args []sir.Expr) *sir.Specialization {
	if spec, ok := table.Lookup(def, args); ok {
		return spec
	}

	clone := &sir.FuncDefSymbol{
		GenericParams: nil,
		Params:        make([]*sir.ParamSymbol, len(def.Params)),
		ReturnType:    substituteType(def.ReturnType, def.GenericParams, args),
		IsMethod:      def.IsMethod,
		Body:          def.Body,
	}
	clone.Name, clone.Ident = def.Name, def.Ident
	for i, p := range def.Params {
		np := &sir.ParamSymbol{IsSelf: p.IsSelf, Type: substituteType(p.Type, def.GenericParams, args)}
		np.Name, np.Ident = p.Name, p.Ident
		clone.Params[i] = np
	}

	spec := &sir.Specialization{Args: args, Def: clone}
	table.Insert(def, spec)
	def.Specializations = append(def.Specializations, spec)
	return spec
}

// InstantiateStruct is InstantiateFunc's counterpart for a generic struct:
// it substitutes every field's type and recomputes nothing else. No
// INTERFACE-stage pass runs over the clone, so its Size and its fields'
// sizes stay zero.
func InstantiateStruct(table *Table, def *sir.StructDefSymbol, args []sir.Expr) *sir.Specialization {
	if spec, ok := table.Lookup(def, args); ok {
		return spec
	}

	clone := &sir.StructDefSymbol{Fields: make([]*sir.StructFieldSymbol, len(def.Fields))}
	clone.Name, clone.Ident = def.Name, def.Ident
	for i, f := range def.Fields {
		nf := &sir.StructFieldSymbol{Type: substituteType(f.Type, def.GenericParams, args)}
		nf.Name, nf.Ident = f.Name, f.Ident
		clone.Fields[i] = nf
	}

	spec := &sir.Specialization{Args: args, Def: clone}
	table.Insert(def, spec)
	def.Specializations = append(def.Specializations, spec)
	return spec
}

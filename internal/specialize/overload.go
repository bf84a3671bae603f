package specialize

import "github.com/banjo-lang/banjoc/internal/sir"

// primitiveName extracts a bare builtin primitive's name from a resolved
// type expression, mirroring the preamble's one-StructDefSymbol-per-
// primitive encoding (symtab.InjectPreamble); "" for anything else,
// including a user struct (which legitimately has fields).
func primitiveName(e sir.Expr) string {
	se, ok := e.(*sir.SymbolExpr)
	if !ok {
		return ""
	}
	sd, ok := se.Sym.(*sir.StructDefSymbol)
	if !ok || len(sd.Fields) > 0 {
		return ""
	}
	return sd.Name
}

var intWidenRank = map[string]int{"i8": 1, "i16": 2, "i32": 3, "i64": 4, "u8": 1, "u16": 2, "u32": 3, "u64": 4}
var floatWidenRank = map[string]int{"f32": 1, "f64": 2}

// isLiteral reports whether e is a literal node, used to weight the
// "fewest literal coercions" tie-break rule.
func isLiteral(e sir.Expr) bool {
	switch e.(type) {
	case *sir.IntLit, *sir.FloatLit, *sir.StringLit, *sir.BoolLit, *sir.NullLit:
		return true
	default:
		return false
	}
}

// assignable reports whether a value of type argType can be passed where
// paramType is expected: an identical primitive always matches, a
// narrower integer or float widens to a wider member of the same family,
// and any other pair matches only by naming the same symbol.
func assignable(argType, paramType sir.Expr) bool {
	if argType == nil || paramType == nil {
		return false
	}
	an, pn := primitiveName(argType), primitiveName(paramType)
	if an != "" && pn != "" {
		if an == pn {
			return true
		}
		if ar, ok := intWidenRank[an]; ok {
			if pr, ok2 := intWidenRank[pn]; ok2 {
				return ar <= pr
			}
		}
		if ar, ok := floatWidenRank[an]; ok {
			if pr, ok2 := floatWidenRank[pn]; ok2 {
				return ar <= pr
			}
		}
		return false
	}
	aSym, aok := argType.(*sir.SymbolExpr)
	pSym, pok := paramType.(*sir.SymbolExpr)
	return aok && pok && aSym.Sym == pSym.Sym
}

// nonSelfParams strips a leading self receiver, which the call's dot
// expression already bound and which never appears in args.
func nonSelfParams(params []*sir.ParamSymbol) []*sir.ParamSymbol {
	if len(params) > 0 && params[0].IsSelf {
		return params[1:]
	}
	return params
}

// fits reports whether every argument in args is assignable to fn's
// corresponding parameter type.
func fits(fn *sir.FuncDefSymbol, args []sir.Expr) bool {
	params := nonSelfParams(fn.Params)
	if len(params) != len(args) {
		return false
	}
	for i, p := range params {
		if !assignable(args[i].Type(), p.Type) {
			return false
		}
	}
	return true
}

// cost scores how many of args need a literal coercion or an implicit
// numeric conversion to satisfy fn's parameters, used only to break a tie
// between two otherwise-fitting candidates; lower is better in both
// fields, literal count compared first.
func cost(fn *sir.FuncDefSymbol, args []sir.Expr) (literalCoercions, conversions int) {
	params := nonSelfParams(fn.Params)
	for i, p := range params {
		if i >= len(args) {
			break
		}
		if isLiteral(args[i]) {
			literalCoercions++
			continue
		}
		an, pn := primitiveName(args[i].Type()), primitiveName(p.Type)
		if an != "" && pn != "" && an != pn {
			conversions++
		}
	}
	return
}

// Resolve picks the single best-assignable overload from candidates (the
// arity-filtered members of an OverloadSetSymbol internal/sema's BODY
// stage already narrowed down) for a typed argument list. It returns
// ok=false when zero candidates are assignable, and ambiguous=true when
// more than one candidate remains tied after the literal-coercion/
// conversion-count tie-break — in both cases the caller reports
// SEMA012NoMatchingOverload / SEMA011AmbiguousOverload, since picking a
// diagnostic span belongs to the call site, not this package.
func Resolve(candidates []*sir.FuncDefSymbol, args []sir.Expr) (best *sir.FuncDefSymbol, ok bool, ambiguous bool) {
	var matching []*sir.FuncDefSymbol
	for _, fn := range candidates {
		if fits(fn, args) {
			matching = append(matching, fn)
		}
	}
	if len(matching) == 0 {
		return nil, false, false
	}
	if len(matching) == 1 {
		return matching[0], true, false
	}

	bestLit, bestConv := -1, -1
	var winners []*sir.FuncDefSymbol
	for _, fn := range matching {
		lit, conv := cost(fn, args)
		switch {
		case bestLit == -1 || lit < bestLit || (lit == bestLit && conv < bestConv):
			bestLit, bestConv = lit, conv
			winners = []*sir.FuncDefSymbol{fn}
		case lit == bestLit && conv == bestConv:
			winners = append(winners, fn)
		}
	}
	if len(winners) == 1 {
		return winners[0], true, false
	}
	return winners[0], true, true
}

package sema

import "github.com/banjo-lang/banjoc/internal/sir"

// preambleType wraps one of the builtin primitive symbols InjectPreamble
// populated as a type expression, used to default an under-constrained
// literal's pseudo-type to a concrete one.
func (a *Analyzer) preambleType(name string) sir.Expr {
	sym, ok := a.Unit.Preamble.Root.Table.LookUpLocal(name)
	if !ok {
		return nil
	}
	return a.curMod.Arena().CreateSymbolExpr(sir.Pos{}, sym)
}

// intTypeNames lists the primitive names a resolved type must match for an
// int literal to coerce to it directly instead of defaulting.
var intTypeNames = map[string]bool{
	"i8": true, "i16": true, "i32": true, "i64": true,
	"u8": true, "u16": true, "u32": true, "u64": true,
}

var floatTypeNames = map[string]bool{"f32": true, "f64": true}

// typeName extracts the builtin primitive name a resolved type expression
// names, or "" if it isn't a bare primitive reference.
func typeName(e sir.Expr) string {
	se, ok := e.(*sir.SymbolExpr)
	if !ok {
		return ""
	}
	sd, ok := se.Sym.(*sir.StructDefSymbol)
	if !ok {
		return ""
	}
	return sd.Name
}

// symbolType returns the declared type of referencing sym as a plain
// value (an identifier expression), or nil when sym has no single type of
// its own (e.g. a function referenced without being called, a type name).
func symbolType(sym sir.Symbol) sir.Expr {
	switch v := sym.(type) {
	case *sir.LocalSymbol:
		return v.Type
	case *sir.ParamSymbol:
		return v.Type
	case *sir.VarDeclSymbol:
		return v.Type
	case *sir.NativeVarDeclSymbol:
		return v.Type
	case *sir.ConstDefSymbol:
		return v.Type
	default:
		return nil
	}
}

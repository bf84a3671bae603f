package specialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banjo-lang/banjoc/internal/sir"
)

func primitiveType(name string) sir.Expr {
	sd := &sir.StructDefSymbol{}
	sd.Name = name
	return &sir.SymbolExpr{Sym: sd}
}

func intLit(v int64, typ sir.Expr) sir.Expr {
	lit := &sir.IntLit{Value: v}
	lit.Typ = typ
	return lit
}

func identArg(typ sir.Expr) sir.Expr {
	local := &sir.LocalSymbol{Type: typ}
	se := &sir.SymbolExpr{Sym: local}
	se.Typ = typ
	return se
}

func TestResolveSingleFit(t *testing.T) {
	fn := &sir.FuncDefSymbol{Params: []*sir.ParamSymbol{{Type: primitiveType("i32")}}}
	best, ok, ambiguous := Resolve([]*sir.FuncDefSymbol{fn}, []sir.Expr{intLit(1, primitiveType("i32"))})
	require.True(t, ok)
	assert.False(t, ambiguous)
	assert.Same(t, fn, best)
}

func TestResolveNoFit(t *testing.T) {
	fn := &sir.FuncDefSymbol{Params: []*sir.ParamSymbol{{Type: primitiveType("string")}}}
	_, ok, _ := Resolve([]*sir.FuncDefSymbol{fn}, []sir.Expr{intLit(1, primitiveType("i32"))})
	assert.False(t, ok)
}

func TestResolveTieBreaksOnFewestConversions(t *testing.T) {
	narrow := &sir.FuncDefSymbol{Params: []*sir.ParamSymbol{{Type: primitiveType("i32")}}}
	wide := &sir.FuncDefSymbol{Params: []*sir.ParamSymbol{{Type: primitiveType("i64")}}}
	// a typed i32 local matches narrow exactly and widens into wide; an
	// untyped literal costs the same against both, so a non-literal
	// argument is what actually discriminates the tie.
	arg := identArg(primitiveType("i32"))
	best, ok, ambiguous := Resolve([]*sir.FuncDefSymbol{narrow, wide}, []sir.Expr{arg})
	require.True(t, ok)
	assert.False(t, ambiguous)
	assert.Same(t, narrow, best)
}

func TestResolveSkipsSelfParam(t *testing.T) {
	fn := &sir.FuncDefSymbol{Params: []*sir.ParamSymbol{
		{IsSelf: true},
		{Type: primitiveType("i32")},
	}}
	best, ok, _ := Resolve([]*sir.FuncDefSymbol{fn}, []sir.Expr{intLit(1, primitiveType("i32"))})
	require.True(t, ok)
	assert.Same(t, fn, best)
}

func TestInstantiateFuncSubstitutesGenericParam(t *testing.T) {
	tparam := &sir.GenericParamSymbol{}
	tparam.Name = "T"
	tref := &sir.SymbolExpr{Sym: tparam}

	def := &sir.FuncDefSymbol{
		GenericParams: []*sir.GenericParamSymbol{tparam},
		Params:        []*sir.ParamSymbol{{Type: tref}},
		ReturnType:    tref,
	}
	def.Name = "identity"

	table := New()
	concrete := primitiveType("i64")
	spec := InstantiateFunc(table, def, []sir.Expr{concrete})

	clone := spec.Def.(*sir.FuncDefSymbol)
	assert.Same(t, concrete, clone.Params[0].Type)
	assert.Same(t, concrete, clone.ReturnType)
	assert.Len(t, def.Specializations, 1)

	again := InstantiateFunc(table, def, []sir.Expr{concrete})
	assert.Same(t, spec, again, "second call with structurally equal args should hit the memo table")
	assert.Len(t, def.Specializations, 1, "a memoized hit must not grow Specializations again")
}

func TestInstantiateStructSubstitutesFieldType(t *testing.T) {
	tparam := &sir.GenericParamSymbol{}
	tparam.Name = "T"
	tref := &sir.SymbolExpr{Sym: tparam}

	field := &sir.StructFieldSymbol{Type: tref}
	field.Name = "value"
	def := &sir.StructDefSymbol{GenericParams: []*sir.GenericParamSymbol{tparam}, Fields: []*sir.StructFieldSymbol{field}}
	def.Name = "Box"

	table := New()
	concrete := primitiveType("bool")
	spec := InstantiateStruct(table, def, []sir.Expr{concrete})

	clone := spec.Def.(*sir.StructDefSymbol)
	assert.Same(t, concrete, clone.Fields[0].Type)
	assert.Equal(t, 1, table.Count(def))
}

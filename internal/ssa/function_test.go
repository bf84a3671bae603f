package ssa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionCreateBlockSetsBackReference(t *testing.T) {
	fn := NewFunction("f", nil, Type{Primitive: I32}, CallingConvNone)
	b := fn.CreateBlock("entry")

	require.Len(t, fn.Blocks, 1)
	assert.Same(t, fn, b.Func)
	assert.Same(t, b, fn.Entry())
}

func TestBasicBlockAppendSetsBlockAndTerminator(t *testing.T) {
	fn := NewFunction("f", nil, Type{Primitive: VOID}, CallingConvNone)
	b := fn.CreateBlock("entry")

	instr := fn.CreateInstruction(RET, nil, nil)
	b.Append(instr)

	assert.Same(t, b, instr.Block)
	assert.Same(t, instr, b.Terminator())
}

func TestModuleAddFunctionAndGlobal(t *testing.T) {
	var mod Module
	fn := mod.AddFunction(NewFunction("f", nil, Type{Primitive: VOID}, CallingConvNone))
	g := mod.AddGlobal(&Global{GlobalDecl: GlobalDecl{Name: "g", Typ: Type{Primitive: I32}}})

	assert.Same(t, fn, mod.Functions[0])
	assert.Same(t, g, mod.Globals[0])
}

package ssa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDeadAdd builds a single block that computes an ADD whose result is
// never used, then returns a constant — the ADD should be pruned.
func buildDeadAdd(t *testing.T) (fn *Function, entry *BasicBlock, dead *Instruction) {
	t.Helper()
	fn = NewFunction("f", nil, Type{Primitive: I32}, CallingConvNone)
	entry = fn.CreateBlock("entry")

	reg := fn.CreateRegister("t0", Type{Primitive: I32}, nil)
	dead = fn.CreateInstruction(ADD, []Operand{
		fn.CreateIntConst(1, Type{Primitive: I32}),
		fn.CreateIntConst(2, Type{Primitive: I32}),
	}, reg)
	entry.Append(dead)
	entry.Append(fn.CreateInstruction(RET, []Operand{fn.CreateIntConst(0, Type{Primitive: I32})}, nil))

	return fn, entry, dead
}

func TestDeadCodeEliminationRemovesUnusedInstruction(t *testing.T) {
	fn, entry, dead := buildDeadAdd(t)
	DeadCodeElimination{}.Run(fn)

	for _, instr := range entry.Instructions {
		assert.NotSame(t, dead, instr, "unused ADD should have been pruned")
	}
	require.Len(t, entry.Instructions, 1)
	assert.Equal(t, RET, entry.Instructions[0].Opcode)
}

func TestDeadCodeEliminationKeepsInstructionFeedingReturn(t *testing.T) {
	fn := NewFunction("f", nil, Type{Primitive: I32}, CallingConvNone)
	entry := fn.CreateBlock("entry")

	reg := fn.CreateRegister("t0", Type{Primitive: I32}, nil)
	live := fn.CreateInstruction(ADD, []Operand{
		fn.CreateIntConst(1, Type{Primitive: I32}),
		fn.CreateIntConst(2, Type{Primitive: I32}),
	}, reg)
	live.Operands[0] = fn.CreateIntConst(1, Type{Primitive: I32})
	entry.Append(live)
	entry.Append(fn.CreateInstruction(RET, []Operand{reg}, nil))

	DeadCodeElimination{}.Run(fn)

	require.Len(t, entry.Instructions, 2)
	assert.Same(t, live, entry.Instructions[0])
}

func TestDeadCodeEliminationKeepsSideEffectingStore(t *testing.T) {
	fn := NewFunction("f", nil, Type{Primitive: VOID}, CallingConvNone)
	entry := fn.CreateBlock("entry")

	store := fn.CreateInstruction(STORE, nil, nil)
	entry.Append(store)
	entry.Append(fn.CreateInstruction(RET, nil, nil))

	DeadCodeElimination{}.Run(fn)

	require.Len(t, entry.Instructions, 2)
	assert.Same(t, store, entry.Instructions[0])
}

// buildUnusedParamChain builds entry -> loop(p) where p is forwarded right
// back to loop on every iteration and never read by any instruction — p
// should be dropped from loop's parameter list and from every branch
// target feeding it.
func buildUnusedParamChain(t *testing.T) (fn *Function, loop *BasicBlock, param *Param) {
	t.Helper()
	fn = NewFunction("f", nil, Type{Primitive: VOID}, CallingConvNone)
	entry := fn.CreateBlock("entry")
	loop = fn.CreateBlock("loop")

	param = fn.CreateParam("p", Type{Primitive: I32})
	loop.Params = []*Param{param}

	entryTarget := fn.CreateBranchTarget(loop, []Operand{fn.CreateIntConst(0, Type{Primitive: I32})})
	entry.Append(fn.CreateInstruction(JMP, []Operand{entryTarget}, nil))

	loopTarget := fn.CreateBranchTarget(loop, []Operand{param})
	loop.Append(fn.CreateInstruction(JMP, []Operand{loopTarget}, nil))

	return fn, loop, param
}

func TestDeadCodeEliminationRemovesUnusedBlockParam(t *testing.T) {
	fn, loop, _ := buildUnusedParamChain(t)
	DeadCodeElimination{}.Run(fn)

	assert.Empty(t, loop.Params)
	for _, b := range fn.Blocks {
		term := b.Terminator()
		for _, target := range term.BranchTargets() {
			if target.Block == loop {
				assert.Empty(t, target.Args)
			}
		}
	}
}

package ssa

import "github.com/banjo-lang/banjoc/internal/support/arena"

// funcArenas owns every BasicBlock, Instruction, Register, and Param
// allocated for one Function, giving them addresses stable for the
// function's lifetime — the CFG and dominator tree hold raw *BasicBlock
// pointers rather than indices into a resizable slice.
type funcArenas struct {
	blocks   arena.Arena[BasicBlock]
	instrs   arena.Arena[Instruction]
	regs     arena.Arena[Register]
	params   arena.Arena[Param]
	targets  arena.Arena[BranchTarget]
	intConst arena.Arena[IntConst]
	fltConst arena.Arena[FloatConst]
}

func (a *funcArenas) CreateBlock(name string) *BasicBlock {
	b := a.blocks.New()
	b.Name = name
	return b
}

func (a *funcArenas) CreateInstruction(op Opcode, operands []Operand, result *Register) *Instruction {
	i := a.instrs.New()
	i.Opcode, i.Operands, i.Result = op, operands, result
	return i
}

func (a *funcArenas) CreateRegister(name string, typ Type, def *Instruction) *Register {
	r := a.regs.New()
	r.Name, r.Typ, r.Def = name, typ, def
	return r
}

func (a *funcArenas) CreateParam(name string, typ Type) *Param {
	p := a.params.New()
	p.Name, p.Typ = name, typ
	return p
}

func (a *funcArenas) CreateBranchTarget(block *BasicBlock, args []Operand) *BranchTarget {
	t := a.targets.New()
	t.Block, t.Args = block, args
	return t
}

func (a *funcArenas) CreateIntConst(v int64, typ Type) *IntConst {
	c := a.intConst.New()
	c.Val, c.Typ = v, typ
	return c
}

func (a *funcArenas) CreateFloatConst(v float64, typ Type) *FloatConst {
	c := a.fltConst.New()
	c.Val, c.Typ = v, typ
	return c
}

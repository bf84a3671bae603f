package ssa

// Operand is anything an Instruction can consume: a constant, a register
// holding a prior instruction's (or block parameter's) result, a reference
// to a global, a bare comparison tag (an CJMP/FCJMP's first operand), or a
// branch target (block + outgoing block-parameter arguments, replacing phi
// nodes: a successor reads its own parameters rather than selecting among
// predecessor-tagged values).
type Operand interface {
	isOperand()
	Type() Type
}

// IntConst is an integer immediate of a given integer or ADDR primitive.
type IntConst struct {
	Val int64
	Typ Type
}

func (*IntConst) isOperand()    {}
func (c *IntConst) Type() Type  { return c.Typ }

// FloatConst is a floating-point immediate.
type FloatConst struct {
	Val float64
	Typ Type
}

func (*FloatConst) isOperand()   {}
func (c *FloatConst) Type() Type { return c.Typ }

// Register names the result of a prior instruction or an incoming block
// parameter. Def is nil for a block parameter; for a prior instruction's
// result it points back at the defining Instruction.
type Register struct {
	Name string
	Typ  Type
	Def  *Instruction
}

func (*Register) isOperand()   {}
func (r *Register) Type() Type { return r.Typ }

// GlobalRef references a module-level Global or external declaration by
// identity, not by name, so renaming a global never requires rewriting
// every use.
type GlobalRef struct {
	Global *GlobalDecl
}

func (*GlobalRef) isOperand()   {}
func (g *GlobalRef) Type() Type { return g.Global.Typ }

// ComparisonConst carries a Comparison tag as CJMP/FCJMP's first operand;
// it is never itself a runtime value, only an instruction-encoding detail.
type ComparisonConst struct {
	Cmp Comparison
}

func (*ComparisonConst) isOperand() {}
func (*ComparisonConst) Type() Type { return Type{Primitive: I8} }

// BranchTarget is a JMP/CJMP/FCJMP's successor reference: the block being
// jumped to, plus the argument values bound to that block's parameters on
// entry. CFG construction reads Block out of every BranchTarget operand to
// discover a block's successors.
type BranchTarget struct {
	Block *BasicBlock
	Args  []Operand
}

func (*BranchTarget) isOperand() {}
func (*BranchTarget) Type() Type { return Type{Primitive: VOID} }

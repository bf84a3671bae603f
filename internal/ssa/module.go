package ssa

// Module is the SSA-level compilation unit handed to codegen: every
// Function and Global lowered from one or more sir.Module graphs, plus the
// AddrTable built for PIC lowering once every symbol that needs an
// indirect address is known.
type Module struct {
	Functions []*Function
	Globals   []*Global
	AddrTable AddrTable
}

// AddFunction appends fn to the module and returns it, for chaining after
// NewFunction.
func (m *Module) AddFunction(fn *Function) *Function {
	m.Functions = append(m.Functions, fn)
	return fn
}

// AddGlobal appends g to the module and returns it.
func (m *Module) AddGlobal(g *Global) *Global {
	m.Globals = append(m.Globals, g)
	return g
}

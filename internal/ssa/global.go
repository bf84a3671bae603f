package ssa

// GlobalDecl is a module-level symbol with static storage: either a defined
// Global (with an initial value) or an external symbol only ever referenced,
// never defined, in this module (initial value nil).
type GlobalDecl struct {
	Name string
	Typ  Type
}

// Global is a defined module-level variable; InitialValue is nil for a
// zero-initialized global.
type Global struct {
	GlobalDecl
	InitialValue Operand
}

// addrTableGlobal is the synthetic GlobalDecl the address table itself is
// emitted under, addressed the same way any other global is.
var addrTableGlobal = GlobalDecl{Name: "addr_table", Typ: Type{Primitive: ADDR}}

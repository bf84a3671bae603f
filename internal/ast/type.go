package ast

// NamedType references a declared type by (possibly dotted) name, optionally
// instantiated with generic arguments: `Optional<i32>`, `std.list.List<T>`.
type NamedType struct {
	Path []string
	Args []TypeExpr
	Pos  Pos
}

func (n *NamedType) Position() Pos { return n.Pos }
func (n *NamedType) typeNode()     {}

// PointerType is `*Base`.
type PointerType struct {
	Base TypeExpr
	Pos  Pos
}

func (p *PointerType) Position() Pos { return p.Pos }
func (p *PointerType) typeNode()     {}

// FuncType is `(Params) -> Ret`.
type FuncType struct {
	Params []TypeExpr
	Return TypeExpr
	Pos    Pos
}

func (f *FuncType) Position() Pos { return f.Pos }
func (f *FuncType) typeNode()     {}

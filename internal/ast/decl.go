package ast

// GenericParam names a type parameter on a generic FuncDef/StructDef.
type GenericParam struct {
	Name string
	Pos  Pos
}

// Param is a function parameter.
type Param struct {
	Name   string
	Type   TypeExpr
	IsSelf bool // true for the implicit receiver of a `method`
	Pos    Pos
}

// FuncDecl is `func name<T>(params) -> ret { body }`.
type FuncDecl struct {
	Name         string
	GenericParams []*GenericParam
	Params       []*Param
	ReturnType   TypeExpr
	IsMethod     bool // first param is bound as the receiver at call sites
	IsNative     bool // NativeFuncDecl: declared but defined externally
	Body         *Block
	Pos          Pos
	Span         Span
}

func (f *FuncDecl) Position() Pos   { return f.Pos }
func (f *FuncDecl) declNode()       {}
func (f *FuncDecl) DeclName() string { return f.Name }

// StructField is one field of a StructDef.
type StructField struct {
	Name    string
	Type    TypeExpr
	Default Expr // optional default value
	Pos     Pos
}

// StructDecl is `struct Name<T> { fields }`.
type StructDecl struct {
	Name          string
	GenericParams []*GenericParam
	Fields        []*StructField
	Pos           Pos
}

func (s *StructDecl) Position() Pos    { return s.Pos }
func (s *StructDecl) declNode()        {}
func (s *StructDecl) DeclName() string { return s.Name }

// UnionCase is one case of a UnionDecl.
type UnionCase struct {
	Name   string
	Fields []*StructField
	Pos    Pos
}

// UnionDecl is a tagged-union/sum type: `union Name<T> { CaseA, CaseB(x: T) }`.
type UnionDecl struct {
	Name          string
	GenericParams []*GenericParam
	Cases         []*UnionCase
	Pos           Pos
}

func (u *UnionDecl) Position() Pos    { return u.Pos }
func (u *UnionDecl) declNode()        {}
func (u *UnionDecl) DeclName() string { return u.Name }

// ProtoMethod is a method signature inside a ProtoDecl (an interface/trait).
type ProtoMethod struct {
	Name       string
	Params     []*Param
	ReturnType TypeExpr
	Pos        Pos
}

// ProtoDecl declares a protocol (interface) that structs may implement.
type ProtoDecl struct {
	Name    string
	Methods []*ProtoMethod
	Pos     Pos
}

func (p *ProtoDecl) Position() Pos    { return p.Pos }
func (p *ProtoDecl) declNode()        {}
func (p *ProtoDecl) DeclName() string { return p.Name }

// EnumVariant is one member of an EnumDecl.
type EnumVariant struct {
	Name  string
	Value Expr // optional explicit discriminant
	Pos   Pos
}

// EnumDecl is a plain enumeration (distinct from a union: no payload fields).
type EnumDecl struct {
	Name     string
	Variants []*EnumVariant
	Pos      Pos
}

func (e *EnumDecl) Position() Pos    { return e.Pos }
func (e *EnumDecl) declNode()        {}
func (e *EnumDecl) DeclName() string { return e.Name }

// ConstDecl is `const NAME: Type = expr`.
type ConstDecl struct {
	Name  string
	Type  TypeExpr
	Value Expr
	Pos   Pos
}

func (c *ConstDecl) Position() Pos    { return c.Pos }
func (c *ConstDecl) declNode()        {}
func (c *ConstDecl) DeclName() string { return c.Name }

// TypeAliasDecl is `type Name = OtherType`.
type TypeAliasDecl struct {
	Name   string
	Target TypeExpr
	Pos    Pos
}

func (t *TypeAliasDecl) Position() Pos    { return t.Pos }
func (t *TypeAliasDecl) declNode()        {}
func (t *TypeAliasDecl) DeclName() string { return t.Name }

// VarDecl is a module-level `var name: Type = expr` (NativeVarDecl when IsNative).
type VarDecl struct {
	Name     string
	Type     TypeExpr
	Value    Expr // nil for NativeVarDecl
	IsNative bool
	Pos      Pos
}

func (v *VarDecl) Position() Pos    { return v.Pos }
func (v *VarDecl) declNode()        {}
func (v *VarDecl) DeclName() string { return v.Name }

// UseKind distinguishes the three use-item shapes.
type UseKind int

const (
	UseIdentKind UseKind = iota
	UseRebindKind
	UseDotExprKind
)

// UseItem is a `use` clause: `use a.b.c`, `use a.b as d`, or a dot chain
// whose left side is itself a UseItem (UseDotExpr).
type UseItem struct {
	Kind  UseKind
	Path  []string // dot-separated segments, e.g. ["a","b","c"]
	Alias string   // only meaningful for UseRebindKind
	Pos   Pos
}

func (u *UseItem) Position() Pos { return u.Pos }

package sir

import "github.com/banjo-lang/banjoc/internal/ast"

// SymbolKind tags the Symbol variant.
type SymbolKind int

const (
	KindModule SymbolKind = iota
	KindFuncDef
	KindFuncDecl
	KindNativeFuncDecl
	KindStructDef
	KindStructField
	KindUnionDef
	KindUnionCase
	KindProtoDef
	KindEnumDef
	KindEnumVariant
	KindConstDef
	KindTypeAlias
	KindVarDecl
	KindNativeVarDecl
	KindLocal
	KindParam
	KindUseIdent
	KindUseRebind
	KindOverloadSet
	KindGenericArg
	KindGenericParam
	KindGuardedSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case KindModule:
		return "Module"
	case KindFuncDef:
		return "FuncDef"
	case KindFuncDecl:
		return "FuncDecl"
	case KindNativeFuncDecl:
		return "NativeFuncDecl"
	case KindStructDef:
		return "StructDef"
	case KindStructField:
		return "StructField"
	case KindUnionDef:
		return "UnionDef"
	case KindUnionCase:
		return "UnionCase"
	case KindProtoDef:
		return "ProtoDef"
	case KindEnumDef:
		return "EnumDef"
	case KindEnumVariant:
		return "EnumVariant"
	case KindConstDef:
		return "ConstDef"
	case KindTypeAlias:
		return "TypeAlias"
	case KindVarDecl:
		return "VarDecl"
	case KindNativeVarDecl:
		return "NativeVarDecl"
	case KindLocal:
		return "Local"
	case KindParam:
		return "Param"
	case KindUseIdent:
		return "UseIdent"
	case KindUseRebind:
		return "UseRebind"
	case KindOverloadSet:
		return "OverloadSet"
	case KindGenericArg:
		return "GenericArg"
	case KindGenericParam:
		return "GenericParam"
	case KindGuardedSymbol:
		return "GuardedSymbol"
	default:
		return "?"
	}
}

// Symbol is the tagged-variant declaration interface shared by every named
// entity the analyzer can produce.
// Invariant: every symbol with an identifier exposes GetIdent/GetName, and
// optionally a SymbolTable. Only a Module (and a GuardedSymbol wrapping
// one) returns a non-nil table; StructDef, UnionDef, ProtoDef and EnumDef
// return nil.
type Symbol interface {
	Kind() SymbolKind
	GetIdent() ast.Pos
	GetName() string
	GetSymbolTable() *SymbolTable // nil if this symbol has no nested scope
}

// symbolHeader is embedded by every concrete Symbol implementation.
type symbolHeader struct {
	Name  string
	Ident ast.Pos
}

func (h *symbolHeader) GetIdent() ast.Pos { return h.Ident }
func (h *symbolHeader) GetName() string   { return h.Name }

// ModuleSymbol is the Symbol view of a Module (distinct from *Module itself,
// which additionally owns the arena and decl block).
type ModuleSymbol struct {
	symbolHeader
	Mod *Module
}

func (m *ModuleSymbol) Kind() SymbolKind            { return KindModule }
func (m *ModuleSymbol) GetSymbolTable() *SymbolTable { return m.Mod.Root.Table }

// FuncDefSymbol is a function with a body.
type FuncDefSymbol struct {
	symbolHeader
	GenericParams  []*GenericParamSymbol
	Params         []*ParamSymbol
	ReturnType     Expr
	IsMethod       bool
	Body           *Block
	stage          SemaStage
	Specializations []*Specialization
}

func (f *FuncDefSymbol) Kind() SymbolKind            { return KindFuncDef }
func (f *FuncDefSymbol) GetSymbolTable() *SymbolTable { return nil }
func (f *FuncDefSymbol) IsGeneric() bool              { return len(f.GenericParams) > 0 }

// FuncDeclSymbol is a function signature without a body (forward decl).
type FuncDeclSymbol struct {
	symbolHeader
	Params     []*ParamSymbol
	ReturnType Expr
	stage      SemaStage
}

func (f *FuncDeclSymbol) Kind() SymbolKind            { return KindFuncDecl }
func (f *FuncDeclSymbol) GetSymbolTable() *SymbolTable { return nil }

// NativeFuncDeclSymbol is a function declared here but defined externally.
type NativeFuncDeclSymbol struct {
	symbolHeader
	Params     []*ParamSymbol
	ReturnType Expr
	stage      SemaStage
}

func (f *NativeFuncDeclSymbol) Kind() SymbolKind            { return KindNativeFuncDecl }
func (f *NativeFuncDeclSymbol) GetSymbolTable() *SymbolTable { return nil }

// StructDefSymbol is a struct type definition.
type StructDefSymbol struct {
	symbolHeader
	GenericParams   []*GenericParamSymbol
	Fields          []*StructFieldSymbol
	stage           SemaStage
	Specializations []*Specialization
	Size            int // computed layout size in bytes
}

func (s *StructDefSymbol) Kind() SymbolKind            { return KindStructDef }
func (s *StructDefSymbol) GetSymbolTable() *SymbolTable { return nil }
func (s *StructDefSymbol) IsGeneric() bool              { return len(s.GenericParams) > 0 }

func (s *StructDefSymbol) FieldByName(name string) *StructFieldSymbol {
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// StructFieldSymbol is one field of a StructDefSymbol.
type StructFieldSymbol struct {
	symbolHeader
	Type    Expr
	Default Expr // optional
	Size    int
}

func (f *StructFieldSymbol) Kind() SymbolKind            { return KindStructField }
func (f *StructFieldSymbol) GetSymbolTable() *SymbolTable { return nil }

// UnionDefSymbol is a tagged-union (sum) type.
type UnionDefSymbol struct {
	symbolHeader
	GenericParams []*GenericParamSymbol
	Cases         []*UnionCaseSymbol
	stage         SemaStage
}

func (u *UnionDefSymbol) Kind() SymbolKind            { return KindUnionDef }
func (u *UnionDefSymbol) GetSymbolTable() *SymbolTable { return nil }

// UnionCaseSymbol is one case of a union.
type UnionCaseSymbol struct {
	symbolHeader
	Fields []*StructFieldSymbol
	Union  *UnionDefSymbol
}

func (u *UnionCaseSymbol) Kind() SymbolKind            { return KindUnionCase }
func (u *UnionCaseSymbol) GetSymbolTable() *SymbolTable { return nil }

// ProtoDefSymbol declares a protocol (interface).
type ProtoDefSymbol struct {
	symbolHeader
	Methods []*FuncDeclSymbol
	stage   SemaStage
}

func (p *ProtoDefSymbol) Kind() SymbolKind            { return KindProtoDef }
func (p *ProtoDefSymbol) GetSymbolTable() *SymbolTable { return nil }

// EnumDefSymbol is a plain enumeration.
type EnumDefSymbol struct {
	symbolHeader
	Variants []*EnumVariantSymbol
	stage    SemaStage
}

func (e *EnumDefSymbol) Kind() SymbolKind            { return KindEnumDef }
func (e *EnumDefSymbol) GetSymbolTable() *SymbolTable { return nil }

// EnumVariantSymbol is one member of an EnumDefSymbol.
type EnumVariantSymbol struct {
	symbolHeader
	Value int64
	Enum  *EnumDefSymbol
}

func (e *EnumVariantSymbol) Kind() SymbolKind            { return KindEnumVariant }
func (e *EnumVariantSymbol) GetSymbolTable() *SymbolTable { return nil }

// ConstDefSymbol is a module-level constant.
type ConstDefSymbol struct {
	symbolHeader
	Type  Expr
	Value Expr
	stage SemaStage
}

func (c *ConstDefSymbol) Kind() SymbolKind            { return KindConstDef }
func (c *ConstDefSymbol) GetSymbolTable() *SymbolTable { return nil }

// TypeAliasSymbol resolves to another type.
type TypeAliasSymbol struct {
	symbolHeader
	Target   Expr
	Resolved bool
}

func (t *TypeAliasSymbol) Kind() SymbolKind            { return KindTypeAlias }
func (t *TypeAliasSymbol) GetSymbolTable() *SymbolTable { return nil }

// VarDeclSymbol is a module-level variable.
type VarDeclSymbol struct {
	symbolHeader
	Type  Expr
	Value Expr
	stage SemaStage
}

func (v *VarDeclSymbol) Kind() SymbolKind            { return KindVarDecl }
func (v *VarDeclSymbol) GetSymbolTable() *SymbolTable { return nil }

// NativeVarDeclSymbol is a module-level variable defined externally.
type NativeVarDeclSymbol struct {
	symbolHeader
	Type  Expr
	stage SemaStage
}

func (v *NativeVarDeclSymbol) Kind() SymbolKind            { return KindNativeVarDecl }
func (v *NativeVarDeclSymbol) GetSymbolTable() *SymbolTable { return nil }

// LocalSymbol is a block-scoped local variable.
type LocalSymbol struct {
	symbolHeader
	Type  Expr
	Value Expr
}

func (l *LocalSymbol) Kind() SymbolKind            { return KindLocal }
func (l *LocalSymbol) GetSymbolTable() *SymbolTable { return nil }

// ParamSymbol is a function parameter.
type ParamSymbol struct {
	symbolHeader
	Type   Expr
	IsSelf bool
}

func (p *ParamSymbol) Kind() SymbolKind            { return KindParam }
func (p *ParamSymbol) GetSymbolTable() *SymbolTable { return nil }

// UseIdentSymbol binds one name to a target symbol resolved elsewhere.
type UseIdentSymbol struct {
	symbolHeader
	Target Symbol
}

func (u *UseIdentSymbol) Kind() SymbolKind            { return KindUseIdent }
func (u *UseIdentSymbol) GetSymbolTable() *SymbolTable { return nil }

// NewUseIdentSymbol builds a UseIdentSymbol bound under name.
func NewUseIdentSymbol(name string, ident ast.Pos, target Symbol) *UseIdentSymbol {
	return &UseIdentSymbol{symbolHeader: symbolHeader{Name: name, Ident: ident}, Target: target}
}

// UseRebindSymbol binds a local name to a different target symbol.
type UseRebindSymbol struct {
	symbolHeader
	Target Symbol
}

func (u *UseRebindSymbol) Kind() SymbolKind            { return KindUseRebind }
func (u *UseRebindSymbol) GetSymbolTable() *SymbolTable { return nil }

// NewUseRebindSymbol builds a UseRebindSymbol bound under alias.
func NewUseRebindSymbol(alias string, ident ast.Pos, target Symbol) *UseRebindSymbol {
	return &UseRebindSymbol{symbolHeader: symbolHeader{Name: alias, Ident: ident}, Target: target}
}

// OverloadSetSymbol groups >= 2 FuncDefSymbols sharing a name with distinct
// parameter signatures.
type OverloadSetSymbol struct {
	symbolHeader
	Funcs []*FuncDefSymbol
}

func (o *OverloadSetSymbol) Kind() SymbolKind            { return KindOverloadSet }
func (o *OverloadSetSymbol) GetSymbolTable() *SymbolTable { return nil }

// GenericArgSymbol names a type argument bound in a specialization map.
type GenericArgSymbol struct {
	symbolHeader
	Value Expr
}

func (g *GenericArgSymbol) Kind() SymbolKind            { return KindGenericArg }
func (g *GenericArgSymbol) GetSymbolTable() *SymbolTable { return nil }

// GenericParamSymbol is an unbound type parameter on a generic def.
type GenericParamSymbol struct {
	symbolHeader
}

func (g *GenericParamSymbol) Kind() SymbolKind            { return KindGenericParam }
func (g *GenericParamSymbol) GetSymbolTable() *SymbolTable { return nil }

// GuardedSymbol wraps a symbol while its containing declaration is being
// analyzed, so a recursive lookup during that analysis is detectable as a
// definition cycle.
type GuardedSymbol struct {
	symbolHeader
	Inner Symbol
}

func (g *GuardedSymbol) Kind() SymbolKind            { return KindGuardedSymbol }
func (g *GuardedSymbol) GetSymbolTable() *SymbolTable { return g.Inner.GetSymbolTable() }

// SemaStage is the monotonic progress marker tracked per declaration. Stages
// never regress.
type SemaStage int

const (
	StageNone SemaStage = iota
	StageName
	StageInterface
	StageBody
	StageResources
)

// CanAdvanceTo reports whether moving from s to next respects monotonicity.
func (s SemaStage) CanAdvanceTo(next SemaStage) bool { return next >= s }

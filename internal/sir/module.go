package sir

// Module is the SIR representation of a single source file's worth of
// declarations: a root DeclBlock plus the arenas that own every node
// reachable from it. A Module outlives any one analysis pass; its arenas
// are reused across incremental reloads until the module's source file is
// edited or removed.
type Module struct {
	Path ModulePath
	Root *DeclBlock
	Sym  *ModuleSymbol

	// FilePath is the originating source file, empty for synthetic modules
	// (e.g. the builtin preamble module).
	FilePath string

	arenas moduleArenas
}

// NewModule creates an empty module at path, rooted under a SymbolTable
// chained to preamble (the builtin scope), or nil for the preamble module
// itself.
func NewModule(path ModulePath, filePath string, preamble *SymbolTable) *Module {
	m := &Module{Path: path, FilePath: filePath}
	m.Root = NewDeclBlock(preamble)
	m.arenas = newModuleArenas()
	m.Sym = &ModuleSymbol{Mod: m}
	m.Sym.Name = path.Last()
	return m
}

// Arena exposes the module's node arenas to sema/specialize for allocating
// new SIR nodes during analysis.
func (m *Module) Arena() *moduleArenas { return &m.arenas }

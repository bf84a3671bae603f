package symtab

import "github.com/banjo-lang/banjoc/internal/sir"

// builtinTypeNames are the primitive struct-shaped types every module sees
// without a use clause.
var builtinTypeNames = []string{
	"i8", "i16", "i32", "i64",
	"u8", "u16", "u32", "u64",
	"f32", "f64",
	"bool", "string", "void",
}

// InjectPreamble populates mgr.Unit.Preamble with the builtin type symbols
// every module's root table chains up to. Call this once, before loading
// any user module, so their SymbolTable.Lookup calls can resolve primitive
// type names.
func InjectPreamble(mgr *ModuleManager) {
	table := mgr.Unit.Preamble.Root.Table
	for _, name := range builtinTypeNames {
		if _, exists := table.LookUpLocal(name); exists {
			continue
		}
		table.Insert(name, &sir.StructDefSymbol{})
		sym, _ := table.LookUpLocal(name)
		sym.(*sir.StructDefSymbol).Name = name
	}
}

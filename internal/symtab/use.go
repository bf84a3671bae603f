package symtab

import (
	"fmt"

	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/sir"
)

// SymbolNotFoundError reports that Member could not be resolved as a
// member of Container — an existing module or symbol that simply doesn't
// export that name, distinct from a path whose leading segment names no
// loadable module at all.
type SymbolNotFoundError struct {
	Member    string
	Container string
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("cannot find '%s' in '%s'", e.Member, e.Container)
}

// ResolveUse binds a single use item against the module graph, walking its
// dot-separated path left to right: the first segment names a top-level
// module (resolved through mgr.Unit), and every subsequent segment is
// looked up in the symbol found so far — first as a sub-module (so
// "std.io.read" can cross from the "std.io" module into a symbol it
// exports), then as a plain entry of the current symbol's table. Only
// module symbols expose a table, so a path that continues past a struct or
// other non-module symbol (e.g. "mymodule.MyStruct.Foo") fails with a
// SymbolNotFoundError.
//
// UseIdentKind binds the resolved symbol under its own last-segment name.
// UseRebindKind binds it under item.Alias instead. UseDotExprKind produces
// a symbol usable as the left-hand side of a further DotExpr rather than
// binding any name at all (the caller decides whether to insert it).
func ResolveUse(mgr *ModuleManager, item *ast.UseItem) (sir.Symbol, error) {
	if len(item.Path) == 0 {
		return nil, fmt.Errorf("symtab: empty use path at %s", item.Pos)
	}

	modPath := sir.NewModulePath(item.Path[0])
	rec, ok := mgr.Get(modPath)
	if !ok {
		var err error
		rec, err = mgr.Load(modPath)
		if err != nil {
			return nil, err
		}
	}

	var current sir.Symbol = rec.Module.Sym
	consumed := sir.NewModulePath(item.Path[0])

	for _, seg := range item.Path[1:] {
		extended := sir.NewModulePath(append(append([]string(nil), consumed.Segments...), seg)...)
		if subRec, ok := mgr.Get(extended); ok {
			current = subRec.Module.Sym
			consumed = extended
			continue
		}

		table := current.GetSymbolTable()
		if table == nil {
			return nil, &SymbolNotFoundError{Member: seg, Container: consumed.String()}
		}
		next, ok := table.LookUpLocal(seg)
		if !ok {
			return nil, &SymbolNotFoundError{Member: seg, Container: consumed.String()}
		}
		current = next
		consumed = extended
	}

	return current, nil
}

// BindUse resolves item and inserts it into scope under the name dictated
// by item.Kind: the final path segment for UseIdentKind, item.Alias for
// UseRebindKind. UseDotExprKind binds nothing; the resolved symbol is
// returned for the caller to embed directly into a DotExpr chain.
func BindUse(mgr *ModuleManager, scope *sir.SymbolTable, item *ast.UseItem) (sir.Symbol, error) {
	target, err := ResolveUse(mgr, item)
	if err != nil {
		return nil, err
	}

	switch item.Kind {
	case ast.UseRebindKind:
		bound := sir.NewUseRebindSymbol(item.Alias, item.Pos, target)
		if !scope.Insert(item.Alias, bound) {
			return nil, fmt.Errorf("symtab: %q already bound in scope", item.Alias)
		}
		return bound, nil
	case ast.UseDotExprKind:
		return target, nil
	default: // ast.UseIdentKind
		name := item.Path[len(item.Path)-1]
		bound := sir.NewUseIdentSymbol(name, item.Pos, target)
		if !scope.Insert(name, bound) {
			return nil, fmt.Errorf("symtab: %q already bound in scope", name)
		}
		return bound, nil
	}
}

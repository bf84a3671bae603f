package sema

import (
	"errors"

	"github.com/banjo-lang/banjoc/internal/ast"
	"github.com/banjo-lang/banjoc/internal/report"
	"github.com/banjo-lang/banjoc/internal/sir"
	"github.com/banjo-lang/banjoc/internal/symtab"
)

// resolveUses is the USE sub-step of the NAME stage: it binds every use
// clause in file into mod's root table before any declaration's interface
// or body is resolved, so a type annotation or call expression anywhere in
// the module can already see an imported name.
func (a *Analyzer) resolveUses(mod *sir.Module, file *ast.File) Result {
	result := Success
	for _, item := range file.Uses {
		sym, err := symtab.BindUse(a.Mgr, mod.Root.Table, item)
		if err != nil {
			code := report.SEMA003ModuleNotFound
			var notFound *symtab.SymbolNotFoundError
			if errors.As(err, &notFound) {
				code = report.SEMA002SymbolNotFound
			}
			result = mergeResult(result, a.insert(a.newError(report.PhaseSema, code).
				Message("%s", err.Error()).
				At(ast.Span{Start: item.Pos, End: item.Pos})))
			continue
		}
		a.addSymbolUse(item.Pos, sym)
	}
	return result
}

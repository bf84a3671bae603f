package sema

import "github.com/banjo-lang/banjoc/internal/sir"

// primitiveSizes gives the byte width of each builtin scalar type. This is
// a placeholder data layout: a real target's word size (from the pointer
// size implied by config.Config.TargetTriple) should replace the
// hard-coded 8-byte pointer/address width once internal/ssa's target data
// layout exists; until then every target is sized as if it were 64-bit.
var primitiveSizes = map[string]int{
	"i8": 1, "u8": 1, "bool": 1,
	"i16": 2, "u16": 2,
	"i32": 4, "u32": 4, "f32": 4,
	"i64": 8, "u64": 8, "f64": 8,
	"void": 0,
}

// sizeOf computes the layout size of a resolved type expression: a
// primitive's fixed width, a pointer's word size, or a struct's own
// previously computed Size. Anything else (an unresolved reference left
// over from a failed lookup, a function type) sizes as a pointer, which is
// the right answer for every case this analyzer can actually produce one
// for (closures and function values are always passed by reference).
func sizeOf(typ sir.Expr) int {
	switch v := typ.(type) {
	case *sir.UnaryExpr:
		if v.Op == sir.OpRef {
			return 8
		}
	case *sir.SymbolExpr:
		switch sym := v.Sym.(type) {
		case *sir.StructDefSymbol:
			if size, ok := primitiveSizes[sym.Name]; ok {
				return size
			}
			return sym.Size
		}
	}
	return 8
}

// structSize sums field sizes with no alignment padding: a simplification
// of real struct layout, acceptable here because internal/ssa (not yet
// exercising field offsets) is the only consumer of StructDefSymbol.Size
// so far.
func structSize(fields []*sir.StructFieldSymbol) int {
	total := 0
	for _, f := range fields {
		total += f.Size
	}
	return total
}

package ssa

// Primitive is the machine-level type every SSA value reduces to; struct and
// array types from the source language are lowered to sequences of these by
// the time they reach SSA.
type Primitive int

const (
	VOID Primitive = iota
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
	ADDR
)

var primitiveNames = [...]string{
	"void", "i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64", "f32", "f64", "addr",
}

func (p Primitive) String() string {
	if int(p) < 0 || int(p) >= len(primitiveNames) {
		return "void"
	}
	return primitiveNames[p]
}

// Size returns the primitive's size in bytes on a 64-bit target.
func (p Primitive) Size() int {
	switch p {
	case VOID:
		return 0
	case I8, U8:
		return 1
	case I16, U16:
		return 2
	case I32, U32, F32:
		return 4
	case I64, U64, F64, ADDR:
		return 8
	default:
		return 0
	}
}

// IsFloat reports whether p is one of the floating-point primitives, which
// selects the FADD/FSUB/... family of opcodes and the FCJMP terminator
// instead of their integer counterparts.
func (p Primitive) IsFloat() bool {
	return p == F32 || p == F64
}

// Type is an SSA value's static type: a bare primitive, or (when Pointee is
// non-nil) an ADDR known to point at a specific primitive layout — used by
// MEMBERPTR/OFFSETPTR to compute a field or element address without
// re-deriving the pointee's size from the source type at every use.
type Type struct {
	Primitive Primitive
	Pointee   *Type
}

func (t Type) String() string {
	if t.Primitive == ADDR && t.Pointee != nil {
		return "addr<" + t.Pointee.String() + ">"
	}
	return t.Primitive.String()
}

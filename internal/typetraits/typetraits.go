// Package typetraits gives the property-synthesis core a structured type
// code plus the small set of predicate queries it is allowed to ask of it,
// in place of a raw type-tag bitfield. Nothing in internal/properties may
// reach past this package's exported surface to inspect how a Code is
// laid out.
package typetraits

// BaseType names the base types the synthesis core cares about. C++ base
// types outside this set (e.g. long long, wchar_t) are represented as
// Object by the upstream type tagger and never reach here directly.
type BaseType int

const (
	Void BaseType = iota
	Int
	IdType
	Float
	Double
	Char
	UnsignedInt
	UnsignedChar
	Bool
	Object
)

func (b BaseType) String() string {
	switch b {
	case Void:
		return "void"
	case Int:
		return "int"
	case IdType:
		return "idtype"
	case Float:
		return "float"
	case Double:
		return "double"
	case Char:
		return "char"
	case UnsignedInt:
		return "unsignedint"
	case UnsignedChar:
		return "unsignedchar"
	case Bool:
		return "bool"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Indirection names the shapes of pointer/reference wrapping a base type
// can carry.
type Indirection int

const (
	None Indirection = iota
	Ref
	Pointer
	ConstPointer
	PointerPointer
	PointerRef
	ConstPointerRef
)

// Qualifier is a bitmask of orthogonal modifiers (const, static, ...).
// The synthesis core reads individual bits only through IsConst and
// IsStatic, and clears them all with StripQualifier.
type Qualifier uint8

const (
	QualifierNone   Qualifier = 0
	QualifierConst  Qualifier = 1 << 0
	QualifierStatic Qualifier = 1 << 1
)

// Code is a structured type record: base type, indirection, and
// qualifiers, in place of a bare machine word.
type Code struct {
	Base        BaseType
	Indirection Indirection
	Qualifiers  Qualifier
}

// BaseTypeOf returns the base type tag of code.
func BaseTypeOf(code Code) BaseType { return code.Base }

// IndirectionOf returns the indirection kind of code.
func IndirectionOf(code Code) Indirection { return code.Indirection }

// HasQualifier reports whether code carries any qualifier bit.
func HasQualifier(code Code) bool { return code.Qualifiers != QualifierNone }

// StripQualifier returns code with all qualifier bits cleared.
func StripQualifier(code Code) Code {
	code.Qualifiers = QualifierNone
	return code
}

// IsIndirect reports whether code is a reference or any pointer shape.
func IsIndirect(code Code) bool {
	return code.Indirection != None
}

// IsPointer reports whether code is one of the pointer (not reference)
// indirection shapes.
func IsPointer(code Code) bool {
	switch code.Indirection {
	case Pointer, ConstPointer, PointerPointer:
		return true
	default:
		return false
	}
}

// IsConst reports whether code carries the const qualifier, either as a
// qualifier bit or as one of the const-indirection shapes.
func IsConst(code Code) bool {
	if code.Qualifiers&QualifierConst != 0 {
		return true
	}
	switch code.Indirection {
	case ConstPointer, ConstPointerRef:
		return true
	default:
		return false
	}
}

// IsStatic reports whether code carries the static qualifier.
func IsStatic(code Code) bool {
	return code.Qualifiers&QualifierStatic != 0
}

// Equal reports whether two codes are identical in base type and
// indirection, ignoring qualifiers (Matcher rule 5 strips qualifiers
// before ever comparing types).
func Equal(a, b Code) bool {
	return a.Base == b.Base && a.Indirection == b.Indirection
}

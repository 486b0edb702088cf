package properties

import "github.com/cxxprops/cxxprops/internal/typetraits"

// Arg is one formal parameter of a Function.
type Arg struct {
	Type         typetraits.Code
	ClassName    string
	ElementCount int
}

// Function is the parsed representation of one method, as produced by the
// (out-of-scope) C++ header parser. The synthesis core treats every field
// here as already-resolved input; it performs no parsing of its own.
type Function struct {
	Name            string
	ReturnType      typetraits.Code
	ReturnClassName string
	Args            []Arg
	HasHint         bool
	HintSize        int
	IsOperator      bool
	IsLegacy        bool
	IsPublic        bool
	IsProtected     bool
	ArrayFailure    bool
	Comment         string
}

// ArgCount is the number of formal parameters.
func (f *Function) ArgCount() int { return len(f.Args) }

// IsPrivate reports whether f is neither public nor protected.
func (f *Function) IsPrivate() bool { return !f.IsPublic && !f.IsProtected }

// Class is a frozen description of one C++ class: its name plus the full
// list of member functions to synthesize properties from.
type Class struct {
	Name      string
	Functions []Function
}

// MethodAttributes is the intermediate record AttributeExtractor produces
// for every eligible Function (see attributes.go).
type MethodAttributes struct {
	Name    string
	Comment string

	HasProperty bool

	Type      typetraits.Code
	Count     int
	ClassName string

	IsPublic    bool
	IsProtected bool
	IsLegacy    bool
	IsStatic    bool

	IsHinted     bool
	IsMultiValue bool
	IsIndexed    bool
	IsEnumerated bool
	IsBoolean    bool

	IsRepeat bool

	// function is the originating Function.
	function *Function
}

// Role is the one-of-25 part a single method plays with respect to the
// property it belongs to.
type Role int

const (
	RoleNone Role = iota
	BasicGet
	BasicSet
	MultiGet
	MultiSet
	IndexGet
	IndexSet
	NthGet
	NthSet
	RhsGet
	IndexRhsGet
	NthRhsGet
	StringGet
	EnumSet
	BoolOn
	BoolOff
	MinGet
	MaxGet
	GetNum
	SetNum
	BasicAdd
	MultiAdd
	IndexAdd
	BasicRem
	IndexRem
	RemoveAll
	roleCount
)

// Bit returns the single-bit mask role occupies within an access-level
// bitfield. RoleNone has no bit.
func (r Role) Bit() uint32 {
	if r <= RoleNone || r >= roleCount {
		return 0
	}
	return 1 << uint(r-1)
}

var roleNames = [...]string{
	RoleNone:    "",
	BasicGet:    "BASIC_GET",
	BasicSet:    "BASIC_SET",
	MultiGet:    "MULTI_GET",
	MultiSet:    "MULTI_SET",
	IndexGet:    "INDEX_GET",
	IndexSet:    "INDEX_SET",
	NthGet:      "NTH_GET",
	NthSet:      "NTH_SET",
	RhsGet:      "RHS_GET",
	IndexRhsGet: "INDEX_RHS_GET",
	NthRhsGet:   "NTH_RHS_GET",
	StringGet:   "STRING_GET",
	EnumSet:     "ENUM_SET",
	BoolOn:      "BOOL_ON",
	BoolOff:     "BOOL_OFF",
	MinGet:      "MIN_GET",
	MaxGet:      "MAX_GET",
	GetNum:      "GET_NUM",
	SetNum:      "SET_NUM",
	BasicAdd:    "BASIC_ADD",
	MultiAdd:    "MULTI_ADD",
	IndexAdd:    "INDEX_ADD",
	BasicRem:    "BASIC_REM",
	IndexRem:    "INDEX_REM",
	RemoveAll:   "REMOVEALL",
}

// RoleName returns the stable canonical token for role, or "" for RoleNone
// or any out-of-range value.
func RoleName(role Role) string {
	if role < RoleNone || int(role) >= len(roleNames) {
		return ""
	}
	return roleNames[role]
}

// Property is one discovered logical attribute of a class.
type Property struct {
	Name      string
	Type      typetraits.Code
	Count     int
	ClassName string
	IsStatic  bool

	PublicMethods    uint32
	ProtectedMethods uint32
	PrivateMethods   uint32
	LegacyMethods    uint32

	EnumConstantNames []string

	Comment string
}

// addRole ORs role's bit into the bitfield matching access, and into
// LegacyMethods as well when legacy is true.
func (p *Property) addRole(role Role, isPublic, isProtected, legacy bool) {
	bit := role.Bit()
	if bit == 0 {
		return
	}
	switch {
	case isPublic:
		p.PublicMethods |= bit
	case isProtected:
		p.ProtectedMethods |= bit
	default:
		p.PrivateMethods |= bit
	}
	if legacy {
		p.LegacyMethods |= bit
	}
}

// addEnumConstant appends name to EnumConstantNames if not already present.
func (p *Property) addEnumConstant(name string) {
	if name == "" {
		return
	}
	for _, existing := range p.EnumConstantNames {
		if existing == name {
			return
		}
	}
	p.EnumConstantNames = append(p.EnumConstantNames, name)
}

// ClassProperties is the immutable result of synthesizing a Class's
// properties: the ordered list of discovered Property records, plus, for
// every eligible method, the role it was assigned and the index of the
// property it belongs to (-1 if it was never matched).
type ClassProperties struct {
	Properties []Property

	// MethodRole and MethodProperty are parallel to the class's eligible
	// method list in the order AttributeExtractor produced it (which is
	// the same order as Class.Functions, with ineligible functions
	// carrying a RoleNone/-1 pair rather than being omitted, so a caller
	// can always index by the original Function index).
	MethodRole     []Role
	MethodProperty []int
}

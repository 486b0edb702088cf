package properties

import "github.com/cxxprops/cxxprops/internal/typetraits"

// phasePredicate reports whether attrs is an eligible seed candidate for
// one of the sweep phases below.
type phasePredicate func(attrs *MethodAttributes) bool

var sweepPhases = []phasePredicate{
	// 1: setters, except enumerated setters and SetNumberOf setters.
	func(a *MethodAttributes) bool {
		return IsSet(a.Name) && !a.IsEnumerated && !IsSetNumberOf(a.Name)
	},
	// 2: SetNumberOf setters whose indexed-set partner wasn't absorbed in
	// phase 1's fixed-point sweep.
	func(a *MethodAttributes) bool {
		return IsSetNumberOf(a.Name)
	},
	// 3: getters, except GetAsString and GetNumberOf.
	func(a *MethodAttributes) bool {
		return IsGet(a.Name) && !IsAsString(a.Name) && !IsGetNumberOf(a.Name)
	},
	// 4: GetNumberOf getters.
	func(a *MethodAttributes) bool {
		return IsGetNumberOf(a.Name)
	},
	// 5: Add* methods.
	func(a *MethodAttributes) bool {
		return IsAdd(a.Name)
	},
}

// initPropertyType computes the seed property's type via the same
// qualifier-stripping and reference-folding rules Matcher applies, plus
// one special case: a boolean or enumerated seed always sets the
// property type to plain Int.
func initPropertyType(seed *MethodAttributes) typetraits.Code {
	if seed.IsBoolean || seed.IsEnumerated {
		return typetraits.Code{Base: typetraits.Int}
	}

	t := typetraits.StripQualifier(seed.Type)
	switch t.Indirection {
	case typetraits.Ref:
		t.Indirection = typetraits.None
	case typetraits.PointerRef:
		t.Indirection = typetraits.Pointer
	case typetraits.ConstPointerRef:
		t.Indirection = typetraits.ConstPointer
	}

	if seed.IsMultiValue {
		switch t.Indirection {
		case typetraits.None:
			t.Indirection = typetraits.Pointer
		case typetraits.Pointer:
			t.Indirection = typetraits.PointerPointer
		}
	}

	return t
}

// seedPropertyName computes the property name a fresh property takes from
// its seed method. GetNumberOf/SetNumberOf seeds (phases 2 and 4) strip
// the full keyword rather than just the generic 3-character Set/Get
// prefix, since there is no pre-existing property name to test against
// yet; that test only matters once a candidate property already exists,
// which is Match's concern when admitting the same kind of method later.
func seedPropertyName(seed *MethodAttributes) string {
	if IsGetNumberOf(seed.Name) || IsSetNumberOf(seed.Name) {
		return seed.Name[len("GetNumberOf"):]
	}
	return StripPrefix(seed.Name)
}

func newSeedProperty(seed *MethodAttributes) Property {
	return Property{
		Name:      seedPropertyName(seed),
		Type:      initPropertyType(seed),
		Count:     seed.Count,
		ClassName: seed.ClassName,
		Comment:   seed.Comment,
	}
}

// BuildProperties synthesizes the property model of a class from its
// member functions. It is pure and allocation-only; there is no separate
// teardown step in Go, since the returned *ClassProperties becomes
// garbage once it is no longer referenced.
func BuildProperties(class *Class) *ClassProperties {
	n := len(class.Functions)
	attrs := make([]MethodAttributes, n)
	matched := make([]bool, n)

	for i := range class.Functions {
		a, ok := Extract(&class.Functions[i])
		if !ok {
			matched[i] = true
			continue
		}
		attrs[i] = a
	}

	dominatedBy, dominates := DetectRepeats(attrs)
	for i := range attrs {
		if matched[i] {
			continue
		}
		if dominatedBy[i] != -1 {
			matched[i] = true
		}
	}

	result := &ClassProperties{
		MethodRole:     make([]Role, n),
		MethodProperty: make([]int, n),
	}
	for i := range result.MethodProperty {
		result.MethodProperty[i] = -1
	}

	admit := func(i, propIdx int, role Role) {
		matched[i] = true
		result.MethodRole[i] = role
		result.MethodProperty[i] = propIdx
		for _, d := range dominates[i] {
			matched[d] = true
			result.MethodRole[d] = role
			result.MethodProperty[d] = propIdx
		}
	}

	for _, seedOK := range sweepPhases {
		for i := range attrs {
			if matched[i] || !seedOK(&attrs[i]) {
				continue
			}

			prop := newSeedProperty(&attrs[i])
			result.Properties = append(result.Properties, prop)
			propIdx := len(result.Properties) - 1
			p := &result.Properties[propIdx]

			role := ClassifyRole(&attrs[i], false)
			p.addRole(role, attrs[i].IsPublic, attrs[i].IsProtected, attrs[i].IsLegacy)
			if attrs[i].IsStatic {
				p.IsStatic = true
			}
			if attrs[i].IsEnumerated {
				p.addEnumConstant(ExtractEnumConstant(attrs[i].Name, p.Name))
			}
			admit(i, propIdx, role)

			for {
				admittedAny := false
				for k := range attrs {
					if matched[k] {
						continue
					}
					ok, longMatch := Match(p, &attrs[k])
					if !ok {
						continue
					}
					r := ClassifyRole(&attrs[k], !longMatch)
					p.addRole(r, attrs[k].IsPublic, attrs[k].IsProtected, attrs[k].IsLegacy)
					if attrs[k].IsStatic {
						p.IsStatic = true
					}
					if attrs[k].IsEnumerated {
						p.addEnumConstant(ExtractEnumConstant(attrs[k].Name, p.Name))
					}
					admit(k, propIdx, r)
					admittedAny = true
				}
				if !admittedAny {
					break
				}
			}
		}
	}

	return result
}

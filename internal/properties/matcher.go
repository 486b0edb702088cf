package properties

import "github.com/cxxprops/cxxprops/internal/typetraits"

// hasRole reports whether property already carries role in any access
// level's bitfield.
func hasRole(p *Property, role Role) bool {
	bit := role.Bit()
	return (p.PublicMethods|p.ProtectedMethods|p.PrivateMethods)&bit != 0
}

// Match decides whether meth belongs to the tentative property p. It
// returns whether meth is admitted and, if so, whether the match was a
// "long-form" match: the property's own name already embeds the
// NumberOf/MinValue/MaxValue/AsString keyword the method's name carries,
// so RoleClassifier should assign the basic role rather than the
// specialized one.
func Match(p *Property, meth *MethodAttributes) (matched, longMatch bool) {
	isNumberOf := IsGetNumberOf(meth.Name) || IsSetNumberOf(meth.Name)

	var name string
	if isNumberOf {
		if startsWithUpperPrefix(p.Name, "NumberOf") {
			longMatch = true
			name = StripPrefix(meth.Name)
		} else {
			name = meth.Name[len("GetNumberOf"):]
		}
	} else {
		name = StripPrefix(meth.Name)
	}

	if len(name) < len(p.Name) || name[:len(p.Name)] != p.Name {
		return false, false
	}
	suffix := name[len(p.Name):]

	if !IsValidSuffix(meth.Name, p.Name, suffix) {
		return false, false
	}

	if !isNumberOf && suffix == "" {
		if IsGetMinValue(meth.Name) || IsGetMaxValue(meth.Name) || IsAsString(meth.Name) {
			longMatch = true
		}
	}

	// Rule 4: special memberships independent of type equality.
	if IsRemoveAll(meth.Name) && meth.Type.Base == typetraits.Void {
		return hasRole(p, BasicAdd) || hasRole(p, MultiAdd), longMatch
	}
	if IsGetNumberOf(meth.Name) {
		isPlainInt := meth.Type.Indirection == typetraits.None &&
			(meth.Type.Base == typetraits.Int || meth.Type.Base == typetraits.IdType)
		return isPlainInt && (hasRole(p, IndexGet) || hasRole(p, NthGet)), longMatch
	}
	if IsSetNumberOf(meth.Name) {
		isPlainInt := meth.Type.Indirection == typetraits.None &&
			(meth.Type.Base == typetraits.Int || meth.Type.Base == typetraits.IdType)
		return isPlainInt && (hasRole(p, IndexSet) || hasRole(p, NthSet)), longMatch
	}

	effective := typetraits.StripQualifier(meth.Type)
	switch effective.Indirection {
	case typetraits.Ref:
		effective.Indirection = typetraits.None
	case typetraits.PointerRef:
		effective.Indirection = typetraits.Pointer
	case typetraits.ConstPointerRef:
		effective.Indirection = typetraits.ConstPointer
	}

	if meth.IsMultiValue {
		switch effective.Indirection {
		case typetraits.None:
			effective.Indirection = typetraits.Pointer
		case typetraits.Pointer:
			effective.Indirection = typetraits.PointerPointer
		default:
			return false, longMatch
		}
	}

	if meth.IsBoolean || meth.IsEnumerated || IsAsString(meth.Name) {
		if IsAsString(meth.Name) {
			if effective.Base != typetraits.Char || !typetraits.IsPointer(effective) {
				return false, longMatch
			}
		}
		plainIntegral := p.Type.Indirection == typetraits.None &&
			(p.Type.Base == typetraits.Int || p.Type.Base == typetraits.UnsignedInt ||
				p.Type.Base == typetraits.UnsignedChar || (meth.IsBoolean && p.Type.Base == typetraits.Bool))
		if plainIntegral {
			effective = p.Type
		}
	}

	if !typetraits.Equal(effective, p.Type) || meth.Count != p.Count {
		return false, longMatch
	}

	if p.Type.Base == typetraits.Object {
		if effective.Indirection != typetraits.Pointer || p.Count != 0 || meth.IsMultiValue || meth.ClassName != p.ClassName {
			return false, longMatch
		}
	}

	return true, longMatch
}

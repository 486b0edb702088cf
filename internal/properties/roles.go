package properties

import "strings"

// ClassifyRole is the pure function determining the role a single method
// plays from its MethodAttributes plus shortForm (= !longMatch, the flag
// Matcher reported for this particular admission). The branch order
// below is deliberate: isSet is checked before isBoolean, so a
// pathological name that is both Set-shaped and ends in On/Off (e.g.
// "SetModeOn") is classified under the Set branch, not the boolean one.
// That is the literal, intentional priority order, not an oversight.
func ClassifyRole(meth *MethodAttributes, shortForm bool) Role {
	switch {
	case IsSet(meth.Name):
		return classifySet(meth, shortForm)
	case meth.IsBoolean:
		return classifyBoolean(meth)
	case IsGet(meth.Name):
		return classifyGet(meth, shortForm)
	case IsRemove(meth.Name):
		return classifyRemove(meth)
	case IsAdd(meth.Name):
		return classifyAdd(meth)
	default:
		return RoleNone
	}
}

func classifySet(meth *MethodAttributes, shortForm bool) Role {
	switch {
	case meth.IsEnumerated:
		return EnumSet
	case meth.IsIndexed:
		if IsSetNth(meth.Name) {
			return NthSet
		}
		return IndexSet
	case meth.IsMultiValue:
		return MultiSet
	case shortForm && IsSetNumberOf(meth.Name):
		return SetNum
	default:
		return BasicSet
	}
}

func classifyBoolean(meth *MethodAttributes) Role {
	if len(meth.Name) == 0 {
		return BoolOff
	}
	last := meth.Name[len(meth.Name)-1]
	if last == 'n' || last == 'N' {
		return BoolOn
	}
	return BoolOff
}

func classifyGet(meth *MethodAttributes, shortForm bool) Role {
	if shortForm {
		switch {
		case IsGetMinValue(meth.Name):
			return MinGet
		case IsGetMaxValue(meth.Name):
			return MaxGet
		case IsAsString(meth.Name):
			return StringGet
		}
	}

	switch {
	case meth.IsIndexed:
		if meth.Count > 0 && !meth.IsHinted {
			if IsGetNth(meth.Name) {
				return NthRhsGet
			}
			return IndexRhsGet
		}
		if IsGetNth(meth.Name) {
			return NthGet
		}
		return IndexGet
	case meth.IsMultiValue:
		return MultiGet
	case meth.Count > 0 && !meth.IsHinted:
		return RhsGet
	case shortForm && IsGetNumberOf(meth.Name):
		return GetNum
	default:
		return BasicGet
	}
}

func classifyRemove(meth *MethodAttributes) Role {
	switch {
	case IsRemoveAll(meth.Name):
		return RemoveAll
	case meth.IsIndexed:
		return IndexRem
	default:
		return BasicRem
	}
}

func classifyAdd(meth *MethodAttributes) Role {
	switch {
	case meth.IsIndexed:
		return IndexAdd
	case meth.IsMultiValue:
		return MultiAdd
	default:
		return BasicAdd
	}
}

// ExtractEnumConstant returns the state name embedded in an enumerated
// setter's suffix: the text immediately following the "To" infix that
// comes after propertyName in methodName. It returns "" if methodName
// does not actually carry propertyName followed by a To-suffix (callers
// only invoke this for methods already admitted as EnumSet, so that
// should not happen in practice).
func ExtractEnumConstant(methodName, propertyName string) string {
	name := StripPrefix(methodName)
	if len(name) < len(propertyName) || name[:len(propertyName)] != propertyName {
		return ""
	}
	suffix := name[len(propertyName):]

	idx := strings.Index(suffix, "To")
	if idx == -1 {
		return ""
	}
	return suffix[idx+2:]
}

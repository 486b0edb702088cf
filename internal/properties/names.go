// Package properties implements the property-synthesis core: it groups a
// class's methods by the logical property they access and classifies the
// role each method plays, per the stylized Set/Get/Add/Remove naming
// conventions documented alongside this package.
package properties

import "strings"

func isUpperOrDigit(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// hasUpperPrefix reports whether name starts with prefix and the character
// immediately following prefix is upper-case. All stylized prefixes in
// this package are strict in that sense.
func hasUpperPrefix(name, prefix string) bool {
	if len(name) <= len(prefix) || !strings.HasPrefix(name, prefix) {
		return false
	}
	c := name[len(prefix)]
	return c >= 'A' && c <= 'Z'
}

// IsSet reports whether name has the shape Set<Upper>...
func IsSet(name string) bool { return hasUpperPrefix(name, "Set") }

// IsSetNth reports whether name has the shape SetNth<Upper>...
func IsSetNth(name string) bool { return hasUpperPrefix(name, "SetNth") }

// IsSetNumberOf reports whether name has the shape SetNumberOf<Upper>...s
func IsSetNumberOf(name string) bool {
	return hasUpperPrefix(name, "SetNumberOf") && strings.HasSuffix(name, "s")
}

// IsGet reports whether name has the shape Get<Upper>...
func IsGet(name string) bool { return hasUpperPrefix(name, "Get") }

// IsGetNth reports whether name has the shape GetNth<Upper>...
func IsGetNth(name string) bool { return hasUpperPrefix(name, "GetNth") }

// IsGetNumberOf reports whether name has the shape GetNumberOf<Upper>...s
func IsGetNumberOf(name string) bool {
	return hasUpperPrefix(name, "GetNumberOf") && strings.HasSuffix(name, "s")
}

// IsAdd reports whether name has the shape Add<Upper>...
func IsAdd(name string) bool { return hasUpperPrefix(name, "Add") }

// IsRemove reports whether name has the shape Remove<Upper>...
func IsRemove(name string) bool { return hasUpperPrefix(name, "Remove") }

// IsRemoveAll reports whether name has the shape RemoveAll<Upper>...s
func IsRemoveAll(name string) bool {
	if !IsRemove(name) {
		return false
	}
	if len(name) <= 9 || name[6:9] != "All" || name[9] < 'A' || name[9] > 'Z' {
		return false
	}
	return strings.HasSuffix(name, "s")
}

// IsBoolean reports whether name ends in the boolean-toggle suffix On or
// Off, matched case-insensitively and without requiring the preceding
// character to be a word boundary. This means an ordinary word like
// "Button" registers as boolean (it ends in "on"). That is an inherited
// quirk, not a bug to silently fix. See the open-question tests.
func IsBoolean(name string) bool {
	if len(name) >= 3 && strings.EqualFold(name[len(name)-3:], "off") {
		return true
	}
	if len(name) >= 2 && strings.EqualFold(name[len(name)-2:], "on") {
		return true
	}
	return false
}

// IsEnumerated reports whether name is a Set* method whose tail contains
// the infix "To" (immediately followed by an upper-case letter or digit)
// starting at index 3 or later, i.e. anywhere after the "Set" prefix,
// including at the very start of the tail ("SetToAuto" matches). Words
// like "SetTolerance" do not match only because the character after "To"
// is lower-case; the scan does not understand what the tail means. A setter whose
// property name happens to embed "To<Upper>" anywhere past that floor is
// misclassified as enumerated. This is an inherited quirk, preserved
// intentionally; do not "fix" it without updating the invariant tests
// that pin the behavior.
func IsEnumerated(name string) bool {
	if !IsSet(name) {
		return false
	}
	for i := 3; i+1 < len(name); i++ {
		if name[i] == 'T' && name[i+1] == 'o' && i+2 < len(name) && isUpperOrDigit(name[i+2]) {
			return true
		}
	}
	return false
}

// IsAsString reports whether name is a Get* method ending in AsString,
// with enough length to carry a non-empty property name before it.
func IsAsString(name string) bool {
	return IsGet(name) && len(name) > 11 && strings.HasSuffix(name, "AsString")
}

// IsGetMinValue reports whether name is a Get* method ending in MinValue.
func IsGetMinValue(name string) bool {
	return IsGet(name) && len(name) > 11 && strings.HasSuffix(name, "MinValue")
}

// IsGetMaxValue reports whether name is a Get* method ending in MaxValue.
func IsGetMaxValue(name string) bool {
	return IsGet(name) && len(name) > 11 && strings.HasSuffix(name, "MaxValue")
}

// StripPrefix returns the portion of name past its recognized stylized
// prefix: 6 characters for SetNth/GetNth and for Remove, 9 characters for
// RemoveAll, 3 characters for Set/Get/Add. Names matching none of these
// shapes are returned unchanged. Order matters: the more specific shapes
// (RemoveAll, *Nth) must be checked before their shorter prefixes.
func StripPrefix(name string) string {
	switch {
	case IsRemoveAll(name):
		return name[9:]
	case IsSetNth(name), IsGetNth(name):
		return name[6:]
	case IsRemove(name):
		return name[6:]
	case IsSet(name), IsGet(name), IsAdd(name):
		return name[3:]
	default:
		return name
	}
}

// IsValidSuffix validates the trailing fragment of methodName that remains
// after stripping a candidate propertyName prefix, per the shape of
// methodName itself (not of suffix alone: a trailing "s" is only valid
// in specific contexts, for instance).
func IsValidSuffix(methodName, propertyName, suffix string) bool {
	if suffix == "" {
		return true
	}

	switch suffix {
	case "On", "Off":
		return true
	case "s":
		if IsRemoveAll(methodName) {
			return true
		}
		if (IsGetNumberOf(methodName) || IsSetNumberOf(methodName)) && !startsWithUpperPrefix(propertyName, "NumberOf") {
			return true
		}
		return false
	}

	if strings.HasPrefix(suffix, "To") && len(suffix) > 2 && isUpperOrDigit(suffix[2]) {
		return IsSet(methodName)
	}

	if strings.HasPrefix(suffix, "As") && len(suffix) > 2 && isUpperOrDigit(suffix[2]) {
		return IsGet(methodName)
	}

	if suffix == "MinValue" || suffix == "MaxValue" {
		return IsGet(methodName)
	}

	return false
}

// startsWithUpperPrefix reports whether s starts with prefix followed by
// an upper-case character (or is exactly prefix).
func startsWithUpperPrefix(s, prefix string) bool {
	if s == prefix {
		return true
	}
	return hasUpperPrefix(s, prefix)
}

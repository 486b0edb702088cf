package properties

import "github.com/cxxprops/cxxprops/internal/typetraits"

// Extract turns one Function into a MethodAttributes, or reports false
// when the function is not eligible at all (structural rejection, such
// as an operator overload, or a signature matching none of the
// recognized shapes).
func Extract(f *Function) (MethodAttributes, bool) {
	if f.Name == "" || f.ArrayFailure || f.IsOperator {
		return MethodAttributes{}, false
	}

	attrs := MethodAttributes{
		Name:        f.Name,
		Comment:     f.Comment,
		IsPublic:    f.IsPublic,
		IsProtected: f.IsProtected,
		IsLegacy:    f.IsLegacy,
		IsStatic:    typetraits.IsStatic(f.ReturnType),
		IsIndexed:   computeIsIndexed(f),
		function:    f,
	}

	if ok := extractGetterReturnsValue(f, &attrs); ok {
		return attrs, true
	}
	if ok := extractSetterOrRHSGetterOrAddRemove(f, &attrs); ok {
		return attrs, true
	}
	if ok := extractMultiValue(f, &attrs); ok {
		return attrs, true
	}
	if ok := extractVoidNoArgs(f, &attrs); ok {
		return attrs, true
	}

	return MethodAttributes{}, false
}

// computeIsIndexed reports whether f has a plain int/id-type first
// argument, paired either with a void-returning 2-argument setter shape
// (unless all arguments share the same type, which is reserved for
// multi-value setters, except SetNumberOf* which is always indexed), or
// with a non-void 1-argument getter shape.
func computeIsIndexed(f *Function) bool {
	if f.ArgCount() < 1 {
		return false
	}
	arg0 := f.Args[0]
	if arg0.Type.Indirection != typetraits.None {
		return false
	}
	if arg0.Type.Base != typetraits.Int && arg0.Type.Base != typetraits.IdType {
		return false
	}

	if f.ReturnType.Base == typetraits.Void && f.ArgCount() == 2 {
		if !sameType(f.Args[0].Type, f.Args[1].Type) || IsSetNumberOf(f.Name) {
			return true
		}
		return false
	}

	if f.ReturnType.Base != typetraits.Void && f.ArgCount() == 1 {
		return true
	}

	return false
}

func sameType(a, b typetraits.Code) bool {
	return typetraits.Equal(a, b)
}

func allSameType(args []Arg) bool {
	if len(args) < 2 {
		return false
	}
	for _, a := range args[1:] {
		if !sameType(args[0].Type, a.Type) {
			return false
		}
	}
	return true
}

// extractGetterReturnsValue recognizes a getter that returns its value
// directly: a non-void return with no arguments, or a single index
// argument when the method is indexed.
func extractGetterReturnsValue(f *Function, attrs *MethodAttributes) bool {
	if f.ReturnType.Base == typetraits.Void {
		return false
	}
	nonIndexShape := f.ArgCount() == 0
	indexShape := attrs.IsIndexed && f.ArgCount() == 1
	if !nonIndexShape && !indexShape {
		return false
	}

	attrs.HasProperty = true
	attrs.Type = f.ReturnType
	attrs.ClassName = f.ReturnClassName
	attrs.IsHinted = f.HasHint
	if f.HasHint {
		attrs.Count = f.HintSize
	}
	return true
}

// extractSetterOrRHSGetterOrAddRemove recognizes a void-returning method
// with one value argument (or one index argument plus one value argument
// when indexed): a setter, an RHS-style getter that writes through an
// indirect out-argument, or an add/remove-object method.
func extractSetterOrRHSGetterOrAddRemove(f *Function, attrs *MethodAttributes) bool {
	if f.ReturnType.Base != typetraits.Void {
		return false
	}
	nonIndexShape := f.ArgCount() == 1 && !attrs.IsIndexed
	indexShape := f.ArgCount() == 2 && attrs.IsIndexed
	if !nonIndexShape && !indexShape {
		return false
	}

	value := f.Args[len(f.Args)-1]

	switch {
	case IsSet(f.Name):
		attrs.HasProperty = true
		attrs.Type = value.Type
		attrs.ClassName = value.ClassName
		attrs.Count = value.ElementCount
		attrs.IsHinted = f.HasHint
		return true

	case IsGet(f.Name):
		if value.Type.Indirection == typetraits.None || typetraits.IsConst(value.Type) {
			return false
		}
		if value.ElementCount == 0 && !f.HasHint {
			return false
		}
		attrs.HasProperty = true
		attrs.Type = value.Type
		attrs.ClassName = value.ClassName
		attrs.Count = value.ElementCount
		if f.HasHint {
			attrs.Count = f.HintSize
			attrs.IsHinted = true
		}
		return true

	case IsAdd(f.Name), IsRemove(f.Name):
		if !typetraits.IsPointer(value.Type) || value.Type.Base != typetraits.Object {
			return false
		}
		attrs.HasProperty = true
		attrs.Type = value.Type
		attrs.ClassName = value.ClassName
		return true
	}

	return false
}

// extractMultiValue recognizes a method taking two or more arguments of
// identical type: a tuple-valued setter or adder (plain, non-indirect
// arguments) or getter (non-const reference arguments).
func extractMultiValue(f *Function, attrs *MethodAttributes) bool {
	if attrs.IsIndexed || f.ArgCount() < 2 || !allSameType(f.Args) {
		return false
	}
	shared := f.Args[0]

	switch {
	case IsSet(f.Name) && f.ReturnType.Base == typetraits.Void && shared.Type.Indirection == typetraits.None:
		attrs.HasProperty = true
		attrs.IsMultiValue = true
		attrs.Type = shared.Type
		attrs.Count = f.ArgCount()
		return true

	case IsGet(f.Name) && f.ReturnType.Base == typetraits.Void &&
		shared.Type.Indirection == typetraits.Ref && !typetraits.IsConst(shared.Type):
		attrs.HasProperty = true
		attrs.IsMultiValue = true
		attrs.Type = shared.Type
		attrs.Count = f.ArgCount()
		return true

	// Unlike the single-value Add branch above, which requires a void
	// return, a multi-value Add may also return an int or id-type.
	case IsAdd(f.Name) && shared.Type.Indirection == typetraits.None &&
		(f.ReturnType.Base == typetraits.Void || f.ReturnType.Base == typetraits.Int || f.ReturnType.Base == typetraits.IdType):
		attrs.HasProperty = true
		attrs.IsMultiValue = true
		attrs.Type = shared.Type
		attrs.Count = f.ArgCount()
		return true
	}

	return false
}

// extractVoidNoArgs recognizes a void-returning, argument-less method:
// boolean toggles, enumerated setters, and remove-all methods all take
// this shape.
func extractVoidNoArgs(f *Function, attrs *MethodAttributes) bool {
	if f.ReturnType.Base != typetraits.Void || f.ArgCount() != 0 {
		return false
	}

	switch {
	case IsBoolean(f.Name):
		attrs.HasProperty = true
		attrs.IsBoolean = true
		attrs.Type = typetraits.Code{Base: typetraits.Bool}
		return true

	case IsEnumerated(f.Name):
		attrs.HasProperty = true
		attrs.IsEnumerated = true
		attrs.Type = typetraits.Code{Base: typetraits.Int}
		return true

	case IsRemoveAll(f.Name):
		attrs.HasProperty = true
		return true
	}

	return false
}

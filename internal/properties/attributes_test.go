package properties

import (
	"testing"

	"github.com/cxxprops/cxxprops/internal/typetraits"
)

func TestExtractBasicGetterSetter(t *testing.T) {
	setter := &Function{
		Name:       "SetRadius",
		ReturnType: typetraits.Code{Base: typetraits.Void},
		Args:       []Arg{{Type: typetraits.Code{Base: typetraits.Double}}},
		IsPublic:   true,
	}
	attrs, ok := Extract(setter)
	if !ok {
		t.Fatal("expected SetRadius to be eligible")
	}
	if !attrs.HasProperty || attrs.Type.Base != typetraits.Double {
		t.Errorf("unexpected attrs for SetRadius: %+v", attrs)
	}

	getter := &Function{
		Name:       "GetRadius",
		ReturnType: typetraits.Code{Base: typetraits.Double},
		IsPublic:   true,
	}
	attrs, ok = Extract(getter)
	if !ok || attrs.Type.Base != typetraits.Double {
		t.Fatalf("unexpected attrs for GetRadius: %+v, ok=%v", attrs, ok)
	}
}

func TestExtractIndexed(t *testing.T) {
	setter := &Function{
		Name:       "SetPointAt",
		ReturnType: typetraits.Code{Base: typetraits.Void},
		Args: []Arg{
			{Type: typetraits.Code{Base: typetraits.Int}},
			{Type: typetraits.Code{Base: typetraits.Object}, ClassName: "Point"},
		},
		IsPublic: true,
	}
	attrs, ok := Extract(setter)
	if !ok || !attrs.IsIndexed {
		t.Fatalf("expected SetPointAt to be indexed, got %+v, ok=%v", attrs, ok)
	}

	getter := &Function{
		Name:       "GetPointAt",
		ReturnType: typetraits.Code{Base: typetraits.Object},
		Args:       []Arg{{Type: typetraits.Code{Base: typetraits.Int}}},
		IsPublic:   true,
	}
	attrs, ok = Extract(getter)
	if !ok || !attrs.IsIndexed {
		t.Fatalf("expected GetPointAt to be indexed, got %+v, ok=%v", attrs, ok)
	}
}

func TestExtractMultiValueSetter(t *testing.T) {
	f := &Function{
		Name:       "SetColor",
		ReturnType: typetraits.Code{Base: typetraits.Void},
		Args: []Arg{
			{Type: typetraits.Code{Base: typetraits.Int}},
			{Type: typetraits.Code{Base: typetraits.Int}},
			{Type: typetraits.Code{Base: typetraits.Int}},
		},
		IsPublic: true,
	}
	attrs, ok := Extract(f)
	if !ok || !attrs.IsMultiValue || attrs.Count != 3 {
		t.Fatalf("expected multi-value SetColor with count 3, got %+v, ok=%v", attrs, ok)
	}
}

func TestExtractBooleanAndEnumerated(t *testing.T) {
	boolFn := &Function{Name: "DebugOn", ReturnType: typetraits.Code{Base: typetraits.Void}, IsPublic: true}
	attrs, ok := Extract(boolFn)
	if !ok || !attrs.IsBoolean {
		t.Fatalf("expected DebugOn to be boolean, got %+v, ok=%v", attrs, ok)
	}

	enumFn := &Function{Name: "SetModeToAuto", ReturnType: typetraits.Code{Base: typetraits.Void}, IsPublic: true}
	attrs, ok = Extract(enumFn)
	if !ok || !attrs.IsEnumerated {
		t.Fatalf("expected SetModeToAuto to be enumerated, got %+v, ok=%v", attrs, ok)
	}
}

func TestExtractRejectsOperatorsAndArrayFailures(t *testing.T) {
	if _, ok := Extract(&Function{Name: "operator+", IsOperator: true}); ok {
		t.Error("expected operator to be rejected")
	}
	if _, ok := Extract(&Function{Name: "SetRadius", ArrayFailure: true}); ok {
		t.Error("expected ArrayFailure method to be rejected")
	}
	if _, ok := Extract(&Function{Name: ""}); ok {
		t.Error("expected unnamed method to be rejected")
	}
}

func TestExtractAddRemoveObject(t *testing.T) {
	add := &Function{
		Name:       "AddInput",
		ReturnType: typetraits.Code{Base: typetraits.Void},
		Args: []Arg{{
			Type:      typetraits.Code{Base: typetraits.Object, Indirection: typetraits.Pointer},
			ClassName: "Input",
		}},
		IsPublic: true,
	}
	attrs, ok := Extract(add)
	if !ok || attrs.ClassName != "Input" {
		t.Fatalf("expected AddInput eligible with ClassName Input, got %+v, ok=%v", attrs, ok)
	}
}

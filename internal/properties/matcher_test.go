package properties

import (
	"testing"

	"github.com/cxxprops/cxxprops/internal/typetraits"
)

func TestMatchBasicGetJoinsSetterProperty(t *testing.T) {
	p := &Property{Name: "Radius", Type: typetraits.Code{Base: typetraits.Double}}
	meth := &MethodAttributes{Name: "GetRadius", Type: typetraits.Code{Base: typetraits.Double}}

	matched, longMatch := Match(p, meth)
	if !matched || longMatch {
		t.Errorf("GetRadius should join Radius as a short-form match, got matched=%v longMatch=%v", matched, longMatch)
	}
}

func TestMatchRejectsTypeMismatch(t *testing.T) {
	p := &Property{Name: "Radius", Type: typetraits.Code{Base: typetraits.Double}}
	meth := &MethodAttributes{Name: "GetRadius", Type: typetraits.Code{Base: typetraits.Int}}

	if matched, _ := Match(p, meth); matched {
		t.Error("expected type mismatch to reject the match")
	}
}

func TestMatchGetNumberOfRequiresIndexRole(t *testing.T) {
	p := &Property{Name: "Point", Type: typetraits.Code{Base: typetraits.Object, Indirection: typetraits.Pointer}, ClassName: "Point"}
	meth := &MethodAttributes{Name: "GetNumberOfPoints", Type: typetraits.Code{Base: typetraits.Int}}

	if matched, _ := Match(p, meth); matched {
		t.Error("GetNumberOf must not join a property with no index role yet")
	}

	p.addRole(IndexGet, true, false, false)
	if matched, _ := Match(p, meth); !matched {
		t.Error("GetNumberOf should join once the property carries IndexGet")
	}
}

func TestMatchSetNumberOfRequiresIndexRole(t *testing.T) {
	p := &Property{Name: "Point", Type: typetraits.Code{Base: typetraits.Object, Indirection: typetraits.Pointer}, ClassName: "Point"}
	p.addRole(IndexSet, true, false, false)
	meth := &MethodAttributes{Name: "SetNumberOfPoints", Type: typetraits.Code{Base: typetraits.Int}}

	if matched, _ := Match(p, meth); !matched {
		t.Error("SetNumberOf should join once the property carries IndexSet")
	}
}

func TestMatchRemoveAllRequiresAddRole(t *testing.T) {
	p := &Property{Name: "Input", Type: typetraits.Code{Base: typetraits.Object, Indirection: typetraits.Pointer}, ClassName: "Input"}
	meth := &MethodAttributes{Name: "RemoveAllInputs", Type: typetraits.Code{Base: typetraits.Void}}

	if matched, _ := Match(p, meth); matched {
		t.Error("RemoveAllInputs must not join a property with no add role yet")
	}
	p.addRole(BasicAdd, true, false, false)
	if matched, _ := Match(p, meth); !matched {
		t.Error("RemoveAllInputs should join once the property carries BasicAdd")
	}
}

func TestMatchBooleanPromotesToPropertyIntType(t *testing.T) {
	p := &Property{Name: "Debug", Type: typetraits.Code{Base: typetraits.Int}}
	meth := &MethodAttributes{Name: "DebugOn", IsBoolean: true, Type: typetraits.Code{Base: typetraits.Bool}}

	if matched, _ := Match(p, meth); !matched {
		t.Error("boolean toggle should match an Int-typed property via promotion")
	}
}

func TestMatchObjectPropertyRequiresSameClassName(t *testing.T) {
	p := &Property{
		Name:      "Input",
		Type:      typetraits.Code{Base: typetraits.Object, Indirection: typetraits.Pointer},
		ClassName: "Input",
	}
	wrongClass := &MethodAttributes{
		Name:      "RemoveInput",
		Type:      typetraits.Code{Base: typetraits.Object, Indirection: typetraits.Pointer},
		ClassName: "Widget",
	}
	if matched, _ := Match(p, wrongClass); matched {
		t.Error("object-typed property must require an exact ClassName match")
	}
}

func TestMatchMultiValuePromotesIndirection(t *testing.T) {
	p := &Property{Name: "Color", Type: typetraits.Code{Base: typetraits.Int, Indirection: typetraits.Pointer}, Count: 3}
	meth := &MethodAttributes{Name: "SetColor", IsMultiValue: true, Type: typetraits.Code{Base: typetraits.Int}, Count: 3}

	if matched, _ := Match(p, meth); !matched {
		t.Error("multi-value setter should promote its plain type to pointer to join a pointer-typed property")
	}
}

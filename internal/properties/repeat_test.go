package properties

import (
	"testing"

	"github.com/cxxprops/cxxprops/internal/typetraits"
)

func TestDetectRepeatsDoubleDominatesFloat(t *testing.T) {
	methods := []MethodAttributes{
		{Name: "SetValue", IsPublic: true, Type: typetraits.Code{Base: typetraits.Float}, HasProperty: true},
		{Name: "SetValue", IsPublic: true, Type: typetraits.Code{Base: typetraits.Double}, HasProperty: true},
	}
	dominatedBy, dominates := DetectRepeats(methods)

	if dominatedBy[0] != 1 {
		t.Errorf("expected float overload dominated by double overload, got dominatedBy[0]=%d", dominatedBy[0])
	}
	if dominatedBy[1] != -1 {
		t.Errorf("expected double overload to remain dominant, got dominatedBy[1]=%d", dominatedBy[1])
	}
	if len(dominates[1]) != 1 || dominates[1][0] != 0 {
		t.Errorf("expected double overload to dominate index 0, got %v", dominates[1])
	}
	if !methods[0].IsRepeat {
		t.Error("expected float overload marked IsRepeat")
	}
	if methods[1].IsRepeat {
		t.Error("double overload must not be marked IsRepeat")
	}
}

func TestDetectRepeatsLegacyLosesToNonLegacy(t *testing.T) {
	methods := []MethodAttributes{
		{Name: "SetCount", IsPublic: true, IsLegacy: true, Type: typetraits.Code{Base: typetraits.Int}, HasProperty: true},
		{Name: "SetCount", IsPublic: true, IsLegacy: false, Type: typetraits.Code{Base: typetraits.Int}, HasProperty: true},
	}
	dominatedBy, _ := DetectRepeats(methods)
	if dominatedBy[0] != 1 {
		t.Errorf("expected legacy overload dominated by non-legacy overload, got %d", dominatedBy[0])
	}
}

func TestDetectRepeatsDifferentShapesDontCompete(t *testing.T) {
	methods := []MethodAttributes{
		{Name: "SetValue", IsPublic: true, Type: typetraits.Code{Base: typetraits.Int}, HasProperty: true},
		{Name: "SetValue", IsProtected: true, Type: typetraits.Code{Base: typetraits.Int}, HasProperty: true},
	}
	dominatedBy, _ := DetectRepeats(methods)
	if dominatedBy[0] != -1 || dominatedBy[1] != -1 {
		t.Error("methods differing in visibility are structurally distinct and must not compete for dominance")
	}
}

func TestDetectRepeatsTransitiveDomination(t *testing.T) {
	methods := []MethodAttributes{
		{Name: "SetValue", IsPublic: true, IsLegacy: true, Type: typetraits.Code{Base: typetraits.Float}, HasProperty: true},
		{Name: "SetValue", IsPublic: true, IsLegacy: true, Type: typetraits.Code{Base: typetraits.Double}, HasProperty: true},
		{Name: "SetValue", IsPublic: true, IsLegacy: false, Type: typetraits.Code{Base: typetraits.Double}, HasProperty: true},
	}
	dominatedBy, dominates := DetectRepeats(methods)

	if dominatedBy[2] != -1 {
		t.Fatalf("expected the final non-legacy double to be the overall leader, got dominatedBy[2]=%d", dominatedBy[2])
	}
	if dominatedBy[0] != 2 || dominatedBy[1] != 2 {
		t.Errorf("expected both earlier overloads transitively dominated by index 2, got %v", dominatedBy)
	}
	if len(dominates[2]) != 2 {
		t.Errorf("expected leader to dominate both prior overloads, got %v", dominates[2])
	}
}

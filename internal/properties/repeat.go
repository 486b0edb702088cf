package properties

import (
	"fmt"

	"github.com/cxxprops/cxxprops/internal/typetraits"
)

// structuralKey groups methods that are overloaded variants of one
// another: same name and identical structural shape (visibility, hint
// presence, multi-value/indexed/enumerated/boolean flags, and
// indirection). Two methods with the same key compete for dominance;
// methods with different keys never do, even if same-named.
func structuralKey(m *MethodAttributes) string {
	return fmt.Sprintf("%s|%t|%t|%t|%t|%t|%t|%t|%d",
		m.Name, m.IsPublic, m.IsProtected, m.IsHinted,
		m.IsMultiValue, m.IsIndexed, m.IsEnumerated, m.IsBoolean,
		m.Type.Indirection)
}

// compareDominance applies the overload preference rules in order: double
// beats float, then higher count beats lower count of the same base type,
// then non-legacy beats legacy. It returns a positive value when a
// dominates b, negative when b dominates a, and 0 when neither preference
// applies.
func compareDominance(a, b *MethodAttributes) int {
	if a.Type.Base == typetraits.Double && b.Type.Base == typetraits.Float {
		return 1
	}
	if a.Type.Base == typetraits.Float && b.Type.Base == typetraits.Double {
		return -1
	}

	if a.Type.Base == b.Type.Base {
		if a.Count > b.Count {
			return 1
		}
		if a.Count < b.Count {
			return -1
		}
	}

	if a.IsLegacy != b.IsLegacy {
		if !a.IsLegacy {
			return 1
		}
		return -1
	}

	return 0
}

// DetectRepeats scans every eligible method once (in index order) and
// marks the dominated half of each overloaded pair with IsRepeat. It
// returns, for every index, the index of the dominant twin that
// downstream dominates it (-1 if none), and for every index, the list of
// indices it dominates. PropertySynthesizer uses this to propagate a
// seed's freshly-assigned role onto every method it dominates.
func DetectRepeats(methods []MethodAttributes) (dominatedBy []int, dominates [][]int) {
	n := len(methods)
	dominatedBy = make([]int, n)
	dominates = make([][]int, n)
	for i := range dominatedBy {
		dominatedBy[i] = -1
	}

	leaderOf := make(map[string]int)

	for j := range methods {
		key := structuralKey(&methods[j])
		leader, ok := leaderOf[key]
		if !ok {
			leaderOf[key] = j
			continue
		}

		switch cmp := compareDominance(&methods[j], &methods[leader]); {
		case cmp > 0: // j dominates the current leader
			old := dominates[leader]
			methods[leader].IsRepeat = true
			dominatedBy[leader] = j
			dominates[j] = append(dominates[j], leader)
			dominates[j] = append(dominates[j], old...)
			for _, idx := range old {
				dominatedBy[idx] = j
			}
			dominates[leader] = nil
			leaderOf[key] = j

		case cmp < 0: // the leader dominates j
			methods[j].IsRepeat = true
			dominatedBy[j] = leader
			dominates[leader] = append(dominates[leader], j)

		default:
			// No preference applies; leave both unmarked and the group's
			// leader unchanged.
		}
	}

	return dominatedBy, dominates
}

package classio

import (
	"sort"

	"github.com/maruel/natural"
	"github.com/cxxprops/cxxprops/internal/properties"
)

// SortPropertiesNatural orders docs by name using natural (human) ordering,
// so indexed properties like "Point2"/"Point10" list in numeric rather than
// lexicographic order. Used by the `list` subcommand; synthesis output
// itself keeps the phase-discovery order, so this never reorders the
// canonical ClassPropertiesDoc.
func SortPropertiesNatural(docs []PropertyDoc) {
	sort.SliceStable(docs, func(i, j int) bool {
		return natural.Less(docs[i].Name, docs[j].Name)
	})
}

// SortRoleNames orders a set of canonical role tokens naturally, purely for
// stable, readable CLI listings (`cxxprops roles`).
func SortRoleNames(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return natural.Less(names[i], names[j])
	})
}

// AllRoleNames returns every canonical role token in role-enum order, the
// data backing the `cxxprops roles` subcommand.
func AllRoleNames() []string {
	var names []string
	for r := properties.Role(1); properties.RoleName(r) != ""; r++ {
		names = append(names, properties.RoleName(r))
	}
	return names
}

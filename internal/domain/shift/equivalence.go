package shift

// EquivalenceRegistry answers whether two shift type codes belong to the
// same named equivalence set. It is built from per-organization
// configuration and is read-only after construction.
type EquivalenceRegistry struct {
	sets map[string]map[string]struct{}
}

func NewEquivalenceRegistry(sets []EquivalenceSet) *EquivalenceRegistry {
	r := &EquivalenceRegistry{sets: make(map[string]map[string]struct{}, len(sets))}
	for _, set := range sets {
		members := make(map[string]struct{}, len(set.Members))
		for _, code := range set.Members {
			members[code] = struct{}{}
		}
		r.sets[set.Code] = members
	}
	return r
}

// AreEquivalent reports whether codeA and codeB are both members of the
// named set. An unknown set code fails closed.
func (r *EquivalenceRegistry) AreEquivalent(codeA, codeB, setCode string) bool {
	members, ok := r.sets[setCode]
	if !ok {
		return false
	}
	_, okA := members[codeA]
	_, okB := members[codeB]
	return okA && okB
}

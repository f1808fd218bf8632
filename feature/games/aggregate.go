package games

// Intersect returns the elements present in every set. Intersection is
// commutative and associative, so the order of the input does not affect the
// result. An empty input yields an empty set; an empty result is valid.
func Intersect(sets []map[string]struct{}) map[string]struct{} {
	if len(sets) == 0 {
		return map[string]struct{}{}
	}

	common := make(map[string]struct{}, len(sets[0]))
	for id := range sets[0] {
		common[id] = struct{}{}
	}

	for _, set := range sets[1:] {
		for id := range common {
			if _, ok := set[id]; !ok {
				delete(common, id)
			}
		}
	}
	return common
}

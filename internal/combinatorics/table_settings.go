// Package combinatorics enumerates the alternating orderings the X-cycle
// technique needs (spec.md §4.5): every flattening obtainable by permuting
// each input group internally and then permuting the groups themselves.
// Grounded on original_source/src/sudoku/grid.py's _table_settings, and
// written generically in the style of kpitt-sudoku's internal/set package.
package combinatorics

// TableSettings yields every tuple obtainable from groups by (a) permuting
// each group internally, (b) permuting the groups among themselves, then
// flattening — cardinality n! * product(|gi|!). The zero-argument case
// yields a single empty tuple; a group of length 0 or 1 contributes only
// its own (trivial) ordering.
func TableSettings[T any](groups ...[]T) [][]T {
	if len(groups) == 0 {
		return [][]T{{}}
	}

	groupOrderings := make([][][]T, len(groups))
	for i, g := range groups {
		groupOrderings[i] = permutations(g)
	}

	var orderedGroupTuples [][][]T
	cartesianProduct(groupOrderings, nil, &orderedGroupTuples)

	var out [][]T
	for _, orderedGroups := range orderedGroupTuples {
		for _, groupOrder := range permuteSlice(orderedGroups) {
			var flat []T
			for _, g := range groupOrder {
				flat = append(flat, g...)
			}
			out = append(out, flat)
		}
	}
	return out
}

// permutations returns every ordering of items (n! of them).
func permutations[T any](items []T) [][]T {
	if len(items) == 0 {
		return [][]T{{}}
	}
	var out [][]T
	for i := range items {
		rest := make([]T, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, sub := range permutations(rest) {
			perm := append([]T{items[i]}, sub...)
			out = append(out, perm)
		}
	}
	return out
}

// permuteSlice returns every ordering of a slice of slices, treating each
// inner slice as an opaque element (used to permute the groups themselves).
func permuteSlice[T any](items [][]T) [][][]T {
	if len(items) == 0 {
		return [][][]T{{}}
	}
	var out [][][]T
	for i := range items {
		rest := make([][]T, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, sub := range permuteSlice(rest) {
			perm := append([][]T{items[i]}, sub...)
			out = append(out, perm)
		}
	}
	return out
}

// cartesianProduct appends every combination picking one ordering per group
// to *out, preserving group order (Python's itertools.product(*groups)).
func cartesianProduct[T any](groupOrderings [][][]T, prefix [][]T, out *[][][]T) {
	if len(groupOrderings) == 0 {
		combo := make([][]T, len(prefix))
		copy(combo, prefix)
		*out = append(*out, combo)
		return
	}
	for _, ordering := range groupOrderings[0] {
		cartesianProduct(groupOrderings[1:], append(prefix, ordering), out)
	}
}

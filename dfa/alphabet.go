package dfa

import "github.com/phorward/lexcore/ccl"

// Partition computes the coarsest set of disjoint character classes such
// that every labeled NFA state's class is a union of some subset of the
// result (spec §4.6 "alphabet partitioning"). It works by repeated pairwise
// intersection: starting from the single class covering the whole universe,
// each label in turn splits every partition member it overlaps into its
// intersection and difference with that member, using the same
// ccl.Intersect/ccl.Diff primitives the ccl package already exposes for
// class algebra.
func Partition(universe *ccl.Class, labels []*ccl.Class) []*ccl.Class {
	parts := []*ccl.Class{universe.Clone()}
	for _, label := range labels {
		if label == nil || label.IsEmpty() {
			continue
		}
		var next []*ccl.Class
		for _, p := range parts {
			inter := ccl.Intersect(p, label)
			if inter == nil {
				next = append(next, p)
				continue
			}
			diff := ccl.Diff(p, label)
			next = append(next, inter)
			if diff != nil && !diff.IsEmpty() {
				next = append(next, diff)
			}
		}
		parts = next
	}
	return parts
}

// representative returns a single witness codepoint from p, used to probe
// NFA transitions during subset construction: since every codepoint within
// a partition member takes the same NFA transitions by construction, one
// representative suffices.
func representative(p *ccl.Class) rune {
	return p.Ranges()[0].Lo
}

package ccl

// AddRange inserts [min(b,e), max(b,e)] intersected with [c.Min, c.Max] and
// renormalizes. Idempotent when the range is already covered.
func (c *Class) AddRange(b, e rune) {
	if e < b {
		b, e = e, b
	}
	if b < c.Min {
		b = c.Min
	}
	if e > c.Max {
		e = c.Max
	}
	if b > e {
		return
	}
	c.ranges = append(c.ranges, Range{Lo: b, Hi: e})
	c.normalize()
	c.invalidate()
}

// Add inserts the single codepoint r.
func (c *Class) Add(r rune) {
	c.AddRange(r, r)
}

// DelRange removes [min(b,e), max(b,e)] from c, splitting ranges as needed.
func (c *Class) DelRange(b, e rune) {
	if e < b {
		b, e = e, b
	}
	var kept []Range
	for _, rg := range c.ranges {
		if e < rg.Lo || b > rg.Hi {
			kept = append(kept, rg)
			continue
		}
		if rg.Lo < b {
			kept = append(kept, Range{Lo: rg.Lo, Hi: b - 1})
		}
		if rg.Hi > e {
			kept = append(kept, Range{Lo: e + 1, Hi: rg.Hi})
		}
	}
	c.ranges = kept
	c.normalize()
	c.invalidate()
}

// Negate replaces c with its complement in [c.Min, c.Max].
func (c *Class) Negate() {
	var out []Range
	next := c.Min
	for _, rg := range c.ranges {
		if rg.Lo > next {
			out = append(out, Range{Lo: next, Hi: rg.Lo - 1})
		}
		if rg.Hi == c.Max {
			next = c.Max + 1
			break
		}
		next = rg.Hi + 1
	}
	if next <= c.Max {
		out = append(out, Range{Lo: next, Hi: c.Max})
	}
	c.ranges = out
	c.invalidate()
	// out is already sorted and disjoint by construction; no renormalize needed.
}

// Union returns a new Class containing every codepoint in a or b. Requires
// a and b share a universe; returns nil otherwise (incompatible operation,
// per spec §7's "incompatible class operations" contract).
func Union(a, b *Class) *Class {
	if !a.Compatible(b) {
		return nil
	}
	out := New(a.Min, a.Max)
	out.ranges = append(out.ranges, a.ranges...)
	out.ranges = append(out.ranges, b.ranges...)
	out.normalize()
	return out
}

// Intersect returns a new Class containing every codepoint in both a and b.
// Returns nil both when the universes are incompatible and when the
// intersection is empty — a design convenience the subset constructor
// relies on to skip empty alphabet-partition classes without a separate
// emptiness check.
func Intersect(a, b *Class) *Class {
	if !a.Compatible(b) {
		return nil
	}
	out := New(a.Min, a.Max)
	for _, ra := range a.ranges {
		for _, rb := range b.ranges {
			lo, hi := ra.Lo, ra.Hi
			if rb.Lo > lo {
				lo = rb.Lo
			}
			if rb.Hi < hi {
				hi = rb.Hi
			}
			if lo <= hi {
				out.ranges = append(out.ranges, Range{Lo: lo, Hi: hi})
			}
		}
	}
	out.normalize()
	if out.IsEmpty() {
		return nil
	}
	return out
}

// Diff returns a new Class containing every codepoint in a but not in b.
// Returns an empty (non-nil) Class when the difference is empty, and nil
// only on a universe mismatch — unlike Intersect, Diff's empty result is a
// real class, not a sentinel, per spec §4.1.
func Diff(a, b *Class) *Class {
	if !a.Compatible(b) {
		return nil
	}
	out := a.Clone()
	out.invalidate()
	for _, rb := range b.ranges {
		out.DelRange(rb.Lo, rb.Hi)
	}
	return out
}

// normalize restores the canonical invariant: sorted by Lo, merging any
// pair of ranges that overlap or are adjacent, repeated to a fixpoint. Each
// pass removes at least one range or makes no change, so the loop
// terminates; range counts are small in practice so the O(n^2) worst case
// (spec §4.1) is not a concern.
func (c *Class) normalize() {
	for {
		if len(c.ranges) < 2 {
			return
		}
		sortRanges(c.ranges)
		merged := false
		out := make([]Range, 0, len(c.ranges))
		out = append(out, c.ranges[0])
		for _, rg := range c.ranges[1:] {
			last := &out[len(out)-1]
			if rg.Lo <= last.Hi+1 && rg.Hi >= last.Lo {
				if rg.Lo < last.Lo {
					last.Lo = rg.Lo
				}
				if rg.Hi > last.Hi {
					last.Hi = rg.Hi
				}
				merged = true
				continue
			}
			out = append(out, rg)
		}
		c.ranges = out
		if !merged {
			return
		}
	}
}

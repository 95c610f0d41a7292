package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/phorward/lexcore/ccl"
	"github.com/phorward/lexcore/internal/conv"
	"github.com/phorward/lexcore/internal/sparse"
	"github.com/phorward/lexcore/matchflag"
	"github.com/phorward/lexcore/nfa"
)

// closure computes the epsilon-closure of a set of NFA state IDs, collecting
// along the way: the set of labeled states reachable without consuming
// input, the union of every RefMask bit touched on the way (the ref-mask's
// lossy last-position semantics, spec §4.6), and the best (lowest
// AcceptID) accepting state found, if any.
type closureResult struct {
	labeled  []nfa.StateID
	refMask  uint32
	acceptID int
	flags    matchflag.Flags
}

// epsilonClosure uses a sparse set (adapted from the teacher's
// internal/sparse, originally written to track visited NFA states during
// simulation) to dedup visited states in O(1) per check rather than a
// map, since state IDs are already small dense integers.
func epsilonClosure(n *nfa.NFA, roots []nfa.StateID) closureResult {
	res := closureResult{acceptID: -1}
	seen := sparse.NewSparseSet(uint32(len(n.States)))
	var walk func(id nfa.StateID)
	walk = func(id nfa.StateID) {
		if seen.Contains(uint32(id)) {
			return
		}
		seen.Insert(uint32(id))
		s := n.State(id)
		res.refMask |= s.RefMask
		switch {
		case s.IsLabeled():
			res.labeled = append(res.labeled, id)
		case s.IsAccept():
			if res.acceptID < 0 || s.AcceptID < res.acceptID {
				res.acceptID = s.AcceptID
				res.flags = s.Flags
			}
		default:
			if s.Next != nfa.InvalidState {
				walk(s.Next)
			}
			if s.Next2 != nfa.InvalidState {
				walk(s.Next2)
			}
		}
	}
	for _, r := range roots {
		walk(r)
	}
	sort.Slice(res.labeled, func(i, j int) bool { return res.labeled[i] < res.labeled[j] })
	return res
}

func closureKey(cr closureResult) string {
	var sb strings.Builder
	for _, id := range cr.labeled {
		sb.WriteString(strconv.FormatUint(uint64(id), 36))
		sb.WriteByte(',')
	}
	// Closures with the same labeled states can still differ in what they
	// accept and which capture bits they carry; those stay distinct rows.
	sb.WriteString(strconv.Itoa(cr.acceptID))
	sb.WriteByte('/')
	sb.WriteString(strconv.FormatUint(uint64(cr.flags), 10))
	sb.WriteByte('/')
	sb.WriteString(strconv.FormatUint(uint64(cr.refMask), 10))
	return sb.String()
}

// Build runs subset construction over n's epsilon-closures, partitioning the
// alphabet from every labeled state's class and probing one representative
// codepoint per partition member per DFA state (spec §4.6).
func Build(n *nfa.NFA, universe *ccl.Class) *DFA {
	var labels []*ccl.Class
	for i := range n.States {
		if n.States[i].IsLabeled() {
			labels = append(labels, n.States[i].Char)
		}
	}
	alphabet := Partition(universe, labels)

	d := &DFA{}
	index := map[string]StateID{}

	startClosure := epsilonClosure(n, []nfa.StateID{n.Start})
	startKey := closureKey(startClosure)
	startID := d.addRow(startClosure)
	index[startKey] = startID
	d.Start = startID

	queue := []struct {
		id StateID
		cr closureResult
	}{{startID, startClosure}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// Collect transitions in a local slice rather than through a
		// pointer into d.Rows: addRow below can append to d.Rows and
		// reallocate its backing array mid-loop, which would invalidate
		// a *Row held across that call.
		var trans []Trans
		for _, p := range alphabet {
			rep := representative(p)
			var targets []nfa.StateID
			for _, id := range cur.cr.labeled {
				s := n.State(id)
				if s.Char.Test(rep) {
					targets = append(targets, s.Next)
				}
			}
			if len(targets) == 0 {
				continue
			}
			cr := epsilonClosure(n, targets)
			key := closureKey(cr)
			target, ok := index[key]
			if !ok {
				target = d.addRow(cr)
				index[key] = target
				queue = append(queue, struct {
					id StateID
					cr closureResult
				}{target, cr})
			}
			for _, rg := range p.Ranges() {
				trans = append(trans, Trans{Lo: rg.Lo, Hi: rg.Hi, Target: target})
			}
		}
		sort.Slice(trans, func(i, j int) bool { return trans[i].Lo < trans[j].Lo })
		d.Row(cur.id).Trans = mergeAdjacent(trans)
	}
	factorDefaults(d, universe)
	return d
}

// factorDefaults implements the default-transition optimization spec §4.4
// step 3 describes: when a row's explicit transitions already cover the
// whole universe with no gaps, the single largest-span transition is pulled
// out of Trans and stored as Default instead, so a row's table only lists
// the exceptions to its most common transition.
func factorDefaults(d *DFA, universe *ccl.Class) {
	for i := range d.Rows {
		row := &d.Rows[i]
		if !coversUniverse(row.Trans, universe) {
			continue
		}
		widest := 0
		for j, t := range row.Trans {
			if t.Hi-t.Lo > row.Trans[widest].Hi-row.Trans[widest].Lo {
				widest = j
			}
		}
		row.Default = row.Trans[widest].Target
		row.Trans = append(row.Trans[:widest:widest], row.Trans[widest+1:]...)
	}
}

// coversUniverse reports whether the sorted, disjoint trans fully tile
// universe's ranges with no gaps.
func coversUniverse(trans []Trans, universe *ccl.Class) bool {
	if len(trans) == 0 {
		return false
	}
	ranges := universe.Ranges()
	if len(ranges) == 0 {
		return false
	}
	if trans[0].Lo != ranges[0].Lo {
		return false
	}
	if trans[len(trans)-1].Hi != ranges[len(ranges)-1].Hi {
		return false
	}
	for i := 1; i < len(trans); i++ {
		if trans[i].Lo != trans[i-1].Hi+1 {
			return false
		}
	}
	return true
}

// mergeAdjacent coalesces consecutive transitions sharing a target into a
// single range, keeping rows compact the way a hand-written table would be.
func mergeAdjacent(ts []Trans) []Trans {
	if len(ts) == 0 {
		return ts
	}
	out := ts[:1]
	for _, t := range ts[1:] {
		last := &out[len(out)-1]
		if t.Target == last.Target && t.Lo == last.Hi+1 {
			last.Hi = t.Hi
			continue
		}
		out = append(out, t)
	}
	return out
}

func (d *DFA) addRow(cr closureResult) StateID {
	id := StateID(conv.IntToUint32(len(d.Rows)))
	row := Row{Default: InvalidState, AcceptID: cr.acceptID, RefMask: cr.refMask}
	if cr.acceptID >= 0 {
		row.Flags = cr.flags
	}
	d.Rows = append(d.Rows, row)
	return id
}

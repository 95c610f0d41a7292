package dfa

import "sort"

// Minimize collapses equivalent states using Hopcroft-style partition
// refinement (spec §4.7): states start grouped by (AcceptID, Flags,
// RefMask) since two states with different accept outcomes can never merge,
// then groups are repeatedly split while any two states in the same group
// transition to different groups on some input partition member. The
// result is rebuilt with one row per surviving group.
func Minimize(d *DFA) *DFA {
	groupOf := make([]int, len(d.Rows))
	groups := partitionByAcceptSignature(d)
	for i, g := range groups {
		for _, id := range g {
			groupOf[id] = i
		}
	}

	for {
		newGroups, changed := refine(d, groups, groupOf)
		if !changed {
			break
		}
		groups = newGroups
		for i, g := range groups {
			for _, id := range g {
				groupOf[id] = i
			}
		}
	}

	return rebuild(d, groups, groupOf)
}

func partitionByAcceptSignature(d *DFA) [][]int {
	sigOf := map[string]int{}
	var groups [][]int
	for id := range d.Rows {
		r := &d.Rows[id]
		sig := acceptSignature(r)
		gi, ok := sigOf[sig]
		if !ok {
			gi = len(groups)
			sigOf[sig] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], id)
	}
	return groups
}

func acceptSignature(r *Row) string {
	if !r.IsAccept() {
		return "-" + itoa(int(r.RefMask))
	}
	return "a" + itoa(r.AcceptID) + "/" + itoa(int(r.Flags)) + "/" + itoa(int(r.RefMask))
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// refine splits any group whose members disagree on which group their
// transitions land in for some partition boundary, using each row's own
// Trans breakpoints as the probing alphabet (sufficient since every row's
// ranges were already cut along the same global partition during Build).
func refine(d *DFA, groups [][]int, groupOf []int) ([][]int, bool) {
	changed := false
	var next [][]int
	for _, g := range groups {
		if len(g) <= 1 {
			next = append(next, g)
			continue
		}
		split := map[string][]int{}
		for _, id := range g {
			sig := transitionSignature(d, id, groupOf)
			split[sig] = append(split[sig], id)
		}
		if len(split) == 1 {
			next = append(next, g)
			continue
		}
		changed = true
		keys := make([]string, 0, len(split))
		for k := range split {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			next = append(next, split[k])
		}
	}
	return next, changed
}

func transitionSignature(d *DFA, id int, groupOf []int) string {
	r := &d.Rows[id]
	sig := itoa(defaultGroup(r, groupOf))
	for _, t := range r.Trans {
		sig += "|" + itoa(int(t.Lo)) + ":" + itoa(int(t.Hi)) + "=" + itoa(defaultGroup2(t.Target, groupOf))
	}
	return sig
}

func defaultGroup(r *Row, groupOf []int) int {
	if r.Default == InvalidState {
		return -1
	}
	return groupOf[r.Default]
}

func defaultGroup2(target StateID, groupOf []int) int {
	if target == InvalidState {
		return -1
	}
	return groupOf[target]
}

func rebuild(d *DFA, groups [][]int, groupOf []int) *DFA {
	out := &DFA{Rows: make([]Row, len(groups))}
	for gi, g := range groups {
		src := &d.Rows[g[0]]
		row := Row{Default: remap(src.Default, groupOf), AcceptID: src.AcceptID, Flags: src.Flags, RefMask: src.RefMask}
		for _, t := range src.Trans {
			row.Trans = append(row.Trans, Trans{Lo: t.Lo, Hi: t.Hi, Target: remap(t.Target, groupOf)})
		}
		out.Rows[gi] = row
	}
	out.Start = StateID(groupOf[d.Start])
	return out
}

func remap(id StateID, groupOf []int) StateID {
	if id == InvalidState {
		return InvalidState
	}
	return StateID(groupOf[id])
}

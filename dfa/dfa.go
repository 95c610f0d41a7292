// Package dfa turns an NFA (package nfa) into a deterministic automaton via
// subset construction over a partitioned alphabet, then minimizes it with a
// Hopcroft-style partition refinement, producing the compact transition
// table described by spec §4.6. The row layout and StateID-indexed arena
// generalize the teacher's dfa/onepass table (coregx-coregex
// dfa/onepass/onepass.go: stride-based dense []Transition row) from a dense
// byte-indexed stride to a sparse sorted-range-triple row, since the
// alphabet here is partitioned Unicode classes rather than 256 bytes.
package dfa

import "github.com/phorward/lexcore/matchflag"

// StateID indexes into a DFA's row arena.
type StateID uint32

// InvalidState marks a dead (non-existent) transition target.
const InvalidState StateID = 0xFFFFFFFF

// Trans is one sorted, disjoint outgoing transition: codepoints in
// [Lo, Hi] move to Target.
type Trans struct {
	Lo, Hi rune
	Target StateID
}

// Row is one DFA state's transition table row (spec §4.6): a sorted list of
// disjoint range transitions, a default target for codepoints none of them
// cover, and the accept metadata carried if this row is accepting.
type Row struct {
	Trans       []Trans
	Default     StateID
	AcceptID    int
	Flags       matchflag.Flags
	RefMask     uint32
}

// IsAccept reports whether the row is an accepting state.
func (r *Row) IsAccept() bool {
	return r.AcceptID >= 0
}

// Step returns the target state for codepoint r, or InvalidState if the
// row has no transition and no default (a dead end).
func (row *Row) Step(r rune) StateID {
	lo, hi := 0, len(row.Trans)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		t := row.Trans[mid]
		switch {
		case r < t.Lo:
			hi = mid - 1
		case r > t.Hi:
			lo = mid + 1
		default:
			return t.Target
		}
	}
	return row.Default
}

// DFA is a flat, StateID-indexed arena of Rows plus a start state.
type DFA struct {
	Rows  []Row
	Start StateID
}

// Row returns a pointer to the row at id.
func (d *DFA) Row(id StateID) *Row {
	return &d.Rows[id]
}

func matchflagOf(b uint8) matchflag.Flags {
	return matchflag.Flags(b)
}

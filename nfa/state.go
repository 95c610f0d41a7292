// Package nfa builds Thompson-construction epsilon-NFAs over the character
// classes produced by package ccl, generalizing the teacher's byte-range
// StateID/State/Builder arena API (coregx-coregex's nfa.go/builder.go) from
// UTF-8 byte transitions to whole-codepoint-class transitions, matching the
// C1-C9 pipeline's single Unicode-native state model (spec §4.4).
package nfa

import (
	"fmt"
	"strings"

	"github.com/phorward/lexcore/ccl"
	"github.com/phorward/lexcore/matchflag"
)

// StateID indexes into an NFA's state arena.
type StateID uint32

// InvalidState marks an unpatched or absent transition target.
const InvalidState StateID = 0xFFFFFFFF

// MaxRef bounds how many capture-group slots a single NFA tracks (spec §4.2,
// §7): the 33rd and later opening parenthesis silently degrades to a
// non-capturing group rather than growing the ref-mask past 32 bits.
const MaxRef = 32

// State is either a labeled (consuming) state, an epsilon/split state with
// up to two outgoing edges, or an accepting state, distinguished by whether
// Char is nil rather than by a stored kind tag: a labeled state has exactly
// one successor (Next), a split state has Char == nil and up to two
// successors (Next, Next2), and an accept state has both successors
// InvalidState and AcceptID >= 0.
type State struct {
	Char     *ccl.Class
	Next     StateID
	Next2    StateID
	AcceptID int
	Flags    matchflag.Flags
	RefMask  uint32
}

// IsLabeled reports whether the state consumes an input codepoint.
func (s *State) IsLabeled() bool {
	return s.Char != nil
}

// IsAccept reports whether the state is a terminal accepting state.
func (s *State) IsAccept() bool {
	return s.AcceptID >= 0 && s.Next == InvalidState && s.Next2 == InvalidState
}

// NFA is a built, immutable epsilon-NFA: a flat state arena plus a start
// state index. Multiple accept states may coexist when patterns have been
// combined (spec §4.3 "Multi-pattern combination").
type NFA struct {
	States []State
	Start  StateID
}

// State returns a pointer to the state at id.
func (n *NFA) State(id StateID) *State {
	return &n.States[id]
}

// String renders a debug dump of every state, one per line.
func (n *NFA) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "start=%d\n", n.Start)
	for id := range n.States {
		s := &n.States[id]
		switch {
		case s.IsAccept():
			fmt.Fprintf(&sb, "%4d: ACCEPT id=%d flags=%v\n", id, s.AcceptID, s.Flags)
		case s.IsLabeled():
			fmt.Fprintf(&sb, "%4d: %s -> %d\n", id, s.Char.ToStr(true), s.Next)
		default:
			fmt.Fprintf(&sb, "%4d: eps -> %d, %d\n", id, s.Next, s.Next2)
		}
	}
	return sb.String()
}

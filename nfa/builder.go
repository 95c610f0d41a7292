package nfa

import (
	"github.com/phorward/lexcore/ccl"
	"github.com/phorward/lexcore/internal/conv"
	"github.com/phorward/lexcore/matchflag"
)

// Builder accumulates States into an arena and patches dangling transitions,
// generalizing the teacher's Builder.AddXxx/Patch/PatchSplit idiom
// (coregx-coregex nfa/builder.go) from byte-range states to *ccl.Class
// states. Each Add method returns a StateID with one or both of its
// transitions left as InvalidState ("dangling"); callers patch them exactly
// once via Patch before the state is reachable from Start.
type Builder struct {
	states []State
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddChar appends a labeled state with a single dangling Next transition.
func (b *Builder) AddChar(cls *ccl.Class) StateID {
	return b.push(State{Char: cls, Next: InvalidState, Next2: InvalidState, AcceptID: -1})
}

// AddEpsilon0 appends an unlabeled state with a single dangling Next
// transition (used for sequencing fragments together).
func (b *Builder) AddEpsilon0() StateID {
	return b.push(State{Next: InvalidState, Next2: InvalidState, AcceptID: -1})
}

// AddEpsilon1 is an alias for AddEpsilon0 for call sites that want to
// emphasize that the state will carry exactly one successor. The compiler
// itself uses AddEpsilon0 throughout, including for the tail join of an
// alternation.
func (b *Builder) AddEpsilon1() StateID {
	return b.AddEpsilon0()
}

// AddSplit appends an unlabeled state with two dangling transitions, used
// for alternation and quantifier branch points.
func (b *Builder) AddSplit() StateID {
	return b.push(State{Next: InvalidState, Next2: InvalidState, AcceptID: -1})
}

// AddAccept appends a terminal accepting state carrying acceptID and flags.
func (b *Builder) AddAccept(acceptID int, flags matchflag.Flags, refMask uint32) StateID {
	return b.push(State{Next: InvalidState, Next2: InvalidState, AcceptID: acceptID, Flags: flags, RefMask: refMask})
}

// Patch sets the first InvalidState-valued transition (Next before Next2) of
// the state at id to target. A labeled state has only Next to patch. It is
// an error to patch a state with no remaining dangling transition.
func (b *Builder) Patch(id, target StateID) error {
	s := &b.states[id]
	switch {
	case s.Next == InvalidState:
		s.Next = target
	case s.Next2 == InvalidState && !s.IsLabeled():
		s.Next2 = target
	default:
		return ErrAlreadyPatched
	}
	return nil
}

// State returns a pointer to the state at id, for direct inspection or
// in-place field edits (e.g. stamping RefMask bits during construction).
func (b *Builder) State(id StateID) *State {
	return &b.states[id]
}

// Len reports how many states have been added so far.
func (b *Builder) Len() int {
	return len(b.states)
}

// Build freezes the builder's arena into an NFA rooted at start. The
// Builder must not be reused afterward.
func (b *Builder) Build(start StateID) *NFA {
	return &NFA{States: b.states, Start: start}
}

// push appends s and returns its id, guarding against the arena growing
// past what StateID (uint32) can address (adapted from the teacher's
// internal/conv safe-narrowing helpers).
func (b *Builder) push(s State) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, s)
	return id
}

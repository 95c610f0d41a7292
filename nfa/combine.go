package nfa

// Combine merges independently-compiled single-pattern NFAs into one
// multi-pattern NFA reachable from a single start state, using a
// left-leaning epsilon-spine: pattern 0 hangs off the first split's left
// branch, the remaining patterns hang off a chain of splits down the right
// branch. Each pattern keeps its own AcceptID, so a lexer built over the
// result can tell which rule matched; when two patterns accept at the same
// input position the one with the lowest AcceptID wins, enforced later
// during DFA construction (spec §4.3 "Multi-pattern combination", §4.8).
func Combine(patterns []*NFA) *NFA {
	if len(patterns) == 0 {
		return &NFA{Start: InvalidState}
	}
	if len(patterns) == 1 {
		return patterns[0]
	}

	b := NewBuilder()
	starts := make([]StateID, len(patterns))
	for i, p := range patterns {
		offset := StateID(b.Len())
		for _, s := range p.States {
			shifted := s
			if shifted.Next != InvalidState {
				shifted.Next += offset
			}
			if shifted.Next2 != InvalidState {
				shifted.Next2 += offset
			}
			b.states = append(b.states, shifted)
		}
		starts[i] = p.Start + offset
	}

	spine := starts[len(starts)-1]
	for i := len(starts) - 2; i >= 0; i-- {
		split := b.AddSplit()
		if err := b.Patch(split, starts[i]); err != nil {
			panic(err)
		}
		if err := b.Patch(split, spine); err != nil {
			panic(err)
		}
		spine = split
	}
	return b.Build(spine)
}

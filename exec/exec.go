// Package exec scans input against a compiled dfa.DFA, implementing the
// longest-match search loop, anchor checks, and capture tracking described
// by spec §5. The scan loop itself is grounded in the teacher's
// dfa/onepass/search.go byte-stepping loop (coregx-coregex), generalized
// from byte indices to rune indices since this pipeline's DFA rows are
// keyed on whole codepoints rather than UTF-8 bytes.
package exec

import (
	"unicode"
	"unicode/utf8"

	"github.com/phorward/lexcore/dfa"
	"github.com/phorward/lexcore/matchflag"
	"github.com/phorward/lexcore/nfa"
)

// MatchRange is a [Start, End) span of rune indices, reused for both
// whole-match reporting (Match) and per-group capture slots
// (Captures.Slots), per spec §3's Data Model. Start is -1 when the span was
// never touched.
type MatchRange struct {
	Start, End int
}

// Captures holds a single match's group boundaries, reused across calls by
// the caller (spec §5's "no hidden allocation on the hot path" concurrency
// model): a goroutine that owns one Captures value may call Run repeatedly
// without the matcher allocating per call, but a Captures value itself must
// not be shared across goroutines.
type Captures struct {
	// RefMask is the union of every capture-group bit touched along the
	// winning path.
	RefMask uint32

	// Slots holds each capture group's span: Slots[i] is group i+1, tracked
	// by bit i of RefMask. Per spec §4.7 step 3: the first time a row's
	// RefMask bit i is observed during a scan, slot i's Start is set to the
	// current offset; every time it is observed, slot i's End is set to the
	// current offset. Groups that repeat (inside a Kleene/Plus) keep moving
	// End forward on each repetition without resetting Start, the lossy
	// last-position semantics DESIGN NOTES §9 describes. A slot whose bit
	// was never set in RefMask has Start == -1.
	Slots [nfa.MaxRef]MatchRange
}

func newSlots() [nfa.MaxRef]MatchRange {
	var slots [nfa.MaxRef]MatchRange
	for i := range slots {
		slots[i].Start = -1
	}
	return slots
}

// Match describes where a pattern matched within an input.
type Match struct {
	MatchRange // Start, End: rune indices, not byte offsets
	AcceptID   int
	Captures   Captures
}

// Matcher scans input against a compiled DFA.
type Matcher struct {
	d *dfa.DFA
}

// New wraps d for scanning.
func New(d *dfa.DFA) *Matcher {
	return &Matcher{d: d}
}

// Run scans runes from offset start looking for the longest match
// beginning exactly at start, honoring the accepting state's anchor flags.
// It reports ok=false if no accepting state is reachable from start. caps,
// if non-nil, is cleared and filled with the winning path's ref mask.
func (m *Matcher) Run(runes []rune, start int, caps *Captures) (match Match, ok bool) {
	cur := m.d.Start
	bestEnd := -1
	bestAccept := -1
	var bestMask uint32
	bestSlots := newSlots()

	var mask uint32
	slots := newSlots()

	applyRefMask := func(rm uint32, pos int) {
		mask |= rm
		for i := 0; i < nfa.MaxRef; i++ {
			bit := uint32(1) << uint(i)
			if rm&bit == 0 {
				continue
			}
			if slots[i].Start < 0 {
				slots[i].Start = pos
			}
			slots[i].End = pos
		}
	}

	checkAccept := func(pos int) {
		row := m.d.Row(cur)
		if !row.IsAccept() {
			return
		}
		if !anchorsSatisfied(row.Flags, runes, start, pos) {
			return
		}
		if bestEnd < 0 || pos > bestEnd || (pos == bestEnd && row.AcceptID < bestAccept) {
			bestEnd = pos
			bestAccept = row.AcceptID
			bestMask = mask
			bestSlots = slots
		}
	}

	applyRefMask(m.d.Row(cur).RefMask, start)
	checkAccept(start)
	pos := start
	for pos < len(runes) {
		// NONGREEDY (spec §4.2, §6.2) stops at the first accepting
		// position instead of extending toward the longest match.
		if bestEnd >= 0 && m.d.Row(cur).IsAccept() && m.d.Row(cur).Flags.Has(matchflag.NonGreedy) {
			break
		}
		row := m.d.Row(cur)
		next := row.Step(runes[pos])
		if next == dfa.InvalidState {
			break
		}
		pos++
		applyRefMask(m.d.Row(next).RefMask, pos)
		cur = next
		checkAccept(pos)
	}

	if bestEnd < 0 {
		return Match{}, false
	}
	if caps == nil {
		caps = &Captures{}
	}
	caps.RefMask = bestMask
	caps.Slots = bestSlots
	return Match{MatchRange: MatchRange{Start: start, End: bestEnd}, AcceptID: bestAccept, Captures: derefCaptures(caps)}, true
}

func derefCaptures(caps *Captures) Captures {
	if caps == nil {
		return Captures{}
	}
	return *caps
}

// anchorsSatisfied checks BOL/EOL/BOW/EOW against the surrounding runes of
// a candidate accepting position.
func anchorsSatisfied(flags matchflag.Flags, runes []rune, start, end int) bool {
	if flags.Has(matchflag.BOL) && start != 0 && runes[start-1] != '\n' {
		return false
	}
	if flags.Has(matchflag.EOL) && end != len(runes) && runes[end] != '\n' {
		return false
	}
	if flags.Has(matchflag.BOW) {
		before := start > 0 && isWordRune(runes[start-1])
		after := start < len(runes) && isWordRune(runes[start])
		if before || !after {
			return false
		}
	}
	if flags.Has(matchflag.EOW) {
		before := end > 0 && isWordRune(runes[end-1])
		after := end < len(runes) && isWordRune(runes[end])
		if !before || after {
			return false
		}
	}
	return true
}

// isWordRune is the Unicode-aware word-boundary predicate (spec §4.7):
// letters and digits by Unicode category, plus underscore, rather than the
// ASCII-only \w shorthand ccl.wordClass builds for character classes.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// DecodeRunes converts s into a []rune once so repeated Run calls over the
// same input avoid re-decoding UTF-8 per scan. Exposed as a helper since
// most callers scan the same input many times (Find, FindAll, Split).
func DecodeRunes(s string) []rune {
	out := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, r)
	}
	return out
}

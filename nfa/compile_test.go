package nfa

import (
	"testing"

	"github.com/phorward/lexcore/syntax"
)

func mustParse(t *testing.T, pattern string) *syntax.Node {
	t.Helper()
	n, err := syntax.Parse(pattern, 0, 0x10FFFF, 0)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return n
}

// walk runs a tiny epsilon-following matcher directly over the NFA, used to
// sanity-check construction without a DFA: it accepts s iff some path of
// labeled transitions interleaved with epsilon closures consumes all of s
// and lands on an accept state.
func walk(n *NFA, s string) bool {
	cur := map[StateID]bool{}
	addClosure(n, n.Start, cur)

	for _, r := range s {
		next := map[StateID]bool{}
		for id := range cur {
			st := n.State(id)
			if st.IsLabeled() && st.Char.Test(r) {
				addClosure(n, st.Next, next)
			}
		}
		cur = next
		if len(cur) == 0 {
			return false
		}
	}
	for id := range cur {
		if n.State(id).IsAccept() {
			return true
		}
	}
	return false
}

func addClosure(n *NFA, id StateID, set map[StateID]bool) {
	if set[id] {
		return
	}
	set[id] = true
	st := n.State(id)
	if st.IsLabeled() || st.IsAccept() {
		return
	}
	if st.Next != InvalidState {
		addClosure(n, st.Next, set)
	}
	if st.Next2 != InvalidState {
		addClosure(n, st.Next2, set)
	}
}

func TestCompileLiteral(t *testing.T) {
	root := mustParse(t, "abc")
	n, err := Compile(root, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !walk(n, "abc") {
		t.Fatal("expected \"abc\" to match")
	}
	if walk(n, "abd") {
		t.Fatal("expected \"abd\" to not match")
	}
}

func TestCompileAlternation(t *testing.T) {
	root := mustParse(t, "cat|dog")
	n, err := Compile(root, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"cat", "dog"} {
		if !walk(n, s) {
			t.Fatalf("expected %q to match", s)
		}
	}
	if walk(n, "cow") {
		t.Fatal("expected \"cow\" to not match")
	}
}

func TestCompileKleeneAndPlus(t *testing.T) {
	n, err := Compile(mustParse(t, "a*b+"), 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"b", "ab", "aaab", "abbb"} {
		if !walk(n, s) {
			t.Fatalf("expected %q to match", s)
		}
	}
	if walk(n, "a") {
		t.Fatal("expected \"a\" alone to not match (needs at least one b)")
	}
}

func TestCompileOptional(t *testing.T) {
	n, err := Compile(mustParse(t, "colou?r"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !walk(n, "color") || !walk(n, "colour") {
		t.Fatal("expected both spellings to match")
	}
}

func TestCompileCapturingGroupSetsRefMask(t *testing.T) {
	root := mustParse(t, "(a)(b)")
	n, err := Compile(root, 0)
	if err != nil {
		t.Fatal(err)
	}
	var seen uint32
	for i := range n.States {
		seen |= n.States[i].RefMask
	}
	if seen&0b11 != 0b11 {
		t.Fatalf("expected both capture-group bits set somewhere in the NFA, got mask %b", seen)
	}
}

func TestCombineTwoPatternsKeepsDistinctAcceptIDs(t *testing.T) {
	a, err := Compile(mustParse(t, "if"), 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compile(mustParse(t, "[a-z]+"), 1)
	if err != nil {
		t.Fatal(err)
	}
	combined := Combine([]*NFA{a, b})
	if !walk(combined, "if") {
		t.Fatal("expected \"if\" to match the combined NFA")
	}
	if !walk(combined, "iffy") {
		t.Fatal("expected \"iffy\" to match the combined NFA's second pattern")
	}

	var ids []int
	for i := range combined.States {
		if combined.States[i].IsAccept() {
			ids = append(ids, combined.States[i].AcceptID)
		}
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 accept states, got %d", len(ids))
	}
}

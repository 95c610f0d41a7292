package syntax

import "testing"

func parse(t *testing.T, pattern string, flags CompileFlags) *Node {
	t.Helper()
	n, err := Parse(pattern, 0, 0x10FFFF, flags)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return n
}

func TestParseLiteralSequence(t *testing.T) {
	n := parse(t, "abc", 0)
	count := 0
	for cur := n; cur != nil; cur = cur.Next {
		if cur.Op != OpChar {
			t.Fatalf("expected OpChar nodes, got %v", cur.Op)
		}
		count++
	}
	if count != 3 {
		t.Fatalf("expected 3 chained chars, got %d", count)
	}
}

func TestParseAlternation(t *testing.T) {
	n := parse(t, "a|b", 0)
	if n.Op != OpAlt {
		t.Fatalf("expected OpAlt root, got %v", n.Op)
	}
}

func TestParseGroupCapturing(t *testing.T) {
	n := parse(t, "a(b|c)+d", 0)
	// find the group node
	var group *Node
	for cur := n; cur != nil; cur = cur.Next {
		if cur.Op == OpPlus {
			group = cur.Left
		}
	}
	if group == nil || group.Op != OpGroup || !group.Captured {
		t.Fatalf("expected a capturing group under the '+' quantifier, got %+v", group)
	}
}

func TestParseNoRefDegradesGroups(t *testing.T) {
	n := parse(t, "(a)", NoRef)
	if n.Op != OpGroup || n.Captured {
		t.Fatalf("NOREF should produce a non-capturing group, got %+v", n)
	}
}

func TestParseAnchors(t *testing.T) {
	n := parse(t, "^abc$", 0)
	if !n.Flags.Has(1) { // BOL bit
		t.Fatalf("expected BOL flag, got %v", n.Flags)
	}
}

func TestParseNoAnchorsTreatsCaretAsLiteral(t *testing.T) {
	n := parse(t, "^", NoAnchors)
	if n.Op != OpChar {
		t.Fatalf("NOANCHORS should treat '^' as a literal char node, got %v", n.Op)
	}
}

func TestParseUnbalancedParenError(t *testing.T) {
	_, err := Parse("(abc", 0, 0x10FFFF, 0)
	if err == nil {
		t.Fatal("expected error for unbalanced parenthesis")
	}
}

func TestParseNoErrorsRecovers(t *testing.T) {
	n, err := Parse("(abc", 0, 0x10FFFF, NoErrors)
	if err != nil {
		t.Fatalf("NOERRORS should recover instead of erroring, got %v", err)
	}
	if n == nil {
		t.Fatal("NOERRORS should still return a best-effort AST")
	}
}

func TestToRegexRoundTrip(t *testing.T) {
	n := parse(t, "a(b|c)+d", 0)
	s := ToRegex(n)
	if s == "" {
		t.Fatal("ToRegex produced empty output")
	}
	if _, err := Parse(s, 0, 0x10FFFF, 0); err != nil {
		t.Fatalf("ToRegex output %q failed to re-parse: %v", s, err)
	}
}

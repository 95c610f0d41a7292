package ccl

import "testing"

func TestParseSimpleRange(t *testing.T) {
	c := New(0, 255)
	if err := c.Parse("[a-z0-9_]", false); err != nil {
		t.Fatal(err)
	}
	canonical(t, c)
	for _, r := range []rune{'a', 'm', 'z', '0', '9', '_'} {
		if !c.Test(r) {
			t.Fatalf("expected %q to be a member", r)
		}
	}
	if c.Test('A') {
		t.Fatal("unexpected membership of 'A'")
	}
}

func TestParseNegated(t *testing.T) {
	c := New(0, 255)
	if err := c.Parse("[^a-z]", false); err != nil {
		t.Fatal(err)
	}
	canonical(t, c)
	if c.Test('m') {
		t.Fatal("negated class should not contain 'm'")
	}
	if !c.Test('A') {
		t.Fatal("negated class should contain 'A'")
	}
}

func TestParseEscapedBracket(t *testing.T) {
	c := New(0, 255)
	if err := c.Parse(`[\]a]`, false); err != nil {
		t.Fatal(err)
	}
	if !c.Test(']') || !c.Test('a') {
		t.Fatalf("escaped ']' should be a member: %v", c.Ranges())
	}
}

func TestParseLiteralDashAtStart(t *testing.T) {
	c := New(0, 255)
	if err := c.Parse(`[-az]`, false); err != nil {
		t.Fatal(err)
	}
	if !c.Test('-') || !c.Test('a') || !c.Test('z') {
		t.Fatalf("leading literal '-' should be a member: %v", c.Ranges())
	}
}

func TestParseUnbalancedBracket(t *testing.T) {
	c := New(0, 255)
	if err := c.Parse("[a-z", false); err == nil {
		t.Fatal("expected error for unbalanced bracket")
	}
}

func TestParseShorthandInClass(t *testing.T) {
	c := New(0, 255)
	if err := c.Parse(`[\d_]`, false); err != nil {
		t.Fatal(err)
	}
	if !c.Test('5') || !c.Test('_') {
		t.Fatalf("shorthand + literal class wrong: %v", c.Ranges())
	}
	if c.Test('a') {
		t.Fatal("unexpected membership of 'a'")
	}
}

func TestParseExtend(t *testing.T) {
	c := New(0, 255)
	c.AddRange('a', 'c')
	if err := c.Parse("[x-z]", true); err != nil {
		t.Fatal(err)
	}
	if !c.Test('a') || !c.Test('x') {
		t.Fatalf("extend=true should keep existing members: %v", c.Ranges())
	}

	if err := c.Parse("[m-o]", false); err != nil {
		t.Fatal(err)
	}
	if c.Test('a') || c.Test('x') || !c.Test('m') {
		t.Fatalf("extend=false should clear existing members: %v", c.Ranges())
	}
}

func TestRoundTripStringParse(t *testing.T) {
	c := New(0, 255)
	c.AddRange('a', 'z')
	c.AddRange('0', '9')
	s := c.String()

	rt := New(0, 255)
	if err := rt.Parse(s, false); err != nil {
		t.Fatalf("round-trip parse of %q failed: %v", s, err)
	}
	if !Equal(c, rt) {
		t.Fatalf("round trip mismatch: %v vs %v (via %q)", c.Ranges(), rt.Ranges(), s)
	}
}

func TestApplyCaseFoldASCII(t *testing.T) {
	c := New(0, 255)
	c.AddRange('a', 'c')
	c.ApplyCaseFold()
	for _, r := range []rune{'a', 'b', 'c', 'A', 'B', 'C'} {
		if !c.Test(r) {
			t.Fatalf("expected %q to be a member after case fold: %v", r, c.Ranges())
		}
	}
}

func TestDecodeEscapeTable(t *testing.T) {
	cases := []struct {
		in   string
		want rune
	}{
		{`n`, '\n'},
		{`t`, '\t'},
		{`x41`, 'A'},
		{`101`, 'A'}, // octal
		{`u0041`, 'A'},
		{`.`, '.'},
		{`q`, 'q'}, // unknown escape -> literal
	}
	for _, tc := range cases {
		cur := NewCursor(tc.in)
		got, ok := DecodeEscape(cur)
		if !ok {
			t.Fatalf("DecodeEscape(%q): unexpected truncation", tc.in)
		}
		if got != tc.want {
			t.Errorf("DecodeEscape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

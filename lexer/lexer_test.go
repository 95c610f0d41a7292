package lexer

import "testing"

func buildLexer(t *testing.T) *Lexer {
	t.Helper()
	l := New(0, 0x10FFFF)
	rules := []struct {
		name, pattern string
		matchID       int
	}{
		{"IF", "if", 0},
		{"IDENT", "[a-zA-Z_][a-zA-Z0-9_]*", 1},
		{"NUMBER", "[0-9]+", 2},
		{"WS", "[ \t\n]+", 3},
	}
	for _, r := range rules {
		if err := l.Define(r.name, r.pattern, r.matchID, 0); err != nil {
			t.Fatal(err)
		}
	}
	if err := l.Compile(); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestKeywordBeatsIdentOnTie(t *testing.T) {
	l := buildLexer(t)
	toks, err := l.Tokenize("if")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Rule != "IF" {
		t.Fatalf("expected a single IF token, got %+v", toks)
	}
}

func TestIdentLongerThanKeywordWins(t *testing.T) {
	l := buildLexer(t)
	toks, err := l.Tokenize("iffy")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Rule != "IDENT" || toks[0].Text != "iffy" {
		t.Fatalf("expected a single IDENT token \"iffy\", got %+v", toks)
	}
}

func TestTokenizeSequence(t *testing.T) {
	l := buildLexer(t)
	toks, err := l.Tokenize("if x42 7")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	var names []string
	for _, tok := range toks {
		if tok.Rule == "WS" {
			continue
		}
		names = append(names, tok.Rule+":"+tok.Text)
	}
	want := []string{"IF:if", "IDENT:x42", "NUMBER:7"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i, w := range want {
		if names[i] != w {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestTokenizeUnrecognizedInputErrors(t *testing.T) {
	l := buildLexer(t)
	// Next forward-skips over runs no rule recognizes (the '@'), so the
	// error only surfaces once scanning reaches end of input without ever
	// matching again.
	_, err := l.Tokenize("x @")
	if err == nil {
		t.Fatal("expected a lexical error when no rule ever matches again before EOF")
	}
}

func TestDefineHonorsExplicitMatchID(t *testing.T) {
	l := New(0, 0x10FFFF)
	if err := l.Define("NUMBER", "[0-9]+", 7, 0); err != nil {
		t.Fatal(err)
	}
	if err := l.Define("WORD", "[a-z]+", 3, 0); err != nil {
		t.Fatal(err)
	}
	if err := l.Compile(); err != nil {
		t.Fatal(err)
	}
	toks, err := l.Tokenize("42")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Rule != "NUMBER" {
		t.Fatalf("expected a single NUMBER token resolved via its explicit match id, got %+v", toks)
	}
}

func TestDefineRejectsDuplicateMatchID(t *testing.T) {
	l := New(0, 0x10FFFF)
	if err := l.Define("A", "a", 1, 0); err != nil {
		t.Fatal(err)
	}
	if err := l.Define("B", "b", 1, 0); err == nil {
		t.Fatal("expected Define to reject a reused match id")
	}
}

func TestDefineAfterCompileFails(t *testing.T) {
	l := buildLexer(t)
	if err := l.Define("EXTRA", "z", 4, 0); err == nil {
		t.Fatal("expected Define after Compile to error")
	}
}

package lexcore

import "testing"

func TestCompileAndMatch(t *testing.T) {
	re, err := Compile(`[0-9]+`)
	if err != nil {
		t.Fatal(err)
	}
	if !re.MatchString("room 42") {
		t.Fatal("expected a match")
	}
	if re.MatchString("no digits here") {
		t.Fatal("expected no match")
	}
}

func TestFindString(t *testing.T) {
	re := MustCompile(`[0-9]+`)
	if got := re.FindString("age: 42"); got != "42" {
		t.Fatalf("expected \"42\", got %q", got)
	}
	if got := re.FindString("no digits"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestFindAllString(t *testing.T) {
	re := MustCompile(`[0-9]+`)
	got := re.FindAllString("1 22 333", -1)
	want := []string{"1", "22", "333"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNumSubexp(t *testing.T) {
	re := MustCompile(`(a)(b(c))`)
	if re.NumSubexp() != 3 {
		t.Fatalf("expected 3 capture groups, got %d", re.NumSubexp())
	}
}

func TestFindSubmatchPopulatesGroups(t *testing.T) {
	re := MustCompile(`(a)(b)`)
	got := re.FindSubmatch([]byte("xaby"))
	if got == nil {
		t.Fatal("expected a match")
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 slots (whole + 2 groups), got %d", len(got))
	}
	if string(got[0]) != "ab" {
		t.Fatalf("expected whole match \"ab\", got %q", got[0])
	}
	if string(got[1]) != "a" || string(got[2]) != "b" {
		t.Fatalf("expected group spans \"a\" \"b\", got %q %q", got[1], got[2])
	}
}

func TestInsensitiveConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Insensitive = true
	re, err := CompileWithConfig("hello", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !re.MatchString("HELLO") {
		t.Fatal("expected case-insensitive match")
	}
}

func TestReplaceAllString(t *testing.T) {
	re := MustCompile(`[0-9]+`)
	got := re.ReplaceAllString("a1b22c333", "<$0>")
	want := "a<1>b<22>c<333>"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestReplaceAllNumberedGroup(t *testing.T) {
	re := MustCompile(`(\w+)@(\w+)`)
	got := re.ReplaceAllString("user@host", "$2!$1")
	want := "host!user"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSplit(t *testing.T) {
	re := MustCompile(`[ ,]+`)
	got := re.Split("a, b  c", -1)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// Package lexer combines multiple named patterns into a single DFA and
// scans input token by token, generalizing the teacher's root regex.go
// facade down to the multi-pattern case: instead of one compiled pattern,
// a Lexer holds N rules combined through nfa.Combine's left-leaning
// epsilon-spine and resolved by the dfa package's lowest-accept-id
// precedence, exactly as spec §4.8 describes for the C9 component.
package lexer

import (
	"fmt"

	"github.com/phorward/lexcore/ccl"
	"github.com/phorward/lexcore/dfa"
	"github.com/phorward/lexcore/exec"
	"github.com/phorward/lexcore/nfa"
	"github.com/phorward/lexcore/syntax"
)

// Rule is one named pattern a Lexer recognizes, keyed by an explicit,
// caller-chosen match id (spec §4.8's define(pat, match_id, flags)) rather
// than its position in the Define call sequence. When two rules match the
// same longest span the one with the lower match id wins.
type Rule struct {
	Name    string
	Pattern string
	MatchID int
	Flags   syntax.CompileFlags
}

// Lexer accumulates rules via Define, then Compile builds them into one
// DFA. Min/Max bound the codepoint universe patterns are compiled over
// (spec §4.1); callers that only need ASCII input can narrow this for a
// smaller table.
type Lexer struct {
	Min, Max rune

	rules   []Rule
	names   map[int]string
	matcher *exec.Matcher
}

// New returns a Lexer with no rules, whose patterns will be compiled over
// [min, max].
func New(min, max rune) *Lexer {
	return &Lexer{Min: min, Max: max}
}

// Define appends a named rule identified by matchID, the id Tokenize/Lex
// report back as Match.AcceptID/Token.Rule lookups resolve to. It is an
// error to call Define after Compile, or to reuse a matchID already
// defined.
func (l *Lexer) Define(name, pattern string, matchID int, flags syntax.CompileFlags) error {
	if l.matcher != nil {
		return fmt.Errorf("lexer: Define(%q) after Compile", name)
	}
	for _, r := range l.rules {
		if r.MatchID == matchID {
			return fmt.Errorf("lexer: Define(%q): match id %d already used by %q", name, matchID, r.Name)
		}
	}
	l.rules = append(l.rules, Rule{Name: name, Pattern: pattern, MatchID: matchID, Flags: flags})
	return nil
}

// Compile (aka Prepare) parses and combines every defined rule into one
// DFA, ready for Lex/Tokenize.
func (l *Lexer) Compile() error {
	if len(l.rules) == 0 {
		return fmt.Errorf("lexer: no rules defined")
	}
	nfas := make([]*nfa.NFA, len(l.rules))
	names := make(map[int]string, len(l.rules))
	for i, r := range l.rules {
		root, err := syntax.Parse(r.Pattern, l.Min, l.Max, r.Flags)
		if err != nil {
			return fmt.Errorf("lexer: rule %q: %w", r.Name, err)
		}
		n, err := nfa.Compile(root, r.MatchID)
		if err != nil {
			return fmt.Errorf("lexer: rule %q: %w", r.Name, err)
		}
		nfas[i] = n
		names[r.MatchID] = r.Name
	}
	combined := nfa.Combine(nfas)
	d := dfa.Minimize(dfa.Build(combined, ccl.Full(l.Min, l.Max)))
	l.matcher = exec.New(d)
	l.names = names
	return nil
}

// Prepare is an alias for Compile, matching spec.md's naming for C9.
func (l *Lexer) Prepare() error {
	return l.Compile()
}

// RuleName returns the name of the rule with the given match id.
func (l *Lexer) RuleName(acceptID int) string {
	return l.names[acceptID]
}

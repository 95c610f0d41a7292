// Package lexcore provides a Unicode-native regex and lexer toolkit built
// from first principles: character-class algebra (ccl), a recursive-descent
// surface-syntax parser (syntax), Thompson NFA construction (nfa), subset
// construction and minimization into a compact DFA (dfa), a longest-match
// scanning executor (exec), and a multi-pattern lexer on top (lexer).
//
// The public API on Regex mirrors stdlib regexp where the engine's data
// model allows it. Basic usage:
//
//	re, err := lexcore.Compile(`[0-9]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("room 42") {
//	    fmt.Println(re.FindString("room 42")) // "42"
//	}
//
// Limitations: capture-group spans come from the ref-mask's lossy
// last-position tracking (spec DESIGN NOTES §9), not a full backtracking
// submatch engine: a group's span is fixed at its first touch and its end
// keeps moving on every repetition, so FindSubmatch-family results on a
// quantified group reflect that accumulated span rather than only its
// final repetition.
package lexcore

import (
	"github.com/phorward/lexcore/ccl"
	"github.com/phorward/lexcore/dfa"
	"github.com/phorward/lexcore/exec"
	"github.com/phorward/lexcore/nfa"
	"github.com/phorward/lexcore/syntax"
)

// Config controls pattern compilation. DefaultConfig covers the full
// Unicode codepoint range; narrowing Min/Max to [0,0xFF] compiles classes
// in the ASCII/byte-mode universe instead (spec §4.1), which also changes
// ApplyCaseFold's fast path.
type Config struct {
	Min, Max    rune
	Insensitive bool
	NonGreedy   bool
}

// DefaultConfig returns the full-Unicode, case-sensitive, greedy default.
func DefaultConfig() Config {
	return Config{Min: 0, Max: 0x10FFFF}
}

func (c Config) flags() syntax.CompileFlags {
	var f syntax.CompileFlags
	if c.Insensitive {
		f |= syntax.Insensitive
	}
	if c.NonGreedy {
		f |= syntax.NonGreedy
	}
	return f
}

// Regex is a compiled pattern, safe for concurrent use across goroutines:
// Matcher.Run takes no mutable state beyond the input and an optional
// per-call Captures buffer (spec §5).
type Regex struct {
	pattern  string
	matcher  *exec.Matcher
	captures int
}

// Compile compiles pattern with DefaultConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("lexcore: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern under the given Config.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	root, err := syntax.Parse(pattern, cfg.Min, cfg.Max, cfg.flags())
	if err != nil {
		return nil, err
	}
	n, err := nfa.Compile(root, 0)
	if err != nil {
		return nil, err
	}
	d := dfa.Minimize(dfa.Build(n, ccl.Full(cfg.Min, cfg.Max)))
	return &Regex{
		pattern:  pattern,
		matcher:  exec.New(d),
		captures: syntax.CountCaptures(root),
	}, nil
}

// Match reports whether b contains any match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.MatchString(string(b))
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regex) MatchString(s string) bool {
	_, ok := r.matcher.Find(exec.DecodeRunes(s), 0)
	return ok
}

// Find returns the leftmost match in b, or nil if none.
func (r *Regex) Find(b []byte) []byte {
	runes := exec.DecodeRunes(string(b))
	m, ok := r.matcher.Find(runes, 0)
	if !ok {
		return nil
	}
	return []byte(string(runes[m.Start:m.End]))
}

// FindString returns the leftmost match in s, or "" if none.
func (r *Regex) FindString(s string) string {
	runes := exec.DecodeRunes(s)
	m, ok := r.matcher.Find(runes, 0)
	if !ok {
		return ""
	}
	return string(runes[m.Start:m.End])
}

// FindIndex returns the [start, end) byte... actually rune... offsets of
// the leftmost match in b, or nil if none. Offsets are rune indices into
// the decoded input, matching this engine's codepoint-native scanning
// rather than stdlib regexp's byte offsets.
func (r *Regex) FindIndex(b []byte) []int {
	return r.FindStringIndex(string(b))
}

// FindStringIndex returns the [start, end) rune offsets of the leftmost
// match in s, or nil if none.
func (r *Regex) FindStringIndex(s string) []int {
	runes := exec.DecodeRunes(s)
	m, ok := r.matcher.Find(runes, 0)
	if !ok {
		return nil
	}
	return []int{m.Start, m.End}
}

// FindAll returns every non-overlapping match in b. n bounds the result
// count; n < 0 means unlimited and n == 0 returns nil.
func (r *Regex) FindAll(b []byte, n int) [][]byte {
	strs := r.FindAllString(string(b), n)
	if strs == nil {
		return nil
	}
	out := make([][]byte, len(strs))
	for i, s := range strs {
		out[i] = []byte(s)
	}
	return out
}

// FindAllString returns every non-overlapping match in s. n bounds the
// result count; n < 0 means unlimited and n == 0 returns nil.
func (r *Regex) FindAllString(s string, n int) []string {
	if n == 0 {
		return nil
	}
	runes := exec.DecodeRunes(s)
	matches := r.matcher.FindAll(runes)
	if n > 0 && len(matches) > n {
		matches = matches[:n]
	}
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = string(runes[m.Start:m.End])
	}
	return out
}

// Split divides s around every match, like strings.Split. n bounds the
// piece count; n < 0 means unlimited.
func (r *Regex) Split(s string, n int) []string {
	return r.matcher.Split(s, n)
}

// ReplaceAllString replaces every non-overlapping match with template,
// expanding "$0", "$$", and "$1".."$9" per spec §6.4 (see
// exec.Matcher.ReplaceAll).
func (r *Regex) ReplaceAllString(s, template string) string {
	return r.matcher.ReplaceAll(s, template)
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// NumSubexp returns the number of capturing groups in the pattern (not
// counting the whole match).
func (r *Regex) NumSubexp() int {
	return r.captures
}

// FindSubmatch returns the whole match at index 0 followed by each
// capturing group's span at index 1..NumSubexp, nil for a group that never
// participated in the match (see the package doc for the lossy
// last-position semantics of a quantified group's span).
func (r *Regex) FindSubmatch(b []byte) [][]byte {
	runes := exec.DecodeRunes(string(b))
	m, ok := r.matcher.Find(runes, 0)
	if !ok {
		return nil
	}
	out := make([][]byte, r.captures+1)
	out[0] = []byte(string(runes[m.Start:m.End]))
	for i := 0; i < r.captures; i++ {
		slot := m.Captures.Slots[i]
		if slot.Start >= 0 {
			out[i+1] = []byte(string(runes[slot.Start:slot.End]))
		}
	}
	return out
}

// FindStringSubmatch is FindSubmatch for strings.
func (r *Regex) FindStringSubmatch(s string) []string {
	runes := exec.DecodeRunes(s)
	m, ok := r.matcher.Find(runes, 0)
	if !ok {
		return nil
	}
	out := make([]string, r.captures+1)
	out[0] = string(runes[m.Start:m.End])
	for i := 0; i < r.captures; i++ {
		slot := m.Captures.Slots[i]
		if slot.Start >= 0 {
			out[i+1] = string(runes[slot.Start:slot.End])
		}
	}
	return out
}

package lexer

import (
	"errors"
	"fmt"

	"github.com/phorward/lexcore/exec"
)

// Token is one recognized span of input.
type Token struct {
	Rule       string
	Text       string
	Start, End int // rune offsets
}

// ErrNoMatch is returned by Next when no rule matches anywhere between the
// cursor and the end of input.
var ErrNoMatch = errors.New("lexer: no rule matches at current position")

// LexError reports the offset a Tokenize/Next call got stuck at.
type LexError struct {
	Pos int
	Err error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer: at offset %d: %v", e.Pos, e.Err)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// Stream scans one input against a compiled Lexer, one token at a time.
type Stream struct {
	l     *Lexer
	runes []rune
	pos   int
}

// Lex begins scanning input with l, which must already be Compiled.
func (l *Lexer) Lex(input string) *Stream {
	return &Stream{l: l, runes: exec.DecodeRunes(input)}
}

// Next returns the next token, or ok=false once the input is exhausted.
// Next advances from the cursor to the next location that produces any
// match, skipping positions no rule recognizes (spec §4.8), and only
// reports ErrNoMatch once scanning reaches the end of input without ever
// matching. A rule that cannot advance the cursor (a zero-width match) is
// rejected the same way, to avoid looping forever on an always-empty
// pattern.
func (s *Stream) Next() (Token, error, bool) {
	if s.pos >= len(s.runes) {
		return Token{}, nil, false
	}
	match, ok := s.l.matcher.Find(s.runes, s.pos)
	if !ok || match.End == match.Start {
		return Token{}, &LexError{Pos: s.pos, Err: ErrNoMatch}, false
	}
	tok := Token{
		Rule:  s.l.RuleName(match.AcceptID),
		Text:  string(s.runes[match.Start:match.End]),
		Start: match.Start,
		End:   match.End,
	}
	s.pos = match.End
	return tok, nil, true
}

// Pos reports the stream's current rune offset.
func (s *Stream) Pos() int {
	return s.pos
}

// Tokenize runs a Lexer over input to completion, returning every token or
// the first lexical error encountered.
func (l *Lexer) Tokenize(input string) ([]Token, error) {
	s := l.Lex(input)
	var out []Token
	for {
		tok, err, ok := s.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, tok)
	}
}

package ccl

import "fmt"

// Cursor is a rune-at-a-time scanner shared by the class-body parser and the
// pattern parser in package syntax, so escape handling stays identical
// whether an escape appears at the top level of a pattern or inside a
// bracket expression.
type Cursor struct {
	src []rune
	pos int
}

// NewCursor creates a Cursor positioned at the start of s.
func NewCursor(s string) *Cursor {
	return &Cursor{src: []rune(s)}
}

// Pos returns the current rune offset.
func (c *Cursor) Pos() int { return c.pos }

// SetPos rewinds or advances the cursor to an absolute rune offset.
func (c *Cursor) SetPos(p int) { c.pos = p }

// Eof reports whether the cursor has consumed all input.
func (c *Cursor) Eof() bool { return c.pos >= len(c.src) }

// Peek returns the rune at the cursor without consuming it, or (0, false) at
// end of input.
func (c *Cursor) Peek() (rune, bool) {
	if c.Eof() {
		return 0, false
	}
	return c.src[c.pos], true
}

// PeekAt returns the rune offset runes ahead of the cursor without consuming
// anything, or (0, false) if that position is past the end of input.
func (c *Cursor) PeekAt(offset int) (rune, bool) {
	p := c.pos + offset
	if p < 0 || p >= len(c.src) {
		return 0, false
	}
	return c.src[p], true
}

// Next consumes and returns the rune at the cursor, or (0, false) at end of
// input.
func (c *Cursor) Next() (rune, bool) {
	r, ok := c.Peek()
	if ok {
		c.pos++
	}
	return r, ok
}

// Accept consumes the rune at the cursor if it equals r.
func (c *Cursor) Accept(r rune) bool {
	if peek, ok := c.Peek(); ok && peek == r {
		c.pos++
		return true
	}
	return false
}

// Remainder returns the unconsumed tail of the source as a string.
func (c *Cursor) Remainder() string {
	return string(c.src[c.pos:])
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexVal(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10
	default:
		return r - 'A' + 10
	}
}

func isOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

// DecodeEscape consumes a backslash escape from the cursor (the backslash
// itself must already be consumed) and returns the codepoint it denotes.
// It implements spec §6.1's escape table: control escapes (\n \t \r \b \f \v
// \a), literal-metacharacter escapes, octal (\NNN, 1-3 digits), hex (\xHH),
// and the wide-mode unicode forms \uHHHH / \UHHHHHHHH. Any other \x decodes
// to the literal codepoint x, matching the spec's "any other \\x -> literal
// x" fallback. ok is false only when the escape is truncated at end of input.
func DecodeEscape(c *Cursor) (r rune, ok bool) {
	ch, present := c.Next()
	if !present {
		return 0, false
	}
	switch ch {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'v':
		return '\v', true
	case 'a':
		return '\a', true
	case 'x':
		return decodeFixedHex(c, 2), true
	case 'u':
		return decodeFixedHex(c, 4), true
	case 'U':
		return decodeFixedHex(c, 8), true
	default:
		if isOctalDigit(ch) {
			return decodeOctal(c, ch), true
		}
		// literal metacharacter escape (\\ \' \" \[ \] \( \) \| \. \* \+ \? \^ \$)
		// and the "any other \x is literal x" fallback collapse to the same
		// action: the escaped rune itself.
		return ch, true
	}
}

// decodeFixedHex consumes up to maxDigits hex digits and returns the decoded
// codepoint; with no hex digit at the cursor it consumes nothing and
// returns 0. Per spec, \x takes 1-2 digits, \u 1-4, \U
// 1-8; all are "up to N", not "exactly N".
func decodeFixedHex(c *Cursor, maxDigits int) rune {
	var v rune
	n := 0
	for n < maxDigits {
		r, ok := c.Peek()
		if !ok || !isHexDigit(r) {
			break
		}
		v = v*16 + hexVal(r)
		c.Next()
		n++
	}
	return v
}

// decodeOctal consumes up to two further octal digits after first (so up to
// three total) and returns the decoded codepoint.
func decodeOctal(c *Cursor, first rune) rune {
	v := first - '0'
	for n := 0; n < 2; n++ {
		r, ok := c.Peek()
		if !ok || !isOctalDigit(r) {
			break
		}
		v = v*8 + (r - '0')
		c.Next()
	}
	return v
}

// ErrTruncatedEscape is returned by callers that need an error value for a
// backslash at end of input; DecodeEscape itself reports this via ok=false.
var ErrTruncatedEscape = fmt.Errorf("ccl: truncated escape sequence")

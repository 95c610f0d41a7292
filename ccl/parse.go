package ccl

import "fmt"

// ErrUnbalancedBracket is returned when a class-definition string is missing
// its closing ']'.
var ErrUnbalancedBracket = fmt.Errorf("ccl: unbalanced bracket in class definition")

// Parse consumes a class-definition string def — a full "[...]" or "[^...]"
// expression with ranges like "a-z0-9_" in its body, the same form ToStr
// prints — and adds the described codepoints to c. If extend is false, c is
// cleared first.
//
// Escapes (\n, \xHH, \uHHHH, shorthand classes, literal metacharacters) are
// recognized via DecodeEscape / ParseShorthand. A literal ']' must be
// escaped; a literal '-' is permitted at the very start of the body or when
// escaped.
func (c *Class) Parse(def string, extend bool) error {
	return c.ParseBracketed(NewCursor(def), extend)
}

// ParseCursor is like Parse but reads from a shared Cursor, so a pattern
// parser can hand off mid-stream when it encounters a class body (after
// consuming the leading '['). It reads the body and then consumes the
// closing ']', returning ErrUnbalancedBracket if there is none.
func (c *Class) ParseCursor(cur *Cursor, extend bool) error {
	if !extend {
		c.ranges = nil
	}

	negate := cur.Accept('^')
	// A negated body is collected on its own so that the complement covers
	// only what this definition describes, not members c already had.
	dst := c
	if negate {
		dst = New(c.Min, c.Max)
	}

	first := true
	for {
		ch, ok := cur.Peek()
		if !ok {
			return ErrUnbalancedBracket
		}
		if ch == ']' && !first {
			break
		}
		first = false

		lo, err := dst.parseClassAtom(cur)
		if err != nil {
			return err
		}
		if lo.isShorthand {
			continue
		}

		// range? "a-z", but a trailing '-' right before ']' is literal.
		if r, ok := cur.Peek(); ok && r == '-' {
			if next, ok := cur.PeekAt(1); ok && next != ']' {
				cur.Next() // consume '-'
				hi, err := dst.parseClassAtom(cur)
				if err != nil {
					return err
				}
				dst.AddRange(lo.r, hi.r)
				continue
			}
		}
		dst.Add(lo.r)
	}

	if !cur.Accept(']') {
		return ErrUnbalancedBracket
	}

	if negate {
		dst.Negate()
		c.ranges = append(c.ranges, dst.ranges...)
		c.normalize()
	}
	c.invalidate()
	return nil
}

// ParseBracketed parses a full "[...]" or "[^...]" class expression
// (including the brackets) starting at the cursor's current position.
func (c *Class) ParseBracketed(cur *Cursor, extend bool) error {
	if !cur.Accept('[') {
		return fmt.Errorf("ccl: class definition must start with '['")
	}
	return c.ParseCursor(cur, extend)
}

type classAtom struct {
	r           rune
	isShorthand bool
}

// parseClassAtom consumes one class member: an escape (including a
// shorthand class, which is applied directly and reported via
// isShorthand so the caller doesn't also treat it as a range endpoint), or
// a literal rune.
func (c *Class) parseClassAtom(cur *Cursor) (classAtom, error) {
	ch, ok := cur.Next()
	if !ok {
		return classAtom{}, ErrUnbalancedBracket
	}
	if ch != '\\' {
		return classAtom{r: ch}, nil
	}

	if next, ok := cur.Peek(); ok && isShorthandLetter(next) {
		if err := c.ParseShorthand(cur); err != nil {
			return classAtom{}, err
		}
		return classAtom{isShorthand: true}, nil
	}

	r, ok := DecodeEscape(cur)
	if !ok {
		return classAtom{}, ErrTruncatedEscape
	}
	return classAtom{r: r}, nil
}

func isShorthandLetter(r rune) bool {
	switch r {
	case 'd', 'D', 'w', 'W', 's', 'S':
		return true
	default:
		return false
	}
}

// ParseShorthand consumes one of \d \D \w \W \s \S from the cursor
// (positioned just after the backslash) and adds (or negates-then-adds) the
// corresponding ASCII-only backing class to c, per spec §4.1: digits are
// 0-9, word characters are a-zA-Z_0-9, space is
// [space tab newline cr formfeed vtab]. This is deliberately ASCII-only and
// must not silently widen to Unicode categories. Returns an error (and
// leaves the cursor past the letter) only if the letter isn't one of the
// six recognized shorthands.
func (c *Class) ParseShorthand(cur *Cursor) error {
	letter, ok := cur.Next()
	if !ok {
		return ErrTruncatedEscape
	}

	var def *Class
	negate := false
	switch letter {
	case 'd':
		def = digitClass(c.Min, c.Max)
	case 'D':
		def = digitClass(c.Min, c.Max)
		negate = true
	case 'w':
		def = wordClass(c.Min, c.Max)
	case 'W':
		def = wordClass(c.Min, c.Max)
		negate = true
	case 's':
		def = spaceClass(c.Min, c.Max)
	case 'S':
		def = spaceClass(c.Min, c.Max)
		negate = true
	default:
		return fmt.Errorf("ccl: unknown shorthand class \\%c", letter)
	}

	if negate {
		def.Negate()
	}
	c.ranges = append(c.ranges, def.ranges...)
	c.normalize()
	c.invalidate()
	return nil
}

func digitClass(min, max rune) *Class {
	c := New(min, max)
	c.AddRange('0', '9')
	return c
}

func wordClass(min, max rune) *Class {
	c := New(min, max)
	c.AddRange('a', 'z')
	c.AddRange('A', 'Z')
	c.AddRange('_', '_')
	c.AddRange('0', '9')
	return c
}

func spaceClass(min, max rune) *Class {
	c := New(min, max)
	c.Add(' ')
	c.Add('\t')
	c.Add('\n')
	c.Add('\r')
	c.Add('\f')
	c.Add('\v')
	return c
}

// ApplyCaseFold adds, for every codepoint currently in c, the opposite-case
// codepoint: ASCII toupper/tolower when c's universe is byte-sized ([0,255]
// — "byte mode" per spec §4.1), Unicode simple case-fold otherwise. Used by
// the pattern parser (package syntax) when the INSENSITIVE compile flag is
// set.
func (c *Class) ApplyCaseFold() {
	extra := New(c.Min, c.Max)
	if c.Max <= 0xFF {
		for _, rg := range c.ranges {
			for r := rg.Lo; r <= rg.Hi; r++ {
				extra.Add(asciiSwapCase(r))
			}
		}
	} else {
		for _, rg := range c.ranges {
			for r := rg.Lo; r <= rg.Hi; r++ {
				for f := unicodeSimpleFold(r); f != r; f = unicodeSimpleFold(f) {
					extra.Add(f)
				}
			}
		}
	}
	c.ranges = append(c.ranges, extra.ranges...)
	c.normalize()
	c.invalidate()
}

func asciiSwapCase(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return r - ('a' - 'A')
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A')
	default:
		return r
	}
}

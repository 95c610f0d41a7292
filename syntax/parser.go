package syntax

import (
	"github.com/phorward/lexcore/ccl"
	"github.com/phorward/lexcore/matchflag"
)

// Parser implements the recursive-descent, one-token-lookahead grammar of
// spec §4.2:
//
//	alter     = sequence ( '|' sequence )*
//	sequence  = factor+
//	factor    = char ( '*' | '+' | '?' )?
//	char      = '(' alter ')'               -> Group(..., captured=true)
//	          | '.'                          -> Char(universe)
//	          | '[' '^'? class-body ']'      -> Char(ccl)
//	          | shorthand                    -> Char(ccl)
//	          | single-char                  -> Char({c})
type Parser struct {
	cur      *ccl.Cursor
	min, max rune
	flags    CompileFlags
	pattern  string

	// err records the first error seen; under NOERRORS it is recorded but
	// parsing continues on a best-effort AST.
	err error
}

// Parse parses pattern over the universe [min, max] with the given compile
// flags and returns its AST root. Anchor flags (BOL/EOL/BOW/EOW) are
// recorded on the returned root node.
func Parse(pattern string, min, max rune, flags CompileFlags) (*Node, error) {
	p := &Parser{
		cur:     ccl.NewCursor(pattern),
		min:     min,
		max:     max,
		flags:   flags,
		pattern: pattern,
	}

	if flags.Has(Static) {
		return NewString(pattern, min, max, flags.Has(Insensitive)), nil
	}

	root := p.parsePattern()
	if !p.cur.Eof() {
		// Only an unmatched ')' ends the descent before the input does.
		p.fail(ErrUnbalancedParen)
	}
	if p.err != nil && !flags.Has(NoErrors) {
		return nil, &CompileError{Pattern: pattern, Pos: p.cur.Pos(), Err: p.err}
	}
	if root == nil {
		root = p.epsilon()
	}
	return root, nil
}

func (p *Parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *Parser) epsilon() *Node {
	return NewKleene(NewChar(ccl.New(p.min, p.max)))
}

// parsePattern handles the leading/trailing anchors that the grammar
// recognizes only at pattern start/end, then delegates to parseAlter for
// the body.
func (p *Parser) parsePattern() *Node {
	var lead matchflag.Flags
	if !p.flags.Has(NoAnchors) {
		if p.cur.Accept('^') {
			lead |= matchflag.BOL
		} else if p.matchLiteral(`\<`) {
			p.cur.SetPos(p.cur.Pos() + 2)
			lead |= matchflag.BOW
		}
	}

	root := p.parseAlter()

	var trail matchflag.Flags
	if !p.flags.Has(NoAnchors) {
		switch p.cur.Remainder() {
		case "$":
			p.cur.Next()
			trail |= matchflag.EOL
		case `\>`:
			p.cur.Next()
			p.cur.Next()
			trail |= matchflag.EOW
		}
	}

	if root == nil {
		root = p.epsilon()
	}
	if p.flags.Has(NonGreedy) {
		trail |= matchflag.NonGreedy
	}
	root.Flags |= lead | trail
	return root
}

// matchLiteral reports whether the cursor is positioned exactly at literal.
func (p *Parser) matchLiteral(literal string) bool {
	rem := p.cur.Remainder()
	if len(rem) < len(literal) {
		return false
	}
	return rem[:len(literal)] == literal
}

func (p *Parser) parseAlter() *Node {
	left := p.parseSequence()
	for p.cur.Accept('|') {
		right := p.parseSequence()
		left = NewAlt(orEpsilon(left, p), orEpsilon(right, p))
	}
	return left
}

func orEpsilon(n *Node, p *Parser) *Node {
	if n == nil {
		return p.epsilon()
	}
	return n
}

func (p *Parser) parseSequence() *Node {
	var head *Node
	for {
		if r, ok := p.cur.Peek(); !ok || r == '|' || r == ')' {
			break
		}
		if p.atTrailingAnchor() {
			break
		}
		f := p.parseFactor()
		if f == nil {
			break
		}
		head = NewSeq(head, f)
	}
	return head
}

// atTrailingAnchor reports whether the cursor sits exactly at a '$' or '\>'
// that terminates the whole pattern (not just the current alternative),
// so parseSequence stops before consuming it as a literal.
func (p *Parser) atTrailingAnchor() bool {
	if p.flags.Has(NoAnchors) {
		return false
	}
	rem := p.cur.Remainder()
	if rem == "$" {
		return true
	}
	if rem == `\>` {
		return true
	}
	return false
}

func (p *Parser) parseFactor() *Node {
	atom := p.parseCharNode()
	if atom == nil {
		return nil
	}
	for {
		r, ok := p.cur.Peek()
		if !ok {
			break
		}
		switch r {
		case '*':
			p.cur.Next()
			atom = NewKleene(atom)
			continue
		case '+':
			p.cur.Next()
			atom = NewPos(atom)
			continue
		case '?':
			p.cur.Next()
			atom = NewOpt(atom)
			continue
		}
		break
	}
	return atom
}

func (p *Parser) parseCharNode() *Node {
	r, ok := p.cur.Peek()
	if !ok {
		return nil
	}

	switch r {
	case '(':
		p.cur.Next()
		inner := p.parseAlter()
		if !p.cur.Accept(')') {
			p.fail(ErrUnbalancedParen)
			if !p.flags.Has(NoErrors) {
				return orEpsilon(inner, p)
			}
		}
		if p.flags.Has(NoRef) {
			return NewSub(orEpsilon(inner, p))
		}
		return NewRefSub(orEpsilon(inner, p))

	case '.':
		p.cur.Next()
		return NewChar(ccl.Full(p.min, p.max))

	case '[':
		p.cur.Next()
		cls := ccl.New(p.min, p.max)
		if err := cls.ParseCursor(p.cur, false); err != nil {
			p.fail(err)
			if !p.flags.Has(NoErrors) {
				return nil
			}
		}
		if p.flags.Has(Insensitive) {
			cls.ApplyCaseFold()
		}
		return NewChar(cls)

	case '\\':
		return p.parseEscapeAtom()

	default:
		p.cur.Next()
		cls := ccl.New(p.min, p.max)
		cls.Add(r)
		if p.flags.Has(Insensitive) {
			cls.ApplyCaseFold()
		}
		return NewChar(cls)
	}
}

func (p *Parser) parseEscapeAtom() *Node {
	p.cur.Next() // consume '\'
	next, ok := p.cur.Peek()
	if !ok {
		p.fail(ErrTruncatedEscape)
		return nil
	}

	switch next {
	case 'd', 'D', 'w', 'W', 's', 'S':
		cls := ccl.New(p.min, p.max)
		_ = cls.ParseShorthand(p.cur) // next is one of the six recognized letters; cannot fail
		return NewChar(cls)
	default:
		r, ok := ccl.DecodeEscape(p.cur)
		if !ok {
			p.fail(ErrTruncatedEscape)
			return nil
		}
		cls := ccl.New(p.min, p.max)
		cls.Add(r)
		if p.flags.Has(Insensitive) {
			cls.ApplyCaseFold()
		}
		return NewChar(cls)
	}
}

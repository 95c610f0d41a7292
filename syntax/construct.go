package syntax

import (
	"github.com/phorward/lexcore/ccl"
)

// NewChar builds a single-character-class leaf node.
func NewChar(c *ccl.Class) *Node {
	return &Node{Op: OpChar, Char: c}
}

// NewString builds a concatenation of single-character classes, one per
// rune of s, applying case-insensitivity per character when insensitive is
// set. This backs the STATIC compile flag (spec §6.2): the literal string
// bypasses the parser entirely and is turned directly into an AST via this
// constructor.
func NewString(s string, min, max rune, insensitive bool) *Node {
	var head, tail *Node
	for _, r := range s {
		c := ccl.New(min, max)
		c.Add(r)
		if insensitive {
			c.ApplyCaseFold()
		}
		n := NewChar(c)
		if head == nil {
			head = n
			tail = n
		} else {
			tail.Next = n
			tail = n
		}
	}
	if head == nil {
		// Empty string: a group around nothing still needs to be a valid,
		// zero-width node. Model it as an Opt around a fresh dot-less char
		// node is wrong (would consume); instead synthesize Kleene(Char)
		// which is satisfied with zero repeats. Building it from an empty
		// class keeps it inert: the labeled state can never consume a
		// codepoint, so only the zero-repeat path is ever taken.
		c := ccl.New(min, max)
		head = NewKleene(NewChar(c))
	}
	return head
}

// NewSub builds a non-capturing group around x — kept only for structural
// grouping; the NFA builder assigns it no capture index.
func NewSub(x *Node) *Node {
	return &Node{Op: OpGroup, Left: x, Captured: false}
}

// NewRefSub builds a capturing group around x. Its capture index is
// assigned by the NFA builder at build time (left-to-right over opening
// parentheses); if all MaxRef slots are exhausted the group silently
// degrades to non-capturing (spec §4.2, §7).
func NewRefSub(x *Node) *Node {
	return &Node{Op: OpGroup, Left: x, Captured: true}
}

// NewAlt builds an alternation a|b.
func NewAlt(a, b *Node) *Node {
	return &Node{Op: OpAlt, Left: a, Right: b}
}

// NewKleene builds a Kleene closure x* (zero or more).
func NewKleene(x *Node) *Node {
	return &Node{Op: OpKleene, Left: x}
}

// NewPos builds a positive closure x+ (one or more).
func NewPos(x *Node) *Node {
	return &Node{Op: OpPlus, Left: x}
}

// NewOpt builds an optional x? (zero or one).
func NewOpt(x *Node) *Node {
	return &Node{Op: OpOpt, Left: x}
}

// NewSeq concatenates a followed by b by appending b onto a's Next chain.
// Either argument may be nil, in which case the other is returned unchanged.
func NewSeq(a, b *Node) *Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return a.Append(b)
}

package nfa

import (
	"github.com/phorward/lexcore/matchflag"
	"github.com/phorward/lexcore/syntax"
)

// fragment is a Thompson-construction fragment: a start state and a single
// dangling "out" transition waiting to be patched to whatever follows,
// grounded in the teacher's own fragment-returning AddXxx/Patch sequencing
// in nfa/builder.go and nfa/compile.go.
type fragment struct {
	start StateID
	out   StateID
}

// compiler threads a Builder and a capture-group counter through a single
// AST compilation (spec §4.3's construction table).
type compiler struct {
	b        *Builder
	captures int
}

// Compile performs Thompson construction on an AST produced by package
// syntax, producing a single-pattern NFA whose sole accept state carries
// acceptID and the root node's anchor/greediness flags.
func Compile(root *syntax.Node, acceptID int) (*NFA, error) {
	b := NewBuilder()
	c := &compiler{b: b}

	frag, err := c.compileSeq(root)
	if err != nil {
		return nil, err
	}

	accept := b.AddAccept(acceptID, rootFlags(root), 0)
	if err := b.Patch(frag.out, accept); err != nil {
		return nil, err
	}
	return b.Build(frag.start), nil
}

func rootFlags(root *syntax.Node) matchflag.Flags {
	if root == nil {
		return 0
	}
	return root.Flags
}

// compileSeq compiles a Next-linked chain of sibling nodes into a single
// fragment, patching each element's out to the next element's start.
func (c *compiler) compileSeq(n *syntax.Node) (fragment, error) {
	if n == nil {
		eps := c.b.AddEpsilon0()
		return fragment{start: eps, out: eps}, nil
	}

	head, err := c.compileAtom(n)
	if err != nil {
		return fragment{}, err
	}
	prev := head
	for cur := n.Next; cur != nil; cur = cur.Next {
		next, err := c.compileAtom(cur)
		if err != nil {
			return fragment{}, err
		}
		if err := c.b.Patch(prev.out, next.start); err != nil {
			return fragment{}, err
		}
		prev = fragment{start: head.start, out: next.out}
	}
	return prev, nil
}

// compileAtom compiles a single AST node (ignoring its Next sibling link),
// dispatching on Op per spec §4.3's construction table.
func (c *compiler) compileAtom(n *syntax.Node) (fragment, error) {
	switch n.Op {
	case syntax.OpChar:
		id := c.b.AddChar(n.Char)
		return fragment{start: id, out: id}, nil

	case syntax.OpAlt:
		left, err := c.compileSeq(n.Left)
		if err != nil {
			return fragment{}, err
		}
		right, err := c.compileSeq(n.Right)
		if err != nil {
			return fragment{}, err
		}
		split := c.b.AddSplit()
		if err := c.b.Patch(split, left.start); err != nil {
			return fragment{}, err
		}
		if err := c.b.Patch(split, right.start); err != nil {
			return fragment{}, err
		}
		join := c.b.AddEpsilon0()
		if err := c.b.Patch(left.out, join); err != nil {
			return fragment{}, err
		}
		if err := c.b.Patch(right.out, join); err != nil {
			return fragment{}, err
		}
		return fragment{start: split, out: join}, nil

	case syntax.OpKleene:
		inner, err := c.compileSeq(n.Left)
		if err != nil {
			return fragment{}, err
		}
		split := c.b.AddSplit()
		if err := c.b.Patch(split, inner.start); err != nil {
			return fragment{}, err
		}
		if err := c.b.Patch(inner.out, split); err != nil {
			return fragment{}, err
		}
		return fragment{start: split, out: split}, nil

	case syntax.OpPlus:
		inner, err := c.compileSeq(n.Left)
		if err != nil {
			return fragment{}, err
		}
		split := c.b.AddSplit()
		if err := c.b.Patch(inner.out, split); err != nil {
			return fragment{}, err
		}
		if err := c.b.Patch(split, inner.start); err != nil {
			return fragment{}, err
		}
		return fragment{start: inner.start, out: split}, nil

	case syntax.OpOpt:
		inner, err := c.compileSeq(n.Left)
		if err != nil {
			return fragment{}, err
		}
		split := c.b.AddSplit()
		if err := c.b.Patch(split, inner.start); err != nil {
			return fragment{}, err
		}
		join := c.b.AddEpsilon0()
		if err := c.b.Patch(inner.out, join); err != nil {
			return fragment{}, err
		}
		if err := c.b.Patch(split, join); err != nil {
			return fragment{}, err
		}
		return fragment{start: split, out: join}, nil

	case syntax.OpGroup:
		inner, err := c.compileSeq(n.Left)
		if err != nil {
			return fragment{}, err
		}
		if !n.Captured {
			return inner, nil
		}
		if c.captures >= MaxRef {
			// Silent degrade to non-capturing once every ref-mask bit is
			// spoken for (spec §4.2, §7).
			return inner, nil
		}
		bit := uint32(1) << uint(c.captures)
		c.captures++

		enter := c.b.AddEpsilon0()
		c.b.State(enter).RefMask |= bit
		if err := c.b.Patch(enter, inner.start); err != nil {
			return fragment{}, err
		}
		exit := c.b.AddEpsilon0()
		c.b.State(exit).RefMask |= bit
		if err := c.b.Patch(inner.out, exit); err != nil {
			return fragment{}, err
		}
		return fragment{start: enter, out: exit}, nil

	default:
		eps := c.b.AddEpsilon0()
		return fragment{start: eps, out: eps}, nil
	}
}

package syntax

import (
	"strings"

	"github.com/phorward/lexcore/matchflag"
)

// ToRegex regenerates a canonical regex string from an AST, escaping
// metacharacters and printing a class in negated form when its complement
// has fewer ranges (delegated to ccl.Class.ToStr, which applies that
// heuristic). The round-trip property (spec §8) is
// Parse(ToRegex(n)) accepts an AST equivalent to n.
func ToRegex(n *Node) string {
	var sb strings.Builder
	if n != nil && n.Flags.Has(matchflag.BOL) {
		sb.WriteByte('^')
	}
	if n != nil && n.Flags.Has(matchflag.BOW) {
		sb.WriteString(`\<`)
	}
	writeSeq(&sb, n)
	if n != nil && n.Flags.Has(matchflag.EOW) {
		sb.WriteString(`\>`)
	}
	if n != nil && n.Flags.Has(matchflag.EOL) {
		sb.WriteByte('$')
	}
	return sb.String()
}

func writeSeq(sb *strings.Builder, n *Node) {
	for cur := n; cur != nil; cur = cur.Next {
		writeAtom(sb, cur)
	}
}

func writeAtom(sb *strings.Builder, n *Node) {
	switch n.Op {
	case OpChar:
		sb.WriteString(n.Char.ToStr(true))
	case OpAlt:
		sb.WriteByte('(')
		writeSeq(sb, n.Left)
		sb.WriteByte('|')
		writeSeq(sb, n.Right)
		sb.WriteByte(')')
	case OpKleene:
		writeOperand(sb, n.Left)
		sb.WriteByte('*')
	case OpPlus:
		writeOperand(sb, n.Left)
		sb.WriteByte('+')
	case OpOpt:
		writeOperand(sb, n.Left)
		sb.WriteByte('?')
	case OpGroup:
		sb.WriteByte('(')
		writeSeq(sb, n.Left)
		sb.WriteByte(')')
	}
}

// writeOperand parenthesizes multi-node or compound operands of a postfix
// quantifier so the regenerated string re-parses to an equivalent shape.
// The surface grammar (spec §4.2) has no non-capturing group syntax, so
// this reuses plain '(' ')' — re-parsing promotes the grouping to a capture
// group, which is a cosmetic difference ToRegex accepts for diagnostics.
func writeOperand(sb *strings.Builder, n *Node) {
	if n != nil && n.Next == nil && n.Op == OpChar {
		writeAtom(sb, n)
		return
	}
	sb.WriteByte('(')
	writeSeq(sb, n)
	sb.WriteByte(')')
}

package syntax

// CountCaptures walks an AST and counts capturing groups in the same
// left-to-right order the NFA builder assigns indices in (package nfa's
// Compile), so callers can size result slices before a single match is even
// run. Unlike the builder, this count is not bounded by MaxRef: a pattern
// with more than MaxRef groups still reports its true group count, matching
// stdlib regexp.NumSubexp's convention, even though only the first MaxRef
// groups ever get a ref-mask bit.
func CountCaptures(root *Node) int {
	n := 0
	var walk func(*Node)
	walk = func(cur *Node) {
		for c := cur; c != nil; c = c.Next {
			if c.Op == OpGroup && c.Captured {
				n++
			}
			if c.Left != nil {
				walk(c.Left)
			}
			if c.Right != nil {
				walk(c.Right)
			}
		}
	}
	walk(root)
	return n
}

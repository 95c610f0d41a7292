package ccl

import "unicode"

// unicodeSimpleFold wraps unicode.SimpleFold, which iterates the orbit of
// runes that case-fold together (r -> next equivalent rune, cycling back to
// r). DESIGN NOTES §9 flags the source's locale-dependent iswupper/iswlower
// case handling as a wart to avoid; an explicit case-fold table (here,
// Go's built-in one) sidesteps that dependency entirely.
func unicodeSimpleFold(r rune) rune {
	return unicode.SimpleFold(r)
}

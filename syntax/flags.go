package syntax

// CompileFlags controls how Parse and the downstream NFA builder treat a
// pattern at compile time (spec §6.2, "Compile-time" table).
type CompileFlags uint16

const (
	// WCHAR marks the source (and later, the input) as wide-character. In
	// this Go implementation matching is always codepoint-based, so WCHAR
	// is accepted and stored but has no further effect — see SPEC_FULL.md's
	// Unicode note in §4.1.
	WCHAR CompileFlags = 1 << iota

	// NoAnchors treats ^ $ \< \> as literal characters instead of anchors.
	NoAnchors

	// NoRef makes every group non-capturing, regardless of how it was
	// written.
	NoRef

	// NonGreedy compiles every pattern to stop at the first accept instead
	// of scanning for the longest match.
	NonGreedy

	// NoErrors makes the parser recover from a soft parse error (unbalanced
	// bracket/paren, unknown shorthand) instead of failing the compile.
	NoErrors

	// Insensitive case-folds every character class built while parsing.
	Insensitive

	// Static treats the input as a literal string, not a regex, bypassing
	// the parser entirely (see NewString).
	Static

	// PTN is accepted and stored like the other flags, but nothing reads
	// it: Parse always takes pattern text and parses it, so PTN does not
	// bypass parsing.
	PTN
)

// Has reports whether all bits of want are set in f.
func (f CompileFlags) Has(want CompileFlags) bool {
	return f&want == want
}

package exec

import "strings"

// ReplaceAll replaces every non-overlapping match in s with template,
// expanding "$$" to a literal dollar, "$0" to the whole match, and "$1"
// through "$9" to capture group 1 through 9's span per spec §6.4. A
// reference to a group that never participated in the match (Captures.Slots
// untouched) expands to empty, per the ref-mask's lossy last-position
// semantics (spec DESIGN NOTES §9).
func (m *Matcher) ReplaceAll(s, template string) string {
	runes := []rune(s)
	matches := m.FindAll(runes)
	if len(matches) == 0 {
		return s
	}

	var sb strings.Builder
	prev := 0
	for _, match := range matches {
		sb.WriteString(string(runes[prev:match.Start]))
		expandTemplate(&sb, template, runes, match)
		prev = match.End
	}
	sb.WriteString(string(runes[prev:]))
	return sb.String()
}

func expandTemplate(sb *strings.Builder, template string, runes []rune, match Match) {
	for i := 0; i < len(template); i++ {
		if template[i] != '$' || i+1 >= len(template) {
			sb.WriteByte(template[i])
			continue
		}
		switch next := template[i+1]; {
		case next == '$':
			sb.WriteByte('$')
			i++
		case next == '0':
			sb.WriteString(string(runes[match.Start:match.End]))
			i++
		case next >= '1' && next <= '9':
			group := int(next - '1')
			slot := match.Captures.Slots[group]
			if slot.Start >= 0 {
				sb.WriteString(string(runes[slot.Start:slot.End]))
			}
			i++
		default:
			sb.WriteByte('$')
		}
	}
}

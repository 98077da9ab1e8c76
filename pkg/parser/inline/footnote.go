package inline

import "strings"

// parseInlineFootnote matches an inline note ^[text]. Brackets inside
// nest; escapes are skipped.
func parseInlineFootnote(s string) (length, contentStart, contentEnd int, ok bool) {
	if len(s) < 3 || s[0] != '^' || s[1] != '[' {
		return 0, 0, 0, false
	}
	depth := 1
	for pos := 2; pos < len(s); pos++ {
		switch s[pos] {
		case '\\':
			pos++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return pos + 1, 2, pos, true
			}
		}
	}
	return 0, 0, 0, false
}

// parseFootnoteRef matches a footnote reference [^id]. The id is
// nonempty and holds no whitespace or brackets.
func parseFootnoteRef(s string) (length, contentStart, contentEnd int, ok bool) {
	if len(s) < 4 || s[0] != '[' || s[1] != '^' {
		return 0, 0, 0, false
	}
	close := strings.IndexByte(s, ']')
	if close < 3 {
		return 0, 0, 0, false
	}
	id := s[2:close]
	if strings.ContainsAny(id, " \t\n[^") {
		return 0, 0, 0, false
	}
	return close + 1, 2, close, true
}

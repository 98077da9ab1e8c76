package inline

// parseSuperscript matches ^text^. The body is nonempty and must not
// touch its delimiters with whitespace.
func parseSuperscript(s string) (length, contentStart, contentEnd int, ok bool) {
	if len(s) < 3 || s[0] != '^' || s[1] == '[' {
		return 0, 0, 0, false
	}
	if isSpanSpace(s[1]) {
		return 0, 0, 0, false
	}
	for pos := 1; pos < len(s); pos++ {
		switch s[pos] {
		case '\\':
			pos++
		case '^':
			if pos == 1 || isSpanSpace(s[pos-1]) {
				return 0, 0, 0, false
			}
			return pos + 1, 1, pos, true
		}
	}
	return 0, 0, 0, false
}

// parseSubscript matches ~text~ under the same whitespace rules as
// superscript. A tilde that belongs to a ~~ pair never delimits a
// subscript.
func parseSubscript(s string) (length, contentStart, contentEnd int, ok bool) {
	if len(s) < 3 || s[0] != '~' || s[1] == '~' {
		return 0, 0, 0, false
	}
	if isSpanSpace(s[1]) {
		return 0, 0, 0, false
	}
	for pos := 1; pos < len(s); pos++ {
		switch s[pos] {
		case '\\':
			pos++
		case '~':
			if pos+1 < len(s) && s[pos+1] == '~' {
				return 0, 0, 0, false
			}
			if pos == 1 || isSpanSpace(s[pos-1]) {
				return 0, 0, 0, false
			}
			return pos + 1, 1, pos, true
		}
	}
	return 0, 0, 0, false
}

// parseStrikeout matches ~~text~~. Exactly two tildes open; a third
// rejects the match. A closing pair followed by more tildes is not a
// close.
func parseStrikeout(s string) (length, contentStart, contentEnd int, ok bool) {
	if len(s) < 5 || s[0] != '~' || s[1] != '~' || s[2] == '~' {
		return 0, 0, 0, false
	}
	if isSpanSpace(s[2]) {
		return 0, 0, 0, false
	}
	for pos := 2; pos+1 < len(s); pos++ {
		switch s[pos] {
		case '\\':
			pos++
		case '~':
			if s[pos+1] != '~' {
				continue
			}
			if pos+2 < len(s) && s[pos+2] == '~' {
				pos += 2
				continue
			}
			if pos == 2 || isSpanSpace(s[pos-1]) {
				return 0, 0, 0, false
			}
			return pos + 2, 2, pos, true
		}
	}
	return 0, 0, 0, false
}

func isSpanSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}

package inline

// parseEscape matches a backslash escape at the start of s. A
// backslash before ASCII punctuation escapes it; before a space it is
// a nonbreaking space; before a newline it is a hard line break.
func parseEscape(s string) (length int, kind escapeKind, ok bool) {
	if len(s) < 2 || s[0] != '\\' {
		return 0, 0, false
	}
	switch ch := s[1]; {
	case ch == ' ':
		return 2, escNonbreakingSpace, true
	case ch == '\n':
		return 2, escHardBreak, true
	case isASCIIPunct(ch):
		return 2, escLiteral, true
	}
	return 0, 0, false
}

func isASCIIPunct(ch byte) bool {
	switch {
	case ch >= '!' && ch <= '/':
		return true
	case ch >= ':' && ch <= '@':
		return true
	case ch >= '[' && ch <= '`':
		return true
	case ch >= '{' && ch <= '~':
		return true
	}
	return false
}

// parseLatexCommand matches an inline LaTeX command: a backslash, a
// letters-only name, and any number of adjacent [..] or {..} argument
// groups. A double backslash is never a command.
func parseLatexCommand(s string) (length int, ok bool) {
	if len(s) < 2 || s[0] != '\\' || s[1] == '\\' {
		return 0, false
	}
	pos := 1
	for pos < len(s) && isLetter(s[pos]) {
		pos++
	}
	if pos == 1 {
		return 0, false
	}
	for pos < len(s) && (s[pos] == '{' || s[pos] == '[') {
		n := argGroup(s[pos:])
		if n == 0 {
			break
		}
		pos += n
	}
	return pos, true
}

// argGroup returns the length of a balanced {..} or [..] group at the
// start of s, or 0 when the group never closes.
func argGroup(s string) int {
	open := s[0]
	var close byte = '}'
	if open == '[' {
		close = ']'
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return 0
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

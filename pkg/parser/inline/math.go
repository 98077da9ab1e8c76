package inline

import "strings"

// parseInlineMath matches $math$ under Pandoc's rules: the opening
// dollar is followed by a non-space, the closing dollar is preceded
// by a non-space and not followed by a digit, and the body stays on
// one line. Escaped dollars do not close.
func parseInlineMath(s string) (length, contentStart, contentEnd int, ok bool) {
	if len(s) < 3 || s[0] != '$' || s[1] == '$' {
		return 0, 0, 0, false
	}
	if s[1] == ' ' || s[1] == '\t' {
		return 0, 0, 0, false
	}

	for pos := 1; pos < len(s); pos++ {
		switch s[pos] {
		case '\\':
			pos++
		case '\n':
			return 0, 0, 0, false
		case '$':
			// A $$ run inside means display math, not an inline close.
			if pos+1 < len(s) && s[pos+1] == '$' {
				return 0, 0, 0, false
			}
			// Candidates with a space before or a digit after do not
			// close; keep scanning.
			if prev := s[pos-1]; prev == ' ' || prev == '\t' {
				continue
			}
			if pos+1 < len(s) && s[pos+1] >= '0' && s[pos+1] <= '9' {
				continue
			}
			return pos + 1, 1, pos, true
		}
	}
	return 0, 0, 0, false
}

// parseDisplayMath matches $$math$$ with two or more dollars. The
// closing run must be at least as long as the opening run and is
// consumed whole.
func parseDisplayMath(s string) (length, contentStart, contentEnd int, ok bool) {
	open := 0
	for open < len(s) && s[open] == '$' {
		open++
	}
	if open < 2 {
		return 0, 0, 0, false
	}

	for pos := open; pos < len(s); pos++ {
		switch s[pos] {
		case '\\':
			pos++
		case '$':
			run := 0
			for pos+run < len(s) && s[pos+run] == '$' {
				run++
			}
			if run < open {
				pos += run - 1
				continue
			}
			return pos + run, open, pos, true
		}
	}
	return 0, 0, 0, false
}

// parseBackslashMath matches \(..\), \[..\], \\(..\\), and \\[..\\]
// math. The doubled parameter selects the double-backslash forms;
// display reports the bracket (display) variant.
func parseBackslashMath(s string, doubled bool) (length, contentStart, contentEnd int, display, ok bool) {
	lead := `\`
	if doubled {
		lead = `\\`
	}
	rest, found := strings.CutPrefix(s, lead)
	if !found || rest == "" {
		return 0, 0, 0, false, false
	}

	var close string
	switch rest[0] {
	case '[':
		display = true
		close = lead + "]"
	case '(':
		close = lead + ")"
	default:
		return 0, 0, 0, false, false
	}

	contentStart = len(lead) + 1
	idx := strings.Index(s[contentStart:], close)
	if idx < 0 {
		return 0, 0, 0, false, false
	}
	contentEnd = contentStart + idx
	if strings.ContainsRune(s[contentStart:contentEnd], '\n') {
		return 0, 0, 0, false, false
	}
	return contentEnd + len(close), contentStart, contentEnd, display, true
}

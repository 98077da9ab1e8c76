package inline

import "strings"

// bracketSpan returns the offset of the ']' closing the bracket at
// s[0], honoring nesting and escapes, or -1.
func bracketSpan(s string) int {
	depth := 0
	for pos := 1; pos < len(s); pos++ {
		switch s[pos] {
		case '\\':
			pos++
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return pos
			}
			depth--
		}
	}
	return -1
}

// destSpan returns the offset of the ')' closing a link destination
// opened at s[0] == '('. Parentheses nest, double quotes protect
// titles, escapes skip.
func destSpan(s string) int {
	depth := 0
	inQuotes := false
	for pos := 1; pos < len(s); pos++ {
		switch s[pos] {
		case '\\':
			pos++
		case '"':
			inQuotes = !inQuotes
		case '(':
			if !inQuotes {
				depth++
			}
		case ')':
			if inQuotes {
				continue
			}
			if depth == 0 {
				return pos
			}
			depth--
		}
	}
	return -1
}

// parseAutolink matches <url> or <address@host>. The body may not
// hold whitespace and must look like a URI or an email address.
func parseAutolink(s string) (length, contentStart, contentEnd int, ok bool) {
	if s == "" || s[0] != '<' {
		return 0, 0, 0, false
	}
	close := strings.IndexByte(s, '>')
	if close < 2 {
		return 0, 0, 0, false
	}
	body := s[1:close]
	if strings.ContainsAny(body, " \t\n") {
		return 0, 0, 0, false
	}
	if !strings.ContainsAny(body, ":@") {
		return 0, 0, 0, false
	}
	return close + 1, 1, close, true
}

// parseInlineLink matches [text](dest). The text may nest brackets;
// the destination may hold balanced parentheses and a quoted title.
func parseInlineLink(s string) (length, textStart, textEnd, destStart, destEnd int, ok bool) {
	if s == "" || s[0] != '[' {
		return 0, 0, 0, 0, 0, false
	}
	close := bracketSpan(s)
	if close < 0 || close+1 >= len(s) || s[close+1] != '(' {
		return 0, 0, 0, 0, 0, false
	}
	closeParen := destSpan(s[close+1:])
	if closeParen < 0 {
		return 0, 0, 0, 0, 0, false
	}
	destStart = close + 2
	destEnd = close + 1 + closeParen
	return destEnd + 1, 1, close, destStart, destEnd, true
}

// parseInlineImage matches ![alt](dest) with optional adjacent
// attributes: ![alt](dest){#id .class}.
func parseInlineImage(s string) (length, altStart, altEnd, destStart, destEnd, attr int, ok bool) {
	if !strings.HasPrefix(s, "![") {
		return 0, 0, 0, 0, 0, 0, false
	}
	length, textStart, textEnd, destStart, destEnd, ok := parseInlineLink(s[1:])
	if !ok {
		return 0, 0, 0, 0, 0, 0, false
	}
	length++
	altStart = textStart + 1
	altEnd = textEnd + 1
	destStart++
	destEnd++
	if n := attributeSpan(s[length:]); n > 0 {
		attr = length
		length += n
	}
	return length, altStart, altEnd, destStart, destEnd, attr, true
}

// parseReferenceLink matches [text][label], the collapsed [text][],
// and, when shortcuts are allowed, bare [text]. The label span of a
// collapsed or shortcut reference is empty.
func parseReferenceLink(s string, allowShortcut bool) (length, textStart, textEnd, labelStart, labelEnd int, shortcut, ok bool) {
	if s == "" || s[0] != '[' {
		return 0, 0, 0, 0, 0, false, false
	}
	close := bracketSpan(s)
	if close < 0 {
		return 0, 0, 0, 0, 0, false, false
	}
	textStart, textEnd = 1, close

	if close+1 < len(s) && s[close+1] == '[' {
		labelClose := bracketSpan(s[close+1:])
		if labelClose < 0 {
			return 0, 0, 0, 0, 0, false, false
		}
		labelStart = close + 2
		labelEnd = close + 1 + labelClose
		return labelEnd + 1, textStart, textEnd, labelStart, labelEnd, false, true
	}

	if !allowShortcut {
		return 0, 0, 0, 0, 0, false, false
	}
	// A following '(' or ':' means the bracket belongs to something
	// else (an unclosed inline link or a reference definition).
	if close+1 < len(s) && (s[close+1] == '(' || s[close+1] == ':') {
		return 0, 0, 0, 0, 0, false, false
	}
	return close + 1, textStart, textEnd, close + 1, close + 1, true, true
}

// parseReferenceImage matches ![alt][label] and shortcut ![alt].
func parseReferenceImage(s string, allowShortcut bool) (length, altStart, altEnd, labelStart, labelEnd int, shortcut, ok bool) {
	if !strings.HasPrefix(s, "![") {
		return 0, 0, 0, 0, 0, false, false
	}
	length, textStart, textEnd, labelStart, labelEnd, shortcut, ok := parseReferenceLink(s[1:], allowShortcut)
	if !ok {
		return 0, 0, 0, 0, 0, false, false
	}
	return length + 1, textStart + 1, textEnd + 1, labelStart + 1, labelEnd + 1, shortcut, true
}

// parseBracketedSpan matches [text]{attrs}. The attribute block must
// touch the closing bracket.
func parseBracketedSpan(s string) (length, contentStart, contentEnd, attr int, ok bool) {
	if s == "" || s[0] != '[' {
		return 0, 0, 0, 0, false
	}
	close := bracketSpan(s)
	if close < 0 || close+1 >= len(s) || s[close+1] != '{' {
		return 0, 0, 0, 0, false
	}
	n := attributeSpan(s[close+1:])
	if n == 0 {
		return 0, 0, 0, 0, false
	}
	return close + 1 + n, 1, close, close + 1, true
}

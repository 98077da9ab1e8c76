package inline

import (
	"unicode"
	"unicode/utf8"
)

// parseBracketedCitation matches [@key], [see @key, pp. 1-10], and
// friends. The bracket must hold an @ before it closes; a top-level
// '(' before the @ means the bracket is a link, not a citation.
func parseBracketedCitation(s string) (length, contentStart, contentEnd int, ok bool) {
	if s == "" || s[0] != '[' {
		return 0, 0, 0, false
	}

	hasCitation := false
	depth := 0
scan:
	for pos := 1; pos < len(s); pos++ {
		switch s[pos] {
		case '\\':
			pos++
		case '[':
			depth++
		case ']':
			if depth == 0 {
				break scan
			}
			depth--
		case '@':
			hasCitation = true
			break scan
		case '(':
			if depth == 0 {
				break scan
			}
		}
	}
	if !hasCitation {
		return 0, 0, 0, false
	}

	depth = 1
	for pos := 1; pos < len(s); pos++ {
		switch s[pos] {
		case '\\':
			pos++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return pos + 1, 1, pos, true
			}
		}
	}
	return 0, 0, 0, false
}

// parseBareCitation matches an author-in-text citation @key or its
// author-suppressed form -@key.
func parseBareCitation(s string) (length, keyStart int, suppress, ok bool) {
	pos := 0
	if pos < len(s) && s[pos] == '-' {
		suppress = true
		pos++
	}
	if pos >= len(s) || s[pos] != '@' {
		return 0, 0, false, false
	}
	pos++
	keyLen, ok := citationKeyLen(s[pos:])
	if !ok || keyLen == 0 {
		return 0, 0, false, false
	}
	return pos + keyLen, pos, suppress, true
}

// citationKeyLen measures a citation key per Pandoc's rules: it
// starts with a letter, digit, or underscore and may hold single
// internal punctuation from :.#$%&-+?<>~/. Doubled punctuation ends
// the key, trailing punctuation is excluded, and a braced key @{...}
// may hold anything.
func citationKeyLen(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	if s[0] == '{' {
		for pos := 1; pos < len(s); pos++ {
			switch s[pos] {
			case '\\':
				pos++
			case '}':
				return pos + 1, true
			}
		}
		return 0, false
	}

	first, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(first) && !unicode.IsDigit(first) && first != '_' {
		return 0, false
	}

	pos := 0
	prevPunct := false
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			prevPunct = false
		case isCitationPunct(r):
			if prevPunct {
				// Doubled punctuation ends the key before both.
				return pos - 1, true
			}
			prevPunct = true
		default:
			if prevPunct {
				pos--
			}
			return pos, pos > 0
		}
		pos += size
	}
	if prevPunct {
		pos--
	}
	return pos, pos > 0
}

func isCitationPunct(r rune) bool {
	switch r {
	case ':', '.', '#', '$', '%', '&', '-', '+', '?', '<', '>', '~', '/':
		return true
	}
	return false
}

package inline

import "strings"

// attributeSpan returns the length of a balanced brace-delimited
// attribute block at the start of s, or 0. Quoted values may contain
// braces; escapes skip the next byte.
func attributeSpan(s string) int {
	if s == "" || s[0] != '{' {
		return 0
	}
	depth := 0
	inQuote := byte(0)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '\\' {
			i++
			continue
		}
		switch {
		case inQuote != 0:
			if ch == inQuote {
				inQuote = 0
			}
		case ch == '"' || ch == '\'':
			inQuote = ch
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return 0
}

// rawFormat extracts the format of a raw-attribute block like
// {=html}. The block must hold exactly one word starting with '='.
func rawFormat(attrs string) (string, bool) {
	inner := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(attrs, "{"), "}"))
	rest, found := strings.CutPrefix(inner, "=")
	if !found || rest == "" || strings.ContainsAny(rest, " \t") {
		return "", false
	}
	return rest, true
}

package parser

// trailingAttributes checks whether s ends with a brace-delimited
// attribute block like {#id .class key="value"}. It returns the text
// before the block and the block itself (braces included).
func trailingAttributes(s string) (before, attrs string, ok bool) {
	end := len(s)
	for end > 0 && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	if end == 0 || s[end-1] != '}' {
		return "", "", false
	}

	depth := 0
	inQuote := byte(0)
	for i := end - 1; i >= 0; i-- {
		ch := s[i]
		if i > 0 && s[i-1] == '\\' {
			continue
		}
		switch {
		case inQuote != 0:
			if ch == inQuote {
				inQuote = 0
			}
		case ch == '"' || ch == '\'':
			inQuote = ch
		case ch == '}':
			depth++
		case ch == '{':
			depth--
			if depth == 0 {
				return s[:i], s[i:end], true
			}
		}
	}
	return "", "", false
}

// leadingAttributes checks whether s starts with a balanced brace
// block and returns its length (braces included), or 0.
func leadingAttributes(s string) int {
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

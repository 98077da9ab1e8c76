package inline

import "strings"

// parseShortcode matches a Quarto shortcode {{< name args >}} or its
// escaped form {{{< name args >}}}. Nested shortcodes inside the body
// are balanced before the close is taken.
func parseShortcode(s string) (length, contentStart, contentEnd int, escaped, ok bool) {
	open, close := "{{<", ">}}"
	if strings.HasPrefix(s, "{{{<") {
		open, close = "{{{<", ">}}}"
		escaped = true
	} else if !strings.HasPrefix(s, "{{<") {
		return 0, 0, 0, false, false
	}

	contentStart = len(open)
	depth := 0
	for pos := contentStart; pos < len(s); pos++ {
		switch {
		case strings.HasPrefix(s[pos:], "{{<"):
			depth++
			pos += 2
		case strings.HasPrefix(s[pos:], close):
			if depth == 0 {
				return pos + len(close), contentStart, pos, escaped, true
			}
			depth--
			pos += len(close) - 1
		}
	}
	return 0, 0, 0, false, false
}

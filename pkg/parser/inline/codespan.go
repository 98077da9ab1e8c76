package inline

// parseCodeSpan matches a backtick code span at the start of s. The
// closing run must have exactly as many backticks as the opening run;
// longer or shorter runs are skipped. An immediately adjacent brace
// block is taken as the span's attributes.
func parseCodeSpan(s string) (length, contentStart, contentEnd, attr int, ok bool) {
	open := 0
	for open < len(s) && s[open] == '`' {
		open++
	}
	if open == 0 {
		return 0, 0, 0, 0, false
	}

	pos := open
	for pos < len(s) {
		if s[pos] != '`' {
			pos++
			continue
		}
		run := 0
		for pos+run < len(s) && s[pos+run] == '`' {
			run++
		}
		if run != open {
			pos += run
			continue
		}

		contentStart = open
		contentEnd = pos
		length = pos + run
		if n := attributeSpan(s[length:]); n > 0 {
			attr = length
			length += n
		}
		return length, contentStart, contentEnd, attr, true
	}
	return 0, 0, 0, 0, false
}

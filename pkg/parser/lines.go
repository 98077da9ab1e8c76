package parser

import "strings"

// tabStop is the column width of a tab for indentation math.
const tabStop = 4

// SplitLines splits input into lines, each retaining its own trailing
// separator (LF or CRLF) so mixed endings survive reconstruction. The
// final line may have no separator.
func SplitLines(input string) []string {
	if input == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(input); i++ {
		if input[i] == '\n' {
			lines = append(lines, input[start:i+1])
			start = i + 1
		}
	}
	if start < len(input) {
		lines = append(lines, input[start:])
	}
	return lines
}

// chomp splits a line into its content and trailing separator.
func chomp(line string) (content, ending string) {
	if s, ok := strings.CutSuffix(line, "\r\n"); ok {
		return s, "\r\n"
	}
	if s, ok := strings.CutSuffix(line, "\n"); ok {
		return s, "\n"
	}
	return line, ""
}

// isBlank reports whether a line holds only whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// indentColumns measures the leading whitespace of s, returning the
// column width (tabs advance to the next tab stop) and the byte count.
func indentColumns(s string) (cols, n int) {
	for n < len(s) {
		switch s[n] {
		case ' ':
			cols++
		case '\t':
			cols = (cols/tabStop + 1) * tabStop
		default:
			return cols, n
		}
		n++
	}
	return cols, n
}

// stripIndent returns s without up to max leading spaces, and how
// many were removed.
func stripIndent(s string, max int) (string, int) {
	n := 0
	for n < len(s) && n < max && s[n] == ' ' {
		n++
	}
	return s[n:], n
}

// leadingRun counts the leading run of ch in s.
func leadingRun(s string, ch byte) int {
	n := 0
	for n < len(s) && s[n] == ch {
		n++
	}
	return n
}

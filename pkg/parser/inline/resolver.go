package inline

import "sort"

// resolveEmphasis runs the delimiter stack over the collected
// elements and rebuilds the list with Emphasis and Strong nodes
// nested around their content. Delimiter characters no match ever
// consumes degrade to plain text.
func resolveEmphasis(els []element, text string) []element {
	var delims []delimiter
	for _, el := range els {
		if el.kind == elemDelimiterRun {
			delims = append(delims, delimiter{
				char:      el.delim,
				count:     el.count,
				origCount: el.count,
				start:     el.start,
				canOpen:   el.canOpen,
				canClose:  el.canClose,
				active:    true,
			})
		}
	}

	matches := processEmphasis(delims)
	if len(matches) == 0 {
		out := make([]element, 0, len(els))
		for _, el := range els {
			out = append(out, runToText(el))
		}
		return out
	}

	// Siblings emit in source order; at equal starts the wider span is
	// the outer one.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		return matches[i].end-matches[i].start > matches[j].end-matches[j].start
	})

	consumed := make([][2]int, 0, 2*len(matches))
	for _, m := range matches {
		consumed = append(consumed, [2]int{m.start, m.contentStart})
		consumed = append(consumed, [2]int{m.contentEnd, m.end})
	}
	sort.Slice(consumed, func(i, j int) bool { return consumed[i][0] < consumed[j][0] })

	return buildTree(els, matches, consumed, 0, len(text))
}

// runToText converts an unconsumed delimiter run to a text element;
// everything else passes through.
func runToText(el element) element {
	if el.kind != elemDelimiterRun {
		return el
	}
	return element{kind: elemText, start: el.start, end: el.end}
}

// buildTree assembles the element list for one byte range. A match
// inside the range becomes an Emphasis or Strong element with its
// content built recursively; a match starting inside an already
// emitted sibling is nested, and the recursion for that sibling picks
// it up. Everything between matches comes from the element list.
func buildTree(els []element, matches []emphasisMatch, consumed [][2]int, rangeStart, rangeEnd int) []element {
	var out []element
	pos := rangeStart

	for _, m := range matches {
		if m.start < pos || m.end > rangeEnd {
			continue
		}
		out = append(out, betweenMatches(els, consumed, pos, m.start)...)

		kind := elemEmphasis
		if m.level == 2 {
			kind = elemStrong
		}
		out = append(out, element{
			kind: kind, delim: m.char, count: m.level,
			start: m.start, end: m.end,
			contentStart: m.contentStart, contentEnd: m.contentEnd,
			children: buildTree(els, matches, consumed, m.contentStart, m.contentEnd),
		})
		pos = m.end
	}

	return append(out, betweenMatches(els, consumed, pos, rangeEnd)...)
}

// betweenMatches emits the elements covering [from, to): non-delimiter
// elements pass through, and delimiter-run characters no match
// consumed degrade to literal text.
func betweenMatches(els []element, consumed [][2]int, from, to int) []element {
	var out []element
	for _, el := range els {
		if el.end <= from || el.start >= to {
			continue
		}
		if el.kind != elemDelimiterRun {
			if el.start >= from && el.end <= to {
				out = append(out, el)
			}
			continue
		}
		lo, hi := el.start, el.end
		if lo < from {
			lo = from
		}
		if hi > to {
			hi = to
		}
		for _, piece := range unconsumed(lo, hi, consumed) {
			out = append(out, element{kind: elemText, start: piece[0], end: piece[1]})
		}
	}
	return out
}

// unconsumed returns the sub-intervals of [lo, hi) not covered by the
// sorted consumed intervals.
func unconsumed(lo, hi int, consumed [][2]int) [][2]int {
	var pieces [][2]int
	pos := lo
	for _, c := range consumed {
		if c[1] <= pos || c[0] >= hi {
			continue
		}
		if c[0] > pos {
			pieces = append(pieces, [2]int{pos, c[0]})
		}
		if c[1] > pos {
			pos = c[1]
		}
	}
	if pos < hi {
		pieces = append(pieces, [2]int{pos, hi})
	}
	return pieces
}

package inline

import (
	"unicode"
	"unicode/utf8"
)

// delimiter is one run of '*' or '_' on the delimiter stack.
type delimiter struct {
	char      byte
	count     int // remaining delimiter characters
	origCount int // scanned length, for the rule of threes
	start     int // byte position in text
	canOpen   bool
	canClose  bool
	active    bool
}

// emphasisMatch is one resolved emphasis span. Level 1 is Emphasis,
// level 2 is Strong.
type emphasisMatch struct {
	start, end               int // delimiter-inclusive span
	contentStart, contentEnd int
	level                    int
	char                     byte
}

// analyzeRun applies the CommonMark flanking rules, with Pandoc's
// intraword-underscore restriction, to the delimiter run at
// text[start:start+count].
func analyzeRun(text string, start int, char byte, count int) (canOpen, canClose bool) {
	var before, after rune
	if start > 0 {
		before, _ = utf8.DecodeLastRuneInString(text[:start])
	}
	if start+count < len(text) {
		after, _ = utf8.DecodeRuneInString(text[start+count:])
	}

	followedByWS := after == 0 || unicode.IsSpace(after)
	followedByPunct := after != 0 && isRunePunct(after)
	precededByWS := before == 0 || unicode.IsSpace(before)
	precededByPunct := before != 0 && isRunePunct(before)

	leftFlanking := !followedByWS && (!followedByPunct || precededByWS || precededByPunct)
	rightFlanking := !precededByWS && (!precededByPunct || followedByWS || followedByPunct)

	if char == '_' {
		precededByAlnum := before != 0 && (unicode.IsLetter(before) || unicode.IsDigit(before))
		followedByAlnum := after != 0 && (unicode.IsLetter(after) || unicode.IsDigit(after))
		return leftFlanking && !precededByAlnum, rightFlanking && !followedByAlnum
	}
	canOpen = leftFlanking && (!rightFlanking || precededByPunct)
	canClose = rightFlanking && (!leftFlanking || followedByPunct)
	return canOpen, canClose
}

func isRunePunct(r rune) bool {
	return r < utf8.RuneSelf && isASCIIPunct(byte(r))
}

// processEmphasis runs the delimiter stack: closers are taken left to
// right, each searching backward for the nearest compatible opener.
// Pandoc is stricter than CommonMark here, so some pairings the
// CommonMark algorithm accepts are rejected.
func processEmphasis(delims []delimiter) []emphasisMatch {
	var matches []emphasisMatch

	closer := 0
	for closer < len(delims) {
		c := &delims[closer]
		if !c.canClose || !c.active || c.count == 0 {
			closer++
			continue
		}

		opener := -1
		for j := closer - 1; j >= 0; j-- {
			o := &delims[j]
			if !o.active || o.count == 0 || !o.canOpen || o.char != c.char {
				continue
			}
			// Rule of threes: when either side can both open and
			// close, a combined length divisible by three blocks the
			// pairing unless both lengths are.
			if (o.canOpen && o.canClose) || (c.canOpen && c.canClose) {
				sum := o.origCount + c.origCount
				if sum%3 == 0 && (o.origCount%3 != 0 || c.origCount%3 != 0) {
					continue
				}
			}
			opener = j
			break
		}
		if opener < 0 {
			closer++
			continue
		}

		o := &delims[opener]
		use := 1
		if o.count >= 2 && c.count >= 2 {
			use = 2
		}

		// Pandoc rejects **foo* and *foo** (single-level pairings off
		// by one) and ****foo**** (equal runs of four or more).
		diff := o.count - c.count
		if diff < 0 {
			diff = -diff
		}
		if (o.count == c.count && o.count >= 4) || (use == 1 && diff == 1) {
			closer++
			continue
		}

		// Openers are consumed from the right, closers from the left.
		usedStart := o.start + o.count - use
		matches = append(matches, emphasisMatch{
			start:        usedStart,
			end:          c.start + use,
			contentStart: usedStart + use,
			contentEnd:   c.start,
			level:        use,
			char:         c.char,
		})

		o.count -= use
		c.count -= use
		// Closers are consumed from the left, so the run's remaining
		// characters begin after the chunk this match used.
		c.start += use
		for j := opener + 1; j < closer; j++ {
			delims[j].active = false
		}
		if c.count == 0 {
			closer++
		}
	}

	return matches
}

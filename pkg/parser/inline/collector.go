package inline

import (
	"strings"

	"github.com/yaklabco/gomdtree/pkg/config"
)

// collect scans text into a flat element list. Delimiter runs are
// recorded but not yet resolved into emphasis; that is the resolver's
// job. allowRefs is false inside link text, where reference links
// may not nest.
func collect(text string, cfg *config.Config, allowRefs bool) []element {
	var els []element
	ext := &cfg.Extensions
	pos := 0

	for pos < len(text) {
		rest := text[pos:]
		ch := text[pos]

		if ch == '\\' && ext.TexMathSingleBackslash {
			if n, cs, ce, display, ok := parseBackslashMath(rest, false); ok {
				els = append(els, element{
					kind: elemBackslashMath, display: display,
					start: pos, end: pos + n,
					contentStart: pos + cs, contentEnd: pos + ce,
				})
				pos += n
				continue
			}
		}
		if ch == '\\' && ext.TexMathDoubleBackslash {
			if n, cs, ce, display, ok := parseBackslashMath(rest, true); ok {
				els = append(els, element{
					kind: elemBackslashMath, display: display,
					start: pos, end: pos + n,
					contentStart: pos + cs, contentEnd: pos + ce,
				})
				pos += n
				continue
			}
		}
		if ch == '\\' {
			if n, kind, ok := parseEscape(rest); ok {
				els = append(els, element{kind: elemEscape, escape: kind, start: pos, end: pos + n})
				pos += n
				continue
			}
			if ext.RawTex {
				if n, ok := parseLatexCommand(rest); ok {
					els = append(els, element{kind: elemLatexCommand, start: pos, end: pos + n})
					pos += n
					continue
				}
			}
		}

		if ch == '{' && ext.QuartoShortcodes {
			if n, cs, ce, escaped, ok := parseShortcode(rest); ok {
				els = append(els, element{
					kind: elemShortcode, start: pos, end: pos + n,
					contentStart: pos + cs, contentEnd: pos + ce,
					escaped: escaped,
				})
				pos += n
				continue
			}
		}

		if ch == '`' {
			if n, cs, ce, attr, ok := parseCodeSpan(rest); ok {
				el := element{
					kind: elemCodeSpan, start: pos, end: pos + n,
					contentStart: pos + cs, contentEnd: pos + ce,
				}
				if attr > 0 {
					el.attr = pos + attr
					if _, raw := rawFormat(text[el.attr : pos+n]); raw && ext.RawAttribute {
						el.kind = elemRawInline
					}
				}
				els = append(els, el)
				pos += n
				continue
			}
		}

		if ch == '^' && ext.Footnotes {
			if n, cs, ce, ok := parseInlineFootnote(rest); ok {
				els = append(els, element{
					kind: elemInlineFootnote, start: pos, end: pos + n,
					contentStart: pos + cs, contentEnd: pos + ce,
				})
				pos += n
				continue
			}
		}
		if ch == '^' && ext.Superscript {
			if n, cs, ce, ok := parseSuperscript(rest); ok {
				els = append(els, element{
					kind: elemSuperscript, start: pos, end: pos + n,
					contentStart: pos + cs, contentEnd: pos + ce,
				})
				pos += n
				continue
			}
		}
		if ch == '~' && ext.Subscript {
			if n, cs, ce, ok := parseSubscript(rest); ok {
				els = append(els, element{
					kind: elemSubscript, start: pos, end: pos + n,
					contentStart: pos + cs, contentEnd: pos + ce,
				})
				pos += n
				continue
			}
		}
		if ch == '~' && ext.Strikeout {
			if n, cs, ce, ok := parseStrikeout(rest); ok {
				els = append(els, element{
					kind: elemStrikeout, start: pos, end: pos + n,
					contentStart: pos + cs, contentEnd: pos + ce,
				})
				pos += n
				continue
			}
		}

		if ch == '$' {
			if n, cs, ce, ok := parseDisplayMath(rest); ok {
				el := element{
					kind: elemDisplayMath, start: pos, end: pos + n,
					contentStart: pos + cs, contentEnd: pos + ce,
				}
				// Quarto cross-references hang an attribute block off
				// display math: $$ ... $$ {#eq-label}.
				if ext.QuartoCrossrefs {
					after := text[pos+n:]
					trimmed := strings.TrimLeft(after, " \t")
					if a := attributeSpan(trimmed); a > 0 {
						el.attr = pos + n
						el.end += len(after) - len(trimmed) + a
					}
				}
				els = append(els, el)
				pos = el.end
				continue
			}
			if n, cs, ce, ok := parseInlineMath(rest); ok {
				els = append(els, element{
					kind: elemInlineMath, start: pos, end: pos + n,
					contentStart: pos + cs, contentEnd: pos + ce,
				})
				pos += n
				continue
			}
		}

		if ch == '<' {
			if n, cs, ce, ok := parseAutolink(rest); ok {
				els = append(els, element{
					kind: elemAutolink, start: pos, end: pos + n,
					destStart: pos + cs, destEnd: pos + ce,
				})
				pos += n
				continue
			}
		}

		if ch == '!' && strings.HasPrefix(rest, "![") {
			if n, as, ae, ds, de, attr, ok := parseInlineImage(rest); ok {
				el := element{
					kind: elemInlineImage, start: pos, end: pos + n,
					contentStart: pos + as, contentEnd: pos + ae,
					destStart: pos + ds, destEnd: pos + de,
				}
				if attr > 0 {
					el.attr = pos + attr
				}
				els = append(els, el)
				pos += n
				continue
			}
			if ext.ReferenceLinks && allowRefs {
				if n, as, ae, ls, le, shortcut, ok := parseReferenceImage(rest, ext.ShortcutReferenceLinks); ok {
					els = append(els, element{
						kind: elemReferenceImage, start: pos, end: pos + n,
						contentStart: pos + as, contentEnd: pos + ae,
						destStart: pos + ls, destEnd: pos + le,
						shortcut: shortcut,
					})
					pos += n
					continue
				}
			}
		}

		if ch == '[' {
			if ext.Footnotes && len(rest) > 1 && rest[1] == '^' {
				if n, cs, ce, ok := parseFootnoteRef(rest); ok {
					els = append(els, element{
						kind: elemFootnoteRef, start: pos, end: pos + n,
						contentStart: pos + cs, contentEnd: pos + ce,
					})
					pos += n
					continue
				}
			}
			if n, ts, te, ds, de, ok := parseInlineLink(rest); ok {
				els = append(els, element{
					kind: elemInlineLink, start: pos, end: pos + n,
					contentStart: pos + ts, contentEnd: pos + te,
					destStart: pos + ds, destEnd: pos + de,
				})
				pos += n
				continue
			}
			if ext.ReferenceLinks && allowRefs {
				n, ts, te, ls, le, shortcut, ok := parseReferenceLink(rest, ext.ShortcutReferenceLinks)
				// A bare [@key] bracket is a citation, not a shortcut
				// reference.
				if ok && shortcut && ext.Citations {
					if _, _, _, cite := parseBracketedCitation(rest); cite {
						ok = false
					}
				}
				if ok {
					els = append(els, element{
						kind: elemReferenceLink, start: pos, end: pos + n,
						contentStart: pos + ts, contentEnd: pos + te,
						destStart: pos + ls, destEnd: pos + le,
						shortcut: shortcut,
					})
					pos += n
					continue
				}
			}
			if ext.Citations {
				if n, cs, ce, ok := parseBracketedCitation(rest); ok {
					els = append(els, element{
						kind: elemBracketedCitation, start: pos, end: pos + n,
						contentStart: pos + cs, contentEnd: pos + ce,
					})
					pos += n
					continue
				}
			}
			if n, cs, ce, attr, ok := parseBracketedSpan(rest); ok {
				els = append(els, element{
					kind: elemBracketedSpan, start: pos, end: pos + n,
					contentStart: pos + cs, contentEnd: pos + ce,
					attr: pos + attr,
				})
				pos += n
				continue
			}
		}

		if ext.Citations && (ch == '@' || (ch == '-' && strings.HasPrefix(rest, "-@"))) {
			if n, ks, suppress, ok := parseBareCitation(rest); ok {
				els = append(els, element{
					kind: elemBareCitation, start: pos, end: pos + n,
					contentStart: pos + ks, contentEnd: pos + n,
					suppress: suppress,
				})
				pos += n
				continue
			}
		}

		if ch == '*' || ch == '_' {
			run := 0
			for pos+run < len(text) && text[pos+run] == ch {
				run++
			}
			canOpen, canClose := analyzeRun(text, pos, ch, run)
			els = append(els, element{
				kind: elemDelimiterRun, start: pos, end: pos + run,
				delim: ch, count: run, canOpen: canOpen, canClose: canClose,
			})
			pos += run
			continue
		}

		next := nextInlineStart(rest)
		els = append(els, element{kind: elemText, start: pos, end: pos + next})
		pos += next
	}

	return els
}

// nextInlineStart returns the offset of the next byte that could
// begin an inline construct, or len(s). Never zero, so the caller
// always advances.
func nextInlineStart(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '`', '*', '_', '[', '!', '<', '$', '^', '~', '@':
			if i == 0 {
				return 1
			}
			return i
		case '{':
			if strings.HasPrefix(s[i:], "{{<") {
				if i == 0 {
					return 1
				}
				return i
			}
		case '-':
			if strings.HasPrefix(s[i:], "-@") {
				if i == 0 {
					return 1
				}
				return i
			}
		}
	}
	return len(s)
}

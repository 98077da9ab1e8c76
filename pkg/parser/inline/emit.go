package inline

import (
	"strings"

	"github.com/yaklabco/gomdtree/pkg/config"
	"github.com/yaklabco/gomdtree/pkg/syntax"
)

// parseText runs the full collect/resolve/emit pipeline over one
// piece of text and returns the green elements that replace it.
func parseText(text string, cfg *config.Config, allowRefs bool) []syntax.GreenElement {
	els := collect(text, cfg, allowRefs)
	els = resolveEmphasis(els, text)
	return emit(els, text, cfg)
}

// emit converts resolved elements to green tokens and nodes. Every
// delimiter is sliced out of the source text, so concatenating the
// result reproduces the input exactly.
func emit(els []element, src string, cfg *config.Config) []syntax.GreenElement {
	out := make([]syntax.GreenElement, 0, len(els))
	for i := range els {
		out = append(out, emitElement(&els[i], src, cfg)...)
	}
	return out
}

func emitElement(el *element, src string, cfg *config.Config) []syntax.GreenElement {
	closeEnd := el.end
	if el.attr > 0 {
		closeEnd = el.attr
	}

	token := func(kind syntax.Kind, from, to int) *syntax.GreenToken {
		return syntax.NewGreenToken(kind, src[from:to])
	}
	node := func(kind syntax.Kind, children ...syntax.GreenElement) []syntax.GreenElement {
		kept := children[:0]
		for _, c := range children {
			if t, ok := c.(*syntax.GreenToken); ok && t.Text() == "" {
				continue
			}
			kept = append(kept, c)
		}
		return []syntax.GreenElement{syntax.NewGreenNode(kind, kept)}
	}

	switch el.kind {
	case elemText:
		return []syntax.GreenElement{token(syntax.TokenText, el.start, el.end)}

	case elemEscape:
		kind := syntax.TokenEscapedChar
		switch el.escape {
		case escNonbreakingSpace:
			kind = syntax.TokenNonbreakingSpace
		case escHardBreak:
			kind = syntax.TokenHardBreak
		}
		return []syntax.GreenElement{token(kind, el.start, el.end)}

	case elemLatexCommand:
		return []syntax.GreenElement{token(syntax.TokenLatexCommand, el.start, el.end)}

	case elemCodeSpan, elemRawInline:
		kind := syntax.NodeCodeSpan
		if el.kind == elemRawInline {
			kind = syntax.NodeRawInline
		}
		children := []syntax.GreenElement{
			token(syntax.TokenCodeDelim, el.start, el.contentStart),
			token(syntax.TokenText, el.contentStart, el.contentEnd),
			token(syntax.TokenCodeDelim, el.contentEnd, closeEnd),
		}
		if el.attr > 0 {
			children = append(children, token(syntax.TokenAttribute, el.attr, el.end))
		}
		return node(kind, children...)

	case elemInlineMath:
		return node(syntax.NodeInlineMath,
			token(syntax.TokenMathDelim, el.start, el.contentStart),
			token(syntax.TokenText, el.contentStart, el.contentEnd),
			token(syntax.TokenMathDelim, el.contentEnd, el.end),
		)

	case elemDisplayMath:
		children := []syntax.GreenElement{
			token(syntax.TokenMathDelim, el.start, el.contentStart),
			token(syntax.TokenText, el.contentStart, el.contentEnd),
			token(syntax.TokenMathDelim, el.contentEnd, closeEnd),
		}
		if el.attr > 0 {
			trailer := src[el.attr:el.end]
			braces := strings.TrimLeft(trailer, " \t")
			ws := trailer[:len(trailer)-len(braces)]
			if ws != "" {
				children = append(children, syntax.NewGreenToken(syntax.TokenWhitespace, ws))
			}
			children = append(children, syntax.NewGreenToken(syntax.TokenAttribute, braces))
		}
		return node(syntax.NodeDisplayMath, children...)

	case elemBackslashMath:
		kind := syntax.NodeInlineMath
		if el.display {
			kind = syntax.NodeDisplayMath
		}
		return node(kind,
			token(syntax.TokenMathDelim, el.start, el.contentStart),
			token(syntax.TokenText, el.contentStart, el.contentEnd),
			token(syntax.TokenMathDelim, el.contentEnd, el.end),
		)

	case elemShortcode:
		return node(syntax.NodeShortcode,
			token(syntax.TokenShortcodeDelim, el.start, el.contentStart),
			token(syntax.TokenText, el.contentStart, el.contentEnd),
			token(syntax.TokenShortcodeDelim, el.contentEnd, el.end),
		)

	case elemSuperscript, elemSubscript, elemStrikeout:
		kind := syntax.NodeSuperscript
		switch el.kind {
		case elemSubscript:
			kind = syntax.NodeSubscript
		case elemStrikeout:
			kind = syntax.NodeStrikeout
		}
		return node(kind,
			token(syntax.TokenEmphasisMarker, el.start, el.contentStart),
			token(syntax.TokenText, el.contentStart, el.contentEnd),
			token(syntax.TokenEmphasisMarker, el.contentEnd, el.end),
		)

	case elemInlineFootnote:
		children := []syntax.GreenElement{token(syntax.TokenLinkDelim, el.start, el.contentStart)}
		children = append(children, parseText(src[el.contentStart:el.contentEnd], cfg, true)...)
		children = append(children, token(syntax.TokenLinkDelim, el.contentEnd, el.end))
		return node(syntax.NodeInlineFootnote, children...)

	case elemFootnoteRef:
		return node(syntax.NodeFootnoteRef,
			token(syntax.TokenLinkDelim, el.start, el.contentStart),
			token(syntax.TokenText, el.contentStart, el.contentEnd),
			token(syntax.TokenLinkDelim, el.contentEnd, el.end),
		)

	case elemAutolink:
		return node(syntax.NodeAutolink,
			token(syntax.TokenLinkDelim, el.start, el.destStart),
			token(syntax.TokenLinkDest, el.destStart, el.destEnd),
			token(syntax.TokenLinkDelim, el.destEnd, el.end),
		)

	case elemInlineLink, elemInlineImage, elemReferenceLink, elemReferenceImage:
		kind := syntax.NodeLink
		if el.kind == elemInlineImage || el.kind == elemReferenceImage {
			kind = syntax.NodeImage
		}
		children := []syntax.GreenElement{token(syntax.TokenLinkDelim, el.start, el.contentStart)}
		children = append(children, parseText(src[el.contentStart:el.contentEnd], cfg, false)...)
		children = append(children,
			token(syntax.TokenLinkDelim, el.contentEnd, el.destStart),
			token(syntax.TokenLinkDest, el.destStart, el.destEnd),
			token(syntax.TokenLinkDelim, el.destEnd, closeEnd),
		)
		if el.attr > 0 {
			children = append(children, token(syntax.TokenAttribute, el.attr, el.end))
		}
		return node(kind, children...)

	case elemBracketedCitation:
		return node(syntax.NodeCitation,
			token(syntax.TokenLinkDelim, el.start, el.contentStart),
			token(syntax.TokenText, el.contentStart, el.contentEnd),
			token(syntax.TokenLinkDelim, el.contentEnd, el.end),
		)

	case elemBareCitation:
		return node(syntax.NodeCitation,
			token(syntax.TokenCitationMarker, el.start, el.contentStart),
			token(syntax.TokenCitationKey, el.contentStart, el.end),
		)

	case elemBracketedSpan:
		children := []syntax.GreenElement{token(syntax.TokenLinkDelim, el.start, el.contentStart)}
		children = append(children, parseText(src[el.contentStart:el.contentEnd], cfg, true)...)
		children = append(children,
			token(syntax.TokenLinkDelim, el.contentEnd, el.attr),
			token(syntax.TokenAttribute, el.attr, el.end),
		)
		return node(syntax.NodeBracketedSpan, children...)

	case elemEmphasis, elemStrong:
		kind := syntax.NodeEmphasis
		if el.kind == elemStrong {
			kind = syntax.NodeStrong
		}
		children := []syntax.GreenElement{token(syntax.TokenEmphasisMarker, el.start, el.contentStart)}
		children = append(children, emit(el.children, src, cfg)...)
		children = append(children, token(syntax.TokenEmphasisMarker, el.contentEnd, el.end))
		return node(kind, children...)
	}

	// Delimiter runs are resolved before emission; anything left is
	// emitted verbatim so no input text can be dropped.
	return []syntax.GreenElement{token(syntax.TokenText, el.start, el.end)}
}

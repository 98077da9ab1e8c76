package inline

// elemKind classifies entries of the intermediate element list built
// by the collector.
type elemKind uint8

const (
	elemText elemKind = iota
	elemEscape
	elemLatexCommand
	elemCodeSpan
	elemRawInline
	elemInlineMath
	elemDisplayMath
	elemBackslashMath
	elemShortcode
	elemSuperscript
	elemSubscript
	elemStrikeout
	elemInlineFootnote
	elemFootnoteRef
	elemAutolink
	elemInlineLink
	elemReferenceLink
	elemInlineImage
	elemReferenceImage
	elemBracketedCitation
	elemBareCitation
	elemBracketedSpan
	elemDelimiterRun
	elemEmphasis
	elemStrong
)

// escapeKind distinguishes the three backslash escape forms.
type escapeKind uint8

const (
	escLiteral          escapeKind = iota // backslash + punctuation
	escNonbreakingSpace                   // backslash + space
	escHardBreak                          // backslash + newline
)

// element is one inline construct, located by byte offsets into the
// text being rewritten. Emission slices the source through these
// offsets, so every byte of the input lands in exactly one token.
//
// The offset fields mean, for a construct like [text](dest){attrs}:
//
//	start..contentStart    opening delimiter
//	contentStart..contentEnd  interior (link text, code, math body)
//	contentEnd..destStart  middle delimiter
//	destStart..destEnd     destination or reference label
//	destEnd..attr or end   closing delimiter
//	attr..end              trailing attribute block, when attr > 0
//
// Kinds without a destination leave destStart == destEnd == 0 and the
// closing delimiter runs contentEnd..end.
type element struct {
	kind elemKind

	start, end               int
	contentStart, contentEnd int
	destStart, destEnd       int
	attr                     int // 0 = no attribute block

	escape escapeKind

	// Delimiter run state for emphasis resolution.
	delim              byte
	count              int
	canOpen, canClose  bool

	suppress bool // bare citation with author suppressed (-@key)
	shortcut bool // reference link of the bare [text] form
	display  bool // backslash math in its display form
	escaped  bool // shortcode wrapped in an escaping brace triple

	children []element // populated for elemEmphasis / elemStrong
}

func (e *element) isDelimiterRun() bool { return e.kind == elemDelimiterRun }

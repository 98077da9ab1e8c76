package syntax

// Kind classifies every token and node in the syntax tree.
// Tokens and nodes share one kind space so heterogeneous children
// (nodes interleaved with tokens) stay uniformly tagged.
type Kind uint16

// Token kinds. Every byte of the source ends up inside exactly one token.
const (
	TokenText Kind = iota
	TokenWhitespace
	TokenNewline
	TokenBlankLine

	TokenEscapedChar      // backslash + escaped punctuation
	TokenNonbreakingSpace // backslash + space, kept verbatim
	TokenHardBreak        // backslash + newline, kept verbatim

	TokenBlockquoteMarker // '>' with surrounding marker spaces
	TokenListMarker       // '-', '+', '*', '1.', '(a)', '#.', '(@)'
	TokenTaskMarker       // '[ ]', '[x]'
	TokenHeadingMarker    // ATX hashes
	TokenCodeFence        // ``` or ~~~ run
	TokenCodeInfo         // fence info string
	TokenMathDelim        // '$', '$$', '\(', '\[', '\\(', '\\['
	TokenDivMarker        // ':::' run
	TokenLatexDelim       // '\begin{...}' / '\end{...}' line
	TokenLatexCommand     // inline '\cmd' or '\cmd{...}'
	TokenMetadataDelim    // '---' / '...'
	TokenTitleMarker      // '%' in a Pandoc title block
	TokenHorizontalRule
	TokenAttribute // '{...}' attribute block

	TokenEmphasisMarker // delimiter run: '*', '_', '~', '^'
	TokenCodeDelim      // backtick run delimiting a code span
	TokenLinkDelim      // '[', ']', '(', ')', '![', '<', '>', '^['
	TokenLinkDest       // destination (and optional title) of a link
	TokenCitationMarker // '@' or '-@'
	TokenCitationKey
	TokenShortcodeDelim // '{{<', '>}}' (and escaped triples)
	TokenPipe           // '|' in pipe tables
	TokenTableSeparator // dash/colon separator line of a table

	tokenKindEnd
)

// Node kinds.
const (
	NodeDocument Kind = iota + 256

	NodeYAMLMetadata
	NodeTitleBlock
	NodeHeading
	NodeHeadingContent
	NodeParagraph
	NodePlain // inline content of a list item, no paragraph wrapper
	NodeBlockQuote
	NodeList
	NodeListItem
	NodeFencedCode
	NodeIndentedCode
	NodeMathBlock
	NodeFencedDiv
	NodeLatexEnv
	NodeHorizontalRule
	NodeReferenceDef
	NodeFootnoteDef
	NodeTable
	NodeTableRow
	NodeTableCell

	NodeEmphasis
	NodeStrong
	NodeCodeSpan
	NodeRawInline
	NodeInlineMath
	NodeDisplayMath
	NodeLink
	NodeImage
	NodeAutolink
	NodeCitation
	NodeShortcode
	NodeFootnoteRef
	NodeInlineFootnote
	NodeBracketedSpan
	NodeStrikeout
	NodeSuperscript
	NodeSubscript

	nodeKindEnd
)

var tokenKindNames = [...]string{
	TokenText:             "Text",
	TokenWhitespace:       "Whitespace",
	TokenNewline:          "Newline",
	TokenBlankLine:        "BlankLine",
	TokenEscapedChar:      "EscapedChar",
	TokenNonbreakingSpace: "NonbreakingSpace",
	TokenHardBreak:        "HardBreak",
	TokenBlockquoteMarker: "BlockquoteMarker",
	TokenListMarker:       "ListMarker",
	TokenTaskMarker:       "TaskMarker",
	TokenHeadingMarker:    "HeadingMarker",
	TokenCodeFence:        "CodeFence",
	TokenCodeInfo:         "CodeInfo",
	TokenMathDelim:        "MathDelim",
	TokenDivMarker:        "DivMarker",
	TokenLatexDelim:       "LatexDelim",
	TokenLatexCommand:     "LatexCommand",
	TokenMetadataDelim:    "MetadataDelim",
	TokenTitleMarker:      "TitleMarker",
	TokenHorizontalRule:   "HorizontalRule",
	TokenAttribute:        "Attribute",
	TokenEmphasisMarker:   "EmphasisMarker",
	TokenCodeDelim:        "CodeDelim",
	TokenLinkDelim:        "LinkDelim",
	TokenLinkDest:         "LinkDest",
	TokenCitationMarker:   "CitationMarker",
	TokenCitationKey:      "CitationKey",
	TokenShortcodeDelim:   "ShortcodeDelim",
	TokenPipe:             "Pipe",
	TokenTableSeparator:   "TableSeparator",
}

var nodeKindNames = [...]string{
	NodeDocument - 256:       "Document",
	NodeYAMLMetadata - 256:   "YAMLMetadata",
	NodeTitleBlock - 256:     "TitleBlock",
	NodeHeading - 256:        "Heading",
	NodeHeadingContent - 256: "HeadingContent",
	NodeParagraph - 256:      "Paragraph",
	NodePlain - 256:          "Plain",
	NodeBlockQuote - 256:     "BlockQuote",
	NodeList - 256:           "List",
	NodeListItem - 256:       "ListItem",
	NodeFencedCode - 256:     "FencedCode",
	NodeIndentedCode - 256:   "IndentedCode",
	NodeMathBlock - 256:      "MathBlock",
	NodeFencedDiv - 256:      "FencedDiv",
	NodeLatexEnv - 256:       "LatexEnv",
	NodeHorizontalRule - 256: "HorizontalRule",
	NodeReferenceDef - 256:   "ReferenceDef",
	NodeFootnoteDef - 256:    "FootnoteDef",
	NodeTable - 256:          "Table",
	NodeTableRow - 256:       "TableRow",
	NodeTableCell - 256:      "TableCell",
	NodeEmphasis - 256:       "Emphasis",
	NodeStrong - 256:         "Strong",
	NodeCodeSpan - 256:       "CodeSpan",
	NodeRawInline - 256:      "RawInline",
	NodeInlineMath - 256:     "InlineMath",
	NodeDisplayMath - 256:    "DisplayMath",
	NodeLink - 256:           "Link",
	NodeImage - 256:          "Image",
	NodeAutolink - 256:       "Autolink",
	NodeCitation - 256:       "Citation",
	NodeShortcode - 256:      "Shortcode",
	NodeFootnoteRef - 256:    "FootnoteRef",
	NodeInlineFootnote - 256: "InlineFootnote",
	NodeBracketedSpan - 256:  "BracketedSpan",
	NodeStrikeout - 256:      "Strikeout",
	NodeSuperscript - 256:    "Superscript",
	NodeSubscript - 256:      "Subscript",
}

// IsToken reports whether k names a token kind.
func (k Kind) IsToken() bool {
	return k < tokenKindEnd
}

// IsNode reports whether k names a node kind.
func (k Kind) IsNode() bool {
	return k >= 256 && k < nodeKindEnd
}

func (k Kind) String() string {
	switch {
	case k.IsToken():
		return tokenKindNames[k]
	case k.IsNode():
		return nodeKindNames[k-256]
	default:
		return "Kind(?)"
	}
}

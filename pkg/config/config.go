// Package config defines the dialect configuration consumed by the
// parser. These are pure data structures; loading lives in yaml.go.
package config

// Flavor selects a bundle of extension defaults.
type Flavor string

const (
	FlavorPandoc     Flavor = "pandoc"
	FlavorQuarto     Flavor = "quarto"
	FlavorCommonMark Flavor = "commonmark"
)

// IsValid returns true if the flavor is one of the known values.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorPandoc, FlavorQuarto, FlavorCommonMark:
		return true
	default:
		return false
	}
}

// Extensions gates per-construct recognition. Each flag is checked by
// its matcher before recognition is attempted, so disabling a flag
// degrades the construct to plain text rather than erroring.
type Extensions struct {
	// TexMathSingleBackslash recognizes \( \) and \[ \] math.
	TexMathSingleBackslash bool `yaml:"tex_math_single_backslash"`
	// TexMathDoubleBackslash recognizes \\( \\) and \\[ \\] math.
	TexMathDoubleBackslash bool `yaml:"tex_math_double_backslash"`
	// ReferenceLinks recognizes [text][label] and [text][] forms.
	ReferenceLinks bool `yaml:"reference_links"`
	// ShortcutReferenceLinks recognizes bare [text] as a reference.
	ShortcutReferenceLinks bool `yaml:"shortcut_reference_links"`
	// RawAttribute recognizes `code`{=format} and ```{=format} blocks.
	RawAttribute bool `yaml:"raw_attribute"`
	// Citations recognizes [@key] and bare @key citations.
	Citations bool `yaml:"citations"`
	// TaskLists recognizes [ ] / [x] boxes after bullet markers.
	TaskLists bool `yaml:"task_lists"`
	// Footnotes recognizes [^id] references, ^[..] inline notes, and
	// [^id]: definitions.
	Footnotes bool `yaml:"footnotes"`
	// QuartoShortcodes recognizes {{< ... >}} shortcodes.
	QuartoShortcodes bool `yaml:"quarto_shortcodes"`
	// QuartoCrossrefs recognizes {#eq-label} blocks after display math.
	QuartoCrossrefs bool `yaml:"quarto_crossrefs"`
	// ExampleLists recognizes (@) and (@label) ordered markers.
	ExampleLists bool `yaml:"example_lists"`
	// FancyLists recognizes alphabetic and roman ordered markers.
	FancyLists bool `yaml:"fancy_lists"`
	// Strikeout recognizes ~~text~~.
	Strikeout bool `yaml:"strikeout"`
	// Superscript recognizes ^text^ and subscript ~text~.
	Superscript bool `yaml:"superscript"`
	Subscript   bool `yaml:"subscript"`
	// PipeTables recognizes | a | b | tables.
	PipeTables bool `yaml:"pipe_tables"`
	// SimpleTables recognizes Pandoc simple tables (dash separator).
	SimpleTables bool `yaml:"simple_tables"`
	// FencedDivs recognizes ::: div fences.
	FencedDivs bool `yaml:"fenced_divs"`
	// RawTex recognizes \begin{..}..\end{..} environments and inline
	// \commands.
	RawTex bool `yaml:"raw_tex"`
}

// Config is the root configuration for a parse.
type Config struct {
	Flavor     Flavor     `yaml:"flavor"`
	Extensions Extensions `yaml:"extensions"`
}

// Default returns the Quarto-flavored configuration with every
// extension the dialect supports switched on.
func Default() *Config {
	return &Config{
		Flavor: FlavorQuarto,
		Extensions: Extensions{
			TexMathSingleBackslash: true,
			TexMathDoubleBackslash: true,
			ReferenceLinks:         true,
			ShortcutReferenceLinks: true,
			RawAttribute:           true,
			Citations:              true,
			TaskLists:              true,
			Footnotes:              true,
			QuartoShortcodes:       true,
			QuartoCrossrefs:        true,
			ExampleLists:           true,
			FancyLists:             true,
			Strikeout:              true,
			Superscript:            true,
			Subscript:              true,
			PipeTables:             true,
			SimpleTables:           true,
			FencedDivs:             true,
			RawTex:                 true,
		},
	}
}

// Pandoc returns the Pandoc-flavored defaults: everything Quarto has
// except shortcodes.
func Pandoc() *Config {
	cfg := Default()
	cfg.Flavor = FlavorPandoc
	cfg.Extensions.QuartoShortcodes = false
	cfg.Extensions.QuartoCrossrefs = false
	return cfg
}

// CommonMark returns a near-CommonMark configuration with the Pandoc
// and Quarto extensions switched off.
func CommonMark() *Config {
	return &Config{
		Flavor: FlavorCommonMark,
		Extensions: Extensions{
			ReferenceLinks:         true,
			ShortcutReferenceLinks: true,
		},
	}
}

// ForFlavor returns the default configuration for a flavor.
func ForFlavor(f Flavor) *Config {
	switch f {
	case FlavorPandoc:
		return Pandoc()
	case FlavorCommonMark:
		return CommonMark()
	default:
		return Default()
	}
}

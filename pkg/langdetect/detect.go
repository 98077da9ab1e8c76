// Package langdetect resolves code fence info strings to canonical
// language names. Fences name their language in several shapes: a
// bare word (```go), a brace block of classes (```{.python}), a
// Quarto executable chunk (```{r}), or a raw attribute (```{=html}).
// Aliases are resolved through go-enry, so "golang", "py", and "js"
// all map to their canonical fence tags.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Info is the parsed form of a fence info string.
type Info struct {
	// Language is the canonical language name, empty when the fence
	// names none.
	Language string

	// Executable reports the Quarto chunk form {lang, ...} where the
	// first word carries no leading dot.
	Executable bool

	// RawFormat is the format of a raw block fence {=format}, empty
	// otherwise.
	RawFormat string

	// Classes holds the dot-prefixed classes of a braced info string,
	// dots stripped, in order.
	Classes []string
}

// ParseInfo parses a fence info string as it appears after the
// opening fence, surrounding whitespace included.
func ParseInfo(raw string) Info {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Info{}
	}
	if !strings.HasPrefix(s, "{") {
		// Shortcut form: the first word is the language.
		word := strings.Fields(s)[0]
		return Info{Language: Resolve(word)}
	}

	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Info{}
	}

	if rest, ok := strings.CutPrefix(fields[0], "="); ok {
		return Info{RawFormat: rest}
	}

	info := Info{}
	for _, f := range fields {
		f = strings.TrimRight(f, ",")
		if class, ok := strings.CutPrefix(f, "."); ok {
			info.Classes = append(info.Classes, class)
			continue
		}
		// Quarto executable chunks lead with the bare engine name;
		// anything after it is chunk options, not classes.
		if f == fields[0] && !strings.ContainsAny(f, "=#") {
			info.Executable = true
			info.Language = Resolve(f)
		}
	}
	if info.Language == "" {
		// Classes mix languages with display options (.numberLines),
		// so the language is the first class either table knows.
		for _, class := range info.Classes {
			if lang, ok := resolveKnown(class); ok {
				info.Language = lang
				break
			}
		}
	}
	return info
}

// fenceAliases maps common fence tags go-enry's alias table does not
// carry to their canonical names.
//
//nolint:gochecknoglobals // Read-only lookup table.
var fenceAliases = map[string]string{
	"py":    "python",
	"js":    "javascript",
	"ts":    "typescript",
	"yml":   "yaml",
	"sh":    "bash",
	"shell": "bash",
	"zsh":   "bash",
}

// Resolve maps a language word or alias to its canonical fence tag.
// Unknown words come back lowercased rather than empty, so fences
// with private tags keep a stable name.
func Resolve(word string) string {
	if lang, ok := resolveKnown(word); ok {
		return lang
	}
	return strings.ToLower(word)
}

func resolveKnown(word string) (string, bool) {
	if word == "" {
		return "", false
	}
	if lang, ok := fenceAliases[strings.ToLower(word)]; ok {
		return lang, true
	}
	if lang, ok := enry.GetLanguageByAlias(word); ok {
		return normalize(lang), true
	}
	return "", false
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}

// Package refs holds the side-table of link and footnote definitions
// collected while block-parsing a document.
package refs

import "strings"

// Definition is a link reference definition: [label]: url "title".
type Definition struct {
	Label string
	URL   string
	Title string // empty when absent
}

// Footnote is a footnote definition: [^id]: content.
type Footnote struct {
	ID      string
	Content string
}

// Registry maps normalized labels to definitions. Add overwrites, so
// first-defined-wins is a document-order property the caller gets by
// not re-adding; duplicate detection is a downstream concern.
type Registry struct {
	definitions map[string]Definition
	footnotes   map[string]Footnote
}

// NewRegistry returns an empty registry. Each parse owns its own;
// there is no shared instance.
func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]Definition),
		footnotes:   make(map[string]Footnote),
	}
}

// NormalizeLabel lowercases a reference label and collapses interior
// whitespace so that [Foo Bar] and [foo  bar] resolve identically.
func NormalizeLabel(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), " ")
}

// Add records a link definition under the normalized label,
// overwriting any previous entry.
func (r *Registry) Add(def Definition) {
	r.definitions[NormalizeLabel(def.Label)] = def
}

// Get returns the definition for a label, if present.
func (r *Registry) Get(label string) (Definition, bool) {
	def, ok := r.definitions[NormalizeLabel(label)]
	return def, ok
}

// Contains reports whether a definition exists for the label.
func (r *Registry) Contains(label string) bool {
	_, ok := r.definitions[NormalizeLabel(label)]
	return ok
}

// AddFootnote records a footnote definition under the normalized id.
func (r *Registry) AddFootnote(fn Footnote) {
	r.footnotes[NormalizeLabel(fn.ID)] = fn
}

// GetFootnote returns the footnote for an id, if present.
func (r *Registry) GetFootnote(id string) (Footnote, bool) {
	fn, ok := r.footnotes[NormalizeLabel(id)]
	return fn, ok
}

// ContainsFootnote reports whether a footnote exists for the id.
func (r *Registry) ContainsFootnote(id string) bool {
	_, ok := r.footnotes[NormalizeLabel(id)]
	return ok
}

// Len returns the number of link definitions.
func (r *Registry) Len() int { return len(r.definitions) }

// FootnoteLen returns the number of footnote definitions.
func (r *Registry) FootnoteLen() int { return len(r.footnotes) }

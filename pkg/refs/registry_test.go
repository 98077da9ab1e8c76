package refs_test

import (
	"testing"

	"github.com/yaklabco/gomdtree/pkg/refs"
)

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"Foo Bar", "foo bar"},
		{"foo  bar", "foo bar"},
		{"  FOO\tbar ", "foo bar"},
		{"foo", "foo"},
		{"", ""},
	}
	for _, c := range cases {
		if got := refs.NormalizeLabel(c.in); got != c.want {
			t.Errorf("NormalizeLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCaseInsensitiveLookup(t *testing.T) {
	t.Parallel()

	r := refs.NewRegistry()
	r.Add(refs.Definition{Label: "FOO", URL: "/url"})

	for _, label := range []string{"foo", "Foo", "FOO"} {
		def, ok := r.Get(label)
		if !ok {
			t.Fatalf("Get(%q) missing", label)
		}
		if def.URL != "/url" {
			t.Errorf("Get(%q).URL = %q, want /url", label, def.URL)
		}
		if !r.Contains(label) {
			t.Errorf("Contains(%q) = false", label)
		}
	}
	if r.Contains("bar") {
		t.Error("Contains(bar) = true for undefined label")
	}
}

func TestAddOverwrites(t *testing.T) {
	t.Parallel()

	r := refs.NewRegistry()
	r.Add(refs.Definition{Label: "x", URL: "/first"})
	r.Add(refs.Definition{Label: "X", URL: "/second"})

	def, _ := r.Get("x")
	if def.URL != "/second" {
		t.Errorf("URL after overwrite = %q, want /second", def.URL)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestFootnotes(t *testing.T) {
	t.Parallel()

	r := refs.NewRegistry()
	r.AddFootnote(refs.Footnote{ID: "Note1", Content: "body"})

	fn, ok := r.GetFootnote("note1")
	if !ok || fn.Content != "body" {
		t.Fatalf("GetFootnote(note1) = %+v, %v", fn, ok)
	}
	if !r.ContainsFootnote("NOTE1") {
		t.Error("ContainsFootnote(NOTE1) = false")
	}
	if r.Contains("note1") {
		t.Error("footnote leaked into link definitions")
	}
}

// Package runner provides multi-file parse orchestration: discovery
// of Markdown sources and a worker pool that parses and round-trip
// checks each file.
package runner

import "github.com/yaklabco/gomdtree/pkg/config"

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified paths (files or directories) to
	// process. If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with
	// leading dot) considered Markdown. Defaults via DefaultExtensions.
	Extensions []string

	// ExcludeGlobs are patterns matched against base names; matching
	// files and directories are skipped.
	ExcludeGlobs []string

	// Jobs is the maximum number of concurrent workers. Zero or
	// negative means one worker per CPU.
	Jobs int

	// Config is the dialect configuration for every parse. Nil means
	// the Quarto defaults.
	Config *config.Config
}

// DefaultExtensions returns the default set of Markdown file
// extensions, Quarto documents included.
func DefaultExtensions() []string {
	return []string{".md", ".markdown", ".qmd"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) effectiveConfig() *config.Config {
	if o.Config == nil {
		return config.Default()
	}
	return o.Config
}

package runner

// FileOutcome is the parse outcome for one file.
type FileOutcome struct {
	// Path is the absolute path of the file.
	Path string

	// Bytes is the source length.
	Bytes int

	// Tokens and Nodes count the tree elements built for the file.
	Tokens int
	Nodes  int

	// Definitions and Footnotes count the registry entries the file
	// declared.
	Definitions int
	Footnotes   int

	// Error is set when the file could not be read or its tree failed
	// the round-trip validation.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found.
	FilesDiscovered int

	// FilesParsed is the number of files parsed and validated.
	FilesParsed int

	// FilesFailed is the number of files with a read or validation
	// error.
	FilesFailed int

	// BytesTotal and TokensTotal aggregate over the parsed files.
	BytesTotal  int
	TokensTotal int
}

// Result is the overall runner result. Files are ordered by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether any file failed.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.FilesFailed > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	if outcome.Error != nil {
		r.Stats.FilesFailed++
		return
	}
	r.Stats.FilesParsed++
	r.Stats.BytesTotal += outcome.Bytes
	r.Stats.TokensTotal += outcome.Tokens
}

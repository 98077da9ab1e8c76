package logging

// Field name constants for structured logging. Using constants keeps
// key spelling consistent across packages.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldFiles = "files"
	FieldLine  = "line"
	FieldBytes = "bytes"

	// Run statistics.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesParsed     = "files_parsed"
	FieldFilesFailed     = "files_failed"
	FieldJobs            = "jobs"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

package cli

import "errors"

// Exit codes for gomdtree.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitCheckFailed indicates the check ran but found files whose
	// trees do not reproduce their source.
	ExitCheckFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps a command error to an exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrCheckFailed):
		return ExitCheckFailed
	default:
		return ExitInternalError
	}
}

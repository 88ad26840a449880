package cli

import "errors"

// Exit codes for markmode.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a command-level failure.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitInvalidUsage
	}

	return ExitFailure
}

// UsageError marks an error caused by invalid invocation rather than a
// runtime failure.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

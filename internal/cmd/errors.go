package cmd

import "errors"

// UsageError is a failure to turn the invocation arguments into a
// configuration. No filesystem access has happened when it is returned.
type UsageError struct {
	Message string
	// ShowUsage asks the caller to print the usage text after the message
	ShowUsage bool
}

func (e *UsageError) Error() string {
	return e.Message
}

// ExitCode is the process exit code suggested for the error.
func (e *UsageError) ExitCode() int {
	return 1
}

// ExitError carries the process exit code for an error that has already been
// reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

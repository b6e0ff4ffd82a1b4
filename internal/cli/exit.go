package cli

import "fmt"

// Process exit codes.
const (
	ExitOK           = 0
	ExitFileFailed   = 1 // a file could not be read or written
	ExitInvalidInput = 2 // bad parameter, or a file is not a DBF file
	ExitUsage        = 3
)

// ExitError carries the exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func exitError(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}

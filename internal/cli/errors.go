package cli

// Process exit codes besides 0 (success) and 1 (any other error).
const (
	// ExitCodeInvalidInput is used when the comparison input is rejected locally.
	ExitCodeInvalidInput = 2
	// ExitCodeUnhealthy is used when the ranking service reports it is not ready.
	ExitCodeUnhealthy = 3
)

// ExitError carries a specific process exit code back to main.
type ExitError struct {
	ExitCode int
	Reason   string
	Err      error
}

func (e *ExitError) Error() string {
	return e.Reason
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

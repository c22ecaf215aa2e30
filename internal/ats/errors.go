package ats

// ValidationError indicates a required text input was missing or empty.
// The server surfaces it as HTTP 400 with the message as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// errMissingInputs is the shared validation failure for the scoring entry points.
func errMissingInputs() error {
	return &ValidationError{Message: "Resume and Job Description text are required."}
}

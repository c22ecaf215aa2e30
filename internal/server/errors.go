package server

import (
	"fmt"
	"net/http"

	"github.com/Aditya57958/AgenticHire/internal/ats"
)

// ErrMissingInputs indicates a process step was requested without a resume
// or job link. Step carries the display name used in the client message.
type ErrMissingInputs struct {
	Step string
}

func (e *ErrMissingInputs) Error() string {
	return fmt.Sprintf("Resume (file or text) and Job Link are required for %s step.", e.Step)
}

// ErrInvalidStep indicates an unknown or missing step value
type ErrInvalidStep struct{}

func (e *ErrInvalidStep) Error() string {
	return "Invalid step provided."
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrMissingInputs, *ErrInvalidStep, *ats.ValidationError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

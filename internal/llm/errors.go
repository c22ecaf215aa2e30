package llm

import (
	"fmt"
	"strings"
)

// KindGeneration is the error-kind name surfaced to API clients when the
// model chain is exhausted. Clients never see raw provider error types.
const KindGeneration = "GenerationFailure"

// Attempt records one failed model invocation in the fallback chain.
type Attempt struct {
	Model string
	Err   error
}

// GenerationError aggregates the per-model failures after every model in the
// chain has been tried.
type GenerationError struct {
	Attempts []Attempt
}

func (e *GenerationError) Error() string {
	if len(e.Attempts) == 0 {
		return "generation failed: no models configured"
	}
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = fmt.Sprintf("%s: %v", a.Model, a.Err)
	}
	return fmt.Sprintf("generation failed after %d attempt(s): %s", len(e.Attempts), strings.Join(parts, "; "))
}

// Unwrap exposes the last attempt's cause for errors.Is/As chains.
func (e *GenerationError) Unwrap() error {
	if len(e.Attempts) == 0 {
		return nil
	}
	return e.Attempts[len(e.Attempts)-1].Err
}

// Package schemas validates structured model output against embedded JSON
// Schemas before it is trusted by the pipeline.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed questions.schema.json
var questionListSchema string

// FieldError is a single validation error at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports why a document failed schema validation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:")
	for _, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", fe.Field, fe.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ParseQuestionList validates and decodes a model response expected to be a
// JSON array of non-empty question strings. The raw text should already have
// markdown fences stripped.
func ParseQuestionList(raw string) ([]string, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(questionListSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("question list is not valid JSON: %w", err)
	}

	if !result.Valid() {
		verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
		}
		return nil, verr
	}

	var questions []string
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("failed to decode question list: %w", err)
	}
	return questions, nil
}

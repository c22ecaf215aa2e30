package llm

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultPrimaryModel, cfg.Primary)
	assert.Equal(t, DefaultFallbackModel, cfg.Fallback)
	assert.Empty(t, cfg.APIKey)
}

func TestConfigChain_PrimaryThenFallback(t *testing.T) {
	cfg := &Config{Primary: "model-a", Fallback: "model-b"}

	assert.Equal(t, []string{"model-a", "model-b"}, cfg.Chain())
}

func TestConfigChain_SkipsDuplicateAndEmpty(t *testing.T) {
	assert.Equal(t, []string{"model-a"}, (&Config{Primary: "model-a", Fallback: "model-a"}).Chain())
	assert.Equal(t, []string{"model-b"}, (&Config{Fallback: "model-b"}).Chain())
	assert.Empty(t, (&Config{}).Chain())
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{Primary: "model-a"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestGenerationError_AggregatesAttempts(t *testing.T) {
	err := &GenerationError{Attempts: []Attempt{
		{Model: "model-a", Err: fmt.Errorf("quota exceeded")},
		{Model: "model-b", Err: fmt.Errorf("timeout")},
	}}

	assert.Contains(t, err.Error(), "2 attempt(s)")
	assert.Contains(t, err.Error(), "model-a: quota exceeded")
	assert.Contains(t, err.Error(), "model-b: timeout")
	assert.EqualError(t, err.Unwrap(), "timeout")
}

func TestGenerationError_Empty(t *testing.T) {
	err := &GenerationError{}

	assert.Contains(t, err.Error(), "no models configured")
	assert.Nil(t, err.Unwrap())
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `["a","b"]`, `["a","b"]`},
		{"json fence", "```json\n[\"a\"]\n```", `["a"]`},
		{"bare fence", "```\n{\"k\":1}\n```", `{"k":1}`},
		{"fence with content on first line", "```[1,2]```", "[1,2]"},
		{"surrounding whitespace", "  \n```json\n[]\n```\n ", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

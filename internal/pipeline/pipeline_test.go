package pipeline

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aditya57958/AgenticHire/internal/generate"
	"github.com/Aditya57958/AgenticHire/internal/llm"
)

// stubClient answers each prompt through a caller-supplied function and
// records every prompt it sees.
type stubClient struct {
	mu       sync.Mutex
	prompts  []string
	generate func(prompt string) (string, error)
}

func (s *stubClient) GenerateText(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()
	return s.generate(prompt)
}

func (s *stubClient) Close() error { return nil }

func answerByPrompt(prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "JSON array"):
		return `["What drew you to this role?", "Describe a hard bug you fixed."]`, nil
	case strings.Contains(prompt, "email"):
		return "Dear Hiring Manager, ...", nil
	default:
		return "Rewritten resume body.", nil
	}
}

func testInputs() Inputs {
	return Inputs{
		ApplicantName: "Dana",
		ResumeText:    "Go engineer with kubernetes experience.",
		JobText:       "We need a golang engineer building kubernetes operators.",
	}
}

func TestFullProcessSuccess(t *testing.T) {
	client := &stubClient{generate: answerByPrompt}

	out := FullProcess(context.Background(), client, testInputs())

	assert.Equal(t, "Dear Hiring Manager, ...", out.Email)
	assert.Equal(t, []string{
		"What drew you to this role?",
		"Describe a hard bug you fixed.",
	}, out.Questions)
	assert.Equal(t, "Rewritten resume body.", out.ModifiedResume)
	assert.Empty(t, out.Warning)
	assert.Len(t, client.prompts, 3)
}

func TestFullProcessSequentialMatchesConcurrent(t *testing.T) {
	in := testInputs()
	in.UseCrew = true

	concurrent := FullProcess(context.Background(), &stubClient{generate: answerByPrompt}, testInputs())
	sequential := FullProcess(context.Background(), &stubClient{generate: answerByPrompt}, in)

	assert.Equal(t, concurrent, sequential)
}

func TestFullProcessFallbackOnGenerationFailure(t *testing.T) {
	client := &stubClient{generate: func(string) (string, error) {
		return "", &llm.GenerationError{Attempts: []llm.Attempt{
			{Model: "gemini-2.5-flash", Err: context.DeadlineExceeded},
		}}
	}}
	in := testInputs()

	out := FullProcess(context.Background(), client, in)

	assert.Equal(t, "LLM pipeline failed, used heuristic fallback: GenerationFailure", out.Warning)
	assert.Equal(t, generate.Email(in.ApplicantName, in.JobText, in.ResumeText), out.Email)
	assert.Equal(t, generate.Questions(in.JobText), out.Questions)
	assert.Equal(t, generate.Highlights(in.ResumeText, in.JobText), out.ModifiedResume)
}

func TestFullProcessFallbackOnInvalidQuestionList(t *testing.T) {
	client := &stubClient{generate: func(prompt string) (string, error) {
		if strings.Contains(prompt, "JSON array") {
			return "1. First question\n2. Second question", nil
		}
		return answerByPrompt(prompt)
	}}

	out := FullProcess(context.Background(), client, testInputs())

	require.NotEmpty(t, out.Warning)
	assert.Contains(t, out.Warning, "heuristic fallback")
	// Fallback replaces everything, including the generations that worked.
	assert.NotEqual(t, "Dear Hiring Manager, ...", out.Email)
}

func TestFullProcessFallbackWithoutClient(t *testing.T) {
	out := FullProcess(context.Background(), nil, testInputs())

	assert.Equal(t, "LLM pipeline failed, used heuristic fallback: GenerationFailure", out.Warning)
	assert.NotEmpty(t, out.Email)
	assert.NotEmpty(t, out.Questions)
}

func TestGenerateQuestionsCapped(t *testing.T) {
	entries := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		entries = append(entries, `"How do you test your code?"`)
	}
	client := &stubClient{generate: func(string) (string, error) {
		return "[" + strings.Join(entries, ",") + "]", nil
	}}

	questions, err := generateQuestions(context.Background(), client, testInputs())

	require.NoError(t, err)
	assert.Len(t, questions, maxQuestions)
}

func TestGenerateQuestionsStripsCodeFence(t *testing.T) {
	client := &stubClient{generate: func(string) (string, error) {
		return "```json\n[\"Why us?\"]\n```", nil
	}}

	questions, err := generateQuestions(context.Background(), client, testInputs())

	require.NoError(t, err)
	assert.Equal(t, []string{"Why us?"}, questions)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab", truncate("abcd", 2))
	assert.Equal(t, "hél", truncate("héllo", 3))
}

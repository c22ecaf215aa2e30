// Package pipeline orchestrates the full-process generation step: an
// application email, interview questions and a rewritten resume, produced by
// the hosted model chain with a deterministic heuristic fallback.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/Aditya57958/AgenticHire/internal/ats"
	"github.com/Aditya57958/AgenticHire/internal/generate"
	"github.com/Aditya57958/AgenticHire/internal/llm"
	"github.com/Aditya57958/AgenticHire/internal/prompts"
	"github.com/Aditya57958/AgenticHire/internal/schemas"
)

// Prompt input character budgets, matching what the models handle well
// without wasting context on very long documents.
const (
	emailInputChars   = 4000
	rewriteInputChars = 5000
	maxQuestions      = 20
)

// errNoClient routes requests without a configured generation client
// straight to the heuristic fallback.
var errNoClient = errors.New("no generation client configured")

// Inputs carries everything the full-process step needs.
type Inputs struct {
	ApplicantName string
	ResumeText    string
	JobText       string
	// UseCrew selects the sequential agent-crew mode instead of
	// concurrent generation. Output shape is identical.
	UseCrew bool
}

// Outputs is the full-process result. Warning is empty when the primary
// generation path succeeded and names the failure kind otherwise.
type Outputs struct {
	Email          string
	Questions      []string
	ModifiedResume string
	Warning        string
}

// FullProcess generates the application kit. Any failure after the model
// chain is exhausted swaps the entire generation path to the heuristic
// generators; partial LLM output is never mixed with fallback output.
func FullProcess(ctx context.Context, client llm.Client, in Inputs) Outputs {
	out, err := generateAll(ctx, client, in)
	if err != nil {
		log.Printf("[pipeline] generation failed, using heuristic fallback: %v", err)
		return heuristicOutputs(in, kindOf(err))
	}
	return out
}

func generateAll(ctx context.Context, client llm.Client, in Inputs) (Outputs, error) {
	if client == nil {
		return Outputs{}, errNoClient
	}
	if in.UseCrew {
		return generateSequential(ctx, client, in)
	}
	return generateConcurrent(ctx, client, in)
}

// generateConcurrent runs the three generations in parallel; the first
// failure cancels the rest.
func generateConcurrent(ctx context.Context, client llm.Client, in Inputs) (Outputs, error) {
	var out Outputs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		email, err := generateEmail(gctx, client, in)
		out.Email = email
		return err
	})
	g.Go(func() error {
		questions, err := generateQuestions(gctx, client, in)
		out.Questions = questions
		return err
	})
	g.Go(func() error {
		resume, err := generateRewrite(gctx, client, in)
		out.ModifiedResume = resume
		return err
	})

	if err := g.Wait(); err != nil {
		return Outputs{}, err
	}
	return out, nil
}

// generateSequential runs the generations one at a time, crew style.
func generateSequential(ctx context.Context, client llm.Client, in Inputs) (Outputs, error) {
	var out Outputs
	var err error
	if out.Email, err = generateEmail(ctx, client, in); err != nil {
		return Outputs{}, err
	}
	if out.Questions, err = generateQuestions(ctx, client, in); err != nil {
		return Outputs{}, err
	}
	if out.ModifiedResume, err = generateRewrite(ctx, client, in); err != nil {
		return Outputs{}, err
	}
	return out, nil
}

func generateEmail(ctx context.Context, client llm.Client, in Inputs) (string, error) {
	prompt := prompts.Format(prompts.MustGet("generation.json", "hr_email"), map[string]string{
		"Name":           in.ApplicantName,
		"JobDescription": truncate(in.JobText, emailInputChars),
		"Resume":         truncate(in.ResumeText, emailInputChars),
	})
	return client.GenerateText(ctx, prompt)
}

func generateQuestions(ctx context.Context, client llm.Client, in Inputs) ([]string, error) {
	prompt := prompts.Format(prompts.MustGet("generation.json", "interview_questions"), map[string]string{
		"JobDescription": truncate(in.JobText, rewriteInputChars),
	})
	raw, err := client.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	questions, err := schemas.ParseQuestionList(llm.CleanJSONBlock(raw))
	if err != nil {
		return nil, fmt.Errorf("model returned an invalid question list: %w", err)
	}
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions, nil
}

func generateRewrite(ctx context.Context, client llm.Client, in Inputs) (string, error) {
	prompt := prompts.Format(prompts.MustGet("generation.json", "resume_rewrite"), map[string]string{
		"JobDescription": truncate(in.JobText, rewriteInputChars),
		"Resume":         truncate(in.ResumeText, rewriteInputChars),
	})
	return client.GenerateText(ctx, prompt)
}

// heuristicOutputs builds the full kit from the deterministic generators.
func heuristicOutputs(in Inputs, kind string) Outputs {
	return Outputs{
		Email:          generate.Email(in.ApplicantName, in.JobText, in.ResumeText),
		Questions:      generate.Questions(in.JobText),
		ModifiedResume: generate.Highlights(in.ResumeText, in.JobText),
		Warning:        fmt.Sprintf("LLM pipeline failed, used heuristic fallback: %s", kind),
	}
}

// kindOf maps a failure to its taxonomy name; clients never see raw error
// types.
func kindOf(err error) string {
	var genErr *llm.GenerationError
	var valErr *ats.ValidationError
	switch {
	case errors.As(err, &valErr):
		return "ValidationError"
	case errors.As(err, &genErr):
		return llm.KindGeneration
	default:
		return llm.KindGeneration
	}
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeOverlap_WorkedExample(t *testing.T) {
	resume := "Python developer with SQL and communication skills"
	jd := "Looking for Python and SQL experience"

	analysis, err := ComputeOverlap(resume, jd)
	require.NoError(t, err)

	// jd vocabulary has 6 tokens, 3 of them shared.
	assert.Equal(t, 50, analysis.MatchPercent)
	assert.Equal(t, 60, analysis.Score)
	assert.Equal(t, "Candidate matches 50% of JD keywords. Good alignment but missing key terms.", analysis.Summary)
	assert.ElementsMatch(t, []string{"python", "and", "sql"}, analysis.Matched)
	assert.ElementsMatch(t, []string{"looking", "for", "experience"}, analysis.Missing)
}

func TestComputeOverlap_EmptyInputs(t *testing.T) {
	tests := []struct {
		name   string
		resume string
		jd     string
	}{
		{"empty resume", "", "some job"},
		{"empty jd", "some resume", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeOverlap(tt.resume, tt.jd)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "Resume and Job Description text are required.", verr.Message)
		})
	}
}

func TestComputeOverlap_MatchedAndMissingPartitionJDVocabulary(t *testing.T) {
	resume := "Built services in Go and deployed to AWS"
	jd := "Go engineer to build services on AWS with Terraform"

	analysis, err := ComputeOverlap(resume, jd)
	require.NoError(t, err)

	jdVocab := vocabulary(jd)
	assert.Len(t, analysis.Matched, len(jdVocab)-len(analysis.Missing))
	for _, token := range analysis.Matched {
		assert.Contains(t, jdVocab, token)
		assert.NotContains(t, analysis.Missing, token)
	}
	for _, token := range analysis.Missing {
		assert.Contains(t, jdVocab, token)
	}
}

func TestComputeOverlap_NoOverlapScoresZero(t *testing.T) {
	analysis, err := ComputeOverlap("alpha beta", "gamma delta")
	require.NoError(t, err)

	assert.Equal(t, 0, analysis.MatchPercent)
	assert.Equal(t, 0, analysis.Score)
	assert.Equal(t, "Candidate matches 0% of JD keywords. Needs significant optimization for ATS compatibility.", analysis.Summary)
}

func TestComputeOverlap_FullOverlapCapsAtHundred(t *testing.T) {
	text := "python sql airflow dbt"

	analysis, err := ComputeOverlap(text, text)
	require.NoError(t, err)

	assert.Equal(t, 100, analysis.MatchPercent)
	assert.Equal(t, 100, analysis.Score)
	assert.Contains(t, analysis.Summary, "Strong alignment with job requirements.")
}

func TestComputeOverlap_DuplicatesCollapse(t *testing.T) {
	analysis, err := ComputeOverlap("python python python", "python python sql")
	require.NoError(t, err)

	// jd vocabulary is {python, sql}, one token matched.
	assert.Equal(t, 50, analysis.MatchPercent)
	assert.Equal(t, []string{"python"}, analysis.Matched)
	assert.Equal(t, []string{"sql"}, analysis.Missing)
}

func TestComputeOverlap_DenominatorUsesJDOnly(t *testing.T) {
	// Swapping inputs changes the denominator even though the
	// intersection is symmetric.
	forward, err := ComputeOverlap("a1 b2 c3 d4", "a1 b2")
	require.NoError(t, err)
	backward, err := ComputeOverlap("a1 b2", "a1 b2 c3 d4")
	require.NoError(t, err)

	assert.ElementsMatch(t, forward.Matched, backward.Matched)
	assert.Equal(t, 100, forward.MatchPercent)
	assert.Equal(t, 50, backward.MatchPercent)
}

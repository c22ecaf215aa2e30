package ats

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// scoreBoost weights the raw match percentage into the final ATS score.
const scoreBoost = 1.2

// Analysis holds the keyword-overlap scoring result for one resume/job pair.
// Matched and Missing partition the full job-description vocabulary and are
// sorted for stable output.
type Analysis struct {
	Score        int
	MatchPercent int
	Summary      string
	Matched      []string
	Missing      []string
}

// ComputeOverlap scores a resume against a job description by vocabulary
// intersection. The vocabulary is the raw lowercase whitespace-delimited
// token set of each text; this is intentionally coarser than
// ExtractKeywords, which serves display and generation instead of scoring.
// Returns a *ValidationError when either input is empty.
func ComputeOverlap(resumeText, jdText string) (*Analysis, error) {
	if resumeText == "" || jdText == "" {
		return nil, errMissingInputs()
	}

	resumeVocab := vocabulary(resumeText)
	jdVocab := vocabulary(jdText)

	matched := make([]string, 0, len(jdVocab))
	missing := make([]string, 0, len(jdVocab))
	for token := range jdVocab {
		if _, ok := resumeVocab[token]; ok {
			matched = append(matched, token)
		} else {
			missing = append(missing, token)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	// Denominator is the job-description vocabulary only; guard against
	// division by zero for all-whitespace input.
	total := len(jdVocab)
	if total == 0 {
		total = 1
	}
	matchPercent := int(math.Round(float64(len(matched)) / float64(total) * 100))
	score := min(int(math.Round(float64(matchPercent)*scoreBoost)), 100)

	summary := fmt.Sprintf("Candidate matches %d%% of JD keywords. ", matchPercent)
	switch {
	case score >= 80:
		summary += "Strong alignment with job requirements."
	case score >= 60:
		summary += "Good alignment but missing key terms."
	default:
		summary += "Needs significant optimization for ATS compatibility."
	}

	return &Analysis{
		Score:        score,
		MatchPercent: matchPercent,
		Summary:      summary,
		Matched:      matched,
		Missing:      missing,
	}, nil
}

// vocabulary returns the set of lowercase whitespace-delimited tokens,
// punctuation attached. Duplicates collapse.
func vocabulary(text string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(text))
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	return set
}

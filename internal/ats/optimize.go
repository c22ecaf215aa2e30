package ats

import "strings"

const (
	// ratingPresent / ratingAbsent are the binary section ratings.
	ratingPresent = 8
	ratingAbsent  = 4
	// optimizationBonus is the flat score bonus assumed achievable by
	// applying the suggestions, capped at 100.
	optimizationBonus = 15
	// readabilityWordCount is the minimum word count treated as a
	// substantive, readable resume.
	readabilityWordCount = 500
)

// technicalSkills and softSkills are the fixed detection catalogs. Entries
// are matched as exact whitespace tokens of the resume, so multi-word
// entries only match when they survive tokenization as a single token.
var (
	technicalSkills = []string{"python", "fastapi", "sql", "machine learning", "data analysis"}
	softSkills      = []string{"communication", "teamwork", "problem solving", "time management"}
)

// SectionNames lists the fixed report sections in display order.
var SectionNames = []string{
	"Summary/Objectives",
	"Experience",
	"Education",
	"Skills Section",
	"Grammar & Readability",
	"Formatting (ATS friendliness)",
}

// achievementSuggestions are returned unconditionally with every report.
var achievementSuggestions = []string{
	"Add metrics to experience bullet points (e.g., 'Increased efficiency by 20%')",
	"Include specific project outcomes with quantifiable results",
	"Highlight cross-functional collaboration achievements",
}

// Optimization aggregates the overlap analysis with section and skill
// heuristics into a resume optimization report.
type Optimization struct {
	UpdatedScore     int
	MissingTechnical []string
	MissingSoft      []string
	Suggestions      []string
	SectionRatings   map[string]int
	Analysis         *Analysis
}

// ComputeOptimization builds the full optimization report. It delegates to
// ComputeOverlap first and propagates its validation failure.
func ComputeOptimization(resumeText, jdText string) (*Optimization, error) {
	if resumeText == "" || jdText == "" {
		return nil, errMissingInputs()
	}

	analysis, err := ComputeOverlap(resumeText, jdText)
	if err != nil {
		return nil, err
	}

	resumeVocab := vocabulary(resumeText)
	lower := strings.ToLower(resumeText)

	present := map[string]bool{
		"Summary/Objectives":            strings.Contains(lower, "summary") || strings.Contains(lower, "objective"),
		"Experience":                    strings.Contains(lower, "experience") || strings.Contains(lower, "work history"),
		"Education":                     strings.Contains(lower, "education"),
		"Skills Section":                strings.Contains(lower, "skills"),
		"Grammar & Readability":         len(strings.Fields(resumeText)) > readabilityWordCount,
		"Formatting (ATS friendliness)": !strings.ContainsAny(resumeText, "@#$%"),
	}
	ratings := make(map[string]int, len(present))
	for section, ok := range present {
		if ok {
			ratings[section] = ratingPresent
		} else {
			ratings[section] = ratingAbsent
		}
	}

	return &Optimization{
		UpdatedScore:     min(analysis.Score+optimizationBonus, 100),
		MissingTechnical: missingFrom(resumeVocab, technicalSkills),
		MissingSoft:      missingFrom(resumeVocab, softSkills),
		Suggestions:      achievementSuggestions,
		SectionRatings:   ratings,
		Analysis:         analysis,
	}, nil
}

// missingFrom returns the catalog entries absent from the vocabulary,
// preserving catalog order.
func missingFrom(vocab map[string]struct{}, catalog []string) []string {
	missing := make([]string, 0, len(catalog))
	for _, entry := range catalog {
		if _, ok := vocab[entry]; !ok {
			missing = append(missing, entry)
		}
	}
	return missing
}

package generate

import (
	"strings"

	"github.com/Aditya57958/AgenticHire/internal/ats"
)

// maxHighlightLines caps how many resume lines are surfaced as highlights.
const maxHighlightLines = 20

// fallbackHighlight is used when no resume line mentions any job keyword.
const fallbackHighlight = "Tailored summary based on job requirements."

// Highlights rewrites the resume into a keyword-targeted highlight summary.
// Resume lines are scanned per keyword in rank order, deduplicated keeping
// the first occurrence, and capped. A "Targeted Skills" footer lists every
// extracted keyword.
func Highlights(resumeText, jdText string) string {
	keywords := ats.ExtractKeywords(jdText)

	var lines []string
	for _, line := range strings.Split(resumeText, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	seen := make(map[string]bool)
	var matched []string
	for _, keyword := range keywords {
		for _, line := range lines {
			if strings.Contains(strings.ToLower(line), keyword) && !seen[line] {
				seen[line] = true
				matched = append(matched, line)
			}
		}
	}
	if len(matched) > maxHighlightLines {
		matched = matched[:maxHighlightLines]
	}

	summary := "Relevant Highlights:\n"
	if len(matched) > 0 {
		summary += strings.Join(matched, "\n")
	} else {
		summary += fallbackHighlight
	}

	skills := "Targeted Skills:\n" + strings.Join(capitalizeAll(keywords), ", ")
	return summary + "\n\n" + skills
}

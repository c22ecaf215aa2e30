// Package ats provides the deterministic scoring core: keyword extraction,
// resume/job-description overlap scoring, and the section/skill heuristics
// behind the resume optimization report.
package ats

import (
	"regexp"
	"sort"
	"strings"
)

// keywordPattern matches word-like runs starting with a letter. The trailing
// class keeps technology tokens such as "c++", "c#" and "node.js" intact.
var keywordPattern = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+#.\-]+`)

const (
	// minKeywordLength is the minimum normalized token length kept.
	minKeywordLength = 3
	// frequencyPoolSize is how many top-frequency tokens are considered
	// before stop-word filtering.
	frequencyPoolSize = 100
	// maxKeywords caps the final ranked keyword list.
	maxKeywords = 25
)

// stopWords are high-frequency noise tokens excluded from keyword lists.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "into": true, "able": true, "about": true,
	"your": true, "have": true, "will": true, "are": true, "our": true,
	"you": true, "job": true, "role": true, "requirements": true,
	"responsibilities": true, "skills": true,
}

// ExtractKeywords turns free text into a ranked list of significant lowercase
// keywords. Tokens are ranked by descending frequency with ties broken by
// first appearance, so output is deterministic for a given input. Empty text
// yields an empty list.
func ExtractKeywords(text string) []string {
	tokens := keywordPattern.FindAllString(text, -1)

	freq := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, token := range tokens {
		normalized := strings.ToLower(token)
		if len(normalized) < minKeywordLength {
			continue
		}
		if _, seen := freq[normalized]; !seen {
			order = append(order, normalized)
		}
		freq[normalized]++
	}

	// Stable sort keeps first-seen order for equal frequencies.
	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	if len(order) > frequencyPoolSize {
		order = order[:frequencyPoolSize]
	}

	result := make([]string, 0, maxKeywords)
	for _, keyword := range order {
		if stopWords[keyword] {
			continue
		}
		result = append(result, keyword)
		if len(result) == maxKeywords {
			break
		}
	}
	return result
}

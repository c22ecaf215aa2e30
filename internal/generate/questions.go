package generate

import (
	"fmt"

	"github.com/Aditya57958/AgenticHire/internal/ats"
)

// questionKeywords is how many top keywords receive per-keyword questions.
const questionKeywords = 10

// closingQuestions are appended after the keyword-specific questions.
var closingQuestions = []string{
	"Describe a challenging project and your role end to end.",
	"How do you prioritize tasks and communicate trade-offs?",
}

// Questions emits two fixed-template interview questions per top job keyword,
// followed by two fixed closing questions.
func Questions(jdText string) []string {
	keywords := ats.ExtractKeywords(jdText)
	if len(keywords) > questionKeywords {
		keywords = keywords[:questionKeywords]
	}

	questions := make([]string, 0, 2*len(keywords)+len(closingQuestions))
	for _, keyword := range keywords {
		questions = append(questions,
			fmt.Sprintf("How have you applied %s in a recent project?", keyword),
			fmt.Sprintf("What are common pitfalls when working with %s and how do you avoid them?", keyword),
		)
	}
	return append(questions, closingQuestions...)
}

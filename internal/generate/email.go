package generate

import (
	"fmt"
	"strings"

	"github.com/Aditya57958/AgenticHire/internal/ats"
)

// headlineKeywords is how many top keywords are woven into the email opener.
const headlineKeywords = 5

// Email builds a fixed-template application email around the top job
// keywords and the applicant name. Deterministic for a given job text.
func Email(applicantName, jdText, _ string) string {
	keywords := ats.ExtractKeywords(jdText)
	if len(keywords) > headlineKeywords {
		keywords = keywords[:headlineKeywords]
	}
	headline := strings.Join(capitalizeAll(keywords), ", ")

	return fmt.Sprintf(
		"Dear Hiring Team,\n\n"+
			"I am applying for the opportunity described and believe my background aligns with %s. "+
			"My experience includes accomplishments that match your needs. "+
			"I have attached my resume and would welcome the chance to discuss how I can contribute.\n\n"+
			"Thank you for your time and consideration.\n\n"+
			"Best regards,\n%s",
		headline, applicantName)
}

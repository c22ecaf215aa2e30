package ats

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractKeywords(""))
}

func TestExtractKeywords_LowercasesAndCounts(t *testing.T) {
	keywords := ExtractKeywords("Kubernetes cloud kubernetes CLOUD Kubernetes")

	assert.Equal(t, []string{"kubernetes", "cloud"}, keywords)
}

func TestExtractKeywords_DropsShortTokens(t *testing.T) {
	keywords := ExtractKeywords("go is ok we do ml")

	assert.Empty(t, keywords)
}

func TestExtractKeywords_KeepsTechnologyTokens(t *testing.T) {
	keywords := ExtractKeywords("c++ c++ node.js backend")

	assert.Equal(t, []string{"c++", "node.js", "backend"}, keywords)
}

func TestExtractKeywords_FiltersStopWords(t *testing.T) {
	keywords := ExtractKeywords("the role requirements demand golang and the responsibilities demand golang")

	assert.Equal(t, []string{"demand", "golang"}, keywords)
}

func TestExtractKeywords_TiesKeepFirstSeenOrder(t *testing.T) {
	keywords := ExtractKeywords("beta alpha beta alpha gamma")

	assert.Equal(t, []string{"beta", "alpha", "gamma"}, keywords)
}

func TestExtractKeywords_CapsAtTwentyFive(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		// Distinct frequencies so ranking is unambiguous.
		word := fmt.Sprintf("word%02d", i)
		for j := 0; j <= 40-i; j++ {
			sb.WriteString(word)
			sb.WriteString(" ")
		}
	}

	keywords := ExtractKeywords(sb.String())

	assert.Len(t, keywords, 25)
	assert.Equal(t, "word00", keywords[0])
	assert.Equal(t, "word24", keywords[24])
}

func TestExtractKeywords_OutputProperties(t *testing.T) {
	text := "Senior Go engineer: Kubernetes, Docker, gRPC, and the usual. " +
		"You will own the job requirements for our Go services."

	for _, keyword := range ExtractKeywords(text) {
		assert.Equal(t, strings.ToLower(keyword), keyword)
		assert.GreaterOrEqual(t, len(keyword), 3)
		assert.False(t, stopWords[keyword], "stop word leaked: %s", keyword)
		assert.Contains(t, strings.ToLower(text), keyword)
	}
}

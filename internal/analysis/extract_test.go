package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_Deduplicates(t *testing.T) {
	a := NewDefault()

	keywords := a.ExtractKeywords("Python python PYTHON aws")

	assert.Equal(t, []string{"python", "aws"}, keywords)
}

func TestExtractKeywords_FirstSeenOrder(t *testing.T) {
	a := NewDefault()

	keywords := a.ExtractKeywords("docker kubernetes python docker")

	assert.Equal(t, []string{"docker", "kubernetes", "python"}, keywords)
}

func TestExtractKeywords_DetectsPhrases(t *testing.T) {
	a := NewDefault()

	keywords := a.ExtractKeywords("Experience with machine learning required")

	// The phrase canonicalizes to one keyword even though its component
	// words are filtered individually
	assert.Contains(t, keywords, "machinelearning")
}

func TestExtractKeywords_PhraseWithShortWords(t *testing.T) {
	a := NewDefault()

	keywords := a.ExtractKeywords("Owns the process end to end using Power BI dashboards")

	// Phrases canonicalize through the synonym table like single words
	assert.Contains(t, keywords, "testing")
	assert.Contains(t, keywords, "tableau")
}

func TestExtractKeywords_SynonymVariant(t *testing.T) {
	a := NewDefault()

	keywords := a.ExtractKeywords("Deployed workloads to k8s clusters")

	assert.Contains(t, keywords, "kubernetes")
	assert.NotContains(t, keywords, "k8s")
}

func TestExtractKeywords_Empty(t *testing.T) {
	a := NewDefault()

	assert.Empty(t, a.ExtractKeywords(""))
}

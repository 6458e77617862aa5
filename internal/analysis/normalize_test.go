package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_RemovesJobBoardNoise(t *testing.T) {
	raw := "Posted 3 days ago · 47 applicants · Easy Apply\nSenior Engineer role"

	cleaned := CleanText(raw)

	assert.NotContains(t, cleaned, "ago")
	assert.NotContains(t, cleaned, "applicants")
	assert.NotContains(t, cleaned, "Easy Apply")
	assert.Contains(t, cleaned, "Senior Engineer role")
}

func TestCleanText_SplitsFusedCase(t *testing.T) {
	cleaned := CleanText("logoshareOptionsBengaluru")

	assert.Contains(t, cleaned, "logoshare Options")
	assert.Contains(t, cleaned, "Options Bengaluru")
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
}

func TestNormalize_LowercasesAndFilters(t *testing.T) {
	a := NewDefault()

	tokens := a.Normalize("The Python developer has strong AWS experience")

	assert.Contains(t, tokens, "python")
	assert.Contains(t, tokens, "aws")
	// Stop words and generic posting words are dropped
	assert.NotContains(t, tokens, "the")
	assert.NotContains(t, tokens, "has")
	assert.NotContains(t, tokens, "strong")
	assert.NotContains(t, tokens, "experience")
}

func TestNormalize_CanonicalizesSynonyms(t *testing.T) {
	a := NewDefault()

	tokens := a.Normalize("Shipped k8s workloads with nodejs services")

	assert.Contains(t, tokens, "kubernetes")
	assert.Contains(t, tokens, "javascript")
	assert.NotContains(t, tokens, "k8s")
	assert.NotContains(t, tokens, "nodejs")
}

func TestNormalize_DropsShortTokens(t *testing.T) {
	a := NewDefault()

	tokens := a.Normalize("ox db xy python")

	assert.NotContains(t, tokens, "ox")
	assert.NotContains(t, tokens, "xy")
	assert.Contains(t, tokens, "python")
}

func TestNormalize_PreservesSpecialCharacterTokens(t *testing.T) {
	a := NewDefault()

	tokens := a.Normalize("Built services in C++ and node.js")

	// "c++" canonicalizes to cplusplus, "node.js" to javascript
	assert.Contains(t, tokens, "cplusplus")
	assert.Contains(t, tokens, "javascript")
}

func TestNormalize_KeepsDuplicates(t *testing.T) {
	a := NewDefault()

	tokens := a.Normalize("python python python")

	assert.Equal(t, []string{"python", "python", "python"}, tokens)
}

func TestNormalize_DegenerateInput(t *testing.T) {
	a := NewDefault()

	assert.Empty(t, a.Normalize(""))
	assert.Empty(t, a.Normalize("the and or with for"))
	assert.Empty(t, a.Normalize("!!! ??? ..."))
}

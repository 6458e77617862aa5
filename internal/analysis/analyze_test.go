package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Smith
john.smith@example.com | 555-123-4567 | linkedin.com/in/johnsmith

Summary
Senior software engineer with Python and AWS experience.

Experience
Led a team of 5 engineers and developed microservices in Python on AWS.
Reduced deployment time by 40% and improved reliability.

Skills
Python, AWS, Docker, PostgreSQL

Education
BS Computer Science`

const sampleJD = `We are looking for a senior software engineer.
Requirements: Python, AWS, Kubernetes, leadership experience.`

func TestAnalyzeLocally(t *testing.T) {
	a := NewDefault()

	result := a.AnalyzeLocally(sampleResume, sampleJD)
	require.NotNil(t, result)

	assert.Greater(t, result.OverallScore, 0)
	assert.Contains(t, result.MatchedKeywords, "python")
	assert.Contains(t, result.MatchedKeywords, "aws")
	assert.Contains(t, result.MissingKeywords, "kubernetes")
	assert.NotContains(t, result.MatchedKeywords, "kubernetes")
}

func TestAnalyzeLocally_SynonymsCountAsMatched(t *testing.T) {
	a := NewDefault()

	// "Led" in the resume canonicalizes to leadership, matching the JD
	result := a.AnalyzeLocally(sampleResume, sampleJD)

	assert.Contains(t, result.MatchedKeywords, "leadership")
}

func TestAnalyzeLocally_Meta(t *testing.T) {
	a := NewDefault()

	result := a.AnalyzeLocally(sampleResume, sampleJD)

	assert.NotEmpty(t, result.Meta.AnalysisID)
	assert.Equal(t, AnalysisTypeLocal, result.Meta.AnalysisType)
	assert.False(t, result.Meta.AIEnhanced)
	assert.Greater(t, result.Meta.ResumeKeywordCount, 0)
	assert.Greater(t, result.Meta.JDKeywordCount, 0)
}

func TestAnalyzeLocally_UniqueAnalysisIDs(t *testing.T) {
	a := NewDefault()

	first := a.AnalyzeLocally(sampleResume, sampleJD)
	second := a.AnalyzeLocally(sampleResume, sampleJD)

	assert.NotEqual(t, first.Meta.AnalysisID, second.Meta.AnalysisID)
}

func TestAnalyzeLocally_Deterministic(t *testing.T) {
	a := NewDefault()

	first := a.AnalyzeLocally(sampleResume, sampleJD)
	second := a.AnalyzeLocally(sampleResume, sampleJD)

	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.MatchedKeywords, second.MatchedKeywords)
	assert.Equal(t, first.MissingKeywords, second.MissingKeywords)
}

func TestAnalyzeLocally_StopWordOnlyJobDescription(t *testing.T) {
	a := NewDefault()

	result := a.AnalyzeLocally(sampleResume, "we are looking for excellent proven ability")

	// No extractable requirements: hard and soft fall back to full
	// credit, general to zero
	assert.Equal(t, 0, result.Meta.JDKeywordCount)
	assert.Equal(t, 85, result.OverallScore)
	assert.Empty(t, result.MissingKeywords)
}

func TestAnalyzeLocally_ActionVerbsAndVariants(t *testing.T) {
	a := NewDefault()

	result := a.AnalyzeLocally(
		"Developed REST APIs using Python and led a team of 3",
		"Looking for Python developer with API and leadership experience",
	)

	assert.Contains(t, result.MatchedKeywords, "python")
	assert.Contains(t, result.MatchedKeywords, "api")
	assert.Contains(t, result.MatchedKeywords, "leadership")
	assert.Greater(t, result.OverallScore, 0)
}

func TestAnalyzeLocally_EmptyResume(t *testing.T) {
	a := NewDefault()

	result := a.AnalyzeLocally("", "Python required")

	assert.Contains(t, result.MissingKeywords, "python")
	assert.Empty(t, result.MatchedKeywords)
	assert.Equal(t, 0, result.HardScore)
}

func TestAnalyzeLocally_EmptyInputs(t *testing.T) {
	a := NewDefault()

	result := a.AnalyzeLocally("", "")
	require.NotNil(t, result)

	assert.Empty(t, result.MatchedKeywords)
	assert.Empty(t, result.MissingKeywords)
	assert.Equal(t, 0, result.Meta.ResumeKeywordCount)
}

func TestAnalyzeLocally_ScrapedNoiseExcluded(t *testing.T) {
	a := NewDefault()

	noisy := sampleJD + "\nAcme Corp logo\nPromoted · 32 applicants · Reposted 2 days ago"
	result := a.AnalyzeLocally(sampleResume, noisy)

	assert.NotContains(t, result.MissingKeywords, "logo")
	assert.NotContains(t, result.MissingKeywords, "promoted")
	assert.NotContains(t, result.MissingKeywords, "applicants")
}

package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintScores(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{
		OverallScore: 72,
		HardScore:    80,
		SoftScore:    50,
		GeneralScore: 66,
		ATSScore:     90,
	}

	p.PrintScores(result)
	output := buf.String()

	assert.Contains(t, output, "MATCH SCORES")
	assert.Contains(t, output, "72%")
	assert.Contains(t, output, "80%")
	assert.Contains(t, output, "90%")
}

func TestPrintScores_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScores(nil)

	assert.Empty(t, buf.String())
}

func TestPrintKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{
		MatchedKeywords: []string{"python", "aws", "docker"},
		MissingKeywords: []string{"kubernetes"},
	}

	p.PrintKeywords(result)
	output := buf.String()

	assert.Contains(t, output, "KEYWORDS")
	assert.Contains(t, output, "Matched (3)")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "Missing (1)")
	assert.Contains(t, output, "kubernetes")
}

func TestPrintKeywords_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{
		MatchedKeywords: []string{"go", "python", "java", "ruby", "rust", "scala", "elixir"},
	}

	p.PrintKeywords(result)
	output := buf.String()

	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "elixir")
}

func TestPrintKeywords_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywords(&types.AnalysisResult{})

	assert.Contains(t, buf.String(), "No keywords extracted")
}

func TestPrintFormatChecks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{
		FormatChecks: types.FormatChecks{
			HasEmail:       true,
			HasPhone:       false,
			HasActionVerbs: true,
			WordCount:      420,
		},
	}

	p.PrintFormatChecks(result)
	output := buf.String()

	assert.Contains(t, output, "FORMAT CHECKS")
	assert.Contains(t, output, "✓ Email address")
	assert.Contains(t, output, "✗ Phone number")
	assert.Contains(t, output, "Word count: 420")
}

func TestPrintModifications(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{
		Modifications: []types.Modification{
			{Section: "Skills", Suggestion: "Add Kubernetes to the skills section"},
			{Section: "Summary", Suggestion: "Lead with years of experience"},
		},
	}

	p.PrintModifications(result)
	output := buf.String()

	assert.Contains(t, output, "SUGGESTED MODIFICATIONS")
	assert.Contains(t, output, "Suggested 2 modifications")
	assert.Contains(t, output, "[Skills]")
	assert.Contains(t, output, "[Summary]")
}

func TestPrintModifications_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintModifications(&types.AnalysisResult{})

	assert.Empty(t, buf.String())
}

func TestPrintAnalysisSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{
		OverallScore:    64,
		MatchedKeywords: []string{"python"},
		MissingKeywords: []string{"terraform"},
	}

	p.PrintAnalysisSummary(result)
	output := buf.String()

	assert.Contains(t, output, "MATCH SCORES")
	assert.Contains(t, output, "KEYWORDS")
	assert.Contains(t, output, "FORMAT CHECKS")
	// Box borders stay intact across sections
	assert.Equal(t, strings.Count(output, "┌"), strings.Count(output, "└"))
}

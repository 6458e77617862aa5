// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScores outputs the composite and category scores for an analysis.
func (p *Printer) PrintScores(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:      %3d%%\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Hard skills:  %3d%%\n", result.HardScore))
	sb.WriteString(fmt.Sprintf("Soft skills:  %3d%%\n", result.SoftScore))
	sb.WriteString(fmt.Sprintf("General:      %3d%%\n", result.GeneralScore))
	sb.WriteString(fmt.Sprintf("ATS:          %3d%%", result.ATSScore))

	p.printBox("MATCH SCORES", sb.String())
}

// PrintKeywords outputs the matched and missing keyword lists, truncated to a
// readable size.
func (p *Printer) PrintKeywords(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if len(result.MatchedKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Matched (%d):\n", len(result.MatchedKeywords)))
		count := min(len(result.MatchedKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MatchedKeywords[i]))
		}
		if len(result.MatchedKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MatchedKeywords)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Missing (%d):\n", len(result.MissingKeywords)))
		count := min(len(result.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MissingKeywords[i]))
		}
		if len(result.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingKeywords)-maxItemsToShow))
		}
	}

	if sb.Len() == 0 {
		sb.WriteString("No keywords extracted")
	}

	p.printBox("KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFormatChecks outputs the structural resume checks with pass/fail
// indicators.
func (p *Printer) PrintFormatChecks(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	checks := []struct {
		label  string
		passed bool
	}{
		{"Email address", result.FormatChecks.HasEmail},
		{"Phone number", result.FormatChecks.HasPhone},
		{"LinkedIn profile", result.FormatChecks.HasLinkedIn},
		{"Quantified results", result.FormatChecks.HasNumbers},
		{"Action verbs", result.FormatChecks.HasActionVerbs},
		{"Standard sections", result.FormatChecks.HasSections},
	}

	var sb strings.Builder
	for _, check := range checks {
		mark := "✗"
		if check.passed {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, check.label))
	}
	sb.WriteString(fmt.Sprintf("Word count: %d", result.FormatChecks.WordCount))

	p.printBox("FORMAT CHECKS", sb.String())
}

// PrintModifications outputs the AI-suggested resume edits.
func (p *Printer) PrintModifications(result *types.AnalysisResult) {
	if result == nil || len(result.Modifications) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Suggested %d modifications:\n\n", len(result.Modifications)))

	count := min(len(result.Modifications), maxItemsToShow)
	for i := 0; i < count; i++ {
		mod := result.Modifications[i]
		suggestion := mod.Suggestion
		if len(suggestion) > 50 {
			suggestion = suggestion[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• [%s] %s\n", mod.Section, suggestion))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Modifications) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more modifications", len(result.Modifications)-maxItemsToShow))
	}

	p.printBox("SUGGESTED MODIFICATIONS", sb.String())
}

// PrintAnalysisSummary outputs the full verbose summary for a result.
func (p *Printer) PrintAnalysisSummary(result *types.AnalysisResult) {
	p.PrintScores(result)
	p.PrintKeywords(result)
	p.PrintFormatChecks(result)
	p.PrintModifications(result)
}

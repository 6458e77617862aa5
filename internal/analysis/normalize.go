// Package analysis implements the local keyword-matching and scoring engine:
// text normalization, keyword extraction, tiered matching, skill
// classification, composite scoring, and result assembly. Every stage is a
// pure function of its inputs and the static vocabulary tables, so the
// pipeline is deterministic and safe for concurrent use.
package analysis

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Analyzer runs the analysis pipeline against one set of vocabulary tables.
type Analyzer struct {
	tables *vocab.Tables
}

// New creates an Analyzer using the given vocabulary tables.
func New(tables *vocab.Tables) *Analyzer {
	return &Analyzer{tables: tables}
}

// NewDefault creates an Analyzer using the process-wide default tables.
func NewDefault() *Analyzer {
	return New(vocab.Default())
}

// noisePatterns match job-board chrome that would otherwise pollute
// frequency-based matching: timestamps, applicant counters, UI labels,
// promotional boilerplate, and bare URLs. Removal is lossy by design.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)reposted\s*\d*\s*(hours?|days?|weeks?|months?)?\s*ago`),
	regexp.MustCompile(`(?i)posted\s*\d*\s*(hours?|days?|weeks?|months?)?\s*ago`),
	regexp.MustCompile(`(?i)\d+\s*(hours?|days?|weeks?|months?)\s*ago`),
	regexp.MustCompile(`(?i)\d+\s*people\s*clicked\s*apply`),
	regexp.MustCompile(`(?i)\d+\s*applicants?`),
	regexp.MustCompile(`(?i)show\s*more`),
	regexp.MustCompile(`(?i)show\s*less`),
	regexp.MustCompile(`(?i)see\s*more`),
	regexp.MustCompile(`(?i)see\s*less`),
	regexp.MustCompile(`(?i)easy\s*apply`),
	regexp.MustCompile(`(?i)apply\s*now`),
	regexp.MustCompile(`(?i)save\s*job`),
	regexp.MustCompile(`(?i)share\s*this\s*job`),
	regexp.MustCompile(`(?i)report\s*this\s*job`),
	regexp.MustCompile(`(?i)promoted`),
	regexp.MustCompile(`(?i)sponsored`),
	regexp.MustCompile(`(?im)logo$`),
	regexp.MustCompile(`·`),
	regexp.MustCompile(`\|\|`),
	regexp.MustCompile(`(?i)www\.\S+`),
	regexp.MustCompile(`(?i)https?://\S+`),
	regexp.MustCompile(`(?i)back\s*to\s*edit`),
	regexp.MustCompile(`(?i)parsed\s*resume`),
	regexp.MustCompile(`(?i)regenerate`),
	regexp.MustCompile(`(?i)accept\s*at\s*least`),
}

// fusedCaseRe finds a lowercase letter immediately followed by an uppercase
// letter, the signature of concatenated scraped text like
// "logoshareOptionsBengaluru".
var fusedCaseRe = regexp.MustCompile(`([a-z])([A-Z])`)

// nonTokenRe strips every character except letters, digits, '+', '#', '.',
// and whitespace, preserving tokens like "c++", "c#", and "node.js".
var nonTokenRe = regexp.MustCompile(`[^a-zA-Z0-9\s+#.]`)

// minTokenLen is the shortest token (exclusive) kept by the tokenizer.
const minTokenLen = 2

// CleanText removes structural job-board noise from raw text and splits
// fused-case artifacts into separate words. Empty input yields empty output.
func CleanText(raw string) string {
	cleaned := raw
	for _, pattern := range noisePatterns {
		cleaned = pattern.ReplaceAllString(cleaned, " ")
	}
	return fusedCaseRe.ReplaceAllString(cleaned, "$1 $2")
}

// Normalize turns raw text into an ordered sequence of canonical tokens:
// noise removal, lowercasing, character stripping, whitespace split,
// short-token and stop-word filtering, then synonym canonicalization with a
// second stop-word check on the canonical form. Order is first occurrence;
// duplicates are kept (the extractor deduplicates downstream). Degenerate
// input yields an empty sequence, never an error.
func (a *Analyzer) Normalize(raw string) []string {
	return a.tokenize(CleanText(raw))
}

// tokenize runs the post-cleaning normalization steps on already-cleaned text.
func (a *Analyzer) tokenize(cleaned string) []string {
	stripped := nonTokenRe.ReplaceAllString(strings.ToLower(cleaned), " ")

	var tokens []string
	for _, word := range strings.Fields(stripped) {
		if len(word) <= minTokenLen || a.tables.IsStopWord(word) {
			continue
		}
		canonical := a.tables.Canonical(word)
		// Canonicalization can turn a non-stopword into a stop word
		// equivalent (filler verb variants), so filter again.
		if len(canonical) <= minTokenLen || a.tables.IsStopWord(canonical) {
			continue
		}
		tokens = append(tokens, canonical)
	}
	return tokens
}

// Package augment enriches a locally computed analysis with AI-generated
// narrative feedback: an executive summary, per-section commentary, and
// concrete modification suggestions.
//
// Augmentation is strictly best-effort. The enhancer makes a single bounded
// attempt against the configured LLM; callers absorb failures by falling back
// to the local result, so an outage or quota error never blocks an analysis.
package augment

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultTimeout bounds a single augmentation attempt.
const DefaultTimeout = 60 * time.Second

// Keyword list caps keep the prompt focused on the highest-signal terms.
const (
	maxMatchedInPrompt = 20
	maxMissingInPrompt = 15
)

// Enhancer produces AI augmentations for local analysis results.
type Enhancer struct {
	client  llm.Client
	timeout time.Duration
}

// New creates an Enhancer backed by the given LLM client.
func New(client llm.Client) *Enhancer {
	return &Enhancer{
		client:  client,
		timeout: DefaultTimeout,
	}
}

// NewWithTimeout creates an Enhancer with a custom per-attempt timeout.
func NewWithTimeout(client llm.Client, timeout time.Duration) *Enhancer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Enhancer{
		client:  client,
		timeout: timeout,
	}
}

// Enhance requests an augmentation for the given documents and local result.
// It makes exactly one attempt, bounded by the enhancer's timeout. The local
// result is only read, never modified; merging happens at assembly.
func (e *Enhancer) Enhance(ctx context.Context, resumeText, jdText string, local *types.AnalysisResult) (*types.Augmentation, error) {
	template, err := prompts.Get("analysis.json", "augment-analysis")
	if err != nil {
		return nil, fmt.Errorf("failed to load augmentation prompt: %w", err)
	}

	prompt := prompts.Format(template, map[string]string{
		"ResumeText":      resumeText,
		"JobDescription":  jdText,
		"OverallScore":    strconv.Itoa(local.OverallScore),
		"MatchedKeywords": joinCapped(local.MatchedKeywords, maxMatchedInPrompt),
		"MissingKeywords": joinCapped(local.MissingKeywords, maxMissingInPrompt),
	})

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("augmentation request failed: %w", err)
	}

	cleaned := llm.CleanJSONBlock(raw)
	if err := schemas.ValidateAugmentation(cleaned); err != nil {
		return nil, fmt.Errorf("augmentation payload rejected: %w", err)
	}

	var aug types.Augmentation
	if err := json.Unmarshal([]byte(cleaned), &aug); err != nil {
		return nil, fmt.Errorf("failed to parse augmentation payload: %w", err)
	}

	return &aug, nil
}

// joinCapped joins at most limit keywords as a comma-separated list, or "N/A"
// when the list is empty.
func joinCapped(keywords []string, limit int) string {
	if len(keywords) == 0 {
		return "N/A"
	}
	if len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return strings.Join(keywords, ", ")
}

// Package vocab provides the static vocabulary tables used by the analysis
// pipeline: synonym groups, stop words, multi-word phrases, and skill-category
// patterns. Tables are built once at startup and are immutable afterwards, so
// they are safe for unlimited concurrent reads.
package vocab

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// SkillPattern pairs a category with a compiled matcher. Patterns are evaluated
// in slice order with first-match-wins semantics.
type SkillPattern struct {
	Category SkillCategory
	Pattern  *regexp.Regexp
}

// Tables holds the immutable vocabulary used by every pipeline stage.
type Tables struct {
	canonical     map[string]string
	stopWords     map[string]struct{}
	phrases       []string
	skillPatterns []SkillPattern
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the process-wide vocabulary tables, building them on first
// use. Malformed static data is a programming error, so Default panics rather
// than letting the pipeline run with a partial vocabulary.
func Default() *Tables {
	defaultOnce.Do(func() {
		tables, err := Load()
		if err != nil {
			panic(fmt.Sprintf("vocab: invalid static tables: %v", err))
		}
		defaultTables = tables
	})
	return defaultTables
}

// Load builds vocabulary tables from the static definitions, validating them
// as it goes. It returns an error on the first malformed entry: an empty
// canonical term, a variant claimed by two synonym groups, an empty phrase,
// or a skill pattern that fails to compile.
func Load() (*Tables, error) {
	canonical := make(map[string]string, len(synonymGroups)*4)
	for term, variants := range synonymGroups {
		if strings.TrimSpace(term) == "" {
			return nil, fmt.Errorf("synonym group with empty canonical term")
		}
		lowerTerm := strings.ToLower(term)
		if prior, exists := canonical[lowerTerm]; exists && prior != lowerTerm {
			return nil, fmt.Errorf("canonical term %q already mapped to %q", term, prior)
		}
		// Canonical terms are valid lookup keys themselves, which makes
		// normalization idempotent.
		canonical[lowerTerm] = lowerTerm
		for _, variant := range variants {
			lowerVariant := strings.ToLower(strings.TrimSpace(variant))
			if lowerVariant == "" {
				return nil, fmt.Errorf("synonym group %q contains an empty variant", term)
			}
			if prior, exists := canonical[lowerVariant]; exists && prior != lowerTerm {
				return nil, fmt.Errorf("variant %q maps to both %q and %q", variant, prior, lowerTerm)
			}
			canonical[lowerVariant] = lowerTerm
		}
	}

	stopWords := make(map[string]struct{}, len(stopWordList))
	for _, word := range stopWordList {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			return nil, fmt.Errorf("stop word list contains an empty entry")
		}
		stopWords[word] = struct{}{}
	}

	phrases := make([]string, 0, len(phraseList))
	for _, phrase := range phraseList {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			return nil, fmt.Errorf("phrase list contains an empty entry")
		}
		phrases = append(phrases, phrase)
	}

	patterns := make([]SkillPattern, 0, len(skillPatternSpecs))
	for _, spec := range skillPatternSpecs {
		if spec.pattern == "" {
			return nil, fmt.Errorf("empty %s skill pattern", spec.category)
		}
		re, err := regexp.Compile(spec.pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid %s skill pattern %q: %w", spec.category, spec.pattern, err)
		}
		patterns = append(patterns, SkillPattern{Category: spec.category, Pattern: re})
	}

	return &Tables{
		canonical:     canonical,
		stopWords:     stopWords,
		phrases:       phrases,
		skillPatterns: patterns,
	}, nil
}

// Canonical returns the canonical form of a keyword: the synonym group head if
// the lowercased keyword is a known variant, otherwise the lowercased keyword
// itself. Canonical is idempotent.
func (t *Tables) Canonical(keyword string) string {
	lower := strings.ToLower(strings.TrimSpace(keyword))
	if head, ok := t.canonical[lower]; ok {
		return head
	}
	return lower
}

// IsStopWord reports whether the lowercased token is excluded from keyword
// consideration.
func (t *Tables) IsStopWord(token string) bool {
	_, ok := t.stopWords[strings.ToLower(token)]
	return ok
}

// Phrases returns the ordered multi-word phrase table. Callers must not
// modify the returned slice.
func (t *Tables) Phrases() []string {
	return t.phrases
}

// SkillPatterns returns the ordered (category, matcher) pairs for skill
// classification. Callers must not modify the returned slice.
func (t *Tables) SkillPatterns() []SkillPattern {
	return t.skillPatterns
}

package analysis

import "strings"

// ExtractKeywords produces the deduplicated canonical keyword set for a
// document in first-seen order: normalized single words first, then
// recognized multi-word phrases. Phrase detection runs against the
// noise-cleaned (but not stop-word-filtered) text so technical terms whose
// component words are short or common are still captured. Always returns a
// slice, possibly empty.
func (a *Analyzer) ExtractKeywords(rawText string) []string {
	cleaned := CleanText(rawText)
	lowerCleaned := strings.ToLower(cleaned)

	seen := make(map[string]struct{})
	var keywords []string
	add := func(keyword string) {
		if _, dup := seen[keyword]; dup {
			return
		}
		seen[keyword] = struct{}{}
		keywords = append(keywords, keyword)
	}

	for _, token := range a.tokenize(cleaned) {
		add(token)
	}

	for _, phrase := range a.tables.Phrases() {
		if strings.Contains(lowerCleaned, phrase) {
			add(a.tables.Canonical(phrase))
		}
	}

	return keywords
}

package analysis

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Classify tags a keyword as a hard skill, soft skill, or general term by
// evaluating the pattern table in order; the first matching pattern wins and
// unknown keywords default to general. Pure and total: there is no error path.
func (a *Analyzer) Classify(keyword string) vocab.SkillCategory {
	lower := strings.ToLower(keyword)
	for _, sp := range a.tables.SkillPatterns() {
		if sp.Pattern.MatchString(lower) {
			return sp.Category
		}
	}
	return vocab.SkillGeneral
}

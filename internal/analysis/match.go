package analysis

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// minPartialLen is the shortest keyword length (exclusive) eligible for the
// partial-containment tier. Shorter keywords produce too many false
// containment hits.
const minPartialLen = 3

// MatchResult partitions the job-description keywords into matched and
// missing. Every non-stopword JD keyword appears in exactly one of the two.
type MatchResult struct {
	Matched []types.MatchRecord
	Missing []string
}

// Match classifies each job-description keyword against the resume keyword
// set using three tiers in decreasing confidence: exact canonical membership,
// equal stems, then substring containment. The first satisfied tier wins and
// later tiers are not consulted. Arguments are not interchangeable: only
// job-description keywords are iterated and classified.
func (a *Analyzer) Match(resumeKeywords, jdKeywords []string) MatchResult {
	resumeSet := make(map[string]struct{}, len(resumeKeywords))
	stemSet := make(map[string]struct{}, len(resumeKeywords))
	var resumeCanonical []string
	for _, keyword := range resumeKeywords {
		canonical := a.tables.Canonical(keyword)
		if _, dup := resumeSet[canonical]; !dup {
			resumeCanonical = append(resumeCanonical, canonical)
		}
		resumeSet[canonical] = struct{}{}
		stemSet[Stem(canonical)] = struct{}{}
	}

	result := MatchResult{}
	for _, jdKeyword := range jdKeywords {
		canonical := a.tables.Canonical(jdKeyword)

		// Defensive re-filtering: skip stop words entirely so they land
		// in neither partition.
		if a.tables.IsStopWord(canonical) || a.tables.IsStopWord(strings.ToLower(jdKeyword)) {
			continue
		}

		if _, ok := resumeSet[canonical]; ok {
			result.Matched = append(result.Matched, types.MatchRecord{Keyword: jdKeyword, Type: types.MatchExact})
			continue
		}

		if _, ok := stemSet[Stem(canonical)]; ok {
			result.Matched = append(result.Matched, types.MatchRecord{Keyword: jdKeyword, Type: types.MatchStemmed})
			continue
		}

		if partial := a.matchPartial(canonical, resumeCanonical); partial {
			result.Matched = append(result.Matched, types.MatchRecord{Keyword: jdKeyword, Type: types.MatchPartial})
			continue
		}

		result.Missing = append(result.Missing, jdKeyword)
	}

	return result
}

// matchPartial reports whether any resume keyword contains or is contained by
// the job-description keyword. Both sides must be longer than minPartialLen.
func (a *Analyzer) matchPartial(jdCanonical string, resumeCanonical []string) bool {
	if len(jdCanonical) <= minPartialLen {
		return false
	}
	for _, resumeKeyword := range resumeCanonical {
		if len(resumeKeyword) <= minPartialLen {
			continue
		}
		if strings.Contains(resumeKeyword, jdCanonical) || strings.Contains(jdCanonical, resumeKeyword) {
			return true
		}
	}
	return false
}

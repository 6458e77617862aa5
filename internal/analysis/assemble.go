package analysis

import "github.com/jonathan/resume-matcher/internal/types"

// Assemble merges an optional external augmentation into a local result,
// returning a new result value; the local result is never mutated, so a late
// augmentation outcome can always be discarded without side effects.
//
// Precedence: locally computed numeric scores stand unless the augmentation
// explicitly overrides the overall score; narrative fields (summary, section
// commentary, modifications, warnings, prep topics) are authoritative from
// the augmentation; keyword lists are unioned with deduplication, since
// external additions improve recall but must not drop local findings. An
// augmentation carrying an error indicator is discarded entirely — external
// failure never blocks producing a result.
func Assemble(local *types.AnalysisResult, aug *types.Augmentation) *types.AnalysisResult {
	result := *local

	if aug == nil {
		return &result
	}
	if aug.Failed() {
		result.Meta.AugmentationFailed = true
		return &result
	}

	result.Meta.AIEnhanced = true

	if aug.ExecutiveSummary != "" {
		result.ExecutiveSummary = aug.ExecutiveSummary
	}
	if len(aug.SectionScores) > 0 {
		result.SectionScores = aug.SectionScores
	}
	if len(aug.ATSWarnings) > 0 {
		result.ATSWarnings = aug.ATSWarnings
	}
	if len(aug.InterviewPrep) > 0 {
		result.InterviewPrep = aug.InterviewPrep
	}
	if len(aug.Modifications) > 0 {
		result.Modifications = numberModifications(aug.Modifications)
	}
	if aug.OverallScore != nil {
		result.OverallScore = clampScore(*aug.OverallScore)
	}

	result.MatchedKeywords = unionKeywords(local.MatchedKeywords, aug.MatchedKeywords)
	result.MissingKeywords = unionKeywords(local.MissingKeywords, aug.MissingKeywords)

	return &result
}

// numberModifications assigns stable zero-based IDs and the initial pending
// status so consumers can track accept/reject state per item.
func numberModifications(mods []types.Modification) []types.Modification {
	numbered := make([]types.Modification, len(mods))
	for i, mod := range mods {
		mod.ID = i
		if mod.Status == "" {
			mod.Status = types.ModificationPending
		}
		numbered[i] = mod
	}
	return numbered
}

// unionKeywords appends external keywords to the local list, deduplicating
// while preserving local order first.
func unionKeywords(local, external []string) []string {
	seen := make(map[string]struct{}, len(local)+len(external))
	union := make([]string, 0, len(local)+len(external))
	for _, lists := range [][]string{local, external} {
		for _, keyword := range lists {
			if _, dup := seen[keyword]; dup {
				continue
			}
			seen[keyword] = struct{}{}
			union = append(union, keyword)
		}
	}
	return union
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

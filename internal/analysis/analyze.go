package analysis

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/types"
)

// AnalysisTypeLocal marks results produced without external augmentation.
const AnalysisTypeLocal = "local"

// residualNoiseRe catches UI junk tokens that occasionally survive
// normalization, so they never reach the final keyword lists.
var residualNoiseRe = regexp.MustCompile(`(?i)^(logo|share|options|bengaluru|karnataka|east|west|hours|ago|people|clicked|apply|promoted|hirer)$`)

// AnalyzeLocally scores a resume against a job description using only the
// local pipeline: extract keywords from both documents, match the
// job-description set against the resume set, classify and score. The result
// is a pure function of the two inputs plus the static vocabulary tables;
// empty input degrades to empty keyword sets and a zero match score.
func (a *Analyzer) AnalyzeLocally(resumeText, jdText string) *types.AnalysisResult {
	resumeKeywords := a.ExtractKeywords(resumeText)
	jdKeywords := a.ExtractKeywords(jdText)

	match := a.Match(resumeKeywords, jdKeywords)
	scores := a.Score(match, jdKeywords, resumeText)

	matched := make([]string, 0, len(match.Matched))
	for _, record := range match.Matched {
		matched = append(matched, record.Keyword)
	}

	return &types.AnalysisResult{
		OverallScore:    scores.Overall,
		ATSScore:        scores.ATS,
		HardScore:       scores.Hard,
		SoftScore:       scores.Soft,
		GeneralScore:    scores.General,
		Matches:         match.Matched,
		MatchedKeywords: a.cleanKeywordList(matched),
		MissingKeywords: a.cleanKeywordList(match.Missing),
		FormatChecks:    scores.Format,
		Meta: types.Meta{
			AnalysisID:         uuid.New().String(),
			ResumeKeywordCount: len(resumeKeywords),
			JDKeywordCount:     len(jdKeywords),
			AnalysisType:       AnalysisTypeLocal,
		},
	}
}

// cleanKeywordList deduplicates a keyword list and drops residual stop words
// and UI noise tokens, preserving first-seen order.
func (a *Analyzer) cleanKeywordList(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	cleaned := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if _, dup := seen[keyword]; dup {
			continue
		}
		seen[keyword] = struct{}{}
		if len(keyword) <= minTokenLen || a.tables.IsStopWord(keyword) || residualNoiseRe.MatchString(keyword) {
			continue
		}
		cleaned = append(cleaned, keyword)
	}
	return cleaned
}

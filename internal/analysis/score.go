package analysis

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Composite score weights. Technical-skill alignment dominates the
// hiring-relevance signal, so hard skills carry most of the weight. These are
// tunable policy, not derived values.
const (
	hardSkillWeight = 0.60
	softSkillWeight = 0.25
	generalWeight   = 0.15
)

// Format/ATS score contributions. The four signals sum to 100 when all are
// present; a resume below the word-count threshold still earns the floor.
const (
	emailPoints       = 20
	phonePoints       = 20
	sectionPoints     = 30
	wordCountPoints   = 30
	wordCountFloor    = 15
	minResumeWordCount = 300
)

var (
	emailRe   = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)
	phoneRe   = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedRe  = regexp.MustCompile(`(?i)linkedin`)
	numbersRe = regexp.MustCompile(`(?i)\d+%|\$[\d,]+|\d+\+|\d+ (years?|months?|projects?|teams?|clients?|customers?|members?)`)
	sectionRe = regexp.MustCompile(`(?i)experience|education|skills|summary|objective|projects?|certifications?`)
)

// actionVerbs are the strong leading verbs the format check looks for.
var actionVerbs = []string{
	"led", "managed", "developed", "created", "implemented", "increased",
	"reduced", "improved", "designed", "launched", "built", "achieved",
	"delivered", "drove", "executed", "established", "generated", "grew",
	"initiated", "optimized", "spearheaded", "streamlined", "transformed",
	"orchestrated", "pioneered",
}

// Scores is the complete score record for one analysis.
type Scores struct {
	Overall int
	Hard    int
	Soft    int
	General int
	ATS     int
	Format  types.FormatChecks
}

// Score combines match results and skill classification into the weighted
// composite score plus category sub-scores, and computes the independent
// format/ATS score from structural heuristics on the resume text.
//
// Zero-denominator fallbacks are deliberate policy: a job description with no
// hard (or soft) requirements yields full credit for that category, while an
// empty job-description keyword set yields a zero general score so degenerate
// input cannot look like a perfect match.
func (a *Analyzer) Score(match MatchResult, jdKeywords []string, resumeText string) Scores {
	var matchedHard, matchedSoft int
	for _, record := range match.Matched {
		switch a.Classify(record.Keyword) {
		case vocab.SkillHard:
			matchedHard++
		case vocab.SkillSoft:
			matchedSoft++
		}
	}

	var jdHard, jdSoft int
	for _, keyword := range jdKeywords {
		switch a.Classify(keyword) {
		case vocab.SkillHard:
			jdHard++
		case vocab.SkillSoft:
			jdSoft++
		}
	}

	hardScore := ratioScore(matchedHard, jdHard, 100)
	softScore := ratioScore(matchedSoft, jdSoft, 100)
	generalScore := ratioScore(len(match.Matched), len(jdKeywords), 0)

	overall := int(math.Round(hardScore*hardSkillWeight + softScore*softSkillWeight + generalScore*generalWeight))
	if overall > 100 {
		overall = 100
	}

	format := checkFormat(resumeText)

	return Scores{
		Overall: overall,
		Hard:    int(math.Round(hardScore)),
		Soft:    int(math.Round(softScore)),
		General: int(math.Round(generalScore)),
		ATS:     atsScore(format),
		Format:  format,
	}
}

// ratioScore returns matched/total as a percentage, or fallback when total
// is zero.
func ratioScore(matched, total int, fallback float64) float64 {
	if total == 0 {
		return fallback
	}
	return float64(matched) / float64(total) * 100
}

// checkFormat runs the structural heuristics over the raw resume text.
func checkFormat(resumeText string) types.FormatChecks {
	lower := strings.ToLower(resumeText)
	hasActionVerbs := false
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			hasActionVerbs = true
			break
		}
	}

	return types.FormatChecks{
		HasEmail:       emailRe.MatchString(resumeText),
		HasPhone:       phoneRe.MatchString(resumeText),
		HasLinkedIn:    linkedRe.MatchString(resumeText),
		HasNumbers:     numbersRe.MatchString(resumeText),
		HasActionVerbs: hasActionVerbs,
		HasSections:    sectionRe.MatchString(resumeText),
		WordCount:      len(strings.Fields(resumeText)),
	}
}

// atsScore converts the scored format signals into the 0-100 ATS readability
// score.
func atsScore(format types.FormatChecks) int {
	score := 0
	if format.HasEmail {
		score += emailPoints
	}
	if format.HasPhone {
		score += phonePoints
	}
	if format.HasSections {
		score += sectionPoints
	}
	if format.WordCount > minResumeWordCount {
		score += wordCountPoints
	} else {
		score += wordCountFloor
	}
	return score
}

// Package types provides type definitions for structured data used throughout
// the resume-matcher system.
package types

// MatchType is the confidence tier by which a job-description keyword was
// found in the resume.
type MatchType string

const (
	// MatchExact means the canonical forms are identical.
	MatchExact MatchType = "exact"
	// MatchStemmed means the suffix-stripped stems are identical.
	MatchStemmed MatchType = "stemmed"
	// MatchPartial means one canonical form contains the other.
	MatchPartial MatchType = "partial"
)

// MatchRecord pairs a job-description keyword with the tier it matched at.
type MatchRecord struct {
	Keyword string    `json:"keyword"`
	Type    MatchType `json:"match_type"`
}

// FormatChecks holds structural signals detected in the resume text. Only
// email, phone, sections, and word count feed the ATS score; the rest are
// reported for the presentation layer.
type FormatChecks struct {
	HasEmail       bool `json:"has_email"`
	HasPhone       bool `json:"has_phone"`
	HasLinkedIn    bool `json:"has_linkedin"`
	HasNumbers     bool `json:"has_numbers"`
	HasActionVerbs bool `json:"has_action_verbs"`
	HasSections    bool `json:"has_sections"`
	WordCount      int  `json:"word_count"`
}

// Meta records analysis provenance and counts.
type Meta struct {
	AnalysisID         string `json:"analysis_id"`
	ResumeKeywordCount int    `json:"resume_keyword_count"`
	JDKeywordCount     int    `json:"jd_keyword_count"`
	AnalysisType       string `json:"analysis_type"`
	AIEnhanced         bool   `json:"ai_enhanced"`
	AugmentationFailed bool   `json:"augmentation_failed,omitempty"`
}

// AnalysisResult is the complete output of one analysis request. It is
// constructed once and treated as immutable; when external augmentation
// arrives, the assembler produces a new result value instead of mutating
// the local one.
type AnalysisResult struct {
	OverallScore int `json:"overall_score"`
	ATSScore     int `json:"ats_score"`
	HardScore    int `json:"hard_score"`
	SoftScore    int `json:"soft_score"`
	GeneralScore int `json:"general_score"`

	Matches         []MatchRecord `json:"matches"`
	MatchedKeywords []string      `json:"matched_keywords"`
	MissingKeywords []string      `json:"missing_keywords"`

	FormatChecks FormatChecks `json:"format_checks"`
	Meta         Meta         `json:"meta"`

	// Fields below are populated only when external augmentation succeeds.
	ExecutiveSummary string                  `json:"executive_summary,omitempty"`
	SectionScores    map[string]SectionScore `json:"section_scores,omitempty"`
	Modifications    []Modification          `json:"modifications,omitempty"`
	ATSWarnings      []string                `json:"ats_warnings,omitempty"`
	InterviewPrep    []string                `json:"interview_prep,omitempty"`
}

package types

// SectionScore is external per-section commentary with a 0-100 score.
type SectionScore struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Modification statuses tracked by the presentation layer.
const (
	ModificationPending  = "pending"
	ModificationAccepted = "accepted"
	ModificationRejected = "rejected"
)

// Modification is a proposed resume edit produced by external augmentation.
// ID is a stable zero-based index assigned at assembly so consumers can track
// accept/reject state per item.
type Modification struct {
	ID         int    `json:"id"`
	Section    string `json:"section"`
	Issue      string `json:"issue"`
	Original   string `json:"original,omitempty"`
	Suggestion string `json:"suggestion"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
}

// Augmentation is the partial result returned by the external language-model
// collaborator. Every field is optional; the assembler tolerates any subset
// being absent. A non-empty Error marks the payload as failed, in which case
// all other fields are ignored.
type Augmentation struct {
	Error string `json:"error,omitempty"`

	ExecutiveSummary string                  `json:"executiveSummary,omitempty"`
	SectionScores    map[string]SectionScore `json:"sectionScores,omitempty"`
	Modifications    []Modification          `json:"modifications,omitempty"`
	MatchedKeywords  []string                `json:"matchedKeywords,omitempty"`
	MissingKeywords  []string                `json:"missingKeywords,omitempty"`
	ATSWarnings      []string                `json:"atsWarnings,omitempty"`
	InterviewPrep    []string                `json:"interviewPrep,omitempty"`

	// OverallScore overrides the locally computed score only when present.
	OverallScore *int `json:"overallScore,omitempty"`
}

// Failed reports whether the augmentation carries an error indicator.
func (a *Augmentation) Failed() bool {
	return a != nil && a.Error != ""
}

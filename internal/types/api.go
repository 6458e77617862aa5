package types

import "github.com/go-playground/validator/v10"

// AnalyzeRequest represents a request to score a resume against a job
// description. Each document may be supplied inline or as a URL to fetch;
// inline text wins when both are present.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text,omitempty" validate:"required_without=ResumeURL"`
	ResumeURL  string `json:"resume_url,omitempty" validate:"omitempty,url"`
	JobText    string `json:"job_text,omitempty" validate:"required_without=JobURL"`
	JobURL     string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

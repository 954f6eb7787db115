// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// ExperienceEntry is a single position from a resume.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"` // "YYYY-MM"
	EndDate     string `json:"end_date,omitempty"`
}

// EducationEntry is a single education record from a resume.
type EducationEntry struct {
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	Institution  string `json:"institution,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
}

// ResumeProfile is the structured resume input consumed by the recommender.
type ResumeProfile struct {
	Name       string            `json:"name,omitempty"`
	Summary    string            `json:"summary,omitempty"`
	Skills     []string          `json:"skills,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
}

// ScoreRequest is the input to an ATS scoring run.
type ScoreRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=1"`
	JobDescription string `json:"job_description" validate:"required,min=1"`
	JobTitle       string `json:"job_title,omitempty"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

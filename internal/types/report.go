package types

import (
	"time"

	"github.com/google/uuid"
)

// KeywordMatch records one candidate keyword found in the resume text.
type KeywordMatch struct {
	Keyword   string  `json:"keyword"`
	Frequency int     `json:"frequency"` // case-insensitive literal occurrences
	Relevance float64 `json:"relevance"` // TF-IDF weight of the keyword in the resume, 0 if absent
}

// ATSAnalysis breaks down how the score was produced.
type ATSAnalysis struct {
	TotalKeywords   int            `json:"total_keywords"`
	MatchedKeywords []KeywordMatch `json:"matched_keywords"`
	MissingKeywords []string       `json:"missing_keywords"`
}

// ATSReport is the full result of scoring a resume against a job description.
type ATSReport struct {
	ID                 uuid.UUID   `json:"id"`
	Score              int         `json:"score"` // 0-100
	RoleCategory       string      `json:"role_category"`
	Analysis           ATSAnalysis `json:"analysis"`
	RecommendedSkills  []string    `json:"recommended_skills"`
	KeywordSuggestions []string    `json:"keyword_suggestions"`
	GeneratedAt        time.Time   `json:"generated_at"`
}

// RoleMatch is the result of classifying a free-text job title.
type RoleMatch struct {
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	SimilarTitles []string `json:"similar_titles,omitempty"`
}

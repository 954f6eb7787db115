package types

// Suggestion sources, strongest evidence first. Confidence values assigned
// per source are heuristic priorities, not calibrated probabilities:
// experience outranks education, education outranks summary, summary outranks
// graph similarity.
const (
	SourceExperience = "experience"
	SourceEducation  = "education"
	SourceSummary    = "summary"
	SourceSimilar    = "similar"
)

// SkillSuggestion is a single ranked skill recommendation.
type SkillSuggestion struct {
	Name       string `json:"name"`
	Confidence int    `json:"confidence"` // 0-100
	Source     string `json:"source"`
	BasedOn    string `json:"based_on,omitempty"` // the current skill that surfaced a "similar" suggestion
}

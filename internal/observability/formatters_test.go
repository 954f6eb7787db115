package observability

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintATSReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSReport(&types.ATSReport{
		ID:           uuid.New(),
		Score:        72,
		RoleCategory: "software_engineering",
		Analysis: types.ATSAnalysis{
			TotalKeywords: 10,
			MatchedKeywords: []types.KeywordMatch{
				{Keyword: "git", Frequency: 3, Relevance: 0.4},
			},
			MissingKeywords: []string{"agile"},
		},
		KeywordSuggestions: []string{"agile"},
	})

	out := buf.String()
	assert.Contains(t, out, "ATS REPORT")
	assert.Contains(t, out, "72 / 100")
	assert.Contains(t, out, "software_engineering")
	assert.Contains(t, out, "git (x3)")
	assert.Contains(t, out, "agile")
}

func TestPrintATSReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintATSReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions([]types.SkillSuggestion{
		{Name: "TypeScript", Confidence: 80, Source: types.SourceSimilar, BasedOn: "JavaScript"},
		{Name: "Docker", Confidence: 90, Source: types.SourceExperience},
	})

	out := buf.String()
	assert.Contains(t, out, "TypeScript")
	assert.Contains(t, out, "via JavaScript")
	assert.Contains(t, out, "Confidence: 90 (experience)")
}

func TestPrintSuggestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSuggestions(nil)
	assert.Contains(t, buf.String(), "No suggestions")
}

func TestPrintRoleMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoleMatch(&types.RoleMatch{
		Title:         "Software Engineer",
		Category:      "software_engineering",
		SimilarTitles: []string{"senior software engineer"},
	})

	out := buf.String()
	assert.Contains(t, out, "ROLE CLASSIFICATION")
	assert.Contains(t, out, "senior software engineer")
}

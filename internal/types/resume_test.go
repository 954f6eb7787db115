package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRequest_Validate(t *testing.T) {
	req := &ScoreRequest{
		ResumeText:     "Go developer with 5 years of experience",
		JobDescription: "We are hiring a Go developer",
		JobTitle:       "Software Engineer",
	}
	assert.NoError(t, req.Validate())
}

func TestScoreRequest_Validate_MissingResumeText(t *testing.T) {
	req := &ScoreRequest{JobDescription: "We are hiring"}
	assert.Error(t, req.Validate())
}

func TestScoreRequest_Validate_MissingJobDescription(t *testing.T) {
	req := &ScoreRequest{ResumeText: "Go developer"}
	assert.Error(t, req.Validate())
}

func TestScoreRequest_Validate_JobTitleOptional(t *testing.T) {
	req := &ScoreRequest{
		ResumeText:     "Go developer",
		JobDescription: "We are hiring",
	}
	assert.NoError(t, req.Validate())
}

func TestResumeProfile_JSONRoundTrip(t *testing.T) {
	input := `{
		"name": "Jane Doe",
		"summary": "Backend engineer focused on distributed systems",
		"skills": ["Go", "PostgreSQL"],
		"experience": [
			{"title": "Backend Engineer", "company": "Acme", "description": "Built APIs in Go"}
		],
		"education": [
			{"degree": "BSc", "field_of_study": "Computer Science"}
		]
	}`

	var profile ResumeProfile
	require.NoError(t, json.Unmarshal([]byte(input), &profile))

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, profile.Skills)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Backend Engineer", profile.Experience[0].Title)
	require.Len(t, profile.Education, 1)
	assert.Equal(t, "Computer Science", profile.Education[0].FieldOfStudy)
}

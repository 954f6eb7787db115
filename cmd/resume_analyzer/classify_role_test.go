package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/roles"
)

func TestClassifyTitle(t *testing.T) {
	match := classifyTitle("Senior Software Engineer", 3, 0)
	require.NotNil(t, match)

	assert.Equal(t, "Senior Software Engineer", match.Title)
	assert.Equal(t, "software_engineering", match.Category)
	assert.NotEmpty(t, match.SimilarTitles)
	assert.LessOrEqual(t, len(match.SimilarTitles), 3)
	assert.NotContains(t, match.SimilarTitles, "senior software engineer")
}

func TestClassifyTitle_UnrecognizedTitle(t *testing.T) {
	match := classifyTitle("chief vibes officer zzz", 3, 0)

	assert.Equal(t, roles.CategoryOther, match.Category)
	assert.Empty(t, match.SimilarTitles)
}

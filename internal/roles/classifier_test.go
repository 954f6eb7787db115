package roles

import (
	"testing"
	"time"

	"github.com/jonathan/resume-analyzer/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_KnownTitles(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		title    string
		category string
	}{
		{"Software Engineer", "software_engineering"},
		{"Senior Software Engineer", "software_engineering"},
		{"Data Scientist", "data_science"},
		{"Machine Learning Engineer", "data_science"},
		{"Product Owner", "product_management"},
		{"DevOps Engineer", "devops"},
		{"Site Reliability Engineer", "devops"},
		{"UX Designer", "design"},
		{"SEO Specialist", "marketing"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.category, c.Classify(tt.title))
		})
	}
}

func TestClassify_UnrecognizedTitleFallsBack(t *testing.T) {
	c := NewClassifier(nil)
	assert.Equal(t, CategoryOther, c.Classify("asdkjqwe"))
}

func TestClassify_EmptyTitle(t *testing.T) {
	c := NewClassifier(nil)
	assert.Equal(t, CategoryOther, c.Classify(""))
	assert.Equal(t, CategoryOther, c.Classify("   "))
}

func TestClassify_NormalizesInput(t *testing.T) {
	c := NewClassifier(nil)
	assert.Equal(t, c.Classify("software engineer"), c.Classify("  SOFTWARE ENGINEER  "))
}

func TestClassify_CachesResult(t *testing.T) {
	ttl := cache.NewTTL[string](16, time.Hour)
	c := NewClassifier(ttl)

	c.Classify("Data Scientist")
	cached, ok := ttl.Get("data scientist")
	require.True(t, ok)
	assert.Equal(t, "data_science", cached)
}

func TestSimilarTitles_ExcludesOriginal(t *testing.T) {
	c := NewClassifier(nil)

	similar := c.SimilarTitles("software_engineering", "Software Engineer", 5)
	require.NotEmpty(t, similar)
	assert.Len(t, similar, 5)
	for _, title := range similar {
		assert.NotEqual(t, "software engineer", title)
	}
}

func TestSimilarTitles_RanksOverlappingFirst(t *testing.T) {
	c := NewClassifier(nil)

	similar := c.SimilarTitles("software_engineering", "software engineer", 3)
	require.Len(t, similar, 3)
	// "senior software engineer" shares both words with the original and
	// must outrank titles sharing none.
	assert.Equal(t, "senior software engineer", similar[0])
}

func TestSimilarTitles_UnknownCategory(t *testing.T) {
	c := NewClassifier(nil)
	assert.Empty(t, c.SimilarTitles("no_such_category", "anything", 5))
	assert.Empty(t, c.SimilarTitles(CategoryOther, "anything", 5))
}

func TestSimilarTitles_DefaultLimit(t *testing.T) {
	c := NewClassifier(nil)
	similar := c.SimilarTitles("software_engineering", "software engineer", 0)
	assert.Len(t, similar, DefaultSimilarTitles)
}

func TestByCategory(t *testing.T) {
	role := ByCategory("devops")
	assert.Equal(t, "devops", role.Category)
	assert.Contains(t, role.Skills, "Kubernetes")

	fallback := ByCategory("nonexistent")
	assert.Equal(t, CategoryOther, fallback.Category)
	assert.NotEmpty(t, fallback.Keywords)
}

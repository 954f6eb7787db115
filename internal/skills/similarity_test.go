package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarity_Equal(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Go", "Go"))
	assert.Equal(t, 1.0, Similarity("javascript", "JavaScript"))
}

func TestSimilarity_DirectNeighborBothDirections(t *testing.T) {
	// The table is asymmetric: React lists Redux but Redux does not list
	// React. The neighbor rule checks both directions, so both calls must
	// return 0.8.
	assert.NotContains(t, skillGraph["Redux"], "React")
	require.Contains(t, skillGraph["React"], "Redux")

	assert.Equal(t, 0.8, Similarity("React", "Redux"))
	assert.Equal(t, 0.8, Similarity("Redux", "React"))
}

func TestSimilarity_SameCategory(t *testing.T) {
	// HTML and Redux are both frontend but not direct neighbors.
	assert.Equal(t, 0.6, Similarity("HTML", "Redux"))
	assert.Equal(t, 0.6, Similarity("Redux", "HTML"))
}

func TestSimilarity_SecondDegree(t *testing.T) {
	// Go (backend) and AWS (devops) share the neighbor Docker but nothing
	// stronger.
	assert.Equal(t, 0.4, Similarity("Go", "AWS"))
	assert.Equal(t, 0.4, Similarity("AWS", "Go"))
}

func TestSimilarity_Unrelated(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("Java", "Redis"))
	assert.Equal(t, 0.0, Similarity("Go", "asdkjqwe"))
}

func TestSimilarity_EmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("", "Go"))
	assert.Equal(t, 0.0, Similarity("", ""))
}

func TestSimilarity_PriorityOrder(t *testing.T) {
	// Docker and Kubernetes are direct neighbors AND share the devops
	// category; the neighbor tier must win.
	assert.Equal(t, 0.8, Similarity("Docker", "Kubernetes"))
}

func TestRelatedSkills_NeighborsFirst(t *testing.T) {
	related := RelatedSkills("JavaScript", 3)
	require.Len(t, related, 3)
	assert.Equal(t, "TypeScript", related[0].Name)
	assert.Equal(t, "Node.js", related[1].Name)
	assert.Equal(t, "React", related[2].Name)
	for _, r := range related {
		assert.Equal(t, 0.8, r.Score)
	}
}

func TestRelatedSkills_FallsThroughToCategory(t *testing.T) {
	// Redux has a single neighbor; the rest come from the frontend category
	// at 0.6.
	related := RelatedSkills("Redux", 4)
	require.Len(t, related, 4)
	assert.Equal(t, RelatedSkill{Name: "MobX", Score: 0.8}, related[0])
	for _, r := range related[1:] {
		assert.Equal(t, 0.6, r.Score)
		assert.NotEqual(t, "Redux", r.Name)
		assert.NotEqual(t, "MobX", r.Name)
	}
}

func TestRelatedSkills_Descending(t *testing.T) {
	related := RelatedSkills("Go", 10)
	prev := 1.0
	for _, r := range related {
		assert.LessOrEqual(t, r.Score, prev)
		prev = r.Score
	}
}

func TestRelatedSkills_ZeroLimit(t *testing.T) {
	assert.Empty(t, RelatedSkills("Go", 0))
}

func TestRelatedSkills_UnknownSkill(t *testing.T) {
	assert.Empty(t, RelatedSkills("asdkjqwe", 5))
}

func TestRelatedSkills_CanonicalizesInput(t *testing.T) {
	// "js" normalizes to JavaScript before the graph lookup.
	related := RelatedSkills("js", 2)
	require.Len(t, related, 2)
	assert.Equal(t, "TypeScript", related[0].Name)
}

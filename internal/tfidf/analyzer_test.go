package tfidf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScores_KnownCorpus(t *testing.T) {
	a := NewAnalyzer()
	a.AddDocuments([]string{"a b", "a c"})

	scores := a.Scores("a")
	require.Contains(t, scores, "a")

	// tf=1, df("a")=2, N=2 -> idf = ln(2/3)
	expected := math.Log(2.0 / 3.0)
	assert.InDelta(t, expected, scores["a"], 1e-9)
}

func TestScores_Idempotent(t *testing.T) {
	a := NewAnalyzer()
	a.AddDocuments([]string{"go developer", "python developer", "go engineer"})

	first := a.Scores("go developer resume")
	second := a.Scores("go developer resume")
	assert.Equal(t, first, second)
}

func TestScores_UnknownTermsOmitted(t *testing.T) {
	a := NewAnalyzer()
	a.AddDocuments([]string{"go developer"})

	scores := a.Scores("rust developer")
	assert.NotContains(t, scores, "rust")
	assert.Contains(t, scores, "developer")
}

func TestScores_EmptyInput(t *testing.T) {
	a := NewAnalyzer()
	a.AddDocuments([]string{"go developer"})

	scores := a.Scores("")
	assert.NotNil(t, scores)
	assert.Empty(t, scores)
}

func TestScores_EmptyCorpus(t *testing.T) {
	a := NewAnalyzer()
	assert.Empty(t, a.Scores("anything at all"))
}

func TestAddDocuments_SkipsEmptyEntries(t *testing.T) {
	a := NewAnalyzer()
	a.AddDocuments([]string{"", "go developer", ""})
	assert.Equal(t, 1, a.CorpusSize())
}

func TestAddDocuments_EmptySliceIsNoOp(t *testing.T) {
	a := NewAnalyzer()
	a.AddDocuments([]string{"go developer"})
	before := a.Scores("go")

	a.AddDocuments(nil)
	a.AddDocuments([]string{})
	a.AddDocuments([]string{""})

	assert.Equal(t, 1, a.CorpusSize())
	assert.Equal(t, before, a.Scores("go"))
}

func TestAddDocuments_RecomputesIDFOverWholeCorpus(t *testing.T) {
	a := NewAnalyzer()
	a.AddDocuments([]string{"go developer"})
	// df("go")=1, N=1 -> idf = ln(1/2)
	assert.InDelta(t, math.Log(1.0/2.0), a.Scores("go")["go"], 1e-9)

	a.AddDocuments([]string{"go engineer", "java engineer"})
	// df("go")=2, N=3 -> idf = ln(3/3) = 0
	assert.InDelta(t, 0.0, a.Scores("go")["go"], 1e-9)
}

func TestIDF_SubstringContainment(t *testing.T) {
	a := NewAnalyzer()
	// The term "go" appears as a substring of "golang" in the second document,
	// so df("go")=2 even though only one document has "go" as a token.
	a.AddDocuments([]string{"go developer", "golang enthusiast", "java developer"})

	// df("go")=2, N=3 -> idf = ln(3/3) = 0
	assert.InDelta(t, 0.0, a.Scores("go")["go"], 1e-9)
}

func TestScores_TermFrequencyMultiplies(t *testing.T) {
	a := NewAnalyzer()
	a.AddDocuments([]string{"go rules", "java rules", "python rules"})

	single := a.Scores("go")["go"]
	double := a.Scores("go go")["go"]
	assert.InDelta(t, 2*single, double, 1e-9)
}

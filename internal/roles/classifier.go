package roles

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/cache"
	"github.com/jonathan/resume-analyzer/internal/tfidf"
)

// ClassifyTTL bounds how long a classification result stays cached.
const ClassifyTTL = 24 * time.Hour

// DefaultSimilarTitles is the SimilarTitles limit when the caller passes a
// non-positive one.
const DefaultSimilarTitles = 5

// Classifier maps free-text job titles onto the closed category set using
// TF-IDF over a synthetic corpus of known titles. Not safe for concurrent
// use; each logical caller owns its own instance.
type Classifier struct {
	analyzer *tfidf.Analyzer
	cache    *cache.TTL[string]
}

// NewClassifier seeds the analyzer with one document per known title, each
// the title concatenated with its category label. A nil cache gets a
// default-sized one with the standard TTL.
func NewClassifier(c *cache.TTL[string]) *Classifier {
	if c == nil {
		c = cache.NewTTL[string](cache.DefaultSize, ClassifyTTL)
	}

	analyzer := tfidf.NewAnalyzer()
	var docs []string
	for _, role := range Roles {
		label := categoryLabel(role.Category)
		for _, title := range role.Titles {
			docs = append(docs, title+" "+label)
		}
	}
	analyzer.AddDocuments(docs)

	return &Classifier{analyzer: analyzer, cache: c}
}

// Classify returns the category whose titles best overlap the input title's
// TF-IDF score table, or CategoryOther when nothing scores above zero.
// Results are cached per normalized title.
func (c *Classifier) Classify(jobTitle string) string {
	normalized := strings.ToLower(strings.TrimSpace(jobTitle))
	if normalized == "" {
		return CategoryOther
	}
	if cached, ok := c.cache.Get(normalized); ok {
		return cached
	}

	scores := c.analyzer.Scores(normalized)

	best := CategoryOther
	bestScore := 0.0
	for _, role := range Roles {
		catWords := strings.Fields(categoryLabel(role.Category))
		roleBest := 0.0
		for _, title := range role.Titles {
			roleBest = math.Max(roleBest, titleScore(scores, title, catWords))
		}
		if roleBest > bestScore {
			bestScore = roleBest
			best = role.Category
		}
	}

	c.cache.Set(normalized, best)
	return best
}

// SimilarTitles ranks other titles in the category by symmetric-min overlap
// of their TF-IDF score vectors against the original title's vector,
// excluding a case-insensitive exact match of the original.
func (c *Classifier) SimilarTitles(category, originalTitle string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSimilarTitles
	}

	var titles []string
	for _, role := range Roles {
		if role.Category == category {
			titles = role.Titles
			break
		}
	}
	if len(titles) == 0 {
		return nil
	}

	origVec := c.analyzer.Scores(strings.ToLower(originalTitle))

	type ranked struct {
		title   string
		overlap float64
	}
	var candidates []ranked
	for _, title := range titles {
		if strings.EqualFold(title, originalTitle) {
			continue
		}
		vec := c.analyzer.Scores(title)
		overlap := 0.0
		for term, w := range vec {
			if ow, ok := origVec[term]; ok {
				overlap += math.Min(w, ow)
			}
		}
		candidates = append(candidates, ranked{title, overlap})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].overlap > candidates[j].overlap
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]string, len(candidates))
	for i, c := range candidates {
		result[i] = c.title
	}
	return result
}

// titleScore sums the input's score-table weights over the union of a
// title's words and its category-label words.
func titleScore(scores map[string]float64, title string, catWords []string) float64 {
	seen := make(map[string]bool)
	total := 0.0
	for _, w := range strings.Fields(strings.ToLower(title)) {
		if !seen[w] {
			seen[w] = true
			total += scores[w]
		}
	}
	for _, w := range catWords {
		if !seen[w] {
			seen[w] = true
			total += scores[w]
		}
	}
	return total
}

// categoryLabel turns a category identifier into the words used in the
// synthetic corpus documents.
func categoryLabel(category string) string {
	return strings.ReplaceAll(category, "_", " ")
}

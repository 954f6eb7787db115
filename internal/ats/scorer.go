package ats

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/cache"
	"github.com/jonathan/resume-analyzer/internal/roles"
	"github.com/jonathan/resume-analyzer/internal/tfidf"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ScoreTTL bounds how long a full scoring result stays cached.
const ScoreTTL = 12 * time.Hour

// maxKeywordSuggestions caps how many missing keywords are surfaced as
// suggestions.
const maxKeywordSuggestions = 10

// softSkillKeywords are merged into every category's candidate keyword list.
var softSkillKeywords = []string{
	"communication", "leadership", "teamwork", "problem solving",
	"collaboration", "adaptability",
}

// Scorer produces ATS reports. It owns a shared TF-IDF analyzer that
// accumulates every scored resume and job description for the scorer's
// lifetime, and a bounded cache of full reports. Not safe for concurrent
// use; each logical caller owns its own instance.
type Scorer struct {
	classifier *roles.Classifier
	analyzer   *tfidf.Analyzer
	cache      *cache.TTL[*types.ATSReport]
}

// NewScorer wires a scorer to a classifier and an injected report cache.
// A nil cache gets a default-sized one with the standard TTL.
func NewScorer(classifier *roles.Classifier, c *cache.TTL[*types.ATSReport]) *Scorer {
	if classifier == nil {
		classifier = roles.NewClassifier(nil)
	}
	if c == nil {
		c = cache.NewTTL[*types.ATSReport](cache.DefaultSize, ScoreTTL)
	}
	return &Scorer{
		classifier: classifier,
		analyzer:   tfidf.NewAnalyzer(),
		cache:      c,
	}
}

// Score rates resumeText against jobDescription for the role implied by
// jobTitle. The score is the matched share of the role's candidate keywords,
// clamped to [0,100]. Returns *InvalidInputError when resumeText is empty.
func (s *Scorer) Score(resumeText, jobDescription, jobTitle string) (*types.ATSReport, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &InvalidInputError{Field: "resume text", Message: "must be a non-empty string"}
	}

	category := s.classifier.Classify(jobTitle)
	role := roles.ByCategory(category)
	keywords := candidateKeywords(role)

	key := cacheKey(resumeText, keywords)
	if report, ok := s.cache.Get(key); ok {
		return report, nil
	}

	s.analyzer.AddDocuments([]string{resumeText, jobDescription})
	scores := s.analyzer.Scores(resumeText)

	var matched []types.KeywordMatch
	var missing []string
	for _, kw := range keywords {
		freq := countOccurrences(resumeText, kw)
		if freq == 0 {
			missing = append(missing, kw)
			continue
		}
		matched = append(matched, types.KeywordMatch{
			Keyword:   kw,
			Frequency: freq,
			Relevance: scores[strings.ToLower(kw)],
		})
	}

	score := 0
	if len(keywords) > 0 {
		score = int(math.Round(float64(len(matched)) / float64(len(keywords)) * 100))
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	report := &types.ATSReport{
		ID:           uuid.New(),
		Score:        score,
		RoleCategory: category,
		Analysis: types.ATSAnalysis{
			TotalKeywords:   len(keywords),
			MatchedKeywords: matched,
			MissingKeywords: missing,
		},
		RecommendedSkills:  missingSkills(resumeText, role.Skills),
		KeywordSuggestions: capSlice(missing, maxKeywordSuggestions),
		GeneratedAt:        time.Now().UTC(),
	}

	s.cache.Set(key, report)
	return report, nil
}

// candidateKeywords merges the role's keyword, certification, and methodology
// tables with the fixed soft-skills list, dropping duplicates.
func candidateKeywords(role roles.Role) []string {
	var merged []string
	seen := make(map[string]bool)
	for _, group := range [][]string{role.Keywords, role.Certifications, role.Methodologies, softSkillKeywords} {
		for _, kw := range group {
			key := strings.ToLower(kw)
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, kw)
		}
	}
	return merged
}

// countOccurrences counts case-insensitive literal occurrences of keyword in
// text.
func countOccurrences(text, keyword string) int {
	if keyword == "" {
		return 0
	}
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(keyword))
	if err != nil {
		return 0
	}
	return len(re.FindAllStringIndex(text, -1))
}

// missingSkills returns role skills with no case-insensitive occurrence in
// the resume.
func missingSkills(resumeText string, roleSkills []string) []string {
	lower := strings.ToLower(resumeText)
	var missing []string
	for _, skill := range roleSkills {
		if !strings.Contains(lower, strings.ToLower(skill)) {
			missing = append(missing, skill)
		}
	}
	return missing
}

// cacheKey derives a stable key from the resume text and the candidate
// keyword list, so a role-table change invalidates naturally.
func cacheKey(resumeText string, keywords []string) string {
	h := sha256.New()
	h.Write([]byte(resumeText))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(keywords, ",")))
	return hex.EncodeToString(h.Sum(nil))
}

func capSlice(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

package skills

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/parsing"
)

// Similarity tiers. The rules are evaluated in fixed priority order and the
// first match wins; tiers are never summed.
const (
	similarityEqual        = 1.0
	similarityNeighbor     = 0.8
	similaritySameCategory = 0.6
	similaritySecondDegree = 0.4
)

// Similarity returns a deterministic similarity in [0,1] between two skills:
// 1.0 if equal, 0.8 if either is a direct neighbor of the other, 0.6 if both
// share a category, 0.4 if their neighbor sets intersect, else 0. This is a
// static lookup-table model; there are no learned embeddings behind it.
func Similarity(a, b string) float64 {
	ca := canonicalName(a)
	cb := canonicalName(b)
	if ca == "" || cb == "" {
		return 0
	}

	if strings.EqualFold(ca, cb) {
		return similarityEqual
	}

	// Direct neighbor, checked in both directions because the graph is
	// asymmetric.
	if containsFold(skillGraph[ca], cb) || containsFold(skillGraph[cb], ca) {
		return similarityNeighbor
	}

	if catA := categoryOf(ca); catA != "" && catA == categoryOf(cb) {
		return similaritySameCategory
	}

	if intersectsFold(skillGraph[ca], skillGraph[cb]) {
		return similaritySecondDegree
	}

	return 0
}

// RelatedSkill is one ranked neighbor of a skill.
type RelatedSkill struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// RelatedSkills returns up to limit skills related to the given one: direct
// neighbors first (0.8), then remaining same-category skills (0.6). The
// result is ordered descending by score.
func RelatedSkills(skill string, limit int) []RelatedSkill {
	if limit <= 0 {
		return nil
	}

	c := canonicalName(skill)
	if c == "" {
		return nil
	}

	seen := map[string]bool{strings.ToLower(c): true}
	var related []RelatedSkill

	for _, n := range skillGraph[c] {
		if len(related) >= limit {
			return related
		}
		key := strings.ToLower(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		related = append(related, RelatedSkill{Name: n, Score: similarityNeighbor})
	}

	for _, s := range CategorySkills(categoryOf(c)) {
		if len(related) >= limit {
			return related
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		related = append(related, RelatedSkill{Name: s, Score: similaritySameCategory})
	}

	return related
}

// canonicalName resolves a user-supplied skill name to the spelling the
// tables use, falling back to the general normalizer for unknown skills.
func canonicalName(skill string) string {
	normalized := parsing.NormalizeSkillName(skill)
	if normalized == "" {
		return ""
	}
	if canonical, ok := canonicalIndex[strings.ToLower(normalized)]; ok {
		return canonical
	}
	return normalized
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

func intersectsFold(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, s := range a {
		set[strings.ToLower(s)] = true
	}
	for _, s := range b {
		if set[strings.ToLower(s)] {
			return true
		}
	}
	return false
}

package skills

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Confidence values per suggestion source. These are heuristic priorities
// reflecting decreasing evidentiary strength, not probabilities.
const (
	confidenceExperienceText  = 90
	confidenceExperienceTitle = 85
	confidenceEducationField  = 80
	confidenceSummaryText     = 75

	// DefaultSuggestionLimit caps recommendations when the caller passes
	// a non-positive limit.
	DefaultSuggestionLimit = 10

	// relatedPerSkill bounds graph lookups per current skill.
	relatedPerSkill = 3
)

// Recommend ranks candidate skill suggestions for a resume profile. Stages,
// strongest evidence first:
//
//  1. dictionary matches in experience descriptions (confidence 90)
//  2. job-title table lookups (85)
//  3. education field-of-study table lookups (80)
//  4. dictionary matches in the summary (75)
//  5. graph neighbors of current skills (similarity x 100, with BasedOn)
//
// Stages 1-3 and 5 deduplicate against everything emitted earlier in the
// call plus the profile's current skills. Stage 4 deduplicates against
// current skills only and its emissions stay out of the accumulating set,
// so a summary suggestion can duplicate an earlier stage's, and stage 5 can
// re-suggest a summary-surfaced name at its graph confidence; consumers rank
// by confidence afterward, so this is preserved rather than merged away.
//
// A skill already present on the profile never appears in the output.
func Recommend(profile *types.ResumeProfile, limit int) []types.SkillSuggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	if profile == nil {
		return nil
	}

	current := make(map[string]bool, len(profile.Skills))
	for _, s := range profile.Skills {
		if key := dedupKey(s); key != "" {
			current[key] = true
		}
	}

	seen := make(map[string]bool, len(current))
	for key := range current {
		seen[key] = true
	}

	var suggestions []types.SkillSuggestion
	emit := func(name, source string, confidence int, basedOn string) {
		suggestions = append(suggestions, types.SkillSuggestion{
			Name:       name,
			Confidence: confidence,
			Source:     source,
			BasedOn:    basedOn,
		})
	}

	// Stage 1: experience descriptions.
	for _, exp := range profile.Experience {
		for _, skill := range ExtractSkills(exp.Description) {
			key := dedupKey(skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			emit(skill, types.SourceExperience, confidenceExperienceText, "")
		}
	}

	// Stage 2: job titles.
	for _, exp := range profile.Experience {
		title := strings.ToLower(exp.Title)
		if title == "" {
			continue
		}
		for _, entry := range titleSkills {
			if !matchesAnyPattern(title, entry.patterns) {
				continue
			}
			for _, skill := range entry.skills {
				key := dedupKey(skill)
				if seen[key] {
					continue
				}
				seen[key] = true
				emit(skill, types.SourceExperience, confidenceExperienceTitle, "")
			}
		}
	}

	// Stage 3: education fields of study.
	for _, edu := range profile.Education {
		field := strings.ToLower(edu.FieldOfStudy)
		if field == "" {
			continue
		}
		for _, entry := range fieldSkills {
			if !matchesAnyPattern(field, entry.patterns) {
				continue
			}
			for _, skill := range entry.skills {
				key := dedupKey(skill)
				if seen[key] {
					continue
				}
				seen[key] = true
				emit(skill, types.SourceEducation, confidenceEducationField, "")
			}
		}
	}

	// Stage 4: summary. Deduplicates against current skills only and does not
	// feed the accumulating set, so a summary name can duplicate an earlier
	// stage's and can be re-suggested by stage 5 at its graph confidence.
	for _, skill := range ExtractSkills(profile.Summary) {
		key := dedupKey(skill)
		if current[key] {
			continue
		}
		emit(skill, types.SourceSummary, confidenceSummaryText, "")
	}

	// Stage 5: graph neighbors of skills the candidate already has.
	for _, skill := range profile.Skills {
		for _, rel := range RelatedSkills(skill, relatedPerSkill) {
			key := dedupKey(rel.Name)
			if seen[key] {
				continue
			}
			seen[key] = true
			emit(rel.Name, types.SourceSimilar, int(math.Round(rel.Score*100)), skill)
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// dedupKey folds a skill name to its canonical lower-cased form so "js" and
// "JavaScript" collapse to one key.
func dedupKey(skill string) string {
	return strings.ToLower(canonicalName(skill))
}

func matchesAnyPattern(haystack string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(haystack, p) {
			return true
		}
	}
	return false
}

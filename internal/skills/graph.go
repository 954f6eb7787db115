// Package skills provides the curated skill graph, a lookup-table similarity
// model over it, and the skill recommender built on both.
package skills

import "strings"

// skillGraph maps a skill to its directly related skills. The relation is
// curated and asymmetric: A listing B does not imply B lists A. Similarity
// checks both directions, so asymmetry in the table does not leak into
// results.
var skillGraph = map[string][]string{
	"JavaScript":       {"TypeScript", "Node.js", "React", "Vue", "Angular"},
	"TypeScript":       {"JavaScript", "Node.js", "Angular"},
	"React":            {"Redux", "Next.js", "JavaScript", "TypeScript"},
	"Redux":            {"MobX"},
	"Vue":              {"JavaScript", "Nuxt"},
	"Angular":          {"TypeScript", "RxJS"},
	"HTML":             {"CSS", "JavaScript"},
	"CSS":              {"HTML", "Sass", "Tailwind"},
	"Node.js":          {"Express", "JavaScript", "TypeScript", "NestJS"},
	"Go":               {"Docker", "Kubernetes", "gRPC", "PostgreSQL"},
	"Python":           {"Django", "Flask", "FastAPI", "Pandas", "NumPy"},
	"Java":             {"Spring", "Hibernate", "Maven"},
	"SQL":              {"PostgreSQL", "MySQL"},
	"PostgreSQL":       {"MySQL", "SQL", "Redis"},
	"MySQL":            {"PostgreSQL", "SQL"},
	"MongoDB":          {"Redis", "PostgreSQL"},
	"Docker":           {"Kubernetes", "CI/CD", "Terraform"},
	"Kubernetes":       {"Docker", "Helm", "Terraform"},
	"AWS":              {"Terraform", "Docker", "CloudFormation"},
	"Pandas":           {"NumPy", "Python", "Machine Learning"},
	"Machine Learning": {"Python", "TensorFlow", "PyTorch"},
	"TensorFlow":       {"PyTorch", "Machine Learning"},
}

// skillCategory groups skills; iteration order matters because category
// lookup is first-match.
type skillCategory struct {
	name   string
	skills []string
}

var skillCategories = []skillCategory{
	{"frontend", []string{
		"HTML", "CSS", "JavaScript", "TypeScript", "React", "Vue", "Angular",
		"Redux", "Next.js", "Sass", "Tailwind", "RxJS", "Nuxt", "MobX",
	}},
	{"backend", []string{
		"Go", "Java", "Python", "Node.js", "Express", "Django", "Flask",
		"FastAPI", "Spring", "NestJS", "gRPC", "Hibernate",
	}},
	{"database", []string{
		"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis",
	}},
	{"devops", []string{
		"Docker", "Kubernetes", "Terraform", "Helm", "AWS", "CI/CD",
		"CloudFormation", "Linux",
	}},
	{"data", []string{
		"Machine Learning", "TensorFlow", "PyTorch", "Pandas", "NumPy",
	}},
	{"soft", []string{
		"Communication", "Leadership", "Teamwork", "Problem Solving",
		"Project Management", "Mentoring", "Collaboration",
	}},
}

// canonicalIndex maps lower-cased names to their canonical spelling, built
// from every name the tables know about.
var canonicalIndex = buildCanonicalIndex()

func buildCanonicalIndex() map[string]string {
	idx := make(map[string]string)
	add := func(name string) {
		key := strings.ToLower(name)
		if _, ok := idx[key]; !ok {
			idx[key] = name
		}
	}
	for skill, related := range skillGraph {
		add(skill)
		for _, r := range related {
			add(r)
		}
	}
	for _, cat := range skillCategories {
		for _, s := range cat.skills {
			add(s)
		}
	}
	for _, s := range technicalSkills {
		add(s)
	}
	for _, s := range softSkills {
		add(s)
	}
	return idx
}

// categoryOf returns the first category containing the skill, or "".
func categoryOf(skill string) string {
	lower := strings.ToLower(skill)
	for _, cat := range skillCategories {
		for _, s := range cat.skills {
			if strings.ToLower(s) == lower {
				return cat.name
			}
		}
	}
	return ""
}

// CategorySkills returns the members of a category.
func CategorySkills(name string) []string {
	for _, cat := range skillCategories {
		if cat.name == name {
			return cat.skills
		}
	}
	return nil
}

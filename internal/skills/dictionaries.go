package skills

import (
	"regexp"
	"strings"
)

// technicalSkills is the dictionary used for free-text skill extraction.
// Entries are canonical spellings; matching is case-insensitive on word
// boundaries.
var technicalSkills = []string{
	"JavaScript", "TypeScript", "React", "Vue", "Angular", "Redux",
	"HTML", "CSS", "Sass", "Tailwind",
	"Node.js", "Express", "Go", "Python", "Java", "Django", "Flask",
	"FastAPI", "Spring", "gRPC", "GraphQL", "REST",
	"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis",
	"Docker", "Kubernetes", "Terraform", "Helm", "AWS", "CI/CD", "Linux", "Git",
	"Machine Learning", "TensorFlow", "PyTorch", "Pandas", "NumPy",
}

var softSkills = []string{
	"Communication", "Leadership", "Teamwork", "Problem Solving",
	"Project Management", "Mentoring", "Collaboration", "Public Speaking",
}

// roleSkills maps job-title fragments to the skills such roles usually carry.
type roleSkills struct {
	patterns []string // matched as substrings of the lower-cased title
	skills   []string
}

var titleSkills = []roleSkills{
	{[]string{"frontend", "front-end", "front end"}, []string{"JavaScript", "React", "TypeScript", "CSS", "HTML"}},
	{[]string{"backend", "back-end", "back end"}, []string{"Go", "Node.js", "SQL", "PostgreSQL", "REST"}},
	{[]string{"full stack", "fullstack", "full-stack"}, []string{"JavaScript", "React", "Node.js", "SQL"}},
	{[]string{"data scientist", "data analyst", "machine learning"}, []string{"Python", "Pandas", "SQL", "Machine Learning"}},
	{[]string{"devops", "site reliability", "platform engineer"}, []string{"Docker", "Kubernetes", "Terraform", "CI/CD", "AWS"}},
	{[]string{"mobile"}, []string{"Swift", "Kotlin", "React Native"}},
	{[]string{"manager", "lead"}, []string{"Leadership", "Project Management", "Mentoring", "Communication"}},
	{[]string{"qa", "test engineer"}, []string{"Selenium", "Cypress", "Test Automation"}},
}

// fieldSkills maps education fields of study to starter skills.
var fieldSkills = []roleSkills{
	{[]string{"computer science", "software engineering"}, []string{"Python", "Java", "SQL", "Git"}},
	{[]string{"data science", "statistics"}, []string{"Python", "Machine Learning", "Pandas", "SQL"}},
	{[]string{"information technology", "information systems"}, []string{"SQL", "Linux", "Networking"}},
	{[]string{"electrical engineering"}, []string{"C", "Embedded Systems", "MATLAB"}},
	{[]string{"mathematics"}, []string{"Python", "NumPy", "Machine Learning"}},
	{[]string{"business", "management"}, []string{"Project Management", "Communication", "Excel"}},
	{[]string{"design"}, []string{"Figma", "UX Design", "CSS"}},
}

// dictionaryPatterns precompiles a word-boundary matcher per dictionary skill.
var dictionaryPatterns = buildDictionaryPatterns()

func buildDictionaryPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(technicalSkills)+len(softSkills))
	for _, s := range append(append([]string{}, technicalSkills...), softSkills...) {
		patterns[s] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(s)) + `\b`)
	}
	return patterns
}

// ExtractSkills matches the technical and soft skill dictionaries against
// free text, returning canonical names in dictionary order. Empty text
// yields nothing.
func ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var found []string
	for _, s := range technicalSkills {
		if dictionaryPatterns[s].MatchString(lower) {
			found = append(found, s)
		}
	}
	for _, s := range softSkills {
		if dictionaryPatterns[s].MatchString(lower) {
			found = append(found, s)
		}
	}
	return found
}

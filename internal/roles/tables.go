// Package roles maps free-text job titles to a fixed set of role categories
// and carries the static keyword, certification, and methodology tables keyed
// by category.
package roles

// CategoryOther is the fallback category for titles no table matches.
const CategoryOther = "other"

// Role is one classification target with its associated static lists.
type Role struct {
	Category       string
	Titles         []string
	Keywords       []string
	Certifications []string
	Methodologies  []string
	Skills         []string
}

// Roles is the closed set of classifiable categories. Titles seed the
// classifier corpus; the remaining lists feed ATS keyword scoring.
var Roles = []Role{
	{
		Category: "software_engineering",
		Titles: []string{
			"software engineer", "senior software engineer", "software developer",
			"full stack developer", "backend developer", "frontend developer",
			"web developer", "mobile developer",
		},
		Keywords: []string{
			"software", "development", "programming", "api", "microservices",
			"testing", "debugging", "architecture", "git", "agile",
		},
		Certifications: []string{
			"aws certified developer", "oracle certified professional",
			"certified kubernetes application developer",
		},
		Methodologies: []string{
			"agile", "scrum", "test-driven development", "continuous integration",
			"code review",
		},
		Skills: []string{"Go", "JavaScript", "Python", "SQL", "Git", "Docker"},
	},
	{
		Category: "data_science",
		Titles: []string{
			"data scientist", "machine learning engineer", "data analyst",
			"ai engineer", "research scientist", "data engineer",
		},
		Keywords: []string{
			"data", "machine learning", "statistics", "python", "modeling",
			"analytics", "visualization", "sql",
		},
		Certifications: []string{
			"tensorflow developer certificate", "aws certified machine learning",
			"google data analytics certificate",
		},
		Methodologies: []string{
			"cross-validation", "a/b testing", "feature engineering",
			"experiment design",
		},
		Skills: []string{"Python", "Pandas", "NumPy", "Machine Learning", "SQL", "TensorFlow"},
	},
	{
		Category: "product_management",
		Titles: []string{
			"product manager", "senior product manager", "product owner",
			"program manager", "technical product manager",
		},
		Keywords: []string{
			"product", "roadmap", "stakeholder", "strategy", "prioritization",
			"user research", "metrics",
		},
		Certifications: []string{
			"certified scrum product owner", "pragmatic marketing certified",
		},
		Methodologies: []string{
			"agile", "scrum", "kanban", "okrs", "design thinking",
		},
		Skills: []string{"Project Management", "Communication", "Leadership", "SQL"},
	},
	{
		Category: "devops",
		Titles: []string{
			"devops engineer", "site reliability engineer", "platform engineer",
			"cloud engineer", "infrastructure engineer",
		},
		Keywords: []string{
			"infrastructure", "deployment", "automation", "monitoring", "cloud",
			"pipeline", "reliability",
		},
		Certifications: []string{
			"aws certified solutions architect", "certified kubernetes administrator",
			"hashicorp certified terraform associate",
		},
		Methodologies: []string{
			"infrastructure as code", "gitops", "continuous delivery",
			"incident response",
		},
		Skills: []string{"Docker", "Kubernetes", "Terraform", "AWS", "CI/CD", "Linux"},
	},
	{
		Category: "design",
		Titles: []string{
			"ux designer", "ui designer", "product designer", "graphic designer",
		},
		Keywords: []string{
			"design", "user experience", "wireframes", "prototyping", "usability",
			"accessibility",
		},
		Certifications: []string{
			"nng ux certification", "adobe certified expert",
		},
		Methodologies: []string{
			"design thinking", "user-centered design", "usability testing",
		},
		Skills: []string{"Figma", "UX Design", "CSS", "Prototyping"},
	},
	{
		Category: "marketing",
		Titles: []string{
			"marketing manager", "digital marketing specialist",
			"content strategist", "seo specialist", "growth marketer",
		},
		Keywords: []string{
			"marketing", "campaign", "seo", "content", "brand", "conversion",
			"analytics",
		},
		Certifications: []string{
			"google ads certification", "hubspot content marketing",
		},
		Methodologies: []string{
			"a/b testing", "funnel optimization", "growth hacking",
		},
		Skills: []string{"SEO", "Content Marketing", "Google Analytics", "Communication"},
	},
}

// generalRole backs the "other" category so ATS scoring still has keyword
// material for unclassifiable titles.
var generalRole = Role{
	Category: CategoryOther,
	Keywords: []string{
		"communication", "teamwork", "problem solving", "organization",
		"leadership",
	},
	Skills: []string{"Communication", "Teamwork", "Problem Solving", "Leadership"},
}

// ByCategory returns the role tables for a category, falling back to the
// general tables for "other" or unknown categories.
func ByCategory(category string) Role {
	for _, r := range Roles {
		if r.Category == category {
			return r
		}
	}
	return generalRole
}

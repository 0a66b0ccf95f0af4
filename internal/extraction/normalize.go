package extraction

import "strings"

// skillNormalizations maps common skill name variants to canonical names.
// Synonym folding is primarily the model's job (the prompt gives it
// examples); this map only irons out casing and spelling drift in the parsed
// output for display consistency. It is not load-bearing for scoring.
var skillNormalizations = map[string]string{
	"golang":           "Go",
	"go lang":          "Go",
	"javascript":       "JavaScript",
	"js":               "JavaScript",
	"typescript":       "TypeScript",
	"ts":               "TypeScript",
	"k8s":              "Kubernetes",
	"kubernetes":       "Kubernetes",
	"node.js":          "Node.js",
	"nodejs":           "Node.js",
	"postgres":         "PostgreSQL",
	"postgresql":       "PostgreSQL",
	"ms excel":         "Excel",
	"microsoft excel":  "Excel",
	"ml":               "Machine Learning",
	"machine learning": "Machine Learning",
	"sql":              "SQL",
	"aws":              "AWS",
	"gcp":              "GCP",
}

// NormalizeSkillName normalizes a skill name to its canonical form.
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	return normalized
}

// NormalizeSkills normalizes every skill in a parsed list, dropping
// duplicates that collapse to the same canonical name while preserving order.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	result := make([]string, 0, len(skills))
	for _, s := range skills {
		canonical := NormalizeSkillName(s)
		if canonical == "" || seen[canonical] {
			continue
		}
		seen[canonical] = true
		result = append(result, canonical)
	}
	return result
}

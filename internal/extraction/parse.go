package extraction

import (
	"regexp"
	"strings"
)

// quotedTokenRe matches every double-quoted substring in a skills reply,
// regardless of the delimiters around it.
var quotedTokenRe = regexp.MustCompile(`"([^"]+)"`)

// ParseSkills derives an ordered skill list from loosely formatted skills
// text. The model is asked for a brace-delimited set literal, which is not
// valid JSON, so strict parsing is pointless; this scan tolerates whatever
// format the reply drifts into. It never fails: worst case it returns an
// empty list.
//
// Strategy, in priority order:
//  1. Collect every double-quoted substring, left to right.
//  2. If none exist, strip outer brace/bracket characters and split on commas.
func ParseSkills(skillsText string) []string {
	skillsText = strings.TrimSpace(skillsText)
	if skillsText == "" {
		return []string{}
	}

	matches := quotedTokenRe.FindAllStringSubmatch(skillsText, -1)
	if len(matches) > 0 {
		skills := make([]string, 0, len(matches))
		for _, m := range matches {
			if s := strings.TrimSpace(m[1]); s != "" {
				skills = append(skills, s)
			}
		}
		return skills
	}

	// Fallback: no quoted tokens, treat as comma-separated bracketed content
	cleaned := strings.Trim(skillsText, "{}[]")
	parts := strings.Split(cleaned, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, `"'`)
		if p != "" {
			skills = append(skills, p)
		}
	}

	return skills
}

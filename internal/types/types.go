// Package types provides type definitions for structured data used throughout the resume-matcher system.
package types

// PersonalInfo represents the candidate details extracted from a resume.
// Every field is a pointer so a missing value round-trips as JSON null
// rather than an empty string or an absent key.
type PersonalInfo struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Location  *string `json:"location"`
	LinkedIn  *string `json:"linkedin"`
	GitHub    *string `json:"github"`
	Portfolio *string `json:"portfolio"`
}

// MatchResult holds the outputs of one resume-to-JD matching run.
type MatchResult struct {
	// Raw skills text as returned by the model, before parsing
	ResumeSkillsText string `json:"resume_skills_text"`
	JDSkillsText     string `json:"jd_skills_text"`

	// Parsed, ordered skill lists
	ResumeSkills []string `json:"resume_skills"`
	JDSkills     []string `json:"jd_skills"`

	// PersonalInfo is nil when the model reply could not be decoded;
	// PersonalInfoRaw always carries the reply for fallback display.
	PersonalInfo    *PersonalInfo `json:"personal_info,omitempty"`
	PersonalInfoRaw string        `json:"personal_info_raw,omitempty"`

	// Score is the cosine similarity of the two skills embeddings, 0-100.
	Score float64 `json:"score"`
}

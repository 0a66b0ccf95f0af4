package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_SkillsPrompt(t *testing.T) {
	prompt, err := Get("extraction.json", "skills")
	require.NoError(t, err)

	assert.Contains(t, prompt, "Extract only SKILLS")
	assert.Contains(t, prompt, "{{.Context}}")
}

func TestGet_PersonalInfoPrompt(t *testing.T) {
	prompt, err := Get("extraction.json", "personal_info")
	require.NoError(t, err)

	// All seven required keys must be listed in the prompt
	for _, key := range []string{"name", "email", "phone", "location", "linkedin", "github", "portfolio"} {
		assert.Contains(t, prompt, key)
	}
	assert.Contains(t, prompt, "{{.ResumeText}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("extraction.json", "nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "skills")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	template := "Analyze this text: {{.Context}} for {{.Purpose}}"
	result := Format(template, map[string]string{
		"Context": "resume content",
		"Purpose": "skill extraction",
	})

	assert.Equal(t, "Analyze this text: resume content for skill extraction", result)
}

func TestFormat_MissingPlaceholder(t *testing.T) {
	template := "Hello {{.Name}}"
	result := Format(template, map[string]string{"Other": "value"})

	// Unknown placeholders are left untouched
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("extraction.json", "no-such-key")
	})
}

func TestList(t *testing.T) {
	ClearCache()
	keys, err := List("extraction.json")
	require.NoError(t, err)

	joined := strings.Join(keys, ",")
	assert.Contains(t, joined, "skills")
	assert.Contains(t, joined, "personal_info")
}

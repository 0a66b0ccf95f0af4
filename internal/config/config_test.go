package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"resume": "resume.pdf",
		"jd": "jd.txt",
		"embedding_model": "text-embedding-004",
		"timeout_seconds": 30
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "resume.pdf", cfg.Resume)
	assert.Equal(t, "jd.txt", cfg.JD)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{TimeoutSeconds: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{MaxRetries: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "ghost.pdf")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ExistingFiles(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(resume, []byte("x"), 0644))

	cfg := &Config{Resume: resume}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Resume: "mine.pdf"}
	defaults := Config{
		Resume:          "default.pdf",
		JDDir:           "data/jd",
		EmbeddingModel:  "text-embedding-004",
		GenerativeModel: "gemini-2.5-flash-lite",
		TimeoutSeconds:  60,
		MaxRetries:      2,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "mine.pdf", merged.Resume, "explicit value wins")
	assert.Equal(t, "data/jd", merged.JDDir)
	assert.Equal(t, "text-embedding-004", merged.EmbeddingModel)
	assert.Equal(t, 60, merged.TimeoutSeconds)
	assert.Equal(t, 2, merged.MaxRetries)
}

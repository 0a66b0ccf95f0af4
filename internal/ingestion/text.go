package ingestion

import (
	"os"
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted document text: line endings become LF,
// runs of spaces collapse to one, and blank-line runs are capped at two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = multiSpaceRe.ReplaceAllString(strings.TrimRight(line, " \t"), " ")
		cleaned = append(cleaned, strings.TrimSpace(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankLinesRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// LoadTextFile reads a plain UTF-8 text file (a job description) into a string.
func LoadTextFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &FileReadError{Path: path, Cause: err}
	}
	return string(content), nil
}

package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultJDDir is the relative directory where pasted job descriptions are saved.
const DefaultJDDir = "data/jd"

// PostedJDFile is the filename used when saving a pasted job description.
const PostedJDFile = "posted_jd.txt"

// SaveJD persists pasted job-description text under dir, creating parent
// directories as needed. Returns the path the JD was written to.
func SaveJD(dir, text string) (string, error) {
	if dir == "" {
		dir = DefaultJDDir
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create JD directory: %w", err)
	}

	path := filepath.Join(dir, PostedJDFile)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("failed to write JD file: %w", err)
	}

	return path, nil
}

// ListSavedJDs returns the names of saved job-description text files in dir,
// sorted alphabetically. A missing directory yields an empty list, not an error.
func ListSavedJDs(dir string) ([]string, error) {
	if dir == "" {
		dir = DefaultJDDir
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list JD directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

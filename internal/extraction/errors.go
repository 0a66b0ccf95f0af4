// Package extraction provides LLM-based extraction of skills and personal
// information from resume and job-description text.
package extraction

import "fmt"

// ExtractionFormatError is returned when a skills-extraction reply contains
// no recognizable brace-delimited span. The model is instructed to return a
// brace-delimited list, so a reply without one is a broken contract and must
// surface as this error rather than an unset-value failure downstream.
type ExtractionFormatError struct {
	Reply string
}

func (e *ExtractionFormatError) Error() string {
	preview := e.Reply
	// Truncate on runes so a multi-byte character never straddles the cut.
	if runes := []rune(preview); len(runes) > 120 {
		preview = string(runes[:117]) + "..."
	}
	return fmt.Sprintf("skills reply contains no {...} span: %q", preview)
}

// EmptyInputError is returned when extraction is requested on empty text.
type EmptyInputError struct {
	What string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("cannot extract %s from empty text", e.What)
}

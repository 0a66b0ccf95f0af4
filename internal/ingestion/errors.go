// Package ingestion provides functionality to read resume documents and job description text.
package ingestion

import "fmt"

// UnsupportedDocumentTypeError is returned when a resume file has an
// extension other than .pdf or .docx. It is raised before any document
// bytes are parsed or any LLM call is attempted.
type UnsupportedDocumentTypeError struct {
	Extension string
}

func (e *UnsupportedDocumentTypeError) Error() string {
	return fmt.Sprintf("unsupported document type %q: please provide a PDF or DOCX file", e.Extension)
}

// DocumentParseError represents a failure parsing a PDF or DOCX document
type DocumentParseError struct {
	Message string
	Cause   error
}

func (e *DocumentParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("document parse error: %s", e.Message)
}

func (e *DocumentParseError) Unwrap() error {
	return e.Cause
}

// FileReadError represents an error reading a file from disk
type FileReadError struct {
	Path  string
	Cause error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}

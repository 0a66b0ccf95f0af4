package ingestion

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// SupportedExtensions lists the resume document formats the extractor accepts.
var SupportedExtensions = []string{".pdf", ".docx"}

// IsSupportedDocument reports whether the filename has a supported resume extension.
func IsSupportedDocument(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// ExtractDocumentText reads a resume file from disk and returns its plain text.
// The extension gate runs before the file is opened so an unsupported type
// fails fast with UnsupportedDocumentTypeError.
func ExtractDocumentText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupportedDocument(path) {
		return "", &UnsupportedDocumentTypeError{Extension: ext}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileReadError{Path: path, Cause: err}
	}

	return ExtractDocumentBytes(path, data)
}

// ExtractDocumentBytes extracts plain text from uploaded resume bytes.
// The filename is only used to determine the document format.
func ExtractDocumentBytes(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	default:
		return "", &UnsupportedDocumentTypeError{Extension: ext}
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DocumentParseError{Message: "failed to read PDF", Cause: err}
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages rather than losing the rest of the document
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return CleanText(sb.String()), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DocumentParseError{Message: "failed to parse DOCX", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	return CleanText(stripXMLTags(content)), nil
}

// stripXMLTags removes raw WordprocessingML markup from extracted DOCX content,
// keeping only the readable text between tags.
func stripXMLTags(content string) string {
	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
			sb.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

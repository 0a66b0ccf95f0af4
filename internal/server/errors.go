package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/llm"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline error.
// Client-side input problems map to 4xx; model and provider failures map to
// 502 so callers can distinguish them from server bugs.
func HTTPStatus(err error) int {
	var unsupportedType *ingestion.UnsupportedDocumentTypeError
	if errors.As(err, &unsupportedType) {
		return http.StatusUnsupportedMediaType
	}

	var parseErr *ingestion.DocumentParseError
	if errors.As(err, &parseErr) {
		return http.StatusUnprocessableEntity
	}

	var readErr *ingestion.FileReadError
	if errors.As(err, &readErr) {
		return http.StatusBadRequest
	}

	var emptyInput *extraction.EmptyInputError
	if errors.As(err, &emptyInput) {
		return http.StatusBadRequest
	}

	var formatErr *extraction.ExtractionFormatError
	if errors.As(err, &formatErr) {
		return http.StatusBadGateway
	}

	var apiErr *llm.APICallError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

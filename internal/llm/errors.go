package llm

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey indicates no provider credential was supplied.
// Callers should surface this as a visible warning before attempting any
// extraction rather than letting it fail deep inside a pipeline stage.
var ErrMissingAPIKey = errors.New("API key is required (set GEMINI_API_KEY)")

// APICallError represents a failure from the LLM or embedding provider
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

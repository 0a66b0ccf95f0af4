package types

import (
	"github.com/go-playground/validator/v10"
)

// SaveJDRequest represents a request to persist pasted job-description text.
type SaveJDRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// MatchOptions represents the optional knobs accepted by the match endpoints.
type MatchOptions struct {
	JDText string `json:"jd_text" validate:"required,min=1"`
}

// validate is shared across requests so the validator's struct cache is reused.
var validate = validator.New()

// Validate validates the SaveJDRequest using the validator.
func (r *SaveJDRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the MatchOptions using the validator.
func (r *MatchOptions) Validate() error {
	return validate.Struct(r)
}

package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ExtractPersonalInfo asks the model for the candidate's personal details and
// returns the raw JSON-like reply. A single call is made; provider errors
// propagate as one failure event. Interpreting the reply is the caller's
// responsibility (see DecodePersonalInfo) so a malformed reply can still be
// shown verbatim instead of being dropped.
func (e *Extractor) ExtractPersonalInfo(ctx context.Context, resumeText string) (string, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return "", &EmptyInputError{What: "personal information"}
	}

	template := prompts.MustGet("extraction.json", "personal_info")
	prompt := prompts.Format(template, map[string]string{
		"ResumeText": e.truncate(resumeText),
	})

	reply, err := e.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", &llm.APICallError{Message: "personal info extraction", Cause: err}
	}

	return reply, nil
}

// DecodePersonalInfo decodes a personal-info reply into a structured record,
// validating it against the embedded JSON Schema first. The decode is
// best-effort: on any failure the caller should fall back to displaying the
// raw reply, since model output is not contract-enforced.
func DecodePersonalInfo(raw string) (*types.PersonalInfo, error) {
	cleaned := llm.CleanJSONBlock(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty personal info reply")
	}

	if err := schemas.ValidatePersonalInfo([]byte(cleaned)); err != nil {
		return nil, fmt.Errorf("personal info failed schema validation: %w", err)
	}

	var info types.PersonalInfo
	if err := json.Unmarshal([]byte(cleaned), &info); err != nil {
		return nil, fmt.Errorf("failed to decode personal info: %w", err)
	}

	return &info, nil
}

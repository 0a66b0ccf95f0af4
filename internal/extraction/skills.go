package extraction

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/prompts"
)

// DefaultMaxInputRunes caps the text sent to the model in a single
// extraction call. Resumes and postings beyond this are truncated with a
// marker; the leading portion carries the skill-bearing content in practice.
const DefaultMaxInputRunes = 20000

// braceSpanRe captures the span from the first '{' to the last '}' in a
// reply. The capture is deliberately greedy rather than balance-aware: the
// prompt asks for a single brace-delimited list, and the lenient parser
// downstream tolerates whatever lands inside the span.
var braceSpanRe = regexp.MustCompile(`(?s)\{.*\}`)

// Extractor performs prompt-based extraction through a shared LLM client.
// The client is an expensive process-wide resource owned by the caller.
type Extractor struct {
	client llm.Client

	// MaxInputRunes bounds the input text per call. Zero means DefaultMaxInputRunes.
	MaxInputRunes int
}

// NewExtractor creates an Extractor backed by the given LLM client.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client, MaxInputRunes: DefaultMaxInputRunes}
}

// ExtractSkills asks the model for the technical and professional skills in
// text (a resume or job-description body) and returns the raw brace-delimited
// skills text. Returns ExtractionFormatError when the reply has no {...} span.
func (e *Extractor) ExtractSkills(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &EmptyInputError{What: "skills"}
	}

	template := prompts.MustGet("extraction.json", "skills")
	prompt := prompts.Format(template, map[string]string{
		"Context": e.truncate(text),
	})

	reply, err := e.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return "", &llm.APICallError{Message: "skills extraction", Cause: err}
	}

	span := braceSpanRe.FindString(reply)
	if span == "" {
		return "", &ExtractionFormatError{Reply: strings.TrimSpace(reply)}
	}

	return span, nil
}

// truncate bounds input text to MaxInputRunes, marking the cut.
func (e *Extractor) truncate(text string) string {
	limit := e.MaxInputRunes
	if limit <= 0 {
		limit = DefaultMaxInputRunes
	}

	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "\n...[truncated for length]"
}

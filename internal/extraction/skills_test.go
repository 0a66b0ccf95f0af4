package extraction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient implements llm.Client with canned replies for testing.
type fakeClient struct {
	reply      string
	err        error
	lastPrompt string
	calls      int
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.reply, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.reply, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func TestExtractSkills_BraceSpan(t *testing.T) {
	client := &fakeClient{reply: `{"Python", "SQL", "Excel"}`}
	extractor := NewExtractor(client)

	skills, err := extractor.ExtractSkills(context.Background(), "Proficient in Python, SQL, and Excel VLOOKUP")
	require.NoError(t, err)
	assert.Equal(t, `{"Python", "SQL", "Excel"}`, skills)
}

func TestExtractSkills_SpanWithSurroundingProse(t *testing.T) {
	client := &fakeClient{reply: "Sure! Here are the skills:\n{\"Go\", \"Docker\"}\nLet me know if you need more."}
	extractor := NewExtractor(client)

	skills, err := extractor.ExtractSkills(context.Background(), "some resume text")
	require.NoError(t, err)
	assert.Equal(t, `{"Go", "Docker"}`, skills)
}

func TestExtractSkills_GreedySpanAcrossBraceGroups(t *testing.T) {
	// Multiple brace groups: the span runs from the first '{' to the last '}'.
	client := &fakeClient{reply: `{"Python"} and also {"SQL"}`}
	extractor := NewExtractor(client)

	skills, err := extractor.ExtractSkills(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, `{"Python"} and also {"SQL"}`, skills)
}

func TestExtractSkills_NoBraces(t *testing.T) {
	client := &fakeClient{reply: "I'm sorry, I could not find any skills in this text."}
	extractor := NewExtractor(client)

	_, err := extractor.ExtractSkills(context.Background(), "text without skills")

	var formatErr *ExtractionFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Reply, "could not find")
}

func TestExtractSkills_EmptyInput(t *testing.T) {
	client := &fakeClient{reply: `{"unused"}`}
	extractor := NewExtractor(client)

	_, err := extractor.ExtractSkills(context.Background(), "   \n  ")

	var emptyErr *EmptyInputError
	assert.ErrorAs(t, err, &emptyErr)
	assert.Zero(t, client.calls, "no LLM call should be made for empty input")
}

func TestExtractSkills_ProviderError(t *testing.T) {
	client := &fakeClient{err: errors.New("rate limited")}
	extractor := NewExtractor(client)

	_, err := extractor.ExtractSkills(context.Background(), "resume text")

	var apiErr *llm.APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestExtractSkills_PromptCarriesInput(t *testing.T) {
	client := &fakeClient{reply: `{"Python"}`}
	extractor := NewExtractor(client)

	_, err := extractor.ExtractSkills(context.Background(), "Ten years of Python experience")
	require.NoError(t, err)

	assert.Contains(t, client.lastPrompt, "Ten years of Python experience")
	assert.Contains(t, client.lastPrompt, "Extract only SKILLS")
	assert.NotContains(t, client.lastPrompt, "{{.Context}}")
}

func TestExtractSkills_TruncatesLongInput(t *testing.T) {
	client := &fakeClient{reply: `{"Python"}`}
	extractor := NewExtractor(client)
	extractor.MaxInputRunes = 50

	long := strings.Repeat("skill ", 100)
	_, err := extractor.ExtractSkills(context.Background(), long)
	require.NoError(t, err)

	assert.Contains(t, client.lastPrompt, "[truncated for length]")
	assert.NotContains(t, client.lastPrompt, long)
}

func TestExtractSkills_RoundTripThroughParser(t *testing.T) {
	client := &fakeClient{reply: `{"Python", "SQL", "Machine Learning"}`}
	extractor := NewExtractor(client)

	skillsText, err := extractor.ExtractSkills(context.Background(), "resume body")
	require.NoError(t, err)

	parsed := ParseSkills(skillsText)
	assert.Equal(t, []string{"Python", "SQL", "Machine Learning"}, parsed)
}

package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validInfoReply = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": null,
	"location": "Berlin",
	"linkedin": null,
	"github": "github.com/janedoe",
	"portfolio": null
}`

func TestExtractPersonalInfo_ReturnsRawReply(t *testing.T) {
	client := &fakeClient{reply: validInfoReply}
	extractor := NewExtractor(client)

	raw, err := extractor.ExtractPersonalInfo(context.Background(), "Jane Doe\njane@example.com\nBerlin")
	require.NoError(t, err)
	assert.Equal(t, validInfoReply, raw)
	assert.Equal(t, 1, client.calls, "exactly one call, no retry at this layer")
}

func TestExtractPersonalInfo_EmptyInput(t *testing.T) {
	client := &fakeClient{reply: validInfoReply}
	extractor := NewExtractor(client)

	_, err := extractor.ExtractPersonalInfo(context.Background(), "")

	var emptyErr *EmptyInputError
	assert.ErrorAs(t, err, &emptyErr)
	assert.Zero(t, client.calls)
}

func TestExtractPersonalInfo_ProviderError(t *testing.T) {
	client := &fakeClient{err: errors.New("auth failure")}
	extractor := NewExtractor(client)

	_, err := extractor.ExtractPersonalInfo(context.Background(), "resume text")

	var apiErr *llm.APICallError
	assert.ErrorAs(t, err, &apiErr)
}

func TestDecodePersonalInfo_Valid(t *testing.T) {
	info, err := DecodePersonalInfo(validInfoReply)
	require.NoError(t, err)

	require.NotNil(t, info.Name)
	assert.Equal(t, "Jane Doe", *info.Name)
	assert.Nil(t, info.Phone)
	assert.Nil(t, info.Portfolio)
}

func TestDecodePersonalInfo_MarkdownWrapped(t *testing.T) {
	wrapped := "```json\n" + validInfoReply + "\n```"

	info, err := DecodePersonalInfo(wrapped)
	require.NoError(t, err)
	require.NotNil(t, info.Email)
	assert.Equal(t, "jane@example.com", *info.Email)
}

func TestDecodePersonalInfo_MalformedFallsThrough(t *testing.T) {
	// The caller keeps the raw reply for display; decode just reports failure.
	_, err := DecodePersonalInfo("Name: Jane, Email: jane@example.com")
	assert.Error(t, err)
}

func TestDecodePersonalInfo_MissingKeysRejected(t *testing.T) {
	_, err := DecodePersonalInfo(`{"name": "Jane Doe"}`)
	assert.Error(t, err)
}

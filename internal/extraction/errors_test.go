package extraction

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExtractionFormatError_ShortReplyKeptWhole(t *testing.T) {
	err := &ExtractionFormatError{Reply: "no list here"}
	assert.Contains(t, err.Error(), "no list here")
	assert.NotContains(t, err.Error(), "...")
}

func TestExtractionFormatError_LongReplyTruncated(t *testing.T) {
	err := &ExtractionFormatError{Reply: strings.Repeat("x", 300)}
	assert.Contains(t, err.Error(), "...")
	assert.Less(t, len(err.Error()), 200)
}

func TestExtractionFormatError_MultibytePreviewStaysValidUTF8(t *testing.T) {
	// 300 two-byte runes put a rune boundary across the old byte cut.
	err := &ExtractionFormatError{Reply: strings.Repeat("é", 300)}

	msg := err.Error()
	assert.True(t, utf8.ValidString(msg))
	// A byte-level cut would leave half a rune, which %q renders as a
	// \x escape; a rune-level cut never does.
	assert.NotContains(t, msg, `\x`)
	assert.Contains(t, msg, "...")
}

func TestEmptyInputError_NamesTheInput(t *testing.T) {
	err := &EmptyInputError{What: "skills"}
	assert.Contains(t, err.Error(), "skills")
}

package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_LineEndings(t *testing.T) {
	input := "line one\r\nline two\rline three"
	result := CleanText(input)

	assert.Equal(t, "line one\nline two\nline three", result)
}

func TestCleanText_CollapsesSpaces(t *testing.T) {
	input := "Python    SQL\t\tExcel"
	result := CleanText(input)

	assert.Equal(t, "Python SQL Excel", result)
}

func TestCleanText_ExcessiveBlankLines(t *testing.T) {
	input := "Skills\n\n\n\n\nExperience"
	result := CleanText(input)

	assert.Equal(t, "Skills\n\nExperience", result)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}

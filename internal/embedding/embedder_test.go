package embedding

import (
	"context"
	"testing"
	"time"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, DefaultModel, config.Model)
	assert.Equal(t, defaultTimeout, config.Timeout)
	assert.Equal(t, defaultMaxRetries, config.MaxRetries)
}

func TestConfig_ZeroValuesUseDefaults(t *testing.T) {
	config := &Config{}

	assert.Equal(t, DefaultModel, config.model())
	assert.Equal(t, defaultTimeout, config.timeout())
	assert.Equal(t, defaultMaxRetries, config.maxRetries())
}

func TestConfig_ExplicitValues(t *testing.T) {
	config := &Config{
		Model:      "custom-embedding-model",
		Timeout:    5 * time.Second,
		MaxRetries: 4,
	}

	assert.Equal(t, "custom-embedding-model", config.model())
	assert.Equal(t, 5*time.Second, config.timeout())
	assert.Equal(t, 4, config.maxRetries())
}

func TestNewGeminiEmbedder_MissingAPIKey(t *testing.T) {
	_, err := NewGeminiEmbedder(context.Background(), DefaultConfig(), "")
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
}

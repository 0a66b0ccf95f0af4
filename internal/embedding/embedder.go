// Package embedding maps text to fixed-dimension numeric vectors using a
// pretrained embedding model. The model is treated as a black-box function
// text -> vector; vectors are never mutated after creation.
package embedding

import (
	"context"
	"time"
)

// Embedder maps a text string to an embedding vector.
// Implementations must handle the empty string without failing.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	// Model returns the identifier of the underlying embedding model.
	Model() string
	Close() error
}

// DefaultModel is the embedding model used when none is configured.
const DefaultModel = "text-embedding-004"

// Default call bounds applied when Config leaves them unset.
const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 2
)

// Config holds embedding model configuration.
type Config struct {
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// DefaultConfig returns the default embedding configuration.
func DefaultConfig() *Config {
	return &Config{
		Model:      DefaultModel,
		Timeout:    defaultTimeout,
		MaxRetries: defaultMaxRetries,
	}
}

func (c *Config) model() string {
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel
}

func (c *Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultTimeout
}

func (c *Config) maxRetries() int {
	if c.MaxRetries > 0 {
		return c.MaxRetries
	}
	return defaultMaxRetries
}

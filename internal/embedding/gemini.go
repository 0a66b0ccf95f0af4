package embedding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-matcher/internal/llm"
)

// GeminiEmbedder implements Embedder using the Gemini embedding API.
// It is safe for concurrent use and intended to be created once at startup
// and shared, since client construction is expensive relative to one call.
type GeminiEmbedder struct {
	client *genai.Client
	config *Config
}

// NewGeminiEmbedder creates a new Gemini-backed embedder.
func NewGeminiEmbedder(ctx context.Context, config *Config, apiKey string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, llm.ErrMissingAPIKey
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}

	return &GeminiEmbedder{client: client, config: config}, nil
}

// Embed maps text to an embedding vector. The empty string yields a nil
// vector and no error, so a degenerate input never fails a pipeline run;
// downstream scoring treats a zero-norm vector as zero similarity.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, nil
	}

	model := e.client.EmbeddingModel(e.config.model())

	var lastErr error
	backoff := time.Second
	for attempt := 0; attempt <= e.config.maxRetries(); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		callCtx, cancel := context.WithTimeout(ctx, e.config.timeout())
		res, err := model.EmbedContent(callCtx, genai.Text(text))
		cancel()
		if err == nil {
			if res.Embedding == nil || len(res.Embedding.Values) == 0 {
				return nil, &llm.APICallError{Message: "embedding response carried no vector"}
			}
			return res.Embedding.Values, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, &llm.APICallError{Message: fmt.Sprintf("embedding failed after %d attempts", e.config.maxRetries()+1), Cause: lastErr}
}

// Model returns the configured embedding model identifier.
func (e *GeminiEmbedder) Model() string {
	return e.config.model()
}

// Close releases resources held by the embedding client.
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

package main

import (
	"context"
	"os"
	"time"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/pipeline"
)

// deps bundles the provider clients and the components built on them.
// Clients are created once per process and shared across runs.
type deps struct {
	client    llm.Client
	embedder  embedding.Embedder
	extractor *extraction.Extractor
	matcher   *matching.Matcher
	pipeline  *pipeline.Pipeline
}

// newDeps builds the full client stack from resolved configuration.
func newDeps(ctx context.Context, cfg config.Config) (*deps, error) {
	llmCfg := llm.DefaultGeminiConfig()
	if cfg.GenerativeModel != "" {
		llmCfg = llmCfg.
			WithModel(llm.TierLite, cfg.GenerativeModel).
			WithModel(llm.TierStandard, cfg.GenerativeModel)
	}
	if cfg.TimeoutSeconds > 0 {
		llmCfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if cfg.MaxRetries > 0 {
		llmCfg.MaxRetries = cfg.MaxRetries
	}

	client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		return nil, err
	}

	embCfg := &embedding.Config{Model: cfg.EmbeddingModel}
	if cfg.TimeoutSeconds > 0 {
		embCfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if cfg.MaxRetries > 0 {
		embCfg.MaxRetries = cfg.MaxRetries
	}

	embedder, err := embedding.NewGeminiEmbedder(ctx, embCfg, cfg.APIKey)
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	extractor := extraction.NewExtractor(client)
	matcher := matching.NewMatcher(embedder)

	return &deps{
		client:    client,
		embedder:  embedder,
		extractor: extractor,
		matcher:   matcher,
		pipeline:  pipeline.New(extractor, matcher),
	}, nil
}

// Close releases both provider clients.
func (d *deps) Close() {
	_ = d.client.Close()
	_ = d.embedder.Close()
}

// resolveAPIKey returns the flag value if set, falling back to the
// GEMINI_API_KEY environment variable.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}

// loadFileConfig loads and validates a config file when a path is given.
func loadFileConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}

	loaded, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := loaded.Validate(); err != nil {
		return config.Config{}, err
	}
	return *loaded, nil
}

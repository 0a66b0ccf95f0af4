package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for matching resumes
against job descriptions. Without GEMINI_API_KEY the server still starts,
but the model-backed endpoints answer 503.`,
	RunE: runServe,
}

var (
	servePort           int
	serveJDDir          string
	serveModel          string
	serveEmbeddingModel string
	serveAPIKey         string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveJDDir, "jd-dir", ingestion.DefaultJDDir, "Directory for saved job descriptions")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Generative model used for extraction")
	serveCmd.Flags().StringVar(&serveEmbeddingModel, "embedding-model", "", "Model used for skills embeddings")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := server.Config{
		Port:  servePort,
		JDDir: serveJDDir,
	}

	apiKey := resolveAPIKey(serveAPIKey)
	if apiKey == "" {
		// Degraded mode: JD persistence and health stay available.
		_, _ = fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY is not set; /match and /resume/parse will answer 503")
		return server.New(cfg, nil, nil).Start()
	}

	d, err := newDeps(ctx, config.Config{
		APIKey:          apiKey,
		GenerativeModel: serveModel,
		EmbeddingModel:  serveEmbeddingModel,
	})
	if err != nil {
		return fmt.Errorf("failed to create model clients: %w", err)
	}
	defer d.Close()

	return server.New(cfg, d.pipeline, d.extractor).Start()
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Extract personal information from a resume",
	Long:  "Extract the candidate's name, email, phone, location, and profile links from a resume (.pdf or .docx).",
	RunE:  runInfo,
}

var (
	infoResume     string
	infoModel      string
	infoAPIKey     string
	infoTimeout    int
	infoMaxRetries int
	infoRaw        bool
)

func init() {
	infoCmd.Flags().StringVarP(&infoResume, "resume", "r", "", "Path to resume file (.pdf or .docx)")
	infoCmd.Flags().StringVar(&infoModel, "model", "", "Generative model used for extraction")
	infoCmd.Flags().StringVar(&infoAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	infoCmd.Flags().IntVar(&infoTimeout, "timeout", 0, "Per model-call timeout in seconds")
	infoCmd.Flags().IntVar(&infoMaxRetries, "max-retries", 0, "Model-call retry budget")
	infoCmd.Flags().BoolVar(&infoRaw, "raw", false, "Print the raw model reply instead of the formatted summary")

	_ = infoCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(infoCmd)
}

func runInfo(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := resolveAPIKey(infoAPIKey)
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	resumeText, err := ingestion.ExtractDocumentText(infoResume)
	if err != nil {
		return err
	}

	d, err := newDeps(ctx, config.Config{
		APIKey:          apiKey,
		GenerativeModel: infoModel,
		TimeoutSeconds:  infoTimeout,
		MaxRetries:      infoMaxRetries,
	})
	if err != nil {
		return fmt.Errorf("failed to create model clients: %w", err)
	}
	defer d.Close()

	raw, err := d.extractor.ExtractPersonalInfo(ctx, resumeText)
	if err != nil {
		return fmt.Errorf("failed to extract personal info: %w", err)
	}

	if infoRaw {
		_, _ = fmt.Fprintln(os.Stdout, raw)
		return nil
	}

	// Structured decoding is best-effort; a drifted reply is still shown raw.
	printer := observability.NewPrinter(os.Stdout)
	info, err := extraction.DecodePersonalInfo(raw)
	if err != nil {
		printer.PrintPersonalInfo(nil, raw)
		return nil
	}
	printer.PrintPersonalInfo(info, raw)
	return nil
}

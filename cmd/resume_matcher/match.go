package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/pipeline"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long: `Extracts skills from the resume and the job description, embeds both
skill sets, and prints their cosine similarity as a match percentage.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runMatch,
}

var (
	matchConfigPath     string
	matchResume         string
	matchJD             string
	matchJDText         string
	matchSaveJD         bool
	matchJDDir          string
	matchModel          string
	matchEmbeddingModel string
	matchAPIKey         string
	matchTimeout        int
	matchMaxRetries     int
	matchVerbose        bool
)

func init() {
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume file (.pdf or .docx)")
	matchCmd.Flags().StringVarP(&matchJD, "jd", "j", "", "Path to job description text file (mutually exclusive with --jd-text)")
	matchCmd.Flags().StringVar(&matchJDText, "jd-text", "", "Job description text pasted inline (mutually exclusive with --jd)")
	matchCmd.Flags().BoolVar(&matchSaveJD, "save-jd", false, "Save pasted --jd-text for later runs")
	matchCmd.Flags().StringVar(&matchJDDir, "jd-dir", "", "Directory for saved job descriptions")
	matchCmd.Flags().StringVar(&matchModel, "model", "", "Generative model used for extraction")
	matchCmd.Flags().StringVar(&matchEmbeddingModel, "embedding-model", "", "Model used for skills embeddings")
	matchCmd.Flags().IntVar(&matchTimeout, "timeout", 0, "Per model-call timeout in seconds")
	matchCmd.Flags().IntVar(&matchMaxRetries, "max-retries", 0, "Model-call retry budget")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print extracted skills and personal info")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadFileConfig(matchConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if matchVerbose && matchConfigPath != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", matchConfigPath)
	}

	// Command-line args take priority; only override explicitly set flags.
	if cmd.Flags().Changed("resume") {
		cfg.Resume = matchResume
	}
	if cmd.Flags().Changed("jd") {
		cfg.JD = matchJD
	}
	if cmd.Flags().Changed("jd-dir") {
		cfg.JDDir = matchJDDir
	}
	if cmd.Flags().Changed("model") {
		cfg.GenerativeModel = matchModel
	}
	if cmd.Flags().Changed("embedding-model") {
		cfg.EmbeddingModel = matchEmbeddingModel
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = matchTimeout
	}
	if cmd.Flags().Changed("max-retries") {
		cfg.MaxRetries = matchMaxRetries
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = matchAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = matchVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{JDDir: ingestion.DefaultJDDir})

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if err := requireJDSource(cfg.JD, matchJDText); err != nil {
		return err
	}

	cfg.APIKey = resolveAPIKey(cfg.APIKey)
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	d, err := newDeps(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create model clients: %w", err)
	}
	defer d.Close()

	if matchSaveJD && matchJDText != "" {
		path, err := ingestion.SaveJD(cfg.JDDir, matchJDText)
		if err != nil {
			return fmt.Errorf("failed to save job description: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Saved job description to: %s\n", path)
	}

	opts := pipeline.RunOptions{
		ResumePath: cfg.Resume,
		JDPath:     cfg.JD,
		JDText:     matchJDText,
	}
	if cfg.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stdout, "[%s] %s\n", event.Step, event.Message)
		}
	}

	result, err := d.pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintPersonalInfo(result.PersonalInfo, result.PersonalInfoRaw)
		printer.PrintSkills("Resume Skills", result.ResumeSkills)
		printer.PrintSkills("JD Skills", result.JDSkills)
		printer.PrintScore(result.Score)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Score: %.2f%%\n", result.Score)
	return nil
}

// requireJDSource checks that exactly one job description source is set.
func requireJDSource(jdPath, jdText string) error {
	if jdPath == "" && jdText == "" {
		return fmt.Errorf("either --jd or --jd-text must be provided (via flag or config)")
	}
	if jdPath != "" && jdText != "" {
		return fmt.Errorf("--jd and --jd-text are mutually exclusive; provide only one")
	}
	return nil
}

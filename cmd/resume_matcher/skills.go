package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/ingestion"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Extract skills from a resume or job description file",
	Long:  "Extract the skill list from a document (.pdf or .docx) or plain text file using the extraction model.",
	RunE:  runSkills,
}

var (
	skillsFile       string
	skillsModel      string
	skillsAPIKey     string
	skillsTimeout    int
	skillsMaxRetries int
	skillsJSON       bool
)

func init() {
	skillsCmd.Flags().StringVarP(&skillsFile, "file", "f", "", "Path to input file (.pdf, .docx, or plain text)")
	skillsCmd.Flags().StringVar(&skillsModel, "model", "", "Generative model used for extraction")
	skillsCmd.Flags().StringVar(&skillsAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	skillsCmd.Flags().IntVar(&skillsTimeout, "timeout", 0, "Per model-call timeout in seconds")
	skillsCmd.Flags().IntVar(&skillsMaxRetries, "max-retries", 0, "Model-call retry budget")
	skillsCmd.Flags().BoolVar(&skillsJSON, "json", false, "Output skills as a JSON array")

	_ = skillsCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(skillsCmd)
}

func runSkills(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey := resolveAPIKey(skillsAPIKey)
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	// Documents go through the extractors; anything else is read as text.
	var text string
	var err error
	if ingestion.IsSupportedDocument(skillsFile) {
		text, err = ingestion.ExtractDocumentText(skillsFile)
	} else {
		text, err = ingestion.LoadTextFile(skillsFile)
	}
	if err != nil {
		return err
	}

	d, err := newDeps(ctx, config.Config{
		APIKey:          apiKey,
		GenerativeModel: skillsModel,
		TimeoutSeconds:  skillsTimeout,
		MaxRetries:      skillsMaxRetries,
	})
	if err != nil {
		return fmt.Errorf("failed to create model clients: %w", err)
	}
	defer d.Close()

	skillsText, err := d.extractor.ExtractSkills(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to extract skills: %w", err)
	}
	skills := extraction.NormalizeSkills(extraction.ParseSkills(skillsText))

	if skillsJSON {
		out, err := json.MarshalIndent(skills, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	for _, s := range skills {
		_, _ = fmt.Fprintln(os.Stdout, s)
	}
	return nil
}

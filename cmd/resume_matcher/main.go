// Package main provides the entry point for the resume matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume to job description matcher",
	Long:  "Resume Matcher extracts skills from a resume and a job description with an LLM, embeds both skill sets, and reports their cosine similarity as a match percentage.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if os.Getenv("GEMINI_API_KEY") == "" {
		fmt.Fprintln(os.Stderr, "Warning: GEMINI_API_KEY is not set; model-backed commands need it or --api-key")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

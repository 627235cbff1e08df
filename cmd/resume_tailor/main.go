// Package main provides the entry point for the resume tailor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_tailor",
	Short: "Deterministic resume tailoring",
	Long:  "Resume Tailor analyzes a resume against a job posting and produces conservative, reviewable rewrite suggestions with plain-language explanations. The pipeline is rule-based and fully deterministic.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

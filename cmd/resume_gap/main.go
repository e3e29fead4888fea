// Package main provides the resume_gap CLI: keyword extraction, skill matching
// and resume gap analysis against job descriptions, plus the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "resume_gap",
	Short: "Resume gap analysis against job descriptions",
	Long: "resume_gap extracts categorized keywords from resumes and job descriptions, " +
		"matches them, and reports missing keywords by severity with ranked suggestions.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./resume-gap.yaml if present)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

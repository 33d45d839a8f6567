// Package main provides the entry point for the HireLoop hiring-platform server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hireloop",
	Short: "HireLoop hiring platform server",
	Long:  "HireLoop runs AI-generated job-specific interviews: question generation with deterministic fallback, multi-round sessions, scoring, and recruiter job import via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

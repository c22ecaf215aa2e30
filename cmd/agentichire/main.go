// Package main provides the entry point for the AgenticHire HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agentichire",
	Short: "AgenticHire HTTP API Server",
	Long:  "AgenticHire scores resumes against scraped job descriptions, suggests optimizations, and generates a tailored application kit via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
